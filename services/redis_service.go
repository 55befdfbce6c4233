package services

import (
	"context"
	"encoding/json"
	"time"

	"cybercrime-report-service/config"

	"github.com/go-redis/redis/v8"
)

// RedisService handles Redis operations
type RedisService struct {
	Client *redis.Client
	Ctx    context.Context
}

// NewRedisService creates a new Redis service
func NewRedisService(cfg *config.Config) *RedisService {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.GetRedisAddr(),
		Password: "", // No password set
		DB:       cfg.RedisDB,
	})

	return &RedisService{
		Client: client,
		Ctx:    context.Background(),
	}
}

// Available reports whether the Redis server answers a ping
func (s *RedisService) Available() bool {
	if s == nil || s.Client == nil {
		return false
	}
	ctx, cancel := context.WithTimeout(s.Ctx, 2*time.Second)
	defer cancel()
	return s.Client.Ping(ctx).Err() == nil
}

// Set sets a key-value pair in Redis with expiration
func (s *RedisService) Set(key string, value interface{}, expiration time.Duration) error {
	jsonValue, err := json.Marshal(value)
	if err != nil {
		return err
	}

	return s.Client.Set(s.Ctx, key, jsonValue, expiration).Err()
}

// Get gets a value from Redis by key
func (s *RedisService) Get(key string, dest interface{}) error {
	val, err := s.Client.Get(s.Ctx, key).Result()
	if err != nil {
		return err
	}

	return json.Unmarshal([]byte(val), dest)
}

// Delete deletes a key from Redis
func (s *RedisService) Delete(key string) error {
	return s.Client.Del(s.Ctx, key).Err()
}

// HSet sets a field of a Redis hash
func (s *RedisService) HSet(key, field, value string) error {
	return s.Client.HSet(s.Ctx, key, field, value).Err()
}

// HGet gets a field of a Redis hash
func (s *RedisService) HGet(key, field string) (string, error) {
	return s.Client.HGet(s.Ctx, key, field).Result()
}

// Publish publishes a message on a Redis channel
func (s *RedisService) Publish(channel string, payload interface{}) error {
	jsonValue, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return s.Client.Publish(s.Ctx, channel, jsonValue).Err()
}

// Subscribe subscribes to a Redis channel
func (s *RedisService) Subscribe(channel string) *redis.PubSub {
	return s.Client.Subscribe(s.Ctx, channel)
}
