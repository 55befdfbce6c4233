package services

import (
	"encoding/json"
	"sync"
	"time"

	"cybercrime-report-service/config"

	"github.com/google/uuid"
)

// 会话缓存的Redis键前缀与广播频道
const (
	sessionKeyPrefix    = "session_cache:"
	sessionEventChannel = "session_cache_events"
	sessionTTL          = 24 * time.Hour
)

// SessionEvent 会话缓存变更事件，携带变更的键值
type SessionEvent struct {
	InstanceID string `json:"instance_id"`
	SessionID  string `json:"session_id"`
	Key        string `json:"key"`
	Value      string `json:"value"`
}

// InterfaceSessionService 定义会话缓存服务接口。
// 用于在多次请求之间记住登录身份的展示字段（姓名、邮箱、电话），
// 写入时向本进程订阅者广播，跨实例通过Redis发布订阅同步。
type InterfaceSessionService interface {
	Read(sessionID, key, defaultValue string) string
	Write(sessionID, key, value string) error
	Subscribe() (<-chan SessionEvent, func())
	Clear(sessionID string) error
}

// SessionService 会话缓存的具体实现。
// Redis不可用时退化为纯内存模式，单实例行为不变。
type SessionService struct {
	redis      *RedisService
	useRedis   bool
	instanceID string

	mu      sync.RWMutex
	values  map[string]map[string]string
	subs    map[int]chan SessionEvent
	nextSub int
}

// NewSessionService 创建一个新的会话缓存服务
func NewSessionService(redisService *RedisService) *SessionService {
	s := &SessionService{
		redis:      redisService,
		instanceID: uuid.New().String(),
		values:     make(map[string]map[string]string),
		subs:       make(map[int]chan SessionEvent),
	}

	if redisService != nil && redisService.Available() {
		s.useRedis = true
		go s.consumeRemoteEvents()
	} else {
		config.Warning("Redis不可用，会话缓存运行在内存模式")
	}

	return s
}

// Read 读取会话缓存的值，不存在时返回默认值
func (s *SessionService) Read(sessionID, key, defaultValue string) string {
	if s.useRedis {
		if val, err := s.redis.HGet(sessionKeyPrefix+sessionID, key); err == nil {
			return val
		}
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	if kv, ok := s.values[sessionID]; ok {
		if val, ok := kv[key]; ok {
			return val
		}
	}
	return defaultValue
}

// Write 写入会话缓存并广播变更。
// 本进程订阅者立即收到事件；其他实例通过Redis频道收到同一事件。
func (s *SessionService) Write(sessionID, key, value string) error {
	s.mu.Lock()
	if _, ok := s.values[sessionID]; !ok {
		s.values[sessionID] = make(map[string]string)
	}
	s.values[sessionID][key] = value
	s.mu.Unlock()

	event := SessionEvent{
		InstanceID: s.instanceID,
		SessionID:  sessionID,
		Key:        key,
		Value:      value,
	}
	s.broadcast(event)

	if s.useRedis {
		redisKey := sessionKeyPrefix + sessionID
		if err := s.redis.HSet(redisKey, key, value); err != nil {
			return err
		}
		s.redis.Client.Expire(s.redis.Ctx, redisKey, sessionTTL)
		return s.redis.Publish(sessionEventChannel, event)
	}
	return nil
}

// Subscribe 订阅会话缓存变更，返回事件通道与取消函数
func (s *SessionService) Subscribe() (<-chan SessionEvent, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSub
	s.nextSub++
	ch := make(chan SessionEvent, 16)
	s.subs[id] = ch

	cancel := func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if sub, ok := s.subs[id]; ok {
			delete(s.subs, id)
			close(sub)
		}
	}
	return ch, cancel
}

// Clear 清除整个会话的缓存（登出时调用）
func (s *SessionService) Clear(sessionID string) error {
	s.mu.Lock()
	delete(s.values, sessionID)
	s.mu.Unlock()

	if s.useRedis {
		return s.redis.Delete(sessionKeyPrefix + sessionID)
	}
	return nil
}

// broadcast 向本进程订阅者分发事件，订阅者阻塞时丢弃而不是卡住写入方
func (s *SessionService) broadcast(event SessionEvent) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, ch := range s.subs {
		select {
		case ch <- event:
		default:
		}
	}
}

// consumeRemoteEvents 消费其他实例发布的变更事件并同步到本地
func (s *SessionService) consumeRemoteEvents() {
	pubsub := s.redis.Subscribe(sessionEventChannel)
	defer pubsub.Close()

	for msg := range pubsub.Channel() {
		var event SessionEvent
		if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
			continue
		}
		// 自己发布的事件已经在Write时广播过
		if event.InstanceID == s.instanceID {
			continue
		}

		s.mu.Lock()
		if _, ok := s.values[event.SessionID]; !ok {
			s.values[event.SessionID] = make(map[string]string)
		}
		s.values[event.SessionID][event.Key] = event.Value
		s.mu.Unlock()

		s.broadcast(event)
	}
}
