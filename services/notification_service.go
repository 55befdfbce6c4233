package services

import (
	"cybercrime-report-service/config"
	"cybercrime-report-service/models"

	"gorm.io/gorm"
)

// NotificationInfo 通知的展示信息
type NotificationInfo struct {
	ID        uint            `json:"id"`
	Message   string          `json:"message"`
	Read      bool            `json:"read"`
	Timestamp models.JSONTime `json:"timestamp"`
}

// InterfaceNotificationService 定义通知服务接口
type InterfaceNotificationService interface {
	Notify(userID uint, message string)
	ListForUser(userID uint) ([]NotificationInfo, error)
	MarkRead(userID uint, ids []uint) error
}

// NotificationService 提供站内通知相关的服务
type NotificationService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewNotificationService 创建一个新的通知服务
func NewNotificationService(db *gorm.DB, cfg *config.Config) InterfaceNotificationService {
	return &NotificationService{
		DB:     db,
		Config: cfg,
	}
}

// 1. Notify 给用户写入一条通知，失败只记日志
func (s *NotificationService) Notify(userID uint, message string) {
	entry := models.Notification{
		UserID:  userID,
		Message: message,
	}
	if err := s.DB.Create(&entry).Error; err != nil {
		config.Error("写入通知失败: " + err.Error())
	}
}

// 2. ListForUser 获取用户的通知列表，按时间倒序
func (s *NotificationService) ListForUser(userID uint) ([]NotificationInfo, error) {
	items := make([]NotificationInfo, 0)
	err := s.DB.Table("notifications").
		Select("id, message, `read`, timestamp").
		Where("user_id = ?", userID).
		Order("timestamp DESC").
		Scan(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// 3. MarkRead 将指定通知标记为已读，空列表则全部标记
func (s *NotificationService) MarkRead(userID uint, ids []uint) error {
	query := s.DB.Model(&models.Notification{}).Where("user_id = ?", userID)
	if len(ids) > 0 {
		query = query.Where("id IN ?", ids)
	}
	return query.Update("read", true).Error
}
