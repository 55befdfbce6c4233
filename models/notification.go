package models

import "time"

// Notification 站内通知，由客户端轮询拉取，只有标记已读一种变更
type Notification struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	Message   string    `gorm:"type:varchar(500);not null" json:"message"`
	Read      bool      `gorm:"default:false" json:"read"`
	Timestamp time.Time `gorm:"autoCreateTime" json:"timestamp"`
}
