package models

import "time"

// AuditLog 系统审计日志，仅追加；reset 操作清空后写入一条重置记录
type AuditLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    *uint     `gorm:"index" json:"user_id"`
	Action    string    `gorm:"type:varchar(100);not null" json:"action"`
	Details   string    `gorm:"type:varchar(500)" json:"details"`
	IPAddress string    `gorm:"type:varchar(45)" json:"ip_address"`
	Status    string    `gorm:"type:varchar(20);default:'Success'" json:"status"`
	Timestamp time.Time `gorm:"autoCreateTime;index" json:"timestamp"`

	// Relations
	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
