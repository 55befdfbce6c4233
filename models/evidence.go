package models

import "time"

// Evidence 案件证据文件，上传后不可修改
type Evidence struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	ReportID     uint      `gorm:"not null;index" json:"report_id"`
	Filename     string    `gorm:"type:varchar(255);not null" json:"filename"`
	OriginalName string    `gorm:"type:varchar(255)" json:"original_name"`
	FilePath     string    `gorm:"type:varchar(500)" json:"-"`
	FileSize     int64     `json:"file_size"`
	ContentType  string    `gorm:"type:varchar(100)" json:"content_type"`
	UploadedBy   uint      `json:"uploaded_by"`
	Description  string    `gorm:"type:varchar(255)" json:"description"`
	UploadDate   time.Time `gorm:"autoCreateTime" json:"upload_date"`
}

// TableName 与既有数据库表名保持一致
func (Evidence) TableName() string {
	return "evidence"
}
