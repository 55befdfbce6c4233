package models

import "time"

// 调查日志动作的固定集合
const (
	LogActionInterview = "Interview Conducted"
	LogActionEvidence  = "Evidence Collected"
	LogActionAnalysis  = "Analysis Performed"
	LogActionExternal  = "External Agency Coordinated"
	LogActionOther     = "Other"
)

// ValidLogAction 判断调查动作是否在固定集合内
func ValidLogAction(action string) bool {
	switch action {
	case LogActionInterview, LogActionEvidence, LogActionAnalysis, LogActionExternal, LogActionOther:
		return true
	}
	return false
}

// CaseLog 警员针对案件追加的调查日志，只增不改
type CaseLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ReportID  uint      `gorm:"not null;index" json:"report_id"`
	OfficerID uint      `gorm:"not null" json:"officer_id"`
	Action    string    `gorm:"type:varchar(100);not null" json:"action"`
	Notes     string    `gorm:"type:text" json:"notes"`
	LogDate   time.Time `gorm:"autoCreateTime" json:"log_date"`

	// Relations
	Officer *User `gorm:"foreignKey:OfficerID" json:"officer,omitempty"`
}
