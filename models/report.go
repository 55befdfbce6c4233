package models

import "time"

// 案件状态。后端不强制状态机，四个取值之间可以任意切换。
const (
	StatusOpen               = "Open"
	StatusUnderInvestigation = "Under Investigation"
	StatusClosed             = "Closed"
	StatusRejected           = "Rejected"
)

// ValidStatus 判断状态取值是否合法
func ValidStatus(status string) bool {
	switch status {
	case StatusOpen, StatusUnderInvestigation, StatusClosed, StatusRejected:
		return true
	}
	return false
}

// Report represents a victim-submitted cybercrime report (the officer's "case")
type Report struct {
	ID                uint       `gorm:"primaryKey" json:"id"`
	VictimID          uint       `gorm:"not null;index" json:"victim_id"`
	CrimeType         string     `gorm:"type:varchar(100);not null" json:"crime_type"`
	Description       string     `gorm:"type:text" json:"description"`
	DateOccurred      *time.Time `gorm:"type:date" json:"date_occurred"`
	DateSubmitted     time.Time  `gorm:"autoCreateTime" json:"date_submitted"`
	Location          string     `gorm:"type:varchar(255)" json:"location"`
	Status            string     `gorm:"type:varchar(50);default:'Open';index" json:"status"`
	Priority          string     `gorm:"type:varchar(20);default:'Medium'" json:"priority"`
	AssignedOfficerID *uint      `gorm:"index" json:"assigned_officer_id"`
	AssignmentDate    *time.Time `json:"assignment_date"`
	AssignmentNote    string     `gorm:"type:varchar(255)" json:"assignment_note"`

	// Relations
	Victim          *User      `gorm:"foreignKey:VictimID" json:"victim,omitempty"`
	AssignedOfficer *User      `gorm:"foreignKey:AssignedOfficerID" json:"assigned_officer,omitempty"`
	Evidence        []Evidence `gorm:"foreignKey:ReportID" json:"evidence,omitempty"`
}
