package services

import (
	"errors"
	"strings"

	"cybercrime-report-service/config"
	"cybercrime-report-service/models"

	"gorm.io/gorm"
)

// 办案日志相关的业务错误
var (
	ErrInvalidLogAction = errors.New("invalid log action")
	ErrEmptyLogNotes    = errors.New("notes are required")
)

// CaseLogInfo 办案日志的展示信息
type CaseLogInfo struct {
	ID           uint            `json:"id"`
	Action       string          `json:"action"`
	Notes        string          `json:"notes"`
	LogDate      models.JSONTime `json:"log_date"`
	Date         string          `json:"date"`
	OfficerName  string          `json:"officer_name"`
	OfficerEmail string          `json:"officer_email"`
}

// InterfaceCaseLogService 定义办案日志服务接口
type InterfaceCaseLogService interface {
	Add(reportID, officerID uint, action, notes string) (*models.CaseLog, error)
	ListByReport(reportID uint) ([]CaseLogInfo, error)
}

// CaseLogService 提供办案日志相关的服务
type CaseLogService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewCaseLogService 创建一个新的办案日志服务
func NewCaseLogService(db *gorm.DB, cfg *config.Config) InterfaceCaseLogService {
	return &CaseLogService{
		DB:     db,
		Config: cfg,
	}
}

// 1. Add 为案件追加一条办案日志，动作必须属于固定集合
func (s *CaseLogService) Add(reportID, officerID uint, action, notes string) (*models.CaseLog, error) {
	if !models.ValidLogAction(action) {
		return nil, ErrInvalidLogAction
	}
	if strings.TrimSpace(notes) == "" {
		return nil, ErrEmptyLogNotes
	}

	entry := &models.CaseLog{
		ReportID:  reportID,
		OfficerID: officerID,
		Action:    action,
		Notes:     notes,
	}
	if err := s.DB.Create(entry).Error; err != nil {
		return nil, err
	}
	return entry, nil
}

// 2. ListByReport 列出案件的办案日志，按时间倒序
func (s *CaseLogService) ListByReport(reportID uint) ([]CaseLogInfo, error) {
	logs := make([]CaseLogInfo, 0)
	err := s.DB.Table("case_logs").
		Select("case_logs.id, case_logs.action, case_logs.notes, case_logs.log_date, "+
			"officers.name AS officer_name, officers.email AS officer_email").
		Joins("JOIN users AS officers ON officers.id = case_logs.officer_id").
		Where("case_logs.report_id = ?", reportID).
		Order("case_logs.log_date DESC").
		Scan(&logs).Error
	if err != nil {
		return nil, err
	}
	for i := range logs {
		logs[i].Date = logs[i].LogDate.Time.Format(models.DateLayout)
	}
	return logs, nil
}
