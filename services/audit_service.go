package services

import (
	"fmt"

	"cybercrime-report-service/config"
	"cybercrime-report-service/models"

	"gorm.io/gorm"
)

// 审计列表单次最多返回的条数
const auditListLimit = 100

// AuditEntry 审计日志的展示信息
type AuditEntry struct {
	ID        uint            `json:"id"`
	Action    string          `json:"action"`
	Details   string          `json:"details"`
	Status    string          `json:"status"`
	IPAddress string          `json:"ip_address"`
	Timestamp models.JSONTime `json:"timestamp"`
	User      string          `json:"user"`
	UserEmail string          `json:"user_email"`
	Role      string          `json:"role"`
}

// InterfaceAuditService 定义审计日志服务接口
type InterfaceAuditService interface {
	Record(userID *uint, action, details, status, ip string)
	List() ([]AuditEntry, error)
	Reset(adminID uint, ip string) error
}

// AuditService 提供审计日志相关的服务
type AuditService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewAuditService 创建一个新的审计服务
func NewAuditService(db *gorm.DB, cfg *config.Config) InterfaceAuditService {
	return &AuditService{
		DB:     db,
		Config: cfg,
	}
}

// 1. Record 写入一条审计记录。
// 审计失败只记日志，不影响主流程。
func (s *AuditService) Record(userID *uint, action, details, status, ip string) {
	entry := models.AuditLog{
		UserID:    userID,
		Action:    action,
		Details:   details,
		Status:    status,
		IPAddress: ip,
	}
	if err := s.DB.Create(&entry).Error; err != nil {
		config.Error(fmt.Sprintf("写入审计日志失败: %v", err))
	}
}

// 2. List 获取最近的审计记录，最多 100 条
func (s *AuditService) List() ([]AuditEntry, error) {
	entries := make([]AuditEntry, 0)
	err := s.DB.Table("audit_logs").
		Select("audit_logs.id, audit_logs.action, audit_logs.details, audit_logs.status, " +
			"audit_logs.ip_address, audit_logs.timestamp, " +
			"COALESCE(users.name, 'Unknown User') AS user, " +
			"COALESCE(users.email, '') AS user_email, " +
			"COALESCE(users.role, 'Unknown Role') AS role").
		Joins("LEFT JOIN users ON users.id = audit_logs.user_id").
		Order("audit_logs.timestamp DESC").
		Limit(auditListLimit).
		Scan(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// 3. Reset 清空全部审计记录，并记录本次清空操作
func (s *AuditService) Reset(adminID uint, ip string) error {
	if err := s.DB.Where("1 = 1").Delete(&models.AuditLog{}).Error; err != nil {
		return err
	}
	s.Record(&adminID, "Audit Logs Reset", "All audit logs cleared by administrator", "Success", ip)
	return nil
}
