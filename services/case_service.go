package services

import (
	"errors"
	"strings"

	"cybercrime-report-service/config"
	"cybercrime-report-service/models"

	"gorm.io/gorm"
)

// 案件相关的业务错误
var (
	ErrCaseNotFound       = errors.New("case not found or not assigned")
	ErrInvalidStatusValue = errors.New("invalid status value")
)

// 筛选参数中的"全部"哨兵值，命中时跳过对应条件
const (
	FilterAllStatus = "All Status"
	FilterAllTypes  = "All Types"
)

// CaseFilter 警员案件列表的筛选与排序参数
type CaseFilter struct {
	Search    string
	Status    string
	CrimeType string
	SortBy    string
}

// CaseSummary 警员视角的案件摘要
type CaseSummary struct {
	ID            uint            `json:"id"`
	CrimeType     string          `json:"crime_type"`
	Description   string          `json:"description"`
	DateOccurred  models.JSONDate `json:"date_occurred"`
	DateSubmitted models.JSONTime `json:"date_submitted"`
	Location      string          `json:"location"`
	Status        string          `json:"status"`
	Priority      string          `json:"priority"`
	VictimName    string          `json:"victim_name"`
	VictimPhone   string          `json:"victim_phone"`
}

// CaseWorkload 警员当前的办案负荷统计
type CaseWorkload struct {
	TotalCases         int64 `json:"total_cases"`
	OpenCases          int64 `json:"open_cases"`
	UnderInvestigation int64 `json:"under_investigation"`
	ClosedCases        int64 `json:"closed_cases"`
}

// InterfaceCaseService 定义警员案件服务接口
type InterfaceCaseService interface {
	GetAssignedCases(officerID uint, filter CaseFilter) ([]CaseSummary, error)
	GetCaseDetail(officerID, caseID uint) (*CaseSummary, error)
	UpdateStatus(officerID, caseID uint, status string) (*models.Report, error)
	IsAssigned(officerID, caseID uint) (bool, error)
	Workload(officerID uint) (*CaseWorkload, error)
}

// CaseService 提供警员案件相关的服务
type CaseService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewCaseService 创建一个新的案件服务
func NewCaseService(db *gorm.DB, cfg *config.Config) InterfaceCaseService {
	return &CaseService{
		DB:     db,
		Config: cfg,
	}
}

// assignedCaseQuery 组装警员案件的基础查询（reports 联 users 取受害人信息）
func (s *CaseService) assignedCaseQuery(officerID uint) *gorm.DB {
	return s.DB.Table("reports").
		Select("reports.id, reports.crime_type, reports.description, reports.date_occurred, "+
			"reports.date_submitted, reports.location, reports.status, reports.priority, "+
			"users.name AS victim_name, users.phone AS victim_phone").
		Joins("JOIN users ON users.id = reports.victim_id").
		Where("reports.assigned_officer_id = ?", officerID)
}

// 1. GetAssignedCases 获取分配给警员的案件列表，支持筛选、搜索与排序。
// 搜索对受害人姓名与罪案类型做大小写不敏感的子串匹配；
// "All Status"/"All Types" 哨兵值会跳过对应筛选条件。
func (s *CaseService) GetAssignedCases(officerID uint, filter CaseFilter) ([]CaseSummary, error) {
	query := s.assignedCaseQuery(officerID)

	if filter.Status != "" && filter.Status != FilterAllStatus {
		query = query.Where("reports.status = ?", filter.Status)
	}
	if filter.CrimeType != "" && filter.CrimeType != FilterAllTypes {
		query = query.Where("reports.crime_type = ?", filter.CrimeType)
	}
	if filter.Search != "" {
		term := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(users.name) LIKE ? OR LOWER(reports.crime_type) LIKE ?", term, term)
	}

	switch filter.SortBy {
	case "Victim Name":
		query = query.Order("users.name")
	case "Case ID":
		query = query.Order("reports.id")
	case "Crime Type":
		query = query.Order("reports.crime_type")
	case "Status":
		query = query.Order("reports.status")
	default: // "Date Reported"
		query = query.Order("reports.date_submitted DESC")
	}

	cases := make([]CaseSummary, 0)
	if err := query.Scan(&cases).Error; err != nil {
		return nil, err
	}
	return cases, nil
}

// 2. GetCaseDetail 获取案件详情，仅限被分配的警员访问
func (s *CaseService) GetCaseDetail(officerID, caseID uint) (*CaseSummary, error) {
	var detail CaseSummary
	err := s.assignedCaseQuery(officerID).
		Where("reports.id = ?", caseID).
		Scan(&detail).Error
	if err != nil {
		return nil, err
	}
	if detail.ID == 0 {
		return nil, ErrCaseNotFound
	}
	return &detail, nil
}

// 3. UpdateStatus 更新案件状态。
// 不做状态机校验：四种合法状态之间允许任意切换。
func (s *CaseService) UpdateStatus(officerID, caseID uint, status string) (*models.Report, error) {
	if !models.ValidStatus(status) {
		return nil, ErrInvalidStatusValue
	}

	var report models.Report
	err := s.DB.Where("id = ? AND assigned_officer_id = ?", caseID, officerID).First(&report).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCaseNotFound
		}
		return nil, err
	}

	if err := s.DB.Model(&report).Update("status", status).Error; err != nil {
		return nil, err
	}
	report.Status = status
	return &report, nil
}

// 4. IsAssigned 判断案件是否分配给该警员
func (s *CaseService) IsAssigned(officerID, caseID uint) (bool, error) {
	var count int64
	err := s.DB.Model(&models.Report{}).
		Where("id = ? AND assigned_officer_id = ?", caseID, officerID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// 5. Workload 统计警员名下案件的数量分布
func (s *CaseService) Workload(officerID uint) (*CaseWorkload, error) {
	workload := &CaseWorkload{}
	base := s.DB.Model(&models.Report{}).Where("assigned_officer_id = ?", officerID)

	if err := base.Session(&gorm.Session{}).Count(&workload.TotalCases).Error; err != nil {
		return nil, err
	}
	if err := base.Session(&gorm.Session{}).Where("status = ?", models.StatusOpen).Count(&workload.OpenCases).Error; err != nil {
		return nil, err
	}
	if err := base.Session(&gorm.Session{}).Where("status = ?", models.StatusUnderInvestigation).Count(&workload.UnderInvestigation).Error; err != nil {
		return nil, err
	}
	if err := base.Session(&gorm.Session{}).Where("status = ?", models.StatusClosed).Count(&workload.ClosedCases).Error; err != nil {
		return nil, err
	}
	return workload, nil
}
