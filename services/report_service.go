package services

import (
	"errors"
	"strings"
	"time"

	"cybercrime-report-service/config"
	"cybercrime-report-service/models"

	"gorm.io/gorm"
)

// 举报相关的业务错误
var (
	ErrReportMissingFields = errors.New("crime type, description, date occurred and location are required")
	ErrInvalidDateOccurred = errors.New("invalid date occurred")
	ErrReportNotFound      = errors.New("report not found")
	ErrOfficerNotFound     = errors.New("officer not found")
)

// ReportInput 受害人提交举报的输入
type ReportInput struct {
	CrimeType    string `json:"crime_type"`
	Description  string `json:"description"`
	DateOccurred string `json:"date_occurred"`
	Location     string `json:"location"`
}

// ReportSummary 受害人视角的举报摘要
type ReportSummary struct {
	ID                  uint            `json:"id"`
	CrimeType           string          `json:"crime_type"`
	Description         string          `json:"description"`
	DateOccurred        models.JSONDate `json:"date_occurred"`
	DateSubmitted       models.JSONTime `json:"date_submitted"`
	Location            string          `json:"location"`
	Status              string          `json:"status"`
	Priority            string          `json:"priority"`
	AssignedOfficerName string          `json:"assigned_officer_name"`
	EvidenceCount       int64           `json:"evidence_count"`
}

// ReportDetail 举报详情，含办案警员信息
type ReportDetail struct {
	ReportSummary
	AssignmentDate        models.JSONTime `json:"assignment_date"`
	AssignmentNote        string          `json:"assignment_note"`
	OfficerEmail          string          `json:"officer_email"`
	OfficerBadge          string          `json:"officer_badge"`
	OfficerSpecialization string          `json:"officer_specialization"`
}

// AdminReportRow 管理员视角的举报行，带受害人与警员姓名
type AdminReportRow struct {
	ID                  uint            `json:"id"`
	CrimeType           string          `json:"crime_type"`
	Description         string          `json:"description"`
	DateOccurred        models.JSONDate `json:"date_occurred"`
	DateSubmitted       models.JSONTime `json:"date_submitted"`
	Location            string          `json:"location"`
	Status              string          `json:"status"`
	Priority            string          `json:"priority"`
	VictimName          string          `json:"victim_name"`
	VictimPhone         string          `json:"victim_phone"`
	AssignedOfficerID   *uint           `json:"assigned_officer_id"`
	AssignedOfficerName string          `json:"assigned_officer_name"`
}

// OfficerOption 可指派警员的下拉项
type OfficerOption struct {
	ID             uint   `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	BadgeNumber    string `json:"badge_number"`
	Department     string `json:"department"`
	Specialization string `json:"specialization"`
	RankName       string `json:"rank"`
	ActiveCases    int64  `json:"active_cases"`
}

// InterfaceReportService 定义举报服务接口
type InterfaceReportService interface {
	CreateReport(victimID uint, input ReportInput) (*models.Report, error)
	GetVictimReports(victimID uint) ([]ReportSummary, error)
	GetVictimReportDetail(victimID, reportID uint) (*ReportDetail, error)
	OwnedByVictim(victimID, reportID uint) (bool, error)
	GetAllReports() ([]AdminReportRow, error)
	AssignOfficer(reportID, officerID uint, note string) (*models.Report, error)
	AvailableOfficers() ([]OfficerOption, error)
}

// ReportService 提供举报相关的服务
type ReportService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewReportService 创建一个新的举报服务
func NewReportService(db *gorm.DB, cfg *config.Config) InterfaceReportService {
	return &ReportService{
		DB:     db,
		Config: cfg,
	}
}

// evidenceCountExpr 以子查询统计举报下的证据数量
const evidenceCountExpr = "(SELECT COUNT(*) FROM evidence WHERE evidence.report_id = reports.id) AS evidence_count"

// 1. CreateReport 受害人提交举报，初始状态 Open、优先级 Medium
func (s *ReportService) CreateReport(victimID uint, input ReportInput) (*models.Report, error) {
	crimeType := strings.TrimSpace(input.CrimeType)
	description := strings.TrimSpace(input.Description)
	location := strings.TrimSpace(input.Location)
	if crimeType == "" || description == "" || input.DateOccurred == "" || location == "" {
		return nil, ErrReportMissingFields
	}

	occurred, err := time.Parse(models.DateLayout, input.DateOccurred)
	if err != nil {
		return nil, ErrInvalidDateOccurred
	}

	report := &models.Report{
		VictimID:     victimID,
		CrimeType:    crimeType,
		Description:  description,
		DateOccurred: &occurred,
		Location:     location,
		Status:       models.StatusOpen,
		Priority:     "Medium",
	}
	if err := s.DB.Create(report).Error; err != nil {
		return nil, err
	}
	return report, nil
}

// 2. GetVictimReports 获取受害人的全部举报，按提交时间倒序
func (s *ReportService) GetVictimReports(victimID uint) ([]ReportSummary, error) {
	reports := make([]ReportSummary, 0)
	err := s.DB.Table("reports").
		Select("reports.id, reports.crime_type, reports.description, reports.date_occurred, "+
			"reports.date_submitted, reports.location, reports.status, reports.priority, "+
			"COALESCE(officers.name, '') AS assigned_officer_name, "+evidenceCountExpr).
		Joins("LEFT JOIN users AS officers ON officers.id = reports.assigned_officer_id").
		Where("reports.victim_id = ?", victimID).
		Order("reports.date_submitted DESC").
		Scan(&reports).Error
	if err != nil {
		return nil, err
	}
	return reports, nil
}

// 3. GetVictimReportDetail 获取受害人名下单条举报的详情
func (s *ReportService) GetVictimReportDetail(victimID, reportID uint) (*ReportDetail, error) {
	var detail ReportDetail
	err := s.DB.Table("reports").
		Select("reports.id, reports.crime_type, reports.description, reports.date_occurred, "+
			"reports.date_submitted, reports.location, reports.status, reports.priority, "+
			"reports.assignment_date, reports.assignment_note, "+
			"COALESCE(officers.name, '') AS assigned_officer_name, "+
			"COALESCE(officers.email, '') AS officer_email, "+
			"COALESCE(officer_profiles.badge_number, '') AS officer_badge, "+
			"COALESCE(officer_profiles.specialization, '') AS officer_specialization, "+
			evidenceCountExpr).
		Joins("LEFT JOIN users AS officers ON officers.id = reports.assigned_officer_id").
		Joins("LEFT JOIN officer_profiles ON officer_profiles.user_id = reports.assigned_officer_id").
		Where("reports.id = ? AND reports.victim_id = ?", reportID, victimID).
		Scan(&detail).Error
	if err != nil {
		return nil, err
	}
	if detail.ID == 0 {
		return nil, ErrReportNotFound
	}
	return &detail, nil
}

// 4. OwnedByVictim 判断举报是否属于该受害人
func (s *ReportService) OwnedByVictim(victimID, reportID uint) (bool, error) {
	var count int64
	err := s.DB.Model(&models.Report{}).
		Where("id = ? AND victim_id = ?", reportID, victimID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// 5. GetAllReports 管理员获取全部举报
func (s *ReportService) GetAllReports() ([]AdminReportRow, error) {
	rows := make([]AdminReportRow, 0)
	err := s.DB.Table("reports").
		Select("reports.id, reports.crime_type, reports.description, reports.date_occurred, " +
			"reports.date_submitted, reports.location, reports.status, reports.priority, " +
			"reports.assigned_officer_id, " +
			"victims.name AS victim_name, victims.phone AS victim_phone, " +
			"COALESCE(officers.name, '') AS assigned_officer_name").
		Joins("JOIN users AS victims ON victims.id = reports.victim_id").
		Joins("LEFT JOIN users AS officers ON officers.id = reports.assigned_officer_id").
		Order("reports.date_submitted DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// 6. AssignOfficer 将举报指派给警员。
// 处于 Open 状态的举报在指派后自动转入 Under Investigation。
func (s *ReportService) AssignOfficer(reportID, officerID uint, note string) (*models.Report, error) {
	var report models.Report
	if err := s.DB.First(&report, reportID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReportNotFound
		}
		return nil, err
	}

	var officer models.User
	err := s.DB.Where("id = ? AND role = ? AND is_active = ?", officerID, models.RoleOfficer, true).
		First(&officer).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOfficerNotFound
		}
		return nil, err
	}

	now := time.Now()
	updates := map[string]interface{}{
		"assigned_officer_id": officerID,
		"assignment_date":     now,
		"assignment_note":     note,
	}
	if report.Status == models.StatusOpen {
		updates["status"] = models.StatusUnderInvestigation
	}
	if err := s.DB.Model(&report).Updates(updates).Error; err != nil {
		return nil, err
	}

	report.AssignedOfficerID = &officerID
	report.AssignmentDate = &now
	report.AssignmentNote = note
	if report.Status == models.StatusOpen {
		report.Status = models.StatusUnderInvestigation
	}
	return &report, nil
}

// 7. AvailableOfficers 列出可指派的在职警员，附带当前在办案件数
func (s *ReportService) AvailableOfficers() ([]OfficerOption, error) {
	officers := make([]OfficerOption, 0)
	err := s.DB.Table("users").
		Select("users.id, users.name, users.email, "+
			"COALESCE(officer_profiles.badge_number, '') AS badge_number, "+
			"COALESCE(officer_profiles.department, '') AS department, "+
			"COALESCE(officer_profiles.specialization, '') AS specialization, "+
			"COALESCE(officer_profiles.rank_name, '') AS rank_name, "+
			"(SELECT COUNT(*) FROM reports WHERE reports.assigned_officer_id = users.id "+
			"AND reports.status <> ?) AS active_cases", models.StatusClosed).
		Joins("LEFT JOIN officer_profiles ON officer_profiles.user_id = users.id").
		Where("users.role = ? AND users.is_active = ?", models.RoleOfficer, true).
		Order("users.name").
		Scan(&officers).Error
	if err != nil {
		return nil, err
	}
	for i := range officers {
		if officers[i].Specialization == "" {
			officers[i].Specialization = "General"
		}
		if officers[i].Department == "" {
			officers[i].Department = "Cyber Crime"
		}
		if officers[i].BadgeNumber == "" {
			officers[i].BadgeNumber = "N/A"
		}
		if officers[i].RankName == "" {
			officers[i].RankName = "Officer"
		}
	}
	return officers, nil
}
