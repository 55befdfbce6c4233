package services

import (
	"sort"
	"time"

	"cybercrime-report-service/config"
	"cybercrime-report-service/models"

	"gorm.io/gorm"
)

// ReportStats 案件规模统计
type ReportStats struct {
	Total              int64 `json:"total"`
	Open               int64 `json:"open"`
	UnderInvestigation int64 `json:"under_investigation"`
	Closed             int64 `json:"closed"`
	Rejected           int64 `json:"rejected"`
}

// OfficerPerformanceRow 单个警员的办案绩效。
// 响应时长为从报案提交到指派的平均天数，仅统计已指派的案件。
type OfficerPerformanceRow struct {
	OfficerID       uint    `json:"officer_id"`
	OfficerName     string  `json:"officer_name"`
	TotalCases      int64   `json:"total_cases"`
	ClosedCases     int64   `json:"closed_cases"`
	AvgResponseTime float64 `json:"avg_response_time"`
}

// ActiveCaseRow 进行中案件的列表行
type ActiveCaseRow struct {
	ID            uint            `json:"id"`
	CrimeType     string          `json:"crime_type"`
	Status        string          `json:"status"`
	Priority      string          `json:"priority"`
	Location      string          `json:"location"`
	DateOccurred  models.JSONDate `json:"date_occurred"`
	DateSubmitted models.JSONTime `json:"date_submitted"`
	VictimName    string          `json:"victim_name"`
	OfficerName   string          `json:"assigned_officer_name"`
}

// EvidenceSummaryRow 按案件汇总的证据量
type EvidenceSummaryRow struct {
	ReportID      uint   `json:"report_id"`
	CrimeType     string `json:"crime_type"`
	EvidenceCount int64  `json:"evidence_count"`
	TotalSize     int64  `json:"total_size"`
}

// AnalyticsOverview 管理端总览，一次请求取齐仪表盘所需的全部统计
type AnalyticsOverview struct {
	UserStats         *UserStats              `json:"user_stats"`
	ReportStats       *ReportStats            `json:"report_stats"`
	ReportsPerOfficer []OfficerPerformanceRow `json:"reports_per_officer"`
	ActiveCases       []ActiveCaseRow         `json:"active_cases"`
	EvidenceSummary   []EvidenceSummaryRow    `json:"evidence_summary"`
}

// InterfaceAnalyticsService 定义管理端统计分析服务接口
type InterfaceAnalyticsService interface {
	Overview() (*AnalyticsOverview, error)
	ReportStats() (*ReportStats, error)
	OfficerPerformance() ([]OfficerPerformanceRow, error)
	ActiveCases(limit int) ([]ActiveCaseRow, error)
	EvidenceSummary(limit int) ([]EvidenceSummaryRow, error)
}

// AnalyticsService 统计分析服务
type AnalyticsService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewAnalyticsService 创建一个新的统计分析服务
func NewAnalyticsService(db *gorm.DB, cfg *config.Config) *AnalyticsService {
	return &AnalyticsService{DB: db, Config: cfg}
}

// 总览中列表类统计的默认条数
const overviewRowLimit = 10

// Overview 聚合用户、案件、警员绩效、进行中案件与证据汇总
func (s *AnalyticsService) Overview() (*AnalyticsOverview, error) {
	userStats, err := NewUserService(s.DB, s.Config).GetUserStats()
	if err != nil {
		return nil, err
	}
	reportStats, err := s.ReportStats()
	if err != nil {
		return nil, err
	}
	perOfficer, err := s.OfficerPerformance()
	if err != nil {
		return nil, err
	}
	activeCases, err := s.ActiveCases(overviewRowLimit)
	if err != nil {
		return nil, err
	}
	evidenceSummary, err := s.EvidenceSummary(overviewRowLimit)
	if err != nil {
		return nil, err
	}

	return &AnalyticsOverview{
		UserStats:         userStats,
		ReportStats:       reportStats,
		ReportsPerOfficer: perOfficer,
		ActiveCases:       activeCases,
		EvidenceSummary:   evidenceSummary,
	}, nil
}

// ReportStats 按状态统计案件数量
func (s *AnalyticsService) ReportStats() (*ReportStats, error) {
	stats := &ReportStats{}
	base := s.DB.Model(&models.Report{})

	if err := base.Session(&gorm.Session{}).Count(&stats.Total).Error; err != nil {
		return nil, err
	}
	counts := []struct {
		status string
		dest   *int64
	}{
		{models.StatusOpen, &stats.Open},
		{models.StatusUnderInvestigation, &stats.UnderInvestigation},
		{models.StatusClosed, &stats.Closed},
		{models.StatusRejected, &stats.Rejected},
	}
	for _, c := range counts {
		if err := base.Session(&gorm.Session{}).Where("status = ?", c.status).Count(c.dest).Error; err != nil {
			return nil, err
		}
	}
	return stats, nil
}

// OfficerPerformance 统计每个在册警员的办案量、结案量与平均响应天数，
// 按办案量降序返回，没有案件的警员也出现在结果里
func (s *AnalyticsService) OfficerPerformance() ([]OfficerPerformanceRow, error) {
	var officers []models.User
	err := s.DB.Where("role = ? AND is_active = ?", models.RoleOfficer, true).
		Order("id ASC").Find(&officers).Error
	if err != nil {
		return nil, err
	}

	type assignedCase struct {
		AssignedOfficerID uint
		Status            string
		DateSubmitted     time.Time
		AssignmentDate    *time.Time
	}
	var cases []assignedCase
	err = s.DB.Model(&models.Report{}).
		Select("assigned_officer_id", "status", "date_submitted", "assignment_date").
		Where("assigned_officer_id IS NOT NULL").
		Scan(&cases).Error
	if err != nil {
		return nil, err
	}

	rows := make([]OfficerPerformanceRow, 0, len(officers))
	index := make(map[uint]*OfficerPerformanceRow, len(officers))
	responseDays := make(map[uint][]float64)

	for _, o := range officers {
		rows = append(rows, OfficerPerformanceRow{OfficerID: o.ID, OfficerName: o.Name})
	}
	for i := range rows {
		index[rows[i].OfficerID] = &rows[i]
	}
	for _, c := range cases {
		row, ok := index[c.AssignedOfficerID]
		if !ok {
			continue
		}
		row.TotalCases++
		if c.Status == models.StatusClosed {
			row.ClosedCases++
		}
		if c.AssignmentDate != nil && !c.DateSubmitted.IsZero() {
			days := c.AssignmentDate.Sub(c.DateSubmitted).Hours() / 24
			if days >= 0 {
				responseDays[c.AssignedOfficerID] = append(responseDays[c.AssignedOfficerID], days)
			}
		}
	}
	for id, samples := range responseDays {
		var sum float64
		for _, d := range samples {
			sum += d
		}
		index[id].AvgResponseTime = sum / float64(len(samples))
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].TotalCases > rows[j].TotalCases
	})
	return rows, nil
}

// ActiveCases 列出进行中的案件（Open 与 Under Investigation），按提交时间降序
func (s *AnalyticsService) ActiveCases(limit int) ([]ActiveCaseRow, error) {
	query := s.DB.Table("reports").
		Select("reports.id, reports.crime_type, reports.status, reports.priority, reports.location, "+
			"reports.date_occurred, reports.date_submitted, "+
			"victims.name AS victim_name, COALESCE(officers.name, '') AS officer_name").
		Joins("JOIN users AS victims ON victims.id = reports.victim_id").
		Joins("LEFT JOIN users AS officers ON officers.id = reports.assigned_officer_id").
		Where("reports.status IN ?", []string{models.StatusOpen, models.StatusUnderInvestigation}).
		Order("reports.date_submitted DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var rows []ActiveCaseRow
	if err := query.Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// EvidenceSummary 按案件汇总证据条数与总字节数，证据最多的在前
func (s *AnalyticsService) EvidenceSummary(limit int) ([]EvidenceSummaryRow, error) {
	query := s.DB.Table("evidence").
		Select("evidence.report_id, reports.crime_type, " +
			"COUNT(evidence.id) AS evidence_count, COALESCE(SUM(evidence.file_size), 0) AS total_size").
		Joins("JOIN reports ON reports.id = evidence.report_id").
		Group("evidence.report_id, reports.crime_type").
		Order("evidence_count DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var rows []EvidenceSummaryRow
	if err := query.Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
