package services

import (
	"testing"
	"time"

	"cybercrime-report-service/models"
)

// TestReportStats 按状态统计案件数量
func TestReportStats(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAnalyticsService(db, testConfig(t))

	victimID := seedUser(t, db, "karim", "karim@mail.com", models.RoleVictim)
	now := time.Now()
	seedReport(t, db, victimID, "Phishing", models.StatusOpen, nil, now)
	seedReport(t, db, victimID, "Hacking", models.StatusOpen, nil, now)
	seedReport(t, db, victimID, "Ransomware", models.StatusUnderInvestigation, nil, now)
	seedReport(t, db, victimID, "Online Fraud", models.StatusClosed, nil, now)
	seedReport(t, db, victimID, "Cyberbullying", models.StatusRejected, nil, now)

	stats, err := svc.ReportStats()
	if err != nil {
		t.Fatalf("统计案件失败: %v", err)
	}
	if stats.Total != 5 || stats.Open != 2 || stats.UnderInvestigation != 1 || stats.Closed != 1 || stats.Rejected != 1 {
		t.Errorf("统计结果不符: %+v", stats)
	}
}

// TestOfficerPerformance 绩效按办案量降序，响应时长为提交到指派的平均天数
func TestOfficerPerformance(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAnalyticsService(db, testConfig(t))

	victimID := seedUser(t, db, "karim", "karim@mail.com", models.RoleVictim)
	busyID := seedUser(t, db, "rahim", "rahim@police.gov", models.RoleOfficer)
	idleID := seedUser(t, db, "salma", "salma@police.gov", models.RoleOfficer)

	submitted := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	first := seedReport(t, db, victimID, "Phishing", models.StatusClosed, &busyID, submitted)
	second := seedReport(t, db, victimID, "Hacking", models.StatusOpen, &busyID, submitted)

	// 第一起2天后指派，第二起4天后指派，平均响应3天
	assignFirst := submitted.Add(48 * time.Hour)
	assignSecond := submitted.Add(96 * time.Hour)
	if err := db.Model(&models.Report{}).Where("id = ?", first).Update("assignment_date", assignFirst).Error; err != nil {
		t.Fatalf("回写指派时间失败: %v", err)
	}
	if err := db.Model(&models.Report{}).Where("id = ?", second).Update("assignment_date", assignSecond).Error; err != nil {
		t.Fatalf("回写指派时间失败: %v", err)
	}

	rows, err := svc.OfficerPerformance()
	if err != nil {
		t.Fatalf("统计绩效失败: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("期望2名警员, 得到 %d", len(rows))
	}

	busy := rows[0]
	if busy.OfficerID != busyID {
		t.Fatalf("办案量大的警员应排在前面: %+v", rows)
	}
	if busy.TotalCases != 2 || busy.ClosedCases != 1 {
		t.Errorf("办案量统计不符: %+v", busy)
	}
	if busy.AvgResponseTime < 2.9 || busy.AvgResponseTime > 3.1 {
		t.Errorf("平均响应天数应约为3, 得到 %v", busy.AvgResponseTime)
	}

	idle := rows[1]
	if idle.OfficerID != idleID || idle.TotalCases != 0 || idle.AvgResponseTime != 0 {
		t.Errorf("没有案件的警员也应出现且计数为零: %+v", idle)
	}
}

// TestActiveCases 只返回进行中的案件，按提交时间降序并支持条数上限
func TestActiveCases(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAnalyticsService(db, testConfig(t))

	victimID := seedUser(t, db, "karim", "karim@mail.com", models.RoleVictim)
	officerID := seedUser(t, db, "rahim", "rahim@police.gov", models.RoleOfficer)

	base := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	seedReport(t, db, victimID, "Phishing", models.StatusOpen, nil, base)
	newest := seedReport(t, db, victimID, "Hacking", models.StatusUnderInvestigation, &officerID, base.Add(48*time.Hour))
	seedReport(t, db, victimID, "Online Fraud", models.StatusClosed, nil, base.Add(72*time.Hour))
	seedReport(t, db, victimID, "Cyberbullying", models.StatusRejected, nil, base.Add(96*time.Hour))

	cases, err := svc.ActiveCases(0)
	if err != nil {
		t.Fatalf("查询进行中案件失败: %v", err)
	}
	if len(cases) != 2 {
		t.Fatalf("只应返回进行中的案件, 得到 %d 条", len(cases))
	}
	if cases[0].ID != newest {
		t.Errorf("应按提交时间降序, 第一条是 #%d", cases[0].ID)
	}
	if cases[0].VictimName != "karim" || cases[0].OfficerName != "rahim" {
		t.Errorf("应带出受害人与警员姓名: %+v", cases[0])
	}
	if cases[1].OfficerName != "" {
		t.Errorf("未指派案件的警员名应为空: %+v", cases[1])
	}

	limited, err := svc.ActiveCases(1)
	if err != nil {
		t.Fatalf("查询进行中案件失败: %v", err)
	}
	if len(limited) != 1 {
		t.Errorf("限制1条时应只返回1条, 得到 %d", len(limited))
	}
}

// TestEvidenceSummary 按证据条数降序汇总每起案件的证据量
func TestEvidenceSummary(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAnalyticsService(db, testConfig(t))

	victimID := seedUser(t, db, "karim", "karim@mail.com", models.RoleVictim)
	now := time.Now()
	heavy := seedReport(t, db, victimID, "Ransomware", models.StatusOpen, nil, now)
	light := seedReport(t, db, victimID, "Phishing", models.StatusOpen, nil, now)
	seedReport(t, db, victimID, "Hacking", models.StatusOpen, nil, now)

	files := []models.Evidence{
		{ReportID: heavy, Filename: "1_dump.bin", FileSize: 1000, UploadedBy: victimID},
		{ReportID: heavy, Filename: "1_log.txt", FileSize: 500, UploadedBy: victimID},
		{ReportID: light, Filename: "2_mail.eml", FileSize: 300, UploadedBy: victimID},
	}
	for i := range files {
		if err := db.Create(&files[i]).Error; err != nil {
			t.Fatalf("插入证据失败: %v", err)
		}
	}

	rows, err := svc.EvidenceSummary(10)
	if err != nil {
		t.Fatalf("汇总证据失败: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("没有证据的案件不应出现, 得到 %d 行", len(rows))
	}
	if rows[0].ReportID != heavy || rows[0].EvidenceCount != 2 || rows[0].TotalSize != 1500 {
		t.Errorf("证据最多的案件应在前且汇总正确: %+v", rows[0])
	}
	if rows[1].ReportID != light || rows[1].TotalSize != 300 {
		t.Errorf("汇总结果不符: %+v", rows[1])
	}
}

// TestAnalyticsOverview 总览一次取齐全部统计
func TestAnalyticsOverview(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAnalyticsService(db, testConfig(t))

	victimID := seedUser(t, db, "karim", "karim@mail.com", models.RoleVictim)
	seedUser(t, db, "rahim", "rahim@police.gov", models.RoleOfficer)
	seedReport(t, db, victimID, "Phishing", models.StatusOpen, nil, time.Now())

	overview, err := svc.Overview()
	if err != nil {
		t.Fatalf("获取总览失败: %v", err)
	}
	if overview.UserStats == nil || overview.UserStats.TotalUsers != 2 {
		t.Errorf("用户统计不符: %+v", overview.UserStats)
	}
	if overview.ReportStats == nil || overview.ReportStats.Open != 1 {
		t.Errorf("案件统计不符: %+v", overview.ReportStats)
	}
	if len(overview.ReportsPerOfficer) != 1 {
		t.Errorf("应包含1名警员的绩效: %+v", overview.ReportsPerOfficer)
	}
	if len(overview.ActiveCases) != 1 {
		t.Errorf("应包含1起进行中案件: %+v", overview.ActiveCases)
	}
}
