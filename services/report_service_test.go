package services

import (
	"errors"
	"testing"
	"time"

	"cybercrime-report-service/models"
)

// TestCreateReport 验证举报提交的必填校验与初始状态
func TestCreateReport(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReportService(db, testConfig(t))
	victimID := seedUser(t, db, "Alice Rahman", "alice@example.com", models.RoleVictim)

	input := ReportInput{
		CrimeType:    "Phishing",
		Description:  "Received a fake bank link",
		DateOccurred: "2026-03-01",
		Location:     "Dhaka",
	}
	report, err := svc.CreateReport(victimID, input)
	if err != nil {
		t.Fatalf("CreateReport: %v", err)
	}
	if report.Status != models.StatusOpen {
		t.Errorf("初始状态 = %q, want %q", report.Status, models.StatusOpen)
	}
	if report.Priority != "Medium" {
		t.Errorf("初始优先级 = %q, want Medium", report.Priority)
	}

	// 缺字段
	missing := input
	missing.Location = ""
	if _, err := svc.CreateReport(victimID, missing); !errors.Is(err, ErrReportMissingFields) {
		t.Errorf("缺字段 err = %v, want ErrReportMissingFields", err)
	}

	// 日期格式错误
	badDate := input
	badDate.DateOccurred = "01/03/2026"
	if _, err := svc.CreateReport(victimID, badDate); !errors.Is(err, ErrInvalidDateOccurred) {
		t.Errorf("日期格式 err = %v, want ErrInvalidDateOccurred", err)
	}
}

// TestGetVictimReports 验证受害人只能看到自己的举报
func TestGetVictimReports(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReportService(db, testConfig(t))

	aliceID := seedUser(t, db, "Alice Rahman", "alice@example.com", models.RoleVictim)
	bobID := seedUser(t, db, "Bob Hossain", "bob@example.com", models.RoleVictim)

	now := time.Now()
	seedReport(t, db, aliceID, "Phishing", models.StatusOpen, nil, now)
	seedReport(t, db, aliceID, "Hacking", models.StatusOpen, nil, now)
	seedReport(t, db, bobID, "Ransomware", models.StatusOpen, nil, now)

	reports, err := svc.GetVictimReports(aliceID)
	if err != nil {
		t.Fatalf("GetVictimReports: %v", err)
	}
	if len(reports) != 2 {
		t.Fatalf("返回 %d 条, want 2", len(reports))
	}
}

// TestGetVictimReportDetailOwnership 验证他人举报不可见
func TestGetVictimReportDetailOwnership(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReportService(db, testConfig(t))

	aliceID := seedUser(t, db, "Alice Rahman", "alice@example.com", models.RoleVictim)
	bobID := seedUser(t, db, "Bob Hossain", "bob@example.com", models.RoleVictim)
	reportID := seedReport(t, db, aliceID, "Phishing", models.StatusOpen, nil, time.Now())

	if _, err := svc.GetVictimReportDetail(aliceID, reportID); err != nil {
		t.Errorf("本人读取详情失败: %v", err)
	}
	if _, err := svc.GetVictimReportDetail(bobID, reportID); !errors.Is(err, ErrReportNotFound) {
		t.Errorf("他人读取详情 err = %v, want ErrReportNotFound", err)
	}
}

// TestAssignOfficer 验证指派警员及 Open 状态自动流转
func TestAssignOfficer(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReportService(db, testConfig(t))

	victimID := seedUser(t, db, "Alice Rahman", "alice@example.com", models.RoleVictim)
	officerID := seedUser(t, db, "Officer Khan", "khan@police.gov", models.RoleOfficer)
	reportID := seedReport(t, db, victimID, "Phishing", models.StatusOpen, nil, time.Now())

	report, err := svc.AssignOfficer(reportID, officerID, "urgent")
	if err != nil {
		t.Fatalf("AssignOfficer: %v", err)
	}
	if report.Status != models.StatusUnderInvestigation {
		t.Errorf("指派后状态 = %q, want %q", report.Status, models.StatusUnderInvestigation)
	}
	if report.AssignedOfficerID == nil || *report.AssignedOfficerID != officerID {
		t.Errorf("指派警员 = %v, want %d", report.AssignedOfficerID, officerID)
	}
	if report.AssignmentNote != "urgent" {
		t.Errorf("指派备注 = %q", report.AssignmentNote)
	}

	// 不存在的举报或警员
	if _, err := svc.AssignOfficer(9999, officerID, ""); !errors.Is(err, ErrReportNotFound) {
		t.Errorf("不存在举报 err = %v, want ErrReportNotFound", err)
	}
	if _, err := svc.AssignOfficer(reportID, victimID, ""); !errors.Is(err, ErrOfficerNotFound) {
		t.Errorf("非警员 err = %v, want ErrOfficerNotFound", err)
	}
}

// TestAvailableOfficers 验证警员列表的默认值填充与在办案数
func TestAvailableOfficers(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReportService(db, testConfig(t))

	victimID := seedUser(t, db, "Alice Rahman", "alice@example.com", models.RoleVictim)
	officerID := seedUser(t, db, "Officer Khan", "khan@police.gov", models.RoleOfficer)

	now := time.Now()
	seedReport(t, db, victimID, "Phishing", models.StatusUnderInvestigation, &officerID, now)
	seedReport(t, db, victimID, "Hacking", models.StatusClosed, &officerID, now)

	officers, err := svc.AvailableOfficers()
	if err != nil {
		t.Fatalf("AvailableOfficers: %v", err)
	}
	if len(officers) != 1 {
		t.Fatalf("返回 %d 名警员, want 1", len(officers))
	}
	got := officers[0]
	if got.ActiveCases != 1 {
		t.Errorf("在办案数 = %d, want 1（已结案不计）", got.ActiveCases)
	}
	// 没有警员档案时填充默认值
	if got.Specialization != "General" || got.Department != "Cyber Crime" || got.BadgeNumber != "N/A" {
		t.Errorf("默认值填充 = %+v", got)
	}
}
