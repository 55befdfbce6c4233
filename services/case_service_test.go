package services

import (
	"errors"
	"testing"
	"time"

	"cybercrime-report-service/models"
)

// TestGetAssignedCasesSearch 验证按受害人姓名的大小写不敏感搜索
func TestGetAssignedCasesSearch(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCaseService(db, testConfig(t))

	officerID := seedUser(t, db, "Officer Khan", "khan@police.gov", models.RoleOfficer)
	bobID := seedUser(t, db, "bob hossain", "bob@example.com", models.RoleVictim)
	aliceID := seedUser(t, db, "Alice Rahman", "alice@example.com", models.RoleVictim)

	now := time.Now()
	seedReport(t, db, bobID, "Phishing", models.StatusOpen, &officerID, now)
	seedReport(t, db, aliceID, "Hacking", models.StatusOpen, &officerID, now)

	cases, err := svc.GetAssignedCases(officerID, CaseFilter{Search: "B"})
	if err != nil {
		t.Fatalf("GetAssignedCases: %v", err)
	}
	if len(cases) != 1 {
		t.Fatalf("搜索 %q 命中 %d 条, want 1", "B", len(cases))
	}
	if cases[0].VictimName != "bob hossain" {
		t.Errorf("命中受害人 = %q, want %q", cases[0].VictimName, "bob hossain")
	}
}

// TestGetAssignedCasesFilters 验证状态与类型筛选及"全部"哨兵值
func TestGetAssignedCasesFilters(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCaseService(db, testConfig(t))

	officerID := seedUser(t, db, "Officer Khan", "khan@police.gov", models.RoleOfficer)
	victimID := seedUser(t, db, "Alice Rahman", "alice@example.com", models.RoleVictim)

	now := time.Now()
	seedReport(t, db, victimID, "Phishing", models.StatusOpen, &officerID, now)
	seedReport(t, db, victimID, "Hacking", models.StatusUnderInvestigation, &officerID, now)
	seedReport(t, db, victimID, "Phishing", models.StatusClosed, &officerID, now)

	tests := []struct {
		name   string
		filter CaseFilter
		want   int
	}{
		{"不筛选", CaseFilter{}, 3},
		{"全部哨兵值", CaseFilter{Status: FilterAllStatus, CrimeType: FilterAllTypes}, 3},
		{"按状态", CaseFilter{Status: models.StatusOpen}, 1},
		{"按类型", CaseFilter{CrimeType: "Phishing"}, 2},
		{"状态加类型", CaseFilter{Status: models.StatusClosed, CrimeType: "Phishing"}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cases, err := svc.GetAssignedCases(officerID, tt.filter)
			if err != nil {
				t.Fatalf("GetAssignedCases: %v", err)
			}
			if len(cases) != tt.want {
				t.Errorf("命中 %d 条, want %d", len(cases), tt.want)
			}
		})
	}
}

// TestGetAssignedCasesSort 验证排序选项
func TestGetAssignedCasesSort(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCaseService(db, testConfig(t))

	officerID := seedUser(t, db, "Officer Khan", "khan@police.gov", models.RoleOfficer)
	victimID := seedUser(t, db, "Alice Rahman", "alice@example.com", models.RoleVictim)

	now := time.Now()
	first := seedReport(t, db, victimID, "Phishing", models.StatusOpen, &officerID, now.AddDate(0, 0, -2))
	second := seedReport(t, db, victimID, "Hacking", models.StatusOpen, &officerID, now)

	// 默认按提交时间倒序，新案在前
	cases, err := svc.GetAssignedCases(officerID, CaseFilter{})
	if err != nil {
		t.Fatalf("GetAssignedCases: %v", err)
	}
	if cases[0].ID != second {
		t.Errorf("默认排序队首 = #%d, want #%d", cases[0].ID, second)
	}

	// 按案件ID升序
	cases, err = svc.GetAssignedCases(officerID, CaseFilter{SortBy: "Case ID"})
	if err != nil {
		t.Fatalf("GetAssignedCases: %v", err)
	}
	if cases[0].ID != first {
		t.Errorf("按ID排序队首 = #%d, want #%d", cases[0].ID, first)
	}
}

// TestGetCaseDetailOwnership 验证案件详情仅对被分配警员可见
func TestGetCaseDetailOwnership(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCaseService(db, testConfig(t))

	officerID := seedUser(t, db, "Officer Khan", "khan@police.gov", models.RoleOfficer)
	otherID := seedUser(t, db, "Officer Das", "das@police.gov", models.RoleOfficer)
	victimID := seedUser(t, db, "Alice Rahman", "alice@example.com", models.RoleVictim)
	caseID := seedReport(t, db, victimID, "Phishing", models.StatusOpen, &officerID, time.Now())

	if _, err := svc.GetCaseDetail(officerID, caseID); err != nil {
		t.Errorf("被分配警员读取详情失败: %v", err)
	}
	if _, err := svc.GetCaseDetail(otherID, caseID); !errors.Is(err, ErrCaseNotFound) {
		t.Errorf("其他警员读取详情 err = %v, want ErrCaseNotFound", err)
	}
}

// TestUpdateStatus 验证状态更新的取值校验与归属校验
func TestUpdateStatus(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCaseService(db, testConfig(t))

	officerID := seedUser(t, db, "Officer Khan", "khan@police.gov", models.RoleOfficer)
	otherID := seedUser(t, db, "Officer Das", "das@police.gov", models.RoleOfficer)
	victimID := seedUser(t, db, "Alice Rahman", "alice@example.com", models.RoleVictim)
	caseID := seedReport(t, db, victimID, "Phishing", models.StatusOpen, &officerID, time.Now())

	if _, err := svc.UpdateStatus(officerID, caseID, "Solved"); !errors.Is(err, ErrInvalidStatusValue) {
		t.Errorf("非法状态 err = %v, want ErrInvalidStatusValue", err)
	}
	if _, err := svc.UpdateStatus(otherID, caseID, models.StatusClosed); !errors.Is(err, ErrCaseNotFound) {
		t.Errorf("他人案件 err = %v, want ErrCaseNotFound", err)
	}

	report, err := svc.UpdateStatus(officerID, caseID, models.StatusClosed)
	if err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if report.Status != models.StatusClosed {
		t.Errorf("更新后状态 = %q, want %q", report.Status, models.StatusClosed)
	}

	var stored models.Report
	if err := db.First(&stored, caseID).Error; err != nil {
		t.Fatalf("读取案件失败: %v", err)
	}
	if stored.Status != models.StatusClosed {
		t.Errorf("落库状态 = %q, want %q", stored.Status, models.StatusClosed)
	}
}

// TestWorkload 验证办案负荷统计
func TestWorkload(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCaseService(db, testConfig(t))

	officerID := seedUser(t, db, "Officer Khan", "khan@police.gov", models.RoleOfficer)
	victimID := seedUser(t, db, "Alice Rahman", "alice@example.com", models.RoleVictim)

	now := time.Now()
	seedReport(t, db, victimID, "Phishing", models.StatusOpen, &officerID, now)
	seedReport(t, db, victimID, "Hacking", models.StatusUnderInvestigation, &officerID, now)
	seedReport(t, db, victimID, "Ransomware", models.StatusClosed, &officerID, now)

	workload, err := svc.Workload(officerID)
	if err != nil {
		t.Fatalf("Workload: %v", err)
	}
	if workload.TotalCases != 3 || workload.OpenCases != 1 ||
		workload.UnderInvestigation != 1 || workload.ClosedCases != 1 {
		t.Errorf("负荷统计 = %+v", workload)
	}
}
