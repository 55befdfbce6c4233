package services

import (
	"testing"
	"time"

	"cybercrime-report-service/models"
)

// TestBaseScore 验证罪案类型的基础分值
func TestBaseScore(t *testing.T) {
	tests := []struct {
		crimeType string
		want      int
	}{
		{"Ransomware", 100},
		{"Identity Theft", 90},
		{"Credit Card Fraud", 85},
		{"Hacking", 70},
		{"Phishing", 60},
		{"Online Fraud", 55},
		{"Cyberbullying", 40},
		{"Social Media Harassment", 35},
		{"Something Unheard Of", 50},
		{"", 50},
	}
	for _, tt := range tests {
		if got := BaseScore(tt.crimeType); got != tt.want {
			t.Errorf("BaseScore(%q) = %d, want %d", tt.crimeType, got, tt.want)
		}
	}
}

// TestDaysSince 验证积压天数计算，零值时间按0天处理
func TestDaysSince(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		submitted time.Time
		want      int
	}{
		{"零值时间", time.Time{}, 0},
		{"刚提交", now, 0},
		{"两天半", now.Add(-60 * time.Hour), 2},
		{"四天", now.AddDate(0, 0, -4), 4},
		{"未来时间", now.Add(24 * time.Hour), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DaysSince(tt.submitted, now); got != tt.want {
				t.Errorf("DaysSince = %d, want %d", got, tt.want)
			}
		})
	}
}

// TestCalculatePriority 验证优先级总分：基础分 + 积压加分 + 状态加分
func TestCalculatePriority(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		crimeType string
		submitted time.Time
		status    string
		want      int
	}{
		{"新提交的勒索软件", "Ransomware", now, models.StatusOpen, 120},
		{"积压四天的勒索软件", "Ransomware", now.AddDate(0, 0, -4), models.StatusOpen, 170},
		{"积压两天的钓鱼", "Phishing", now.AddDate(0, 0, -2), models.StatusUnderInvestigation, 85},
		{"未知类型新案", "Unknown Type", now, models.StatusUnderInvestigation, 50},
		{"零值提交时间", "Hacking", time.Time{}, models.StatusOpen, 90},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculatePriority(tt.crimeType, tt.submitted, tt.status, now)
			if got != tt.want {
				t.Errorf("CalculatePriority = %d, want %d", got, tt.want)
			}
		})
	}
}

// TestSeverityBand 验证分值到严重度档位的映射边界
func TestSeverityBand(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{121, SeverityHigh},
		{120, SeverityMedium},
		{81, SeverityMedium},
		{80, SeverityLow},
		{0, SeverityLow},
	}
	for _, tt := range tests {
		if got := SeverityBand(tt.score); got != tt.want {
			t.Errorf("SeverityBand(%d) = %s, want %s", tt.score, got, tt.want)
		}
	}
}

// TestBuildPriorityQueue 验证队列排除已结案、按分值降序且同分保持原序
func TestBuildPriorityQueue(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	cases := []CaseSummary{
		{ID: 1, CrimeType: "Phishing", Status: models.StatusOpen, DateSubmitted: models.JSONTime{Time: now}},
		{ID: 2, CrimeType: "Ransomware", Status: models.StatusClosed, DateSubmitted: models.JSONTime{Time: now.AddDate(0, 0, -10)}},
		{ID: 3, CrimeType: "Identity Theft", Status: models.StatusOpen, DateSubmitted: models.JSONTime{Time: now.AddDate(0, 0, -4)}},
		{ID: 4, CrimeType: "Phishing", Status: models.StatusOpen, DateSubmitted: models.JSONTime{Time: now}},
	}

	queue := BuildPriorityQueue(cases, now)

	if len(queue) != 3 {
		t.Fatalf("队列长度 = %d, want 3（已结案应被排除）", len(queue))
	}
	for i := 1; i < len(queue); i++ {
		if queue[i-1].PriorityScore < queue[i].PriorityScore {
			t.Errorf("队列未按分值降序: 位置%d(%d) < 位置%d(%d)",
				i-1, queue[i-1].PriorityScore, i, queue[i].PriorityScore)
		}
	}
	// ID 3: 90+50+20=160 最高
	if queue[0].ID != 3 {
		t.Errorf("队首 = #%d, want #3", queue[0].ID)
	}
	// ID 1 与 ID 4 同分，稳定排序保持原序
	if queue[1].ID != 1 || queue[2].ID != 4 {
		t.Errorf("同分案件未保持原序: got #%d, #%d", queue[1].ID, queue[2].ID)
	}
	if queue[0].Severity != SeverityHigh {
		t.Errorf("队首严重度 = %s, want %s", queue[0].Severity, SeverityHigh)
	}
}
