package services

import (
	"sort"
	"time"

	"cybercrime-report-service/models"
)

// 按罪案类型的基础优先级分值，未收录的类型按 50 计
var crimeTypeBaseScore = map[string]int{
	"Ransomware":              100,
	"Identity Theft":          90,
	"Credit Card Fraud":       85,
	"Hacking":                 70,
	"Phishing":                60,
	"Online Fraud":            55,
	"Cyberbullying":           40,
	"Social Media Harassment": 35,
}

// 优先级分值的默认值与加分项
const (
	defaultBaseScore    = 50
	ageBonusOverThree   = 50
	ageBonusOverOne     = 25
	openStatusBonus     = 20
	severityHighFloor   = 120
	severityMediumFloor = 80
)

// 严重程度色带，仅用于前端展示
const (
	SeverityHigh   = "high"
	SeverityMedium = "medium"
	SeverityLow    = "low"
)

// PrioritizedCase 在案件摘要上附加计算得到的优先级
type PrioritizedCase struct {
	CaseSummary
	PriorityScore int    `json:"priority_score"`
	Severity      string `json:"severity"`
	DaysSince     int    `json:"days_since_report"`
}

// BaseScore 返回罪案类型的基础分值
func BaseScore(crimeType string) int {
	if score, ok := crimeTypeBaseScore[crimeType]; ok {
		return score
	}
	return defaultBaseScore
}

// DaysSince 计算报案时间到当前时间经过的整天数。
// 报案时间缺失（零值）或晚于当前时间时按 0 天处理，不报错。
func DaysSince(dateSubmitted, now time.Time) int {
	if dateSubmitted.IsZero() {
		return 0
	}
	days := int(now.Sub(dateSubmitted).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}

// CalculatePriority 计算单个案件的优先级分值：
// 罪案类型基础分 + 报案天数加分（>3天 +50，>1天 +25）+ Open 状态加分（+20）
func CalculatePriority(crimeType string, dateSubmitted time.Time, status string, now time.Time) int {
	priority := BaseScore(crimeType)

	days := DaysSince(dateSubmitted, now)
	if days > 3 {
		priority += ageBonusOverThree
	} else if days > 1 {
		priority += ageBonusOverOne
	}

	if status == models.StatusOpen {
		priority += openStatusBonus
	}

	return priority
}

// SeverityBand 按分值划分严重程度色带：>120 高，>80 中，其余低
func SeverityBand(score int) string {
	if score > severityHighFloor {
		return SeverityHigh
	}
	if score > severityMediumFloor {
		return SeverityMedium
	}
	return SeverityLow
}

// BuildPriorityQueue 过滤掉已结案的案件，为其余案件计算优先级，
// 并按分值降序排列。分值相同的案件保持原有相对顺序（稳定排序）。
func BuildPriorityQueue(cases []CaseSummary, now time.Time) []PrioritizedCase {
	queue := make([]PrioritizedCase, 0, len(cases))
	for _, c := range cases {
		if c.Status == models.StatusClosed {
			continue
		}
		score := CalculatePriority(c.CrimeType, c.DateSubmitted.Time, c.Status, now)
		queue = append(queue, PrioritizedCase{
			CaseSummary:   c,
			PriorityScore: score,
			Severity:      SeverityBand(score),
			DaysSince:     DaysSince(c.DateSubmitted.Time, now),
		})
	}

	sort.SliceStable(queue, func(i, j int) bool {
		return queue[i].PriorityScore > queue[j].PriorityScore
	})

	return queue
}
