package insight

import (
	"math"
	"strconv"
	"time"

	"github.com/fadilmartias/careervision/internal/model"
)

const (
	chartYears      = 5
	topSkillsInPie  = 8
	monthsPerYear   = 12
	skillLevelStep  = 5
	maxChartPercent = 100
)

type YearActivity struct {
	Year         string `json:"year"`
	ActiveMonths int    `json:"activeMonths"`
}

type SkillCount struct {
	Skill string `json:"skill"`
	Count int    `json:"count"`
}

type GrowthPoint struct {
	Year            string `json:"year"`
	SkillLevel      int    `json:"skillLevel"`
	ExperienceLevel int    `json:"experienceLevel"`
}

type ComparisonMetric struct {
	Metric   string `json:"metric"`
	User     int    `json:"user"`
	Industry int    `json:"industry"`
}

// Analytics is the data behind the dashboard charts.
type Analytics struct {
	CareerGaps         []YearActivity     `json:"careerGaps"`
	SkillsDistribution []SkillCount       `json:"skillsDistribution"`
	CareerGrowthTrend  []GrowthPoint      `json:"careerGrowthTrend"`
	IndustryComparison []ComparisonMetric `json:"industryComparison"`
}

func BuildAnalytics(milestones []model.Milestone, resumeCount int64, now time.Time) Analytics {
	return Analytics{
		CareerGaps:         CareerGapsByYear(milestones, now),
		SkillsDistribution: SkillsDistribution(milestones),
		CareerGrowthTrend:  GrowthTrend(milestones, now),
		IndustryComparison: IndustryComparison(milestones, resumeCount, now),
	}
}

// chartYearRange lists the last five calendar years, oldest first.
func chartYearRange(now time.Time) []int {
	years := make([]int, 0, chartYears)
	for i := chartYears - 1; i >= 0; i-- {
		years = append(years, now.Year()-i)
	}
	return years
}

// CareerGapsByYear counts the months covered by jobs in each of the last five
// years. A job contributes ceil(overlap/30 days) months, at most twelve, and
// each year is capped at twelve.
func CareerGapsByYear(milestones []model.Milestone, now time.Time) []YearActivity {
	jobs := jobsByStart(milestones)
	out := make([]YearActivity, 0, chartYears)
	for _, year := range chartYearRange(now) {
		yearStart := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
		yearEnd := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)

		active := 0
		for _, j := range jobs {
			start, end := j.StartDate, j.EndOr(now)
			if yearStart.After(start) {
				start = yearStart
			}
			if yearEnd.Before(end) {
				end = yearEnd
			}
			if start.After(end) {
				continue
			}
			months := int(math.Ceil(float64(end.Sub(start)) / float64(month)))
			active += min(months, monthsPerYear)
		}
		out = append(out, YearActivity{Year: strconv.Itoa(year), ActiveMonths: min(active, monthsPerYear)})
	}
	return out
}

// SkillsDistribution is the eight most frequent skills. Technologies are not counted.
func SkillsDistribution(milestones []model.Milestone) []SkillCount {
	counts := skillCounts(milestones, false)
	if len(counts) > topSkillsInPie {
		counts = counts[:topSkillsInPie]
	}
	return counts
}

// GrowthTrend accumulates, for each of the last five years, the milestones
// started up to that year.
func GrowthTrend(milestones []model.Milestone, now time.Time) []GrowthPoint {
	out := make([]GrowthPoint, 0, chartYears)
	for _, year := range chartYearRange(now) {
		upTo := make([]model.Milestone, 0, len(milestones))
		for _, m := range milestones {
			if m.StartDate.Year() <= year {
				upTo = append(upTo, m)
			}
		}
		out = append(out, GrowthPoint{
			Year:            strconv.Itoa(year),
			SkillLevel:      min(len(skillCounts(upTo, false))*skillLevelStep, maxChartPercent),
			ExperienceLevel: experienceLevel(upTo),
		})
	}
	return out
}

func experienceLevel(milestones []model.Milestone) int {
	level := 0
	for _, m := range milestones {
		switch m.Type {
		case model.MilestoneJob:
			level += 20
		case model.MilestoneEducation:
			level += 15
		case model.MilestoneCertification:
			level += 10
		}
	}
	return min(level, maxChartPercent)
}

// industryBaselines are the reference values shown next to the user's.
var industryBaselines = []ComparisonMetric{
	{Metric: "Experience Level", Industry: 65},
	{Metric: "Skill Diversity", Industry: 70},
	{Metric: "Career Growth", Industry: 68},
	{Metric: "Certification Level", Industry: 55},
	{Metric: "Profile Completeness", Industry: 60},
}

func IndustryComparison(milestones []model.Milestone, resumeCount int64, now time.Time) []ComparisonMetric {
	growth := GrowthTrend(milestones, now)
	latest := growth[len(growth)-1]

	certs := 0
	for _, m := range milestones {
		if m.Type == model.MilestoneCertification {
			certs++
		}
	}

	user := []int{
		latest.ExperienceLevel,
		latest.SkillLevel,
		CareerTrend(milestones).Score,
		min(certs*25, maxChartPercent),
		completenessScore(milestones, resumeCount),
	}
	out := make([]ComparisonMetric, len(industryBaselines))
	for i, b := range industryBaselines {
		out[i] = ComparisonMetric{Metric: b.Metric, User: user[i], Industry: b.Industry}
	}
	return out
}
