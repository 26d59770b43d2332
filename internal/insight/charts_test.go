package insight

import (
	"testing"

	"github.com/fadilmartias/careervision/internal/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCareerGapsByYear(t *testing.T) {
	got := CareerGapsByYear(fixture(), now)
	assert.Equal(t, []YearActivity{
		{Year: "2021", ActiveMonths: 10},
		{Year: "2022", ActiveMonths: 12},
		{Year: "2023", ActiveMonths: 12},
		{Year: "2024", ActiveMonths: 12},
		{Year: "2025", ActiveMonths: 6},
	}, got)
}

func TestCareerGapsByYear_NoJobs(t *testing.T) {
	got := CareerGapsByYear(nil, now)
	assert.Len(t, got, 5)
	for _, y := range got {
		assert.Zero(t, y.ActiveMonths)
	}
}

func TestSkillsDistribution(t *testing.T) {
	assert.Equal(t, []SkillCount{
		{Skill: "go", Count: 2},
		{Skill: "sql", Count: 1},
		{Skill: "kubernetes", Count: 1},
		{Skill: "aws", Count: 1},
	}, SkillsDistribution(fixture()))

	many := []model.Milestone{{Skills: []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"}}}
	assert.Len(t, SkillsDistribution(many), 8)
}

func TestGrowthTrend(t *testing.T) {
	assert.Equal(t, []GrowthPoint{
		{Year: "2021", SkillLevel: 15, ExperienceLevel: 55},
		{Year: "2022", SkillLevel: 20, ExperienceLevel: 65},
		{Year: "2023", SkillLevel: 20, ExperienceLevel: 65},
		{Year: "2024", SkillLevel: 20, ExperienceLevel: 65},
		{Year: "2025", SkillLevel: 20, ExperienceLevel: 65},
	}, GrowthTrend(fixture(), now))
}

func TestIndustryComparison(t *testing.T) {
	assert.Equal(t, []ComparisonMetric{
		{Metric: "Experience Level", User: 65, Industry: 65},
		{Metric: "Skill Diversity", User: 20, Industry: 70},
		{Metric: "Career Growth", User: 85, Industry: 68},
		{Metric: "Certification Level", User: 25, Industry: 55},
		{Metric: "Profile Completeness", User: 100, Industry: 60},
	}, IndustryComparison(fixture(), 1, now))
}

func TestBuildReport(t *testing.T) {
	userID := uuid.New()
	all := append(recs(70, 80), model.Recommendation{MatchScore: 10})

	got := BuildReport(userID, fixture(), all, 1, now)

	assert.Equal(t, userID, got.UserID)
	assert.Equal(t, now, got.GeneratedAt)
	assert.Equal(t, ReportSummary{
		TotalMilestones:      4,
		TotalRecommendations: 2,
		ProfileCompleteness:  100,
		OverallScore:         81,
	}, got.Summary)
	assert.Len(t, got.Insights, 5)
	if assert.Len(t, got.TopRecommendations, 2) {
		assert.Equal(t, 80, got.TopRecommendations[0].MatchScore)
	}
	if assert.Len(t, got.CareerTimeline, 4) {
		assert.Equal(t, "AWS SA", got.CareerTimeline[0].Title)
		assert.Equal(t, "B.Sc.", got.CareerTimeline[3].Title)
	}
	assert.Len(t, got.Analytics.CareerGaps, 5)
}

func TestTimelineAnalytics(t *testing.T) {
	got := TimelineAnalytics(fixture(), now)

	assert.Equal(t, []TypeCount{
		{Type: model.MilestoneJob, Count: 2},
		{Type: model.MilestoneCertification, Count: 1},
		{Type: model.MilestoneEducation, Count: 1},
	}, got.MilestonesByType)
	assert.Equal(t, []YearCount{{2015, 1}, {2019, 1}, {2021, 1}, {2022, 1}}, got.MilestonesByYear)
	assert.Equal(t, []Gap{{StartDate: at(2021, 6, 1), EndDate: at(2021, 10, 1), Duration: 4}}, got.CareerGaps)
	assert.Equal(t, "go", got.TopSkills[0].Skill)
	assert.Equal(t, 4, got.TotalMilestones)
}

func TestTimelineAnalytics_OngoingJobEndsNow(t *testing.T) {
	milestones := []model.Milestone{
		{Type: model.MilestoneJob, StartDate: at(2020, 1, 1)},
		{Type: model.MilestoneJob, StartDate: at(2026, 1, 1)},
	}
	got := TimelineAnalytics(milestones, now)
	assert.Equal(t, []Gap{{StartDate: now, EndDate: at(2026, 1, 1), Duration: 6}}, got.CareerGaps)
}
