package insight

import (
	"testing"
	"time"

	"github.com/fadilmartias/careervision/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)

func at(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func ptr(t time.Time) *time.Time { return &t }

func fixture() []model.Milestone {
	return []model.Milestone{
		{Type: model.MilestoneJob, Title: "Developer", StartDate: at(2019, 1, 1), EndDate: ptr(at(2021, 6, 1)), Skills: []string{"Go", "SQL"}},
		{Type: model.MilestoneJob, Title: "Senior Developer", StartDate: at(2021, 10, 1), Skills: []string{"go", "Kubernetes"}, Technologies: []string{"docker"}},
		{Type: model.MilestoneEducation, Title: "B.Sc.", StartDate: at(2015, 9, 1), EndDate: ptr(at(2019, 6, 1))},
		{Type: model.MilestoneCertification, Title: "AWS SA", StartDate: at(2022, 3, 1), Skills: []string{"AWS"}},
	}
}

func recs(scores ...int) []model.Recommendation {
	out := make([]model.Recommendation, 0, len(scores))
	for _, s := range scores {
		out = append(out, model.Recommendation{MatchScore: s, IsActive: true})
	}
	return out
}

func TestGapAnalysis(t *testing.T) {
	testCases := []struct {
		name       string
		milestones []model.Milestone
		wantNil    bool
		wantType   Type
		wantScore  int
		wantDesc   string
	}{
		{
			name:       "fewer than two jobs",
			milestones: fixture()[:1],
			wantNil:    true,
		},
		{
			name:       "four month gap",
			milestones: fixture(),
			wantType:   TypeRecommendation,
			wantScore:  75,
			wantDesc:   "You have 1 small gap(s) totaling 4 months. Consider highlighting any learning or projects during these periods.",
		},
		{
			name: "back to back jobs",
			milestones: []model.Milestone{
				{Type: model.MilestoneJob, StartDate: at(2018, 1, 1), EndDate: ptr(at(2019, 1, 1))},
				{Type: model.MilestoneJob, StartDate: at(2019, 1, 20)},
			},
			wantType:  TypeStrength,
			wantScore: 95,
		},
		{
			name: "ongoing previous job is not a gap",
			milestones: []model.Milestone{
				{Type: model.MilestoneJob, StartDate: at(2018, 1, 1)},
				{Type: model.MilestoneJob, StartDate: at(2020, 1, 1)},
			},
			wantType:  TypeStrength,
			wantScore: 95,
		},
		{
			name: "long gaps",
			milestones: []model.Milestone{
				{Type: model.MilestoneJob, StartDate: at(2020, 1, 1), EndDate: ptr(at(2020, 2, 1))},
				{Type: model.MilestoneJob, StartDate: at(2021, 1, 1), EndDate: ptr(at(2021, 2, 1))},
			},
			wantType:  TypeGap,
			wantScore: 60,
			wantDesc:  "1 gap(s) totaling 11 months found. Consider addressing these in your profile or during interviews.",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := GapAnalysis(tc.milestones)
			if tc.wantNil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, "gap_analysis", got.ID)
			assert.Equal(t, tc.wantType, got.Type)
			assert.Equal(t, tc.wantScore, got.Score)
			if tc.wantDesc != "" {
				assert.Equal(t, tc.wantDesc, got.Description)
			}
		})
	}
}

func TestSkillStrength(t *testing.T) {
	assert.Equal(t, 30, SkillStrength(nil).Score)
	assert.Equal(t, TypeRecommendation, SkillStrength(fixture()).Type)

	many := []model.Milestone{{Skills: []string{"a", "b", "c", "d", "e", "f", "g", "h", "i"}, Technologies: []string{"j", "a"}}}
	got := SkillStrength(many)
	assert.Equal(t, TypeStrength, got.Type)
	assert.Equal(t, 90, got.Score)
	assert.Equal(t, "Excellent! You have 10 skills across different areas. Top skills: a, b, c.", got.Description)
}

func TestMatchQuality(t *testing.T) {
	inactive := model.Recommendation{MatchScore: 10}
	testCases := []struct {
		name      string
		recs      []model.Recommendation
		wantType  Type
		wantScore int
	}{
		{name: "none", recs: []model.Recommendation{inactive}, wantType: TypeGap, wantScore: 40},
		{name: "strong", recs: append(recs(80, 70), inactive), wantType: TypeStrength, wantScore: 75},
		{name: "aligned rounds half up", recs: recs(60, 61), wantType: TypeTrend, wantScore: 61},
		{name: "weak", recs: recs(50), wantType: TypeRecommendation, wantScore: 50},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := MatchQuality(tc.recs)
			assert.Equal(t, tc.wantType, got.Type)
			assert.Equal(t, tc.wantScore, got.Score)
		})
	}
}

func TestCareerTrend(t *testing.T) {
	assert.Equal(t, 50, CareerTrend(fixture()[:1]).Score)
	assert.Equal(t, 85, CareerTrend(fixture()).Score)

	// only the first job is senior
	flat := []model.Milestone{
		{Type: model.MilestoneJob, Title: "Team Lead", StartDate: at(2018, 1, 1)},
		{Type: model.MilestoneJob, Title: "Engineer", StartDate: at(2020, 1, 1)},
	}
	got := CareerTrend(flat)
	assert.Equal(t, TypeTrend, got.Type)
	assert.Equal(t, 70, got.Score)
}

func TestProfileCompleteness(t *testing.T) {
	assert.Equal(t, Insight{
		ID:          "profile_completeness",
		Type:        TypeStrength,
		Title:       "Complete Profile",
		Description: "Excellent! Your profile is comprehensive and ready for opportunities.",
		Score:       100,
	}, ProfileCompleteness(fixture(), 1))

	assert.Equal(t, TypeRecommendation, ProfileCompleteness(fixture(), 0).Type)
	assert.Equal(t, 85, ProfileCompleteness(fixture(), 0).Score)

	onlyJob := []model.Milestone{{Type: model.MilestoneJob, StartDate: at(2020, 1, 1)}}
	got := ProfileCompleteness(onlyJob, 0)
	assert.Equal(t, TypeGap, got.Type)
	assert.Equal(t, 55, got.Score)

	assert.Equal(t, 0, ProfileCompleteness(nil, 0).Score)
}

func TestCareerInsights(t *testing.T) {
	got := CareerInsights(fixture()[:1], nil, 0)
	ids := make([]string, 0, len(got))
	for _, in := range got {
		ids = append(ids, in.ID)
	}
	assert.Equal(t, []string{"skills_analysis", "match_analysis", "trend_analysis", "profile_completeness"}, ids)
}
