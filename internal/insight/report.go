package insight

import (
	"math"
	"sort"
	"time"

	"github.com/fadilmartias/careervision/internal/model"
	"github.com/google/uuid"
)

const reportTopRecommendations = 5

type ReportSummary struct {
	TotalMilestones      int `json:"totalMilestones"`
	TotalRecommendations int `json:"totalRecommendations"`
	ProfileCompleteness  int `json:"profileCompleteness"`
	OverallScore         int `json:"overallScore"`
}

type Report struct {
	GeneratedAt        time.Time              `json:"generatedAt"`
	UserID             uuid.UUID              `json:"userId"`
	Summary            ReportSummary          `json:"summary"`
	Insights           []Insight              `json:"insights"`
	TopRecommendations []model.Recommendation `json:"topRecommendations"`
	CareerTimeline     []model.Milestone      `json:"careerTimeline"`
	Analytics          Analytics              `json:"analytics"`
}

// BuildReport assembles a point-in-time career report. recs are filtered to
// the active ones.
func BuildReport(userID uuid.UUID, milestones []model.Milestone, recs []model.Recommendation, resumeCount int64, now time.Time) Report {
	active := make([]model.Recommendation, 0, len(recs))
	for _, r := range recs {
		if r.IsActive {
			active = append(active, r)
		}
	}
	sort.SliceStable(active, func(i, j int) bool { return active[i].MatchScore > active[j].MatchScore })

	timeline := append([]model.Milestone(nil), milestones...)
	sort.SliceStable(timeline, func(i, j int) bool { return timeline[i].StartDate.After(timeline[j].StartDate) })

	insights := CareerInsights(milestones, active, resumeCount)
	top := active
	if len(top) > reportTopRecommendations {
		top = top[:reportTopRecommendations]
	}

	return Report{
		GeneratedAt: now,
		UserID:      userID,
		Summary: ReportSummary{
			TotalMilestones:      len(milestones),
			TotalRecommendations: len(active),
			ProfileCompleteness:  completenessScore(milestones, resumeCount),
			OverallScore:         overallScore(insights),
		},
		Insights:           insights,
		TopRecommendations: top,
		CareerTimeline:     timeline,
		Analytics:          BuildAnalytics(milestones, resumeCount, now),
	}
}

func overallScore(insights []Insight) int {
	if len(insights) == 0 {
		return 0
	}
	sum := 0
	for _, in := range insights {
		sum += in.Score
	}
	return int(math.Round(float64(sum) / float64(len(insights))))
}
