package insight

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/fadilmartias/careervision/internal/model"
)

type Type string

const (
	TypeStrength       Type = "strength"
	TypeGap            Type = "gap"
	TypeRecommendation Type = "recommendation"
	TypeTrend          Type = "trend"
)

type Insight struct {
	ID          string `json:"id"`
	Type        Type   `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Score       int    `json:"score"`
}

const (
	day   = 24 * time.Hour
	month = 30 * day

	gapThresholdDays = 30
)

var seniorityKeywords = []string{"senior", "lead", "manager"}

// CareerInsights runs every analysis and drops those without enough data.
func CareerInsights(milestones []model.Milestone, recs []model.Recommendation, resumeCount int64) []Insight {
	out := make([]Insight, 0, 5)
	for _, in := range []*Insight{
		GapAnalysis(milestones),
		SkillStrength(milestones),
		MatchQuality(recs),
		CareerTrend(milestones),
	} {
		if in != nil {
			out = append(out, *in)
		}
	}
	return append(out, ProfileCompleteness(milestones, resumeCount))
}

// jobsByStart returns the job milestones ordered by start date.
func jobsByStart(milestones []model.Milestone) []model.Milestone {
	jobs := make([]model.Milestone, 0, len(milestones))
	for _, m := range milestones {
		if m.Type == model.MilestoneJob {
			jobs = append(jobs, m)
		}
	}
	sort.SliceStable(jobs, func(i, j int) bool { return jobs[i].StartDate.Before(jobs[j].StartDate) })
	return jobs
}

func gapDays(from, to time.Time) int {
	return int(math.Ceil(float64(to.Sub(from)) / float64(day)))
}

func GapAnalysis(milestones []model.Milestone) *Insight {
	jobs := jobsByStart(milestones)
	if len(jobs) < 2 {
		return nil
	}

	gapCount, gapMonths := 0, 0
	for i := 1; i < len(jobs); i++ {
		prevEnd := jobs[i-1].EndDate
		if prevEnd == nil {
			continue
		}
		if days := gapDays(*prevEnd, jobs[i].StartDate); days > gapThresholdDays {
			gapMonths += days / 30
			gapCount++
		}
	}

	switch {
	case gapCount == 0:
		return &Insight{
			ID:          "gap_analysis",
			Type:        TypeStrength,
			Title:       "Continuous Career Path",
			Description: "Great! Your career shows no significant gaps, indicating consistent professional growth.",
			Score:       95,
		}
	case gapMonths <= 6:
		return &Insight{
			ID:          "gap_analysis",
			Type:        TypeRecommendation,
			Title:       "Minor Career Gaps",
			Description: fmt.Sprintf("You have %d small gap(s) totaling %d months. Consider highlighting any learning or projects during these periods.", gapCount, gapMonths),
			Score:       75,
		}
	}
	return &Insight{
		ID:          "gap_analysis",
		Type:        TypeGap,
		Title:       "Career Gaps Detected",
		Description: fmt.Sprintf("%d gap(s) totaling %d months found. Consider addressing these in your profile or during interviews.", gapCount, gapMonths),
		Score:       60,
	}
}

// skillCounts counts lower-cased skills (and technologies when asked) in
// first-seen order, most frequent first.
func skillCounts(milestones []model.Milestone, withTechnologies bool) []SkillCount {
	index := make(map[string]int)
	counts := make([]SkillCount, 0)
	add := func(s string) {
		key := strings.ToLower(strings.TrimSpace(s))
		if key == "" {
			return
		}
		if i, ok := index[key]; ok {
			counts[i].Count++
			return
		}
		index[key] = len(counts)
		counts = append(counts, SkillCount{Skill: key, Count: 1})
	}
	for _, m := range milestones {
		for _, s := range m.Skills {
			add(s)
		}
		if withTechnologies {
			for _, s := range m.Technologies {
				add(s)
			}
		}
	}
	sort.SliceStable(counts, func(i, j int) bool { return counts[i].Count > counts[j].Count })
	return counts
}

func SkillStrength(milestones []model.Milestone) *Insight {
	counts := skillCounts(milestones, true)
	total := len(counts)

	switch {
	case total == 0:
		return &Insight{
			ID:          "skills_analysis",
			Type:        TypeGap,
			Title:       "Missing Skills Information",
			Description: "No skills found in your profile. Add skills to your experiences and projects for better opportunities.",
			Score:       30,
		}
	case total >= 10:
		top := make([]string, 0, 3)
		for _, c := range counts[:3] {
			top = append(top, c.Skill)
		}
		return &Insight{
			ID:          "skills_analysis",
			Type:        TypeStrength,
			Title:       "Strong Skill Portfolio",
			Description: fmt.Sprintf("Excellent! You have %d skills across different areas. Top skills: %s.", total, strings.Join(top, ", ")),
			Score:       90,
		}
	}
	return &Insight{
		ID:          "skills_analysis",
		Type:        TypeRecommendation,
		Title:       "Developing Skill Set",
		Description: fmt.Sprintf("You have %d skills. Consider expanding your skillset in trending technologies to increase opportunities.", total),
		Score:       70,
	}
}

// MatchQuality looks at active recommendations only.
func MatchQuality(recs []model.Recommendation) *Insight {
	sum, n, high := 0, 0, 0
	for _, r := range recs {
		if !r.IsActive {
			continue
		}
		sum += r.MatchScore
		n++
		if r.MatchScore >= 80 {
			high++
		}
	}
	if n == 0 {
		return &Insight{
			ID:          "match_analysis",
			Type:        TypeGap,
			Title:       "No Recommendations Yet",
			Description: "Complete your profile and refresh recommendations to get personalized job and course suggestions.",
			Score:       40,
		}
	}

	avg := float64(sum) / float64(n)
	score := int(math.Round(avg))
	switch {
	case avg >= 75:
		return &Insight{
			ID:          "match_analysis",
			Type:        TypeStrength,
			Title:       "High-Quality Matches",
			Description: fmt.Sprintf("Excellent! %d recommendations with 80%%+ match. Your profile aligns well with market opportunities.", high),
			Score:       score,
		}
	case avg >= 60:
		return &Insight{
			ID:          "match_analysis",
			Type:        TypeTrend,
			Title:       "Good Market Alignment",
			Description: fmt.Sprintf("Your profile matches %d%% with available opportunities. Consider refining your skills for better matches.", score),
			Score:       score,
		}
	}
	return &Insight{
		ID:          "match_analysis",
		Type:        TypeRecommendation,
		Title:       "Improve Profile Match",
		Description: fmt.Sprintf("Current match score: %d%%. Update your skills and experiences to improve recommendation quality.", score),
		Score:       score,
	}
}

func CareerTrend(milestones []model.Milestone) *Insight {
	jobs := jobsByStart(milestones)
	if len(jobs) < 2 {
		return &Insight{
			ID:          "trend_analysis",
			Type:        TypeTrend,
			Title:       "Early Career Stage",
			Description: "Add more work experiences to analyze your career growth trend.",
			Score:       50,
		}
	}

	for _, j := range jobs[1:] {
		title := strings.ToLower(j.Title)
		for _, k := range seniorityKeywords {
			if strings.Contains(title, k) {
				return &Insight{
					ID:          "trend_analysis",
					Type:        TypeStrength,
					Title:       "Upward Career Trajectory",
					Description: "Great! Your career shows clear progression with senior roles and increasing responsibilities.",
					Score:       85,
				}
			}
		}
	}
	return &Insight{
		ID:          "trend_analysis",
		Type:        TypeTrend,
		Title:       "Steady Career Growth",
		Description: "Your career shows consistent experience. Consider roles with increased leadership or technical responsibilities.",
		Score:       70,
	}
}

func completenessScore(milestones []model.Milestone, resumeCount int64) int {
	score := 0
	if len(milestones) > 0 {
		score += 30
	}
	var hasJob, hasEdu, hasSkills bool
	for _, m := range milestones {
		hasJob = hasJob || m.Type == model.MilestoneJob
		hasEdu = hasEdu || m.Type == model.MilestoneEducation
		hasSkills = hasSkills || len(m.Skills) > 0
	}
	if hasJob {
		score += 25
	}
	if hasEdu {
		score += 20
	}
	if resumeCount > 0 {
		score += 15
	}
	if hasSkills {
		score += 10
	}
	return score
}

func ProfileCompleteness(milestones []model.Milestone, resumeCount int64) Insight {
	score := completenessScore(milestones, resumeCount)
	switch {
	case score >= 90:
		return Insight{
			ID:          "profile_completeness",
			Type:        TypeStrength,
			Title:       "Complete Profile",
			Description: "Excellent! Your profile is comprehensive and ready for opportunities.",
			Score:       score,
		}
	case score >= 70:
		return Insight{
			ID:          "profile_completeness",
			Type:        TypeRecommendation,
			Title:       "Good Profile Foundation",
			Description: "Your profile is well-developed. Add more details to maximize opportunities.",
			Score:       score,
		}
	}
	return Insight{
		ID:          "profile_completeness",
		Type:        TypeGap,
		Title:       "Incomplete Profile",
		Description: "Complete your profile by adding work experience, education, and skills for better recommendations.",
		Score:       score,
	}
}
