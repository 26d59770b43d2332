package insight

import (
	"sort"
	"time"

	"github.com/fadilmartias/careervision/internal/model"
)

const timelineTopSkills = 10

type TypeCount struct {
	Type  model.MilestoneType `json:"type"`
	Count int                 `json:"count"`
}

type YearCount struct {
	Year  int `json:"year"`
	Count int `json:"count"`
}

// Gap is a period of more than 30 days between two consecutive jobs.
type Gap struct {
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
	Duration  int       `json:"duration"`
}

type TimelineStats struct {
	MilestonesByType []TypeCount  `json:"milestonesByType"`
	MilestonesByYear []YearCount  `json:"milestonesByYear"`
	CareerGaps       []Gap        `json:"careerGaps"`
	TopSkills        []SkillCount `json:"topSkills"`
	TotalMilestones  int          `json:"totalMilestones"`
}

func TimelineAnalytics(milestones []model.Milestone, now time.Time) TimelineStats {
	byType := make(map[model.MilestoneType]int)
	byYear := make(map[int]int)
	for _, m := range milestones {
		byType[m.Type]++
		byYear[m.StartDate.Year()]++
	}

	types := make([]TypeCount, 0, len(byType))
	for t, c := range byType {
		types = append(types, TypeCount{Type: t, Count: c})
	}
	sort.Slice(types, func(i, j int) bool {
		if types[i].Count != types[j].Count {
			return types[i].Count > types[j].Count
		}
		return types[i].Type < types[j].Type
	})

	years := make([]YearCount, 0, len(byYear))
	for y, c := range byYear {
		years = append(years, YearCount{Year: y, Count: c})
	}
	sort.Slice(years, func(i, j int) bool { return years[i].Year < years[j].Year })

	skills := skillCounts(milestones, false)
	if len(skills) > timelineTopSkills {
		skills = skills[:timelineTopSkills]
	}

	return TimelineStats{
		MilestonesByType: types,
		MilestonesByYear: years,
		CareerGaps:       careerGaps(milestones, now),
		TopSkills:        skills,
		TotalMilestones:  len(milestones),
	}
}

// careerGaps treats an ongoing previous job as ending now.
func careerGaps(milestones []model.Milestone, now time.Time) []Gap {
	jobs := jobsByStart(milestones)
	gaps := make([]Gap, 0)
	for i := 1; i < len(jobs); i++ {
		prevEnd := jobs[i-1].EndOr(now)
		if days := gapDays(prevEnd, jobs[i].StartDate); days > gapThresholdDays {
			gaps = append(gaps, Gap{StartDate: prevEnd, EndDate: jobs[i].StartDate, Duration: days / 30})
		}
	}
	return gaps
}
