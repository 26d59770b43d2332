package matching

import (
	"strings"

	"github.com/fadilmartias/careervision/internal/model"
)

// NormalizeSkills folds the skills and technologies of every milestone into
// one lower-cased, de-duplicated list in first-seen order.
func NormalizeSkills(milestones []model.Milestone) []string {
	seen := make(map[string]struct{})
	skills := make([]string, 0)
	add := func(tokens []string) {
		for _, t := range tokens {
			key := strings.ToLower(strings.TrimSpace(t))
			if key == "" {
				continue
			}
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			skills = append(skills, key)
		}
	}
	for _, m := range milestones {
		add(m.Skills)
		add(m.Technologies)
	}
	return skills
}

// Overlaps reports whether a and b match case-insensitively in either direction.
func Overlaps(a, b string) bool {
	a, b = strings.ToLower(a), strings.ToLower(b)
	if a == "" || b == "" {
		return false
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}

// OverlapsAny reports whether skill overlaps at least one of userSkills.
func OverlapsAny(userSkills []string, skill string) bool {
	for _, us := range userSkills {
		if Overlaps(us, skill) {
			return true
		}
	}
	return false
}

// HeldBy reports whether some user skill contains skill.
func HeldBy(userSkills []string, skill string) bool {
	s := strings.ToLower(skill)
	if s == "" {
		return false
	}
	for _, us := range userSkills {
		if strings.Contains(strings.ToLower(us), s) {
			return true
		}
	}
	return false
}
