package provider

import (
	"strings"

	"github.com/fadilmartias/careervision/internal/extraction"
)

// commonTech is matched against live listings that carry no skill tags.
var commonTech = []string{
	"python", "java", "javascript", "typescript", "golang", "sql", "react", "angular", "vue",
	"node.js", "aws", "azure", "gcp", "docker", "kubernetes", "machine learning", "data science",
	"devops", "html", "css", "mongodb", "postgresql", "excel", "statistics",
}

// deriveSkills picks the profile skills and common technologies mentioned in
// text as whole tokens, so "go" does not match "google".
func deriveSkills(text string, profileSkills []string) []string {
	out := make([]string, 0)
	for _, vocab := range [][]string{profileSkills, commonTech} {
		for _, s := range vocab {
			s = strings.ToLower(strings.TrimSpace(s))
			if len(s) < 2 {
				continue
			}
			re, err := extraction.TermPattern(s)
			if err != nil {
				continue
			}
			if re.MatchString(text) {
				out = append(out, s)
			}
		}
	}
	return out
}

func mergeSkills(lists ...[]string) []string {
	var all []string
	for _, l := range lists {
		for _, s := range l {
			all = append(all, strings.ToLower(strings.TrimSpace(s)))
		}
	}
	seen := make(map[string]struct{}, len(all))
	out := make([]string, 0, len(all))
	for _, s := range all {
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
