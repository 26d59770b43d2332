package extraction

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/fadilmartias/careervision/internal/model"
)

// EntryRule maps a header line of a section to fields through named capture
// groups: title, company, location, degree, institution, issuer, description.
type EntryRule struct {
	Section model.MilestoneType `json:"section"`
	Pattern string              `json:"pattern"`

	re *regexp.Regexp
}

// Rules is the table the parser is driven by. Every field can be replaced
// from a JSON file without touching code.
type Rules struct {
	Vocabulary          []string                         `json:"vocabulary"`
	Sections            map[model.MilestoneType][]string `json:"sections"`
	OtherHeadings       []string                         `json:"otherHeadings"`
	Entries             []EntryRule                      `json:"entries"`
	AchievementKeywords []string                         `json:"achievementKeywords"`
	MaxAchievements     int                              `json:"maxAchievements"`

	skillRes []*regexp.Regexp
	headings map[string]model.MilestoneType
}

const otherSection model.MilestoneType = ""

const (
	fieldSep   = `\s*(?:,|\||\s[-–—]\s)\s*`
	optionalAt = `(?:\s*(?:,|\|)\s*(?P<location>.+))?`
)

func DefaultRules() *Rules {
	r := &Rules{
		Vocabulary: []string{
			"Python", "Java", "JavaScript", "TypeScript", "Golang", "Rust", "C++", "C#", "Ruby", "PHP",
			"Kotlin", "Swift", "Scala", "SQL", "MySQL", "PostgreSQL", "MongoDB", "Redis", "Oracle",
			"HTML", "CSS", "React", "Angular", "Vue", "Node.js", "Express", "Django", "Flask", "Spring",
			"AWS", "Azure", "GCP", "Docker", "Kubernetes", "Terraform", "Linux", "Git",
			"machine learning", "data science", "data analysis", "deep learning", "statistics",
			"Excel", "Tableau", "Power BI", "REST", "GraphQL", "microservices", "agile", "scrum",
		},
		Sections: map[model.MilestoneType][]string{
			model.MilestoneJob:           {"experience", "work experience", "professional experience", "employment", "employment history", "internships", "internship"},
			model.MilestoneEducation:     {"education", "academic background", "academics", "qualifications"},
			model.MilestoneCertification: {"certifications", "certification", "certificates", "licenses", "courses"},
			model.MilestoneProject:       {"projects", "personal projects", "academic projects"},
			model.MilestoneAchievement:   {"achievements", "awards", "honors", "honours", "accomplishments", "activities", "extracurricular activities"},
		},
		OtherHeadings: []string{"skills", "technical skills", "summary", "profile", "objective", "contact", "languages", "interests", "hobbies", "references"},
		Entries: []EntryRule{
			{Section: model.MilestoneJob, Pattern: `^(?P<title>.+?)\s+(?:at|@)\s+(?P<company>[^,|]+?)` + optionalAt + `$`},
			{Section: model.MilestoneJob, Pattern: `^(?P<title>.+?)` + fieldSep + `(?P<company>[^,|]+?)` + optionalAt + `$`},
			{Section: model.MilestoneEducation, Pattern: `^(?P<degree>.+?)\s+(?:at|from)\s+(?P<institution>.+)$`},
			{Section: model.MilestoneEducation, Pattern: `^(?P<degree>.+?)` + fieldSep + `(?P<institution>.+)$`},
			{Section: model.MilestoneCertification, Pattern: `^(?P<title>.+?)\s+(?:by|from)\s+(?P<issuer>.+)$`},
			{Section: model.MilestoneCertification, Pattern: `^(?P<title>.+?)` + fieldSep + `(?P<issuer>.+)$`},
			{Section: model.MilestoneProject, Pattern: `^(?P<title>.+?)\s*(?::|\s[-–—]\s)\s*(?P<description>.+)$`},
		},
		AchievementKeywords: []string{
			"award", "winner", "finalist", "recognized", "recognised", "honored", "honoured",
			"participated", "hackathon", "published", "scholarship", "ranked",
		},
		MaxAchievements: 10,
	}
	if err := r.compile(); err != nil {
		panic(err)
	}
	return r
}

// LoadRules reads a JSON rule table. An empty path returns DefaultRules.
func LoadRules(path string) (*Rules, error) {
	if path == "" {
		return DefaultRules(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read extraction rules: %w", err)
	}
	r := &Rules{}
	if err := json.Unmarshal(data, r); err != nil {
		return nil, fmt.Errorf("decode extraction rules: %w", err)
	}
	if r.MaxAchievements <= 0 {
		r.MaxAchievements = 10
	}
	if err := r.compile(); err != nil {
		return nil, err
	}
	return r, nil
}

// TermPattern matches term as a whole token, case-insensitively. Symbols
// that belong to skill names ("c++", "c#", ".net") count as part of the token.
func TermPattern(term string) (*regexp.Regexp, error) {
	return regexp.Compile(`(?i)(?:^|[^a-z0-9+#.])` + regexp.QuoteMeta(term) + `(?:$|[^a-z0-9+#])`)
}

func (r *Rules) compile() error {
	r.skillRes = make([]*regexp.Regexp, 0, len(r.Vocabulary))
	for _, term := range r.Vocabulary {
		term = strings.TrimSpace(term)
		if term == "" {
			continue
		}
		re, err := TermPattern(term)
		if err != nil {
			return fmt.Errorf("vocabulary term %q: %w", term, err)
		}
		r.skillRes = append(r.skillRes, re)
	}
	// keep Vocabulary aligned with skillRes
	vocab := make([]string, 0, len(r.skillRes))
	for _, term := range r.Vocabulary {
		if strings.TrimSpace(term) != "" {
			vocab = append(vocab, strings.TrimSpace(term))
		}
	}
	r.Vocabulary = vocab

	for i := range r.Entries {
		if !r.Entries[i].Section.Valid() {
			return fmt.Errorf("entry rule %d: unknown section %q", i, r.Entries[i].Section)
		}
		re, err := regexp.Compile(r.Entries[i].Pattern)
		if err != nil {
			return fmt.Errorf("entry rule %d: %w", i, err)
		}
		r.Entries[i].re = re
	}

	r.headings = make(map[string]model.MilestoneType)
	for _, h := range r.OtherHeadings {
		r.headings[normalizeHeading(h)] = otherSection
	}
	for section, hs := range r.Sections {
		if !section.Valid() {
			return fmt.Errorf("unknown section %q", section)
		}
		for _, h := range hs {
			r.headings[normalizeHeading(h)] = section
		}
	}
	return nil
}

// section reports whether line is a heading and which section it opens.
func (r *Rules) section(line string) (model.MilestoneType, bool) {
	s, ok := r.headings[normalizeHeading(line)]
	return s, ok
}

func normalizeHeading(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.TrimRight(s, ": ")
	return strings.Join(strings.Fields(s), " ")
}
