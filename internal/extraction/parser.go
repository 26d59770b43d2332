package extraction

import (
	"log/slog"
	"regexp"
	"strings"

	"github.com/fadilmartias/careervision/internal/model"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	emailRe = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	phoneRe = regexp.MustCompile(`\+?\d{10,}`)
	nameRe  = regexp.MustCompile(`^[A-Z][A-Za-z.'\- ]{2,40}$`)
	spaceRe = regexp.MustCompile(`\s+`)
)

const (
	maxNameLines      = 5
	maxTitleLen       = 100
	maxDescriptionLen = 200
)

// Parser turns raw resume text into ExtractedData. It is safe for
// concurrent use.
type Parser struct {
	rules *Rules
}

func NewParser(rules *Rules) *Parser {
	if rules == nil {
		rules = DefaultRules()
	}
	return &Parser{rules: rules}
}

// block is a header line and the bullet lines under it.
type block struct {
	header  string
	bullets []string
}

// Parse never fails; text it cannot interpret yields empty arrays.
func (p *Parser) Parse(text string) model.ExtractedData {
	data := model.NewExtractedData()
	if strings.TrimSpace(text) == "" {
		return data
	}

	lines := splitLines(text)
	clean := spaceRe.ReplaceAllString(text, " ")
	title := cases.Title(language.English)

	data.PersonalInfo = p.personalInfo(clean, lines)
	data.Skills = p.vocabularyIn(clean, title)

	sections := p.sections(lines)
	for _, b := range sections[model.MilestoneJob] {
		data.Experience = append(data.Experience, p.experience(b, title))
	}
	for _, b := range sections[model.MilestoneEducation] {
		data.Education = append(data.Education, p.education(b))
	}
	for _, b := range sections[model.MilestoneCertification] {
		data.Certifications = append(data.Certifications, p.certification(b))
	}
	for _, b := range sections[model.MilestoneProject] {
		data.Projects = append(data.Projects, p.project(b, title))
	}
	data.Achievements = p.achievements(sections[model.MilestoneAchievement], lines)

	slog.Debug("resume parsed",
		slog.Int("experience", len(data.Experience)),
		slog.Int("education", len(data.Education)),
		slog.Int("certifications", len(data.Certifications)),
		slog.Int("projects", len(data.Projects)),
		slog.Int("achievements", len(data.Achievements)),
	)
	return data
}

func splitLines(text string) []string {
	raw := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	out := make([]string, 0, len(raw))
	for _, l := range raw {
		if l = strings.TrimSpace(l); l != "" {
			out = append(out, l)
		}
	}
	return out
}

func (p *Parser) personalInfo(clean string, lines []string) model.PersonalInfo {
	var info model.PersonalInfo
	info.Email = emailRe.FindString(clean)
	info.Phone = phoneRe.FindString(clean)
	for i, l := range lines {
		if i >= maxNameLines {
			break
		}
		if _, heading := p.rules.section(l); heading {
			continue
		}
		if nameRe.MatchString(l) && len(strings.Fields(l)) <= 4 {
			info.Name = l
			break
		}
	}
	return info
}

// vocabularyIn returns the vocabulary terms found in text as whole tokens.
// Terms written in lower case are title-cased, acronyms are kept as written.
func (p *Parser) vocabularyIn(text string, title cases.Caser) []string {
	out := make([]string, 0)
	seen := make(map[string]struct{})
	for i, re := range p.rules.skillRes {
		if !re.MatchString(text) {
			continue
		}
		term := p.rules.Vocabulary[i]
		if term == strings.ToLower(term) {
			term = title.String(term)
		}
		key := strings.ToLower(term)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, term)
	}
	return out
}

// sections groups lines under the heading that precedes them. Lines before
// the first heading and under other headings are dropped.
func (p *Parser) sections(lines []string) map[model.MilestoneType][]block {
	out := make(map[model.MilestoneType][]block)
	current := otherSection
	for _, l := range lines {
		if s, ok := p.rules.section(l); ok {
			current = s
			continue
		}
		if current == otherSection {
			continue
		}
		blocks := out[current]
		content, bullet := stripBullet(l)
		switch {
		case bullet && len(blocks) > 0:
			last := &blocks[len(blocks)-1]
			last.bullets = append(last.bullets, content)
		case !bullet && len(blocks) > 0 && len(blocks[len(blocks)-1].bullets) == 0 && dateOnly(content):
			last := &blocks[len(blocks)-1]
			last.header += " " + content
		default:
			blocks = append(blocks, block{header: content})
		}
		out[current] = blocks
	}
	return out
}

func stripBullet(l string) (string, bool) {
	for _, marker := range []string{"-", "•", "*", "▪", "·", "◦", "–"} {
		if strings.HasPrefix(l, marker) {
			return strings.TrimSpace(strings.TrimPrefix(l, marker)), true
		}
	}
	return l, false
}

// dateOnly reports whether l holds a date range and nothing else of substance.
func dateOnly(l string) bool {
	_, span, ok := findDateRange(l)
	if !ok {
		return false
	}
	rest := strings.Trim(l[:span[0]]+l[span[1]:], " ()[]|,-–—")
	return len(rest) <= 3
}

// header splits a header into its undated text and date range.
func header(h string) (string, *DateRange) {
	r, span, ok := findDateRange(h)
	if !ok {
		return strings.TrimSpace(h), nil
	}
	rest := h[:span[0]] + h[span[1]:]
	rest = strings.ReplaceAll(rest, "()", "")
	rest = strings.ReplaceAll(rest, "[]", "")
	return strings.Trim(rest, " |,-–—:"), &r
}

// match applies the first entry rule of section that matches text.
func (p *Parser) match(section model.MilestoneType, text string) (map[string]string, bool) {
	for _, rule := range p.rules.Entries {
		if rule.Section != section {
			continue
		}
		m := rule.re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		fields := make(map[string]string)
		for i, name := range rule.re.SubexpNames() {
			if name != "" && i < len(m) {
				fields[name] = strings.TrimSpace(m[i])
			}
		}
		return fields, true
	}
	return nil, false
}

func confidence(matched bool, dated bool) float64 {
	switch {
	case matched && dated:
		return 0.9
	case matched || dated:
		return 0.7
	}
	return 0.5
}

func (b block) text() string {
	return strings.Join(append([]string{b.header}, b.bullets...), " ")
}

func (b block) description() string {
	return strings.Join(b.bullets, " ")
}

// blockRange prefers the header's date range over one found in the bullets.
func blockRange(b block, fromHeader *DateRange) *DateRange {
	if fromHeader != nil {
		return fromHeader
	}
	if r, ok := ParseDateRange(b.text()); ok {
		return &r
	}
	return nil
}

func (p *Parser) experience(b block, title cases.Caser) model.ExtractedExperience {
	text, hdrRange := header(b.header)
	r := blockRange(b, hdrRange)
	fields, matched := p.match(model.MilestoneJob, text)

	exp := model.ExtractedExperience{
		Title:        text,
		Description:  b.description(),
		Skills:       p.vocabularyIn(b.text(), title),
		Technologies: []string{},
		Confidence:   confidence(matched, r != nil),
	}
	if matched {
		exp.Title = fields["title"]
		exp.Company = fields["company"]
		exp.Location = fields["location"]
	}
	if r != nil {
		exp.StartDate, exp.EndDate = &r.Start, r.End
		exp.Duration = rangeText(b.header)
	}
	return exp
}

func (p *Parser) education(b block) model.ExtractedEducation {
	text, hdrRange := header(b.header)
	r := blockRange(b, hdrRange)
	fields, matched := p.match(model.MilestoneEducation, text)

	edu := model.ExtractedEducation{
		Degree:      text,
		Description: b.description(),
		Confidence:  confidence(matched, r != nil),
	}
	if matched {
		edu.Degree = fields["degree"]
		edu.Institution = fields["institution"]
	}
	if r != nil {
		edu.StartDate, edu.EndDate = &r.Start, r.End
		edu.Year = r.Start.Format("2006")
	}
	return edu
}

func (p *Parser) certification(b block) model.ExtractedCert {
	text, hdrRange := header(b.header)
	r := blockRange(b, hdrRange)
	fields, matched := p.match(model.MilestoneCertification, text)

	cert := model.ExtractedCert{
		Title:       text,
		Description: b.description(),
		Confidence:  confidence(matched, r != nil),
	}
	if matched {
		cert.Title = fields["title"]
		cert.Issuer = fields["issuer"]
		if cert.Description == "" {
			cert.Description = cert.Title + " from " + cert.Issuer
		}
	}
	if r != nil {
		cert.StartDate = &r.Start
	}
	return cert
}

func (p *Parser) project(b block, title cases.Caser) model.ExtractedProject {
	text, hdrRange := header(b.header)
	r := blockRange(b, hdrRange)
	fields, matched := p.match(model.MilestoneProject, text)

	proj := model.ExtractedProject{
		Title:        text,
		Description:  b.description(),
		Technologies: p.vocabularyIn(b.text(), title),
		Confidence:   confidence(matched, r != nil),
	}
	if matched {
		proj.Title = fields["title"]
		proj.Description = strings.TrimSpace(fields["description"] + " " + proj.Description)
	}
	if r != nil {
		proj.StartDate, proj.EndDate = &r.Start, r.End
	}
	return proj
}

// achievements takes the achievements section first, then every other line
// carrying an achievement keyword. Titles are de-duplicated and the list is
// capped.
func (p *Parser) achievements(section []block, lines []string) []model.ExtractedAchievement {
	out := make([]model.ExtractedAchievement, 0)
	seen := make(map[string]struct{})
	add := func(titleText, desc string, matched bool) {
		if len(out) >= p.rules.MaxAchievements {
			return
		}
		text, r := header(titleText)
		if text == "" {
			return
		}
		text = truncate(text, maxTitleLen)
		key := strings.ToLower(text)
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = struct{}{}
		a := model.ExtractedAchievement{
			Title:       text,
			Description: truncate(desc, maxDescriptionLen),
			Confidence:  confidence(matched, r != nil),
		}
		if r != nil {
			a.StartDate = &r.Start
		}
		out = append(out, a)
	}

	for _, b := range section {
		desc := b.description()
		if desc == "" {
			desc = b.header
		}
		add(b.header, desc, true)
	}
	for i, l := range lines {
		if _, heading := p.rules.section(l); heading || !p.hasAchievementKeyword(l) {
			continue
		}
		content, _ := stripBullet(l)
		desc := content
		if i+1 < len(lines) {
			desc += " " + lines[i+1]
		}
		add(content, desc, true)
	}
	return out
}

func (p *Parser) hasAchievementKeyword(l string) bool {
	lower := strings.ToLower(l)
	for _, k := range p.rules.AchievementKeywords {
		if k != "" && strings.Contains(lower, strings.ToLower(k)) {
			return true
		}
	}
	return false
}

func rangeText(h string) string {
	_, span, ok := findDateRange(h)
	if !ok {
		return ""
	}
	return strings.TrimSpace(h[span[0]:span[1]])
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
