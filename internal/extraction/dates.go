package extraction

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DateRange is a parsed period. A nil End means the period is ongoing.
type DateRange struct {
	Start time.Time
	End   *time.Time
}

const monthName = `(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?`

var (
	yearRangeRe  = regexp.MustCompile(`(?i)\b(\d{4})\s*[-–—]\s*(\d{4}|present|current)\b`)
	monthRangeRe = regexp.MustCompile(`(?i)\b(` + monthName + `\s+\d{4})\s*[-–—]\s*(present|current|` + monthName + `\s+\d{4})\b`)
	loneYearRe   = regexp.MustCompile(`\b(20\d{2})\b`)
	monthTailRe  = regexp.MustCompile(`(?i)\b` + monthName + `\s*$`)
)

type datePattern struct {
	re    *regexp.Regexp
	parse func(string) (time.Time, bool)
}

var months = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March, "apr": time.April,
	"may": time.May, "jun": time.June, "jul": time.July, "aug": time.August,
	"sep": time.September, "oct": time.October, "nov": time.November, "dec": time.December,
}

// ParseDateRange finds the first date range in text. Patterns are tried in
// priority order: "YYYY - YYYY|Present", "Mon YYYY - Mon YYYY|Present", then a
// lone 20xx year which yields an open range starting Jan 1 of that year.
func ParseDateRange(text string) (DateRange, bool) {
	r, _, ok := findDateRange(text)
	return r, ok
}

// findDateRange also returns the byte span of the match within text.
func findDateRange(text string) (DateRange, [2]int, bool) {
	patterns := []datePattern{{yearRangeRe, parseYear}, {monthRangeRe, parseMonthYear}}
	// "Mar 2020 - 2022" reads as a month range first.
	if loc := yearRangeRe.FindStringIndex(text); loc != nil && monthTailRe.MatchString(text[:loc[0]]) {
		patterns[0], patterns[1] = patterns[1], patterns[0]
	}
	for _, p := range patterns {
		loc := p.re.FindStringSubmatchIndex(text)
		if loc == nil {
			continue
		}
		start, ok := p.parse(text[loc[2]:loc[3]])
		if !ok {
			continue
		}
		r := DateRange{Start: start}
		if endText := text[loc[4]:loc[5]]; !isOngoing(endText) {
			end, ok := p.parse(endText)
			if !ok || end.Before(start) {
				continue
			}
			r.End = &end
		}
		return r, [2]int{loc[0], loc[1]}, true
	}

	if loc := loneYearRe.FindStringSubmatchIndex(text); loc != nil {
		if start, ok := parseYear(text[loc[2]:loc[3]]); ok {
			return DateRange{Start: start}, [2]int{loc[0], loc[1]}, true
		}
	}
	return DateRange{}, [2]int{}, false
}

func isOngoing(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return s == "present" || s == "current"
}

func parseYear(s string) (time.Time, bool) {
	y, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || y < 1900 || y > 2100 {
		return time.Time{}, false
	}
	return time.Date(y, time.January, 1, 0, 0, 0, 0, time.UTC), true
}

func parseMonthYear(s string) (time.Time, bool) {
	fields := strings.Fields(strings.ToLower(s))
	if len(fields) != 2 || len(fields[0]) < 3 {
		return time.Time{}, false
	}
	m, ok := months[fields[0][:3]]
	if !ok {
		return time.Time{}, false
	}
	year, ok := parseYear(fields[1])
	if !ok {
		return time.Time{}, false
	}
	return time.Date(year.Year(), m, 1, 0, 0, 0, 0, time.UTC), true
}
