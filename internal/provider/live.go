package provider

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/fadilmartias/careervision/internal/model"
	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

// liveSpec describes how one provider API is queried and mapped.
type liveSpec struct {
	source model.Source
	kind   model.RecommendationType
	path   string
	params func(p Profile, apiKey string) map[string]string
	auth   func(r *resty.Request, apiKey string)
	items  string
	mapper func(item gjson.Result) Candidate
}

// LiveAdapter calls a provider's HTTP API with an explicit timeout.
type LiveAdapter struct {
	spec    liveSpec
	client  *resty.Client
	apiKey  string
	timeout time.Duration
}

func newLiveAdapter(spec liveSpec, baseURL, apiKey string, timeout time.Duration) *LiveAdapter {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")
	return &LiveAdapter{spec: spec, client: client, apiKey: apiKey, timeout: timeout}
}

func (a *LiveAdapter) Source() model.Source { return a.spec.source }

func (a *LiveAdapter) Kind() model.RecommendationType { return a.spec.kind }

func (a *LiveAdapter) Search(ctx context.Context, p Profile) []Candidate {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	log := slog.With(slog.String("source", string(a.spec.source)))
	req := a.client.R().SetContext(ctx)
	if a.spec.params != nil {
		req.SetQueryParams(a.spec.params(p, a.apiKey))
	}
	if a.spec.auth != nil {
		a.spec.auth(req, a.apiKey)
	}

	resp, err := req.Get(a.spec.path)
	if err != nil {
		log.Warn("provider request failed", slog.Any("error", err))
		return []Candidate{}
	}
	if resp.IsError() {
		log.Warn("provider returned error status", slog.Int("status", resp.StatusCode()))
		return []Candidate{}
	}
	body := resp.String()
	if !gjson.Valid(body) {
		log.Warn("provider returned malformed json")
		return []Candidate{}
	}

	out := make([]Candidate, 0)
	gjson.Get(body, a.spec.items).ForEach(func(_, item gjson.Result) bool {
		c := a.spec.mapper(item)
		if c.Title == "" || c.URL == "" {
			return true
		}
		c.Source = a.spec.source
		c.Kind = a.spec.kind
		c.Skills = mergeSkills(c.Skills, deriveSkills(c.Title+" "+c.Description, p.Skills))
		out = append(out, c)
		return true
	})
	log.Debug("provider search done", slog.Int("count", len(out)))
	return out
}

func bearer(r *resty.Request, apiKey string) {
	r.SetAuthToken(apiKey)
}

// keywords turns a profile into a search phrase.
func keywords(p Profile) string {
	if q := strings.TrimSpace(p.Query); q != "" {
		return q
	}
	skills := p.Skills
	if len(skills) > 5 {
		skills = skills[:5]
	}
	return strings.Join(skills, " ")
}

func stringArray(r gjson.Result) []string {
	out := make([]string, 0)
	for _, v := range r.Array() {
		if s := strings.TrimSpace(v.String()); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func salaryFrom(min, max, currency gjson.Result) *Salary {
	if !min.Exists() && !max.Exists() {
		return nil
	}
	cur := currency.String()
	if cur == "" {
		cur = "USD"
	}
	return &Salary{Min: min.Float(), Max: max.Float(), Currency: cur}
}

func ratingFrom(score, count gjson.Result) *Rating {
	if !score.Exists() {
		return nil
	}
	return &Rating{Score: score.Float(), Count: int(count.Int())}
}

func normalizeLevel(s string) model.CourseLevel {
	s = strings.ToLower(s)
	switch {
	case strings.Contains(s, "advanced"):
		return model.LevelAdvanced
	case strings.Contains(s, "intermediate"):
		return model.LevelIntermediate
	case strings.Contains(s, "begin"), strings.Contains(s, "introductory"), strings.Contains(s, "all"):
		return model.LevelBeginner
	}
	return ""
}
