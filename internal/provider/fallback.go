package provider

import (
	"context"
	"log/slog"

	"github.com/fadilmartias/careervision/internal/matching"
	"github.com/fadilmartias/careervision/internal/model"
)

type keepFunc func(c Candidate, p Profile) bool

// FallbackAdapter serves a fixed template set when a source has no credentials.
type FallbackAdapter struct {
	source    model.Source
	kind      model.RecommendationType
	templates []Candidate
	keep      keepFunc
}

func (a *FallbackAdapter) Source() model.Source { return a.source }

func (a *FallbackAdapter) Kind() model.RecommendationType { return a.kind }

func (a *FallbackAdapter) Search(_ context.Context, p Profile) []Candidate {
	out := make([]Candidate, 0, len(a.templates))
	for _, t := range a.templates {
		if a.keep(t, p) {
			out = append(out, t.clone())
		}
	}
	slog.Debug("fallback adapter served templates",
		slog.String("source", string(a.source)), slog.Int("count", len(out)))
	return out
}

// keepHeld keeps a job template when the user already holds one of its
// skills. A profile without skills keeps every template for discovery.
func keepHeld(c Candidate, p Profile) bool {
	if len(p.Skills) == 0 {
		return true
	}
	for _, skill := range c.Skills {
		if matching.HeldBy(p.Skills, skill) {
			return true
		}
	}
	return false
}

func keepRelated(c Candidate, p Profile) bool {
	for _, skill := range c.Skills {
		if matching.OverlapsAny(p.Skills, skill) {
			return true
		}
	}
	return false
}

// keepRelatedOrDiscover also lets unrelated courses through with probability 1-threshold.
func keepRelatedOrDiscover(r matching.Rand, threshold float64) keepFunc {
	return func(c Candidate, p Profile) bool {
		return keepRelated(c, p) || r.Float64() > threshold
	}
}

func keepRelatedOrFree(c Candidate, p Profile) bool {
	return keepRelated(c, p) || (c.Price != nil && c.Price.Free)
}

func NewLinkedInFallback() *FallbackAdapter {
	return &FallbackAdapter{source: model.SourceLinkedIn, kind: model.RecommendationJob, templates: linkedInTemplates, keep: keepHeld}
}

func NewIndeedFallback() *FallbackAdapter {
	return &FallbackAdapter{source: model.SourceIndeed, kind: model.RecommendationJob, templates: indeedTemplates, keep: keepHeld}
}

func NewUnstopFallback() *FallbackAdapter {
	return &FallbackAdapter{source: model.SourceUnstop, kind: model.RecommendationJob, templates: unstopTemplates, keep: keepHeld}
}

func NewCourseraFallback(r matching.Rand) *FallbackAdapter {
	return &FallbackAdapter{source: model.SourceCoursera, kind: model.RecommendationCourse, templates: courseraTemplates, keep: keepRelatedOrDiscover(r, 0.5)}
}

func NewUdemyFallback(r matching.Rand) *FallbackAdapter {
	return &FallbackAdapter{source: model.SourceUdemy, kind: model.RecommendationCourse, templates: udemyTemplates, keep: keepRelatedOrDiscover(r, 0.4)}
}

func NewEdXFallback() *FallbackAdapter {
	return &FallbackAdapter{source: model.SourceEdX, kind: model.RecommendationCourse, templates: edxTemplates, keep: keepRelatedOrFree}
}
