package provider

import (
	"time"

	"github.com/fadilmartias/careervision/internal/config"
	"github.com/fadilmartias/careervision/internal/matching"
	"github.com/fadilmartias/careervision/internal/model"
)

// Registry holds the adapters a refresh fans out to, grouped by kind.
type Registry struct {
	adapters map[model.RecommendationType][]Adapter
}

func NewRegistryFrom(adapters ...Adapter) *Registry {
	r := &Registry{adapters: make(map[model.RecommendationType][]Adapter)}
	for _, a := range adapters {
		r.adapters[a.Kind()] = append(r.adapters[a.Kind()], a)
	}
	return r
}

// NewRegistry chooses live or fallback per source from cfg. The cache is
// optional and only wraps live adapters.
func NewRegistry(cfg *config.ProviderConfig, rnd matching.Rand, cache CandidateCache) *Registry {
	if rnd == nil {
		rnd = matching.DefaultRand
	}
	type entry struct {
		source   model.Source
		live     func(baseURL, apiKey string, timeout time.Duration) *LiveAdapter
		fallback func() Adapter
	}
	entries := []entry{
		{model.SourceLinkedIn, NewLinkedInLive, func() Adapter { return NewLinkedInFallback() }},
		{model.SourceIndeed, NewIndeedLive, func() Adapter { return NewIndeedFallback() }},
		{model.SourceUnstop, NewUnstopLive, func() Adapter { return NewUnstopFallback() }},
		{model.SourceCoursera, NewCourseraLive, func() Adapter { return NewCourseraFallback(rnd) }},
		{model.SourceUdemy, NewUdemyLive, func() Adapter { return NewUdemyFallback(rnd) }},
		{model.SourceEdX, NewEdXLive, func() Adapter { return NewEdXFallback() }},
	}

	adapters := make([]Adapter, 0, len(entries))
	for _, e := range entries {
		if !cfg.UseLive(string(e.source)) {
			adapters = append(adapters, e.fallback())
			continue
		}
		src := cfg.Sources[string(e.source)]
		var a Adapter = e.live(src.BaseURL, src.APIKey, cfg.Timeout)
		if cache != nil {
			a = NewCachedAdapter(a, cache, cfg.CacheTTL)
		}
		adapters = append(adapters, a)
	}
	return NewRegistryFrom(adapters...)
}

func (r *Registry) Adapters(kind model.RecommendationType) []Adapter {
	return r.adapters[kind]
}
