package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/fadilmartias/careervision/internal/config"
	"github.com/fadilmartias/careervision/internal/matching"
	"github.com/fadilmartias/careervision/internal/model"
	"github.com/fadilmartias/careervision/internal/provider"
	"github.com/fadilmartias/careervision/internal/repository"
	"github.com/fadilmartias/careervision/internal/response"
	"github.com/google/uuid"
	"github.com/lithammer/shortuuid/v4"
	"golang.org/x/sync/errgroup"
)

type AdapterRegistry interface {
	Adapters(kind model.RecommendationType) []provider.Adapter
}

type RefreshResult struct {
	Kind    model.RecommendationType `json:"kind"`
	Added   int                      `json:"added"`
	Version int64                    `json:"version"`
}

type RefreshAllResult struct {
	JobsAdded    int `json:"jobsAdded"`
	CoursesAdded int `json:"coursesAdded"`
}

type RecommendationListFilter struct {
	Source model.Source
	Level  model.CourseLevel
	Page   int
	Limit  int
}

type RecommendationUsecase struct {
	milestones repository.MilestoneRepository
	recs       repository.RecommendationRepository
	registry   AdapterRegistry
	scorer     *matching.Scorer
	cfg        *config.RecommendationConfig
	timeout    time.Duration
	now        func() time.Time
}

func NewRecommendationUsecase(
	milestones repository.MilestoneRepository,
	recs repository.RecommendationRepository,
	registry AdapterRegistry,
	scorer *matching.Scorer,
	cfg *config.RecommendationConfig,
	timeout time.Duration,
) *RecommendationUsecase {
	if scorer == nil {
		scorer = matching.NewScorer(nil)
	}
	return &RecommendationUsecase{
		milestones: milestones,
		recs:       recs,
		registry:   registry,
		scorer:     scorer,
		cfg:        cfg,
		timeout:    timeout,
		now:        time.Now,
	}
}

// Refresh replaces the user's recommendations of one kind with a freshly
// scored batch. Provider failures only shrink the batch; an empty batch
// still retires the previous one.
func (uc *RecommendationUsecase) Refresh(ctx context.Context, userID uuid.UUID, kind model.RecommendationType) (RefreshResult, error) {
	log := slog.With(
		slog.String("trace_id", shortuuid.New()),
		slog.String("user_id", userID.String()),
		slog.String("kind", string(kind)),
	)

	milestones, err := uc.milestones.ListByUser(ctx, userID)
	if err != nil {
		return RefreshResult{}, fmt.Errorf("load milestones: %w", err)
	}
	skills := matching.NormalizeSkills(milestones)

	candidates := uc.gather(ctx, kind, provider.Profile{Skills: skills}, log)
	ranked := uc.rank(kind, skills, candidates)

	now := uc.now()
	version := now.UnixNano()
	if len(ranked) == 0 {
		if err := uc.recs.DeactivateOlder(ctx, userID, kind, version); err != nil {
			return RefreshResult{}, fmt.Errorf("retire previous recommendations: %w", err)
		}
		log.Info("refresh produced no recommendations, previous batch retired",
			slog.Int("candidates", len(candidates)))
		return RefreshResult{Kind: kind, Version: version}, nil
	}

	rows := slice.Map(ranked, func(idx int, s scoredCandidate) model.Recommendation {
		return toRecommendation(userID, s, version, now)
	})
	if err := uc.recs.CreateBatch(ctx, rows); err != nil {
		return RefreshResult{}, fmt.Errorf("store recommendations: %w", err)
	}
	if err := uc.recs.DeactivateOlder(ctx, userID, kind, version); err != nil {
		return RefreshResult{}, fmt.Errorf("retire previous recommendations: %w", err)
	}

	log.Info("recommendations refreshed",
		slog.Int("candidates", len(candidates)),
		slog.Int("added", len(rows)),
		slog.Int64("version", version))
	return RefreshResult{Kind: kind, Added: len(rows), Version: version}, nil
}

func (uc *RecommendationUsecase) RefreshAll(ctx context.Context, userID uuid.UUID) (RefreshAllResult, error) {
	var jobs, courses RefreshResult
	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		jobs, err = uc.Refresh(ctx, userID, model.RecommendationJob)
		return err
	})
	eg.Go(func() error {
		var err error
		courses, err = uc.Refresh(ctx, userID, model.RecommendationCourse)
		return err
	})
	if err := eg.Wait(); err != nil {
		return RefreshAllResult{}, err
	}
	return RefreshAllResult{JobsAdded: jobs.Added, CoursesAdded: courses.Added}, nil
}

// gather queries every adapter of the kind at once and waits for all of
// them. Results are deduplicated by source and external id.
func (uc *RecommendationUsecase) gather(ctx context.Context, kind model.RecommendationType, profile provider.Profile, log *slog.Logger) []provider.Candidate {
	adapters := uc.registry.Adapters(kind)
	slots := make([][]provider.Candidate, len(adapters))

	var eg errgroup.Group
	for i, a := range adapters {
		eg.Go(func() error {
			actx, cancel := context.WithTimeout(ctx, uc.timeout)
			defer cancel()
			slots[i] = a.Search(actx, profile)
			log.Debug("adapter finished", slog.String("source", string(a.Source())), slog.Int("count", len(slots[i])))
			return nil
		})
	}
	_ = eg.Wait()

	seen := make(map[string]struct{})
	var out []provider.Candidate
	for _, slot := range slots {
		for _, c := range slot {
			key := c.Key()
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, c)
		}
	}
	return out
}

type scoredCandidate struct {
	provider.Candidate
	Score int
}

func (uc *RecommendationUsecase) rank(kind model.RecommendationType, skills []string, candidates []provider.Candidate) []scoredCandidate {
	threshold := uc.cfg.MinJobScore
	if kind == model.RecommendationCourse {
		threshold = uc.cfg.MinCourseScore
	}

	out := make([]scoredCandidate, 0, len(candidates))
	for _, c := range candidates {
		var score int
		if kind == model.RecommendationJob {
			score = uc.scorer.JobScore(skills, c.Skills)
		} else {
			score = uc.scorer.CourseScore(skills, c.Skills)
		}
		if score < threshold {
			continue
		}
		out = append(out, scoredCandidate{Candidate: c, Score: score})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].Title < out[j].Title
	})
	if len(out) > uc.cfg.MaxRetained {
		out = out[:uc.cfg.MaxRetained]
	}
	return out
}

func toRecommendation(userID uuid.UUID, s scoredCandidate, version int64, now time.Time) model.Recommendation {
	rec := model.Recommendation{
		UserID:       userID,
		Type:         s.Kind,
		Title:        s.Title,
		Description:  s.Description,
		Source:       s.Source,
		ExternalID:   s.ID,
		URL:          s.URL,
		MatchScore:   s.Score,
		Company:      s.Company,
		Location:     s.Location,
		JobType:      s.JobType,
		Requirements: s.Requirements,
		Provider:     s.Provider,
		Instructor:   s.Instructor,
		Duration:     s.Duration,
		Level:        s.Level,
		Skills:       s.Skills,
		Tags:         s.Tags,
		PostedDate:   now,
		IsActive:     true,
		BatchVersion: version,
		LastUpdated:  now,
	}
	if s.Salary != nil {
		rec.Salary = fmt.Sprintf("%s %.0f - %.0f", s.Salary.Currency, s.Salary.Min, s.Salary.Max)
	}
	if s.Price != nil {
		if s.Price.Free {
			rec.Price = "Free"
		} else {
			rec.Price = fmt.Sprintf("%s %.2f", s.Price.Currency, s.Price.Amount)
		}
	}
	if s.Rating != nil {
		rec.Rating = s.Rating.Score
		rec.RatingCount = s.Rating.Count
	}
	return rec
}

func (uc *RecommendationUsecase) ListJobs(ctx context.Context, userID uuid.UUID, filter RecommendationListFilter) ([]model.Recommendation, *response.Pagination, error) {
	filter.Level = ""
	return uc.list(ctx, userID, model.RecommendationJob, filter)
}

func (uc *RecommendationUsecase) ListCourses(ctx context.Context, userID uuid.UUID, filter RecommendationListFilter) ([]model.Recommendation, *response.Pagination, error) {
	return uc.list(ctx, userID, model.RecommendationCourse, filter)
}

func (uc *RecommendationUsecase) list(ctx context.Context, userID uuid.UUID, kind model.RecommendationType, filter RecommendationListFilter) ([]model.Recommendation, *response.Pagination, error) {
	if filter.Source != "" && !filter.Source.Valid() {
		return nil, nil, invalid("invalid filter", map[string]string{"source": "unknown source"})
	}
	if filter.Level != "" && !filter.Level.Valid() {
		return nil, nil, invalid("invalid filter", map[string]string{"level": "must be beginner, intermediate or advanced"})
	}
	page, limit := pageWindow(filter.Page, filter.Limit, defaultRecommendationLimit)
	probe := response.NewPagination(page, limit, 0)

	recs, total, err := uc.recs.ListLatest(ctx, userID, kind, repository.RecommendationFilter{
		Source: filter.Source,
		Level:  filter.Level,
		Offset: probe.Offset(),
		Limit:  limit,
	})
	if err != nil {
		return nil, nil, err
	}
	return recs, response.NewPagination(page, limit, total), nil
}

func (uc *RecommendationUsecase) ToggleSave(ctx context.Context, userID, id uuid.UUID) (*model.Recommendation, error) {
	return uc.updateFlags(ctx, userID, id, func(rec *model.Recommendation, now time.Time) {
		rec.IsSaved = !rec.IsSaved
	})
}

func (uc *RecommendationUsecase) MarkApplied(ctx context.Context, userID, id uuid.UUID) (*model.Recommendation, error) {
	return uc.updateFlags(ctx, userID, id, func(rec *model.Recommendation, now time.Time) {
		rec.IsApplied = true
		rec.AppliedAt = &now
	})
}

func (uc *RecommendationUsecase) updateFlags(ctx context.Context, userID, id uuid.UUID, apply func(*model.Recommendation, time.Time)) (*model.Recommendation, error) {
	rec, err := uc.recs.FindByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if !rec.IsActive {
		return nil, ErrRecommendationInactive
	}
	now := uc.now()
	apply(rec, now)
	rec.UpdatedAt = now
	if err := uc.recs.UpdateFlags(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (uc *RecommendationUsecase) Stats(ctx context.Context, userID uuid.UUID) ([]repository.TypeStats, error) {
	stats, err := uc.recs.Stats(ctx, userID)
	if err != nil {
		return nil, err
	}
	// both kinds are always reported, even without rows
	out := make([]repository.TypeStats, 0, 2)
	for _, kind := range []model.RecommendationType{model.RecommendationJob, model.RecommendationCourse} {
		row := repository.TypeStats{Type: kind}
		for _, s := range stats {
			if s.Type == kind {
				row = s
			}
		}
		out = append(out, row)
	}
	return out, nil
}
