package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/fadilmartias/careervision/internal/insight"
	"github.com/fadilmartias/careervision/internal/model"
	"github.com/fadilmartias/careervision/internal/repository"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

type InsightUsecase struct {
	milestones repository.MilestoneRepository
	recs       repository.RecommendationRepository
	resumes    repository.ResumeRepository
	now        func() time.Time
}

func NewInsightUsecase(
	milestones repository.MilestoneRepository,
	recs repository.RecommendationRepository,
	resumes repository.ResumeRepository,
) *InsightUsecase {
	return &InsightUsecase{milestones: milestones, recs: recs, resumes: resumes, now: time.Now}
}

type careerData struct {
	milestones  []model.Milestone
	recs        []model.Recommendation
	resumeCount int64
}

func (uc *InsightUsecase) load(ctx context.Context, userID uuid.UUID, withRecs bool) (careerData, error) {
	var d careerData
	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		if d.milestones, err = uc.milestones.ListByUser(ctx, userID); err != nil {
			return fmt.Errorf("load milestones: %w", err)
		}
		return nil
	})
	if withRecs {
		eg.Go(func() error {
			var err error
			if d.recs, err = uc.recs.ListActive(ctx, userID); err != nil {
				return fmt.Errorf("load recommendations: %w", err)
			}
			return nil
		})
	}
	eg.Go(func() error {
		var err error
		if d.resumeCount, err = uc.resumes.CountByUser(ctx, userID); err != nil {
			return fmt.Errorf("count resumes: %w", err)
		}
		return nil
	})
	return d, eg.Wait()
}

func (uc *InsightUsecase) Career(ctx context.Context, userID uuid.UUID) ([]insight.Insight, error) {
	d, err := uc.load(ctx, userID, true)
	if err != nil {
		return nil, err
	}
	return insight.CareerInsights(d.milestones, d.recs, d.resumeCount), nil
}

func (uc *InsightUsecase) Analytics(ctx context.Context, userID uuid.UUID) (insight.Analytics, error) {
	d, err := uc.load(ctx, userID, false)
	if err != nil {
		return insight.Analytics{}, err
	}
	return insight.BuildAnalytics(d.milestones, d.resumeCount, uc.now()), nil
}

func (uc *InsightUsecase) Report(ctx context.Context, userID uuid.UUID) (insight.Report, error) {
	d, err := uc.load(ctx, userID, true)
	if err != nil {
		return insight.Report{}, err
	}
	return insight.BuildReport(userID, d.milestones, d.recs, d.resumeCount, uc.now()), nil
}
