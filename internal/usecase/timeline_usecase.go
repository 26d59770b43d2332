package usecase

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/fadilmartias/careervision/internal/insight"
	"github.com/fadilmartias/careervision/internal/model"
	"github.com/fadilmartias/careervision/internal/repository"
	"github.com/fadilmartias/careervision/internal/response"
	"github.com/google/uuid"
)

type MilestoneInput struct {
	Type         model.MilestoneType
	Title        string
	Description  string
	Company      string
	Location     string
	Duration     string
	StartDate    *time.Time
	EndDate      *time.Time
	Skills       []string
	Technologies []string
}

type TimelineFilter struct {
	// Type is a milestone type or "all".
	Type  string
	Page  int
	Limit int
}

type TimelineUsecase struct {
	milestones repository.MilestoneRepository
	now        func() time.Time
}

func NewTimelineUsecase(milestones repository.MilestoneRepository) *TimelineUsecase {
	return &TimelineUsecase{milestones: milestones, now: time.Now}
}

func (uc *TimelineUsecase) List(ctx context.Context, userID uuid.UUID, filter TimelineFilter) ([]model.Milestone, *response.Pagination, error) {
	var kind model.MilestoneType
	if filter.Type != "" && filter.Type != "all" {
		kind = model.MilestoneType(filter.Type)
		if !kind.Valid() {
			return nil, nil, invalid("invalid filter", map[string]string{"type": "unknown milestone type"})
		}
	}
	page, limit := pageWindow(filter.Page, filter.Limit, defaultTimelineLimit)
	window := response.NewPagination(page, limit, 0)

	ms, total, err := uc.milestones.List(ctx, userID, repository.MilestoneFilter{
		Type:   kind,
		Offset: window.Offset(),
		Limit:  limit,
	})
	if err != nil {
		return nil, nil, err
	}
	return ms, response.NewPagination(page, limit, total), nil
}

func (uc *TimelineUsecase) Create(ctx context.Context, userID uuid.UUID, in MilestoneInput) (*model.Milestone, error) {
	if err := validateMilestone(in); err != nil {
		return nil, err
	}
	m := &model.Milestone{
		UserID:               userID,
		IsManuallyAdded:      true,
		ExtractionConfidence: 1,
	}
	applyInput(m, in)
	if err := uc.milestones.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (uc *TimelineUsecase) Update(ctx context.Context, userID, id uuid.UUID, in MilestoneInput) (*model.Milestone, error) {
	if err := validateMilestone(in); err != nil {
		return nil, err
	}
	m, err := uc.milestones.FindByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	applyInput(m, in)
	m.UpdatedAt = uc.now()
	if err := uc.milestones.Update(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (uc *TimelineUsecase) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return uc.milestones.Delete(ctx, userID, id)
}

func (uc *TimelineUsecase) Analytics(ctx context.Context, userID uuid.UUID) (insight.TimelineStats, error) {
	ms, err := uc.milestones.ListByUser(ctx, userID)
	if err != nil {
		return insight.TimelineStats{}, err
	}
	return insight.TimelineAnalytics(ms, uc.now()), nil
}

func applyInput(m *model.Milestone, in MilestoneInput) {
	m.Type = in.Type
	m.Title = strings.TrimSpace(in.Title)
	m.Description = strings.TrimSpace(in.Description)
	m.Company = strings.TrimSpace(in.Company)
	m.Location = strings.TrimSpace(in.Location)
	m.Duration = strings.TrimSpace(in.Duration)
	m.StartDate = *in.StartDate
	m.EndDate = in.EndDate
	m.Skills = cleanList(in.Skills)
	m.Technologies = cleanList(in.Technologies)
}

func cleanList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func validateMilestone(in MilestoneInput) error {
	fields := map[string]string{}
	if !in.Type.Valid() {
		fields["type"] = "must be one of job, education, certification, achievement, project"
	}
	if n := utf8.RuneCountInString(strings.TrimSpace(in.Title)); n < 2 || n > 200 {
		fields["title"] = "must be between 2 and 200 characters"
	}
	if utf8.RuneCountInString(strings.TrimSpace(in.Description)) > 1000 {
		fields["description"] = "must be at most 1000 characters"
	}
	if in.StartDate == nil || in.StartDate.IsZero() {
		fields["start_date"] = "is required"
	} else if in.EndDate != nil && in.EndDate.Before(*in.StartDate) {
		fields["end_date"] = "must not be before start_date"
	}
	if len(fields) > 0 {
		return invalid("invalid milestone", fields)
	}
	return nil
}
