package repository

import (
	"context"

	"github.com/fadilmartias/careervision/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=./milestone_repository.go -destination=./mocks/milestone_repository.mock.go -package=repomocks

type MilestoneFilter struct {
	Type   model.MilestoneType
	Offset int
	Limit  int
}

type MilestoneRepository interface {
	Create(ctx context.Context, m *model.Milestone) error
	Update(ctx context.Context, m *model.Milestone) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
	FindByID(ctx context.Context, userID, id uuid.UUID) (*model.Milestone, error)
	// ListByUser returns every milestone of the user, oldest start first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Milestone, error)
	// List pages through the user's milestones, newest start first.
	List(ctx context.Context, userID uuid.UUID, filter MilestoneFilter) ([]model.Milestone, int64, error)
}

type GormMilestoneRepository struct {
	db *gorm.DB
}

func NewMilestoneRepository(db *gorm.DB) *GormMilestoneRepository {
	return &GormMilestoneRepository{db}
}

func (r *GormMilestoneRepository) Create(ctx context.Context, m *model.Milestone) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *GormMilestoneRepository) Update(ctx context.Context, m *model.Milestone) error {
	res := r.db.WithContext(ctx).
		Model(&model.Milestone{}).
		Where("id = ? AND user_id = ?", m.ID, m.UserID).
		Select("type", "title", "description", "company", "location", "duration",
			"start_date", "end_date", "skills", "technologies", "updated_at").
		Updates(m)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *GormMilestoneRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&model.Milestone{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *GormMilestoneRepository) FindByID(ctx context.Context, userID, id uuid.UUID) (*model.Milestone, error) {
	var m model.Milestone
	err := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&m).Error
	if err != nil {
		return nil, translate(err)
	}
	return &m, nil
}

func (r *GormMilestoneRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Milestone, error) {
	var ms []model.Milestone
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("start_date ASC").Find(&ms).Error
	return ms, err
}

func (r *GormMilestoneRepository) List(ctx context.Context, userID uuid.UUID, filter MilestoneFilter) ([]model.Milestone, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Milestone{}).Where("user_id = ?", userID)
	if filter.Type != "" {
		q = q.Where("type = ?", filter.Type)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var ms []model.Milestone
	err := q.Order("start_date DESC").Offset(filter.Offset).Limit(filter.Limit).Find(&ms).Error
	return ms, total, err
}
