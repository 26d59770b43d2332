package repository

import (
	"context"

	"github.com/fadilmartias/careervision/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=./question_repository.go -destination=./mocks/question_repository.mock.go -package=repomocks

type QuestionRepository interface {
	Create(ctx context.Context, q *model.Question) error
	ListByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]model.Question, int64, error)
	UpdateHelpful(ctx context.Context, userID, id uuid.UUID, helpful bool) error
}

type GormQuestionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) *GormQuestionRepository {
	return &GormQuestionRepository{db}
}

func (r *GormQuestionRepository) Create(ctx context.Context, q *model.Question) error {
	return r.db.WithContext(ctx).Create(q).Error
}

func (r *GormQuestionRepository) ListByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]model.Question, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Question{}).Where("user_id = ?", userID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var qs []model.Question
	err := q.Order("created_at DESC").Offset(offset).Limit(limit).Find(&qs).Error
	return qs, total, err
}

func (r *GormQuestionRepository) UpdateHelpful(ctx context.Context, userID, id uuid.UUID, helpful bool) error {
	res := r.db.WithContext(ctx).
		Model(&model.Question{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("helpful", helpful)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
