package repository

import (
	"context"
	"time"

	"github.com/fadilmartias/careervision/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=./resume_repository.go -destination=./mocks/resume_repository.mock.go -package=repomocks

type ResumeRepository interface {
	Create(ctx context.Context, r *model.Resume) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Resume, error)
	FindByUser(ctx context.Context, userID, id uuid.UUID) (*model.Resume, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Resume, error)
	CountByUser(ctx context.Context, userID uuid.UUID) (int64, error)
	// Complete and Fail only move a resume out of processing, once.
	Complete(ctx context.Context, id uuid.UUID, text string, data *model.ExtractedData) error
	Fail(ctx context.Context, id uuid.UUID, message string) error
}

type GormResumeRepository struct {
	db *gorm.DB
}

func NewResumeRepository(db *gorm.DB) *GormResumeRepository {
	return &GormResumeRepository{db}
}

func (r *GormResumeRepository) Create(ctx context.Context, resume *model.Resume) error {
	return r.db.WithContext(ctx).Create(resume).Error
}

func (r *GormResumeRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Resume, error) {
	var resume model.Resume
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&resume).Error; err != nil {
		return nil, translate(err)
	}
	return &resume, nil
}

func (r *GormResumeRepository) FindByUser(ctx context.Context, userID, id uuid.UUID) (*model.Resume, error) {
	var resume model.Resume
	if err := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&resume).Error; err != nil {
		return nil, translate(err)
	}
	return &resume, nil
}

func (r *GormResumeRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Resume, error) {
	var resumes []model.Resume
	err := r.db.WithContext(ctx).
		Omit("extracted_text").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&resumes).Error
	return resumes, err
}

func (r *GormResumeRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Resume{}).Where("user_id = ?", userID).Count(&n).Error
	return n, err
}

func (r *GormResumeRepository) Complete(ctx context.Context, id uuid.UUID, text string, data *model.ExtractedData) error {
	return r.finish(ctx, id, &model.Resume{
		ProcessingStatus: model.StatusCompleted,
		ExtractedText:    text,
		ExtractedData:    data,
	}, "processing_status", "extracted_text", "extracted_data")
}

func (r *GormResumeRepository) Fail(ctx context.Context, id uuid.UUID, message string) error {
	return r.finish(ctx, id, &model.Resume{
		ProcessingStatus: model.StatusFailed,
		ProcessingError:  &message,
	}, "processing_status", "processing_error")
}

func (r *GormResumeRepository) finish(ctx context.Context, id uuid.UUID, values *model.Resume, columns ...string) error {
	values.UpdatedAt = time.Now()
	res := r.db.WithContext(ctx).
		Model(&model.Resume{}).
		Where("id = ? AND processing_status = ?", id, model.StatusProcessing).
		Select(append(columns, "updated_at")).
		Updates(values)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
