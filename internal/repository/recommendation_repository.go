package repository

import (
	"context"

	"github.com/fadilmartias/careervision/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=./recommendation_repository.go -destination=./mocks/recommendation_repository.mock.go -package=repomocks

type RecommendationFilter struct {
	Source model.Source
	Level  model.CourseLevel
	Offset int
	Limit  int
}

type TypeStats struct {
	Type    model.RecommendationType `json:"type"`
	Total   int64                    `json:"total"`
	Saved   int64                    `json:"saved"`
	Applied int64                    `json:"applied"`
}

type RecommendationRepository interface {
	// CreateBatch inserts all rows of one refresh in a single statement.
	CreateBatch(ctx context.Context, recs []model.Recommendation) error
	// DeactivateOlder retires every active row of the kind below version.
	DeactivateOlder(ctx context.Context, userID uuid.UUID, kind model.RecommendationType, version int64) error
	ListLatest(ctx context.Context, userID uuid.UUID, kind model.RecommendationType, filter RecommendationFilter) ([]model.Recommendation, int64, error)
	ListActive(ctx context.Context, userID uuid.UUID) ([]model.Recommendation, error)
	FindByID(ctx context.Context, userID, id uuid.UUID) (*model.Recommendation, error)
	UpdateFlags(ctx context.Context, rec *model.Recommendation) error
	Stats(ctx context.Context, userID uuid.UUID) ([]TypeStats, error)
}

type GormRecommendationRepository struct {
	db *gorm.DB
}

func NewRecommendationRepository(db *gorm.DB) *GormRecommendationRepository {
	return &GormRecommendationRepository{db}
}

const latestBatch = `batch_version = (SELECT MAX(r2.batch_version) FROM recommendations r2
	WHERE r2.user_id = recommendations.user_id AND r2.type = recommendations.type AND r2.is_active)`

func (r *GormRecommendationRepository) CreateBatch(ctx context.Context, recs []model.Recommendation) error {
	if len(recs) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).CreateInBatches(recs, len(recs)).Error
}

func (r *GormRecommendationRepository) DeactivateOlder(ctx context.Context, userID uuid.UUID, kind model.RecommendationType, version int64) error {
	return r.db.WithContext(ctx).
		Model(&model.Recommendation{}).
		Where("user_id = ? AND type = ? AND is_active AND batch_version < ?", userID, kind, version).
		Update("is_active", false).Error
}

func (r *GormRecommendationRepository) ListLatest(ctx context.Context, userID uuid.UUID, kind model.RecommendationType, filter RecommendationFilter) ([]model.Recommendation, int64, error) {
	q := r.db.WithContext(ctx).
		Model(&model.Recommendation{}).
		Where("user_id = ? AND type = ? AND is_active", userID, kind).
		Where(latestBatch)
	if filter.Source != "" {
		q = q.Where("source = ?", filter.Source)
	}
	if filter.Level != "" {
		q = q.Where("level = ?", filter.Level)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var recs []model.Recommendation
	err := q.Order("match_score DESC").Order("created_at DESC").
		Offset(filter.Offset).Limit(filter.Limit).
		Find(&recs).Error
	return recs, total, err
}

func (r *GormRecommendationRepository) ListActive(ctx context.Context, userID uuid.UUID) ([]model.Recommendation, error) {
	var recs []model.Recommendation
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND is_active", userID).
		Where(latestBatch).
		Order("match_score DESC").
		Find(&recs).Error
	return recs, err
}

func (r *GormRecommendationRepository) FindByID(ctx context.Context, userID, id uuid.UUID) (*model.Recommendation, error) {
	var rec model.Recommendation
	if err := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&rec).Error; err != nil {
		return nil, translate(err)
	}
	return &rec, nil
}

func (r *GormRecommendationRepository) UpdateFlags(ctx context.Context, rec *model.Recommendation) error {
	res := r.db.WithContext(ctx).
		Model(&model.Recommendation{}).
		Where("id = ? AND user_id = ?", rec.ID, rec.UserID).
		Select("is_saved", "is_applied", "applied_at", "updated_at").
		Updates(rec)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *GormRecommendationRepository) Stats(ctx context.Context, userID uuid.UUID) ([]TypeStats, error) {
	var stats []TypeStats
	err := r.db.WithContext(ctx).
		Model(&model.Recommendation{}).
		Select(`type,
			COUNT(*) AS total,
			SUM(CASE WHEN is_saved THEN 1 ELSE 0 END) AS saved,
			SUM(CASE WHEN is_applied THEN 1 ELSE 0 END) AS applied`).
		Where("user_id = ?", userID).
		Group("type").
		Order("type").
		Scan(&stats).Error
	return stats, err
}
