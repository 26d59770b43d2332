package model

import (
	"time"

	"github.com/google/uuid"
)

type QuestionCategory string

const (
	CategoryCareerGap       QuestionCategory = "career-gap"
	CategorySkills          QuestionCategory = "skills"
	CategoryRecommendations QuestionCategory = "recommendations"
	CategoryGrowth          QuestionCategory = "growth"
	CategoryGeneral         QuestionCategory = "general"
)

func (c QuestionCategory) Valid() bool {
	switch c {
	case CategoryCareerGap, CategorySkills, CategoryRecommendations, CategoryGrowth, CategoryGeneral:
		return true
	}
	return false
}

type Question struct {
	ID             uuid.UUID        `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID         uuid.UUID        `gorm:"type:uuid;not null;index:idx_questions_user_created,priority:1" json:"user_id"`
	Question       string           `gorm:"type:varchar(500);not null" json:"question"`
	Answer         string           `gorm:"type:text;not null" json:"answer"`
	Category       QuestionCategory `gorm:"type:varchar(20);not null;default:general" json:"category"`
	Confidence     int              `gorm:"not null;default:80" json:"confidence"`
	Context        map[string]any   `gorm:"type:jsonb;serializer:json" json:"context"`
	Helpful        *bool            `json:"helpful"`
	ProcessingTime int64            `json:"processing_time"` // milliseconds
	CreatedAt      time.Time        `gorm:"index:idx_questions_user_created,priority:2,sort:desc" json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

func (q *Question) TableName() string {
	return "questions"
}
