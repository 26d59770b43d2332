package model

import (
	"time"

	"github.com/google/uuid"
)

type RecommendationType string

const (
	RecommendationJob    RecommendationType = "job"
	RecommendationCourse RecommendationType = "course"
)

func (t RecommendationType) Valid() bool {
	return t == RecommendationJob || t == RecommendationCourse
}

type Source string

const (
	SourceLinkedIn Source = "linkedin"
	SourceIndeed   Source = "indeed"
	SourceUnstop   Source = "unstop"
	SourceCoursera Source = "coursera"
	SourceUdemy    Source = "udemy"
	SourceEdX      Source = "edx"
)

var Sources = []Source{SourceLinkedIn, SourceIndeed, SourceUnstop, SourceCoursera, SourceUdemy, SourceEdX}

func (s Source) Valid() bool {
	for _, src := range Sources {
		if src == s {
			return true
		}
	}
	return false
}

type CourseLevel string

const (
	LevelBeginner     CourseLevel = "beginner"
	LevelIntermediate CourseLevel = "intermediate"
	LevelAdvanced     CourseLevel = "advanced"
)

func (l CourseLevel) Valid() bool {
	return l == LevelBeginner || l == LevelIntermediate || l == LevelAdvanced
}

type Recommendation struct {
	ID          uuid.UUID          `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID      uuid.UUID          `gorm:"type:uuid;not null;index:idx_recommendations_user_type,priority:1" json:"user_id"`
	Type        RecommendationType `gorm:"type:varchar(10);not null;index:idx_recommendations_user_type,priority:2" json:"type"`
	Title       string             `gorm:"type:varchar(255);not null" json:"title"`
	Description string             `gorm:"type:text;not null" json:"description"`
	Source      Source             `gorm:"type:varchar(20);not null" json:"source"`
	ExternalID  string             `gorm:"type:varchar(255)" json:"external_id"`
	URL         string             `gorm:"type:text;not null" json:"url"`
	MatchScore  int                `gorm:"not null;check:match_score >= 0 AND match_score <= 100" json:"match_score"`

	// job
	Company      string   `gorm:"type:varchar(255)" json:"company,omitempty"`
	Location     string   `gorm:"type:varchar(255)" json:"location,omitempty"`
	Salary       string   `gorm:"type:varchar(100)" json:"salary,omitempty"`
	JobType      string   `gorm:"type:varchar(50)" json:"job_type,omitempty"`
	Requirements []string `gorm:"type:jsonb;serializer:json" json:"requirements,omitempty"`

	// course
	Provider    string      `gorm:"type:varchar(100)" json:"provider,omitempty"`
	Instructor  string      `gorm:"type:varchar(255)" json:"instructor,omitempty"`
	Duration    string      `gorm:"type:varchar(100)" json:"duration,omitempty"`
	Level       CourseLevel `gorm:"type:varchar(20)" json:"level,omitempty"`
	Price       string      `gorm:"type:varchar(50)" json:"price,omitempty"`
	Rating      float64     `gorm:"type:float" json:"rating,omitempty"`
	RatingCount int         `json:"rating_count,omitempty"`

	Skills       []string   `gorm:"type:jsonb;serializer:json" json:"skills"`
	Tags         []string   `gorm:"type:jsonb;serializer:json" json:"tags,omitempty"`
	PostedDate   time.Time  `json:"posted_date"`
	IsSaved      bool       `gorm:"default:false" json:"is_saved"`
	IsApplied    bool       `gorm:"default:false" json:"is_applied"`
	AppliedAt    *time.Time `json:"applied_at,omitempty"`
	IsActive     bool       `gorm:"default:true;index" json:"is_active"`
	BatchVersion int64      `gorm:"not null;index" json:"batch_version"`
	LastUpdated  time.Time  `json:"last_updated"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func (r *Recommendation) TableName() string {
	return "recommendations"
}
