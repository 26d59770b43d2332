package model

import (
	"time"

	"github.com/google/uuid"
)

type MilestoneType string

const (
	MilestoneJob           MilestoneType = "job"
	MilestoneEducation     MilestoneType = "education"
	MilestoneCertification MilestoneType = "certification"
	MilestoneAchievement   MilestoneType = "achievement"
	MilestoneProject       MilestoneType = "project"
)

var MilestoneTypes = []MilestoneType{
	MilestoneJob, MilestoneEducation, MilestoneCertification, MilestoneAchievement, MilestoneProject,
}

func (t MilestoneType) Valid() bool {
	for _, mt := range MilestoneTypes {
		if mt == t {
			return true
		}
	}
	return false
}

type Milestone struct {
	ID                   uuid.UUID     `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID               uuid.UUID     `gorm:"type:uuid;not null;index:idx_milestones_user_start,priority:1;index:idx_milestones_user_type,priority:1" json:"user_id"`
	Type                 MilestoneType `gorm:"type:varchar(20);not null;index:idx_milestones_user_type,priority:2" json:"type"`
	Title                string        `gorm:"type:varchar(200);not null" json:"title"`
	Description          string        `gorm:"type:text" json:"description"`
	Company              string        `gorm:"type:varchar(200)" json:"company"`
	Location             string        `gorm:"type:varchar(200)" json:"location"`
	Duration             string        `gorm:"type:varchar(100)" json:"duration"`
	StartDate            time.Time     `gorm:"not null;index:idx_milestones_user_start,priority:2,sort:desc" json:"start_date"`
	EndDate              *time.Time    `json:"end_date"` // nil while ongoing
	Skills               []string      `gorm:"type:jsonb;serializer:json" json:"skills"`
	Technologies         []string      `gorm:"type:jsonb;serializer:json" json:"technologies"`
	IsManuallyAdded      bool          `gorm:"default:false" json:"is_manually_added"`
	ResumeID             *uuid.UUID    `gorm:"type:uuid" json:"resume_id,omitempty"`
	ExtractionConfidence float64       `gorm:"type:float;default:1" json:"extraction_confidence"`
	CreatedAt            time.Time     `json:"created_at"`
	UpdatedAt            time.Time     `json:"updated_at"`
}

func (m *Milestone) TableName() string {
	return "milestones"
}

// IsCurrent reports an ongoing milestone.
func (m *Milestone) IsCurrent() bool {
	return m.EndDate == nil
}

// EndOr returns the end date, or now for an ongoing milestone.
func (m *Milestone) EndOr(now time.Time) time.Time {
	if m.EndDate == nil {
		return now
	}
	return *m.EndDate
}
