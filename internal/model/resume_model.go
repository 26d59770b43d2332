package model

import (
	"time"

	"github.com/google/uuid"
)

type ProcessingStatus string

const (
	StatusPending    ProcessingStatus = "pending"
	StatusProcessing ProcessingStatus = "processing"
	StatusCompleted  ProcessingStatus = "completed"
	StatusFailed     ProcessingStatus = "failed"
)

type Resume struct {
	ID               uuid.UUID        `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID           uuid.UUID        `gorm:"type:uuid;not null;index:idx_resumes_user_created,priority:1" json:"user_id"`
	Filename         string           `gorm:"type:varchar(255);not null" json:"filename"`
	OriginalName     string           `gorm:"type:varchar(255);not null" json:"original_name"`
	FilePath         string           `gorm:"type:text;not null" json:"file_path"`
	FileSize         int64            `gorm:"not null" json:"file_size"`
	MimeType         string           `gorm:"type:varchar(150);not null" json:"mime_type"`
	ProcessingStatus ProcessingStatus `gorm:"type:varchar(20);not null;default:pending" json:"processing_status"`
	ProcessingError  *string          `gorm:"type:text" json:"processing_error"`
	ExtractedText    string           `gorm:"type:text" json:"extracted_text"`
	ExtractedData    *ExtractedData   `gorm:"type:jsonb;serializer:json" json:"extracted_data"`
	CreatedAt        time.Time        `gorm:"index:idx_resumes_user_created,priority:2,sort:desc" json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}

func (r *Resume) TableName() string {
	return "resumes"
}
