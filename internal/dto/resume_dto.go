package dto

import (
	"time"

	"github.com/fadilmartias/careervision/internal/model"
	"github.com/google/uuid"
)

// ResumeDTO leaves out the raw text and storage path.
type ResumeDTO struct {
	ID               uuid.UUID              `json:"id"`
	Filename         string                 `json:"filename"`
	OriginalName     string                 `json:"original_name"`
	FileSize         int64                  `json:"file_size"`
	MimeType         string                 `json:"mime_type"`
	ProcessingStatus model.ProcessingStatus `json:"processing_status"`
	ProcessingError  *string                `json:"processing_error,omitempty"`
	ExtractedData    *model.ExtractedData   `json:"extracted_data,omitempty"`
	CreatedAt        time.Time              `json:"created_at"`
	UpdatedAt        time.Time              `json:"updated_at"`
}

func NewResumeDTO(r model.Resume) ResumeDTO {
	return ResumeDTO{
		ID:               r.ID,
		Filename:         r.Filename,
		OriginalName:     r.OriginalName,
		FileSize:         r.FileSize,
		MimeType:         r.MimeType,
		ProcessingStatus: r.ProcessingStatus,
		ProcessingError:  r.ProcessingError,
		ExtractedData:    r.ExtractedData,
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
	}
}

type ParseTextRequest struct {
	Text string `json:"text"`
}
