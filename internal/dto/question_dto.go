package dto

import (
	"time"

	"github.com/fadilmartias/careervision/internal/model"
	"github.com/google/uuid"
)

type AskRequest struct {
	Question string `json:"question"`
}

type RateRequest struct {
	Helpful *bool `json:"helpful"`
}

type QuestionDTO struct {
	ID             uuid.UUID              `json:"id"`
	Question       string                 `json:"question"`
	Answer         string                 `json:"answer"`
	Category       model.QuestionCategory `json:"category"`
	Confidence     int                    `json:"confidence"`
	Helpful        *bool                  `json:"helpful"`
	ProcessingTime int64                  `json:"processing_time"`
	CreatedAt      time.Time              `json:"created_at"`
}

func NewQuestionDTO(q model.Question) QuestionDTO {
	return QuestionDTO{
		ID:             q.ID,
		Question:       q.Question,
		Answer:         q.Answer,
		Category:       q.Category,
		Confidence:     q.Confidence,
		Helpful:        q.Helpful,
		ProcessingTime: q.ProcessingTime,
		CreatedAt:      q.CreatedAt,
	}
}
