package dto

import (
	"github.com/fadilmartias/careervision/internal/model"
	"github.com/fadilmartias/careervision/internal/repository"
)

type RecommendationStatsDTO struct {
	Jobs    repository.TypeStats `json:"jobs"`
	Courses repository.TypeStats `json:"courses"`
}

func NewRecommendationStatsDTO(stats []repository.TypeStats) RecommendationStatsDTO {
	out := RecommendationStatsDTO{
		Jobs:    repository.TypeStats{Type: model.RecommendationJob},
		Courses: repository.TypeStats{Type: model.RecommendationCourse},
	}
	for _, s := range stats {
		switch s.Type {
		case model.RecommendationJob:
			out.Jobs = s
		case model.RecommendationCourse:
			out.Courses = s
		}
	}
	return out
}
