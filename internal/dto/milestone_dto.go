package dto

import (
	"github.com/fadilmartias/careervision/internal/model"
	"github.com/fadilmartias/careervision/internal/usecase"
)

type MilestoneRequest struct {
	Type         model.MilestoneType `json:"type"`
	Title        string              `json:"title"`
	Description  string              `json:"description"`
	Company      string              `json:"company"`
	Location     string              `json:"location"`
	Duration     string              `json:"duration"`
	StartDate    *Date               `json:"start_date"`
	EndDate      *Date               `json:"end_date"`
	Skills       []string            `json:"skills"`
	Technologies []string            `json:"technologies"`
}

func (r MilestoneRequest) Input() usecase.MilestoneInput {
	return usecase.MilestoneInput{
		Type:         r.Type,
		Title:        r.Title,
		Description:  r.Description,
		Company:      r.Company,
		Location:     r.Location,
		Duration:     r.Duration,
		StartDate:    r.StartDate.Ptr(),
		EndDate:      r.EndDate.Ptr(),
		Skills:       r.Skills,
		Technologies: r.Technologies,
	}
}
