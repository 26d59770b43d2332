package provider

import (
	"context"

	"github.com/fadilmartias/careervision/internal/model"
)

// Profile is what an adapter knows about the user it searches for.
type Profile struct {
	Skills []string
	Query  string
}

// Adapter turns one external source into Candidates. Search never fails:
// any upstream problem is logged and yields an empty list.
type Adapter interface {
	Source() model.Source
	Kind() model.RecommendationType
	Search(ctx context.Context, profile Profile) []Candidate
}

type Salary struct {
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Currency string  `json:"currency"`
}

type Price struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
	Free     bool    `json:"free"`
}

type Rating struct {
	Score float64 `json:"score"`
	Count int     `json:"count"`
}

// Candidate is a provider record mapped to the common schema, before scoring.
type Candidate struct {
	ID           string                   `json:"id"`
	Source       model.Source             `json:"source"`
	Kind         model.RecommendationType `json:"kind"`
	Title        string                   `json:"title"`
	Company      string                   `json:"company,omitempty"`
	Provider     string                   `json:"provider,omitempty"`
	Instructor   string                   `json:"instructor,omitempty"`
	Location     string                   `json:"location,omitempty"`
	Description  string                   `json:"description"`
	URL          string                   `json:"url"`
	JobType      string                   `json:"jobType,omitempty"`
	Salary       *Salary                  `json:"salary,omitempty"`
	Price        *Price                   `json:"price,omitempty"`
	Rating       *Rating                  `json:"rating,omitempty"`
	Level        model.CourseLevel        `json:"level,omitempty"`
	Duration     string                   `json:"duration,omitempty"`
	Requirements []string                 `json:"requirements,omitempty"`
	Skills       []string                 `json:"skills"`
	Tags         []string                 `json:"tags,omitempty"`
}

// Key identifies a candidate across adapters for de-duplication.
func (c Candidate) Key() string {
	if c.ID != "" {
		return string(c.Source) + ":" + c.ID
	}
	return string(c.Source) + ":" + c.URL
}

func (c Candidate) clone() Candidate {
	out := c
	out.Requirements = append([]string(nil), c.Requirements...)
	out.Skills = append([]string(nil), c.Skills...)
	out.Tags = append([]string(nil), c.Tags...)
	if c.Salary != nil {
		s := *c.Salary
		out.Salary = &s
	}
	if c.Price != nil {
		p := *c.Price
		out.Price = &p
	}
	if c.Rating != nil {
		r := *c.Rating
		out.Rating = &r
	}
	return out
}
