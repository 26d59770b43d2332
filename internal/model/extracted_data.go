package model

import "time"

// ExtractedData is the structured result of parsing a resume's raw text.
type ExtractedData struct {
	PersonalInfo   PersonalInfo           `json:"personalInfo"`
	Skills         []string               `json:"skills"`
	Experience     []ExtractedExperience  `json:"experience"`
	Education      []ExtractedEducation   `json:"education"`
	Certifications []ExtractedCert        `json:"certifications"`
	Projects       []ExtractedProject     `json:"projects"`
	Achievements   []ExtractedAchievement `json:"achievements"`
}

type PersonalInfo struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
}

type ExtractedExperience struct {
	Title        string     `json:"title"`
	Company      string     `json:"company"`
	Location     string     `json:"location,omitempty"`
	Duration     string     `json:"duration,omitempty"`
	Description  string     `json:"description"`
	StartDate    *time.Time `json:"startDate"`
	EndDate      *time.Time `json:"endDate"`
	Skills       []string   `json:"skills"`
	Technologies []string   `json:"technologies"`
	Confidence   float64    `json:"confidence"`
}

type ExtractedEducation struct {
	Degree      string     `json:"degree"`
	Institution string     `json:"institution"`
	Year        string     `json:"year,omitempty"`
	Description string     `json:"description,omitempty"`
	StartDate   *time.Time `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
	Confidence  float64    `json:"confidence"`
}

type ExtractedCert struct {
	Title       string     `json:"title"`
	Issuer      string     `json:"issuer"`
	Description string     `json:"description"`
	StartDate   *time.Time `json:"startDate"`
	Confidence  float64    `json:"confidence"`
}

type ExtractedProject struct {
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Technologies []string   `json:"technologies"`
	StartDate    *time.Time `json:"startDate"`
	EndDate      *time.Time `json:"endDate"`
	Confidence   float64    `json:"confidence"`
}

type ExtractedAchievement struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	StartDate   *time.Time `json:"startDate"`
	Confidence  float64    `json:"confidence"`
}

// NewExtractedData returns a value whose arrays marshal as [] rather than null.
func NewExtractedData() ExtractedData {
	return ExtractedData{
		Skills:         []string{},
		Experience:     []ExtractedExperience{},
		Education:      []ExtractedEducation{},
		Certifications: []ExtractedCert{},
		Projects:       []ExtractedProject{},
		Achievements:   []ExtractedAchievement{},
	}
}

// Total counts every extracted career event.
func (d ExtractedData) Total() int {
	return len(d.Experience) + len(d.Education) + len(d.Certifications) + len(d.Projects) + len(d.Achievements)
}
