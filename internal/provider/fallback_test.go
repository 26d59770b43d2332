package provider

import (
	"context"
	"testing"

	"github.com/fadilmartias/careervision/internal/matching"
	"github.com/fadilmartias/careervision/internal/model"
	"github.com/stretchr/testify/assert"
)

func ids(cs []Candidate) []string {
	out := make([]string, 0, len(cs))
	for _, c := range cs {
		out = append(out, c.ID)
	}
	return out
}

func TestFallbackAdapter_Search(t *testing.T) {
	testCases := []struct {
		name    string
		adapter Adapter
		skills  []string
		wantIDs []string
	}{
		{
			name:    "linkedin keeps templates whose skill the user holds",
			adapter: NewLinkedInFallback(),
			skills:  []string{"python"},
			wantIDs: []string{"linkedin_job_2"},
		},
		{
			name:    "indeed with no skills serves every template",
			adapter: NewIndeedFallback(),
			skills:  nil,
			wantIDs: []string{"indeed_job_1", "indeed_job_2"},
		},
		{
			name:    "linkedin drops templates when skills share nothing",
			adapter: NewLinkedInFallback(),
			skills:  []string{"figma"},
			wantIDs: []string{},
		},
		{
			name:    "unstop matches held substring",
			adapter: NewUnstopFallback(),
			skills:  []string{"advanced sql"},
			wantIDs: []string{"unstop_job_2"},
		},
		{
			name:    "coursera lets everything through on a high draw",
			adapter: NewCourseraFallback(matching.Fixed(0.9)),
			skills:  nil,
			wantIDs: []string{"coursera_course_1", "coursera_course_2", "coursera_course_3"},
		},
		{
			name:    "coursera keeps only related courses on a low draw",
			adapter: NewCourseraFallback(matching.Fixed(0.1)),
			skills:  []string{"react"},
			wantIDs: []string{"coursera_course_1"},
		},
		{
			name:    "udemy threshold is lower than coursera",
			adapter: NewUdemyFallback(matching.Fixed(0.45)),
			skills:  nil,
			wantIDs: []string{"udemy_course_1", "udemy_course_2", "udemy_course_3"},
		},
		{
			name:    "edx keeps free courses for anyone",
			adapter: NewEdXFallback(),
			skills:  nil,
			wantIDs: []string{"edx_course_1"},
		},
		{
			name:    "edx keeps related paid courses",
			adapter: NewEdXFallback(),
			skills:  []string{"javascript"},
			wantIDs: []string{"edx_course_1", "edx_course_3"},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.adapter.Search(context.Background(), Profile{Skills: tc.skills})
			assert.Equal(t, tc.wantIDs, ids(got))
			for _, c := range got {
				assert.Equal(t, tc.adapter.Source(), c.Source)
				assert.Equal(t, tc.adapter.Kind(), c.Kind)
			}
		})
	}
}

func TestRegistry_FallbackJobsForEmptyProfile(t *testing.T) {
	registry := NewRegistryFrom(NewLinkedInFallback(), NewIndeedFallback(), NewUnstopFallback())
	var got []Candidate
	for _, a := range registry.Adapters(model.RecommendationJob) {
		got = append(got, a.Search(context.Background(), Profile{})...)
	}
	assert.Len(t, got, 6)
}

func TestFallbackAdapter_SearchReturnsCopies(t *testing.T) {
	a := NewLinkedInFallback()
	got := a.Search(context.Background(), Profile{Skills: []string{"javascript"}})
	if assert.NotEmpty(t, got) {
		got[0].Skills[0] = "mutated"
		got[0].Salary.Min = -1
	}

	again := a.Search(context.Background(), Profile{Skills: []string{"javascript"}})
	assert.Equal(t, "javascript", again[0].Skills[0])
	assert.Equal(t, float64(120000), again[0].Salary.Min)
}
