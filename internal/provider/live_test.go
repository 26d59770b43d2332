package provider

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fadilmartias/careervision/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLiveAdapter_LinkedInMapping(t *testing.T) {
	var gotAuth, gotKeywords string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotKeywords = r.URL.Query().Get("keywords")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"elements":[
			{"id":"42","title":"Backend Engineer","companyName":"Acme","formattedLocation":"Remote",
			 "description":{"text":"Build services in Go and PostgreSQL"},"applyUrl":"https://jobs.example/42",
			 "employmentType":"FULL-TIME","salary":{"min":100,"max":200,"currency":"EUR"},"skills":["Go"]},
			{"id":"43","title":"No link"}
		]}`))
	}))
	defer srv.Close()

	a := NewLinkedInLive(srv.URL, "secret", time.Second)
	got := a.Search(context.Background(), Profile{Skills: []string{"go", "postgresql"}})

	assert.Equal(t, "Bearer secret", gotAuth)
	assert.Equal(t, "go postgresql", gotKeywords)
	require.Len(t, got, 1)
	c := got[0]
	assert.Equal(t, "42", c.ID)
	assert.Equal(t, model.SourceLinkedIn, c.Source)
	assert.Equal(t, model.RecommendationJob, c.Kind)
	assert.Equal(t, "Acme", c.Company)
	assert.Equal(t, "full-time", c.JobType)
	assert.Equal(t, &Salary{Min: 100, Max: 200, Currency: "EUR"}, c.Salary)
	assert.Contains(t, c.Skills, "go")
	assert.Contains(t, c.Skills, "postgresql")
}

func TestLiveAdapter_EdXPrice(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"results":[
			{"key":"MITx+6.00","title":"Intro to Python","marketing_url":"https://edx.example/py",
			 "weeks_to_complete":9,"level_type":"Introductory","seats":[{"type":"audit","price":"0.00","currency":"USD"}]}
		]}`))
	}))
	defer srv.Close()

	got := NewEdXLive(srv.URL, "k", time.Second).Search(context.Background(), Profile{Query: "python"})
	require.Len(t, got, 1)
	assert.Equal(t, "9 weeks", got[0].Duration)
	assert.Equal(t, model.LevelBeginner, got[0].Level)
	assert.True(t, got[0].Price.Free)
	assert.Contains(t, got[0].Skills, "python")
}

func TestLiveAdapter_Failures(t *testing.T) {
	testCases := []struct {
		name    string
		handler http.HandlerFunc
		timeout time.Duration
	}{
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
			timeout: time.Second,
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"results": [`))
			},
			timeout: time.Second,
		},
		{
			name: "slow upstream",
			handler: func(w http.ResponseWriter, r *http.Request) {
				select {
				case <-r.Context().Done():
				case <-time.After(500 * time.Millisecond):
				}
				_, _ = w.Write([]byte(`{"results":[]}`))
			},
			timeout: 50 * time.Millisecond,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(tc.handler)
			defer srv.Close()

			got := NewIndeedLive(srv.URL, "pub", tc.timeout).Search(context.Background(), Profile{Skills: []string{"go"}})
			assert.NotNil(t, got)
			assert.Empty(t, got)
		})
	}
}
