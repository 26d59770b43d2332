package matching

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScorer_JobScore(t *testing.T) {
	testCases := []struct {
		name       string
		rand       Rand
		userSkills []string
		required   []string
		want       int
	}{
		{
			name:       "no user skills is neutral",
			rand:       Fixed(0.99),
			userSkills: nil,
			required:   []string{"python"},
			want:       50,
		},
		{
			name:       "half overlap without jitter",
			rand:       Fixed(0.5),
			userSkills: []string{"python", "sql"},
			required:   []string{"python", "aws"},
			want:       50,
		},
		{
			name:       "half overlap lowest jitter",
			rand:       Fixed(0),
			userSkills: []string{"python", "sql"},
			required:   []string{"python", "aws"},
			want:       45,
		},
		{
			name:       "half overlap highest jitter",
			rand:       Fixed(0.999),
			userSkills: []string{"python", "sql"},
			required:   []string{"python", "aws"},
			want:       55,
		},
		{
			name:       "no overlap keeps the floor",
			rand:       Fixed(0),
			userSkills: []string{"cobol"},
			required:   []string{"react", "css"},
			want:       30,
		},
		{
			name:       "full overlap is capped",
			rand:       Fixed(0.99),
			userSkills: []string{"react", "css"},
			required:   []string{"react", "css"},
			want:       95,
		},
		{
			name:       "substring match in either direction",
			rand:       Fixed(0.5),
			userSkills: []string{"node"},
			required:   []string{"node.js", "aws", "docker", "go"},
			want:       30,
		},
		{
			name:       "job without tags",
			rand:       Fixed(0.5),
			userSkills: []string{"python"},
			required:   nil,
			want:       30,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := NewScorer(tc.rand)
			assert.Equal(t, tc.want, s.JobScore(tc.userSkills, tc.required))
		})
	}
}

func TestScorer_JobScoreBounds(t *testing.T) {
	s := NewScorer(NewLockedRand(42))
	pool := []string{"python", "sql", "aws", "react", "docker", "java", "css", "kubernetes"}
	for i := 0; i < 500; i++ {
		user := pool[:i%len(pool)]
		required := pool[(i*3)%len(pool):]
		score := s.JobScore(user, required)
		if len(user) == 0 {
			assert.Equal(t, 50, score)
			continue
		}
		assert.GreaterOrEqual(t, score, 30, fmt.Sprintf("user=%v required=%v", user, required))
		assert.LessOrEqual(t, score, 95, fmt.Sprintf("user=%v required=%v", user, required))
	}
}

func TestScorer_CourseScore(t *testing.T) {
	s := NewScorer(Fixed(0.5))
	testCases := []struct {
		name         string
		userSkills   []string
		courseSkills []string
		want         int
	}{
		{
			name:         "entirely novel",
			userSkills:   []string{"python"},
			courseSkills: []string{"docker", "kubernetes"},
			want:         60,
		},
		{
			name:         "entirely held",
			userSkills:   []string{"python"},
			courseSkills: []string{"python"},
			want:         40,
		},
		{
			name:         "mixed",
			userSkills:   []string{"javascript"},
			courseSkills: []string{"react", "javascript", "web development"},
			want:         53,
		},
		{
			name:         "user without skills",
			userSkills:   nil,
			courseSkills: []string{"aws", "cloud computing"},
			want:         60,
		},
		{
			name:         "course without skills",
			userSkills:   []string{"python"},
			courseSkills: nil,
			want:         0,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := s.CourseScore(tc.userSkills, tc.courseSkills)
			assert.Equal(t, tc.want, got)
			assert.GreaterOrEqual(t, got, 0)
			assert.LessOrEqual(t, got, 100)
		})
	}
}

func TestScorer_CourseScorePrefersGaps(t *testing.T) {
	s := NewScorer(nil)
	user := []string{"python", "sql"}
	novel := s.CourseScore(user, []string{"docker", "kubernetes", "devops"})
	held := s.CourseScore(user, []string{"python", "sql"})
	assert.GreaterOrEqual(t, novel, held)
}
