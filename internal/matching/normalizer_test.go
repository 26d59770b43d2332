package matching

import (
	"testing"

	"github.com/fadilmartias/careervision/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeSkills(t *testing.T) {
	testCases := []struct {
		name       string
		milestones []model.Milestone
		want       []string
	}{
		{
			name:       "empty history",
			milestones: nil,
			want:       []string{},
		},
		{
			name: "folds case and drops duplicates across fields",
			milestones: []model.Milestone{
				{Skills: []string{"Python", " SQL "}, Technologies: []string{"python", "Docker"}},
				{Skills: []string{"sql", ""}, Technologies: []string{"AWS"}},
			},
			want: []string{"python", "sql", "docker", "aws"},
		},
		{
			name: "technologies only",
			milestones: []model.Milestone{
				{Technologies: []string{"React", "Node.js"}},
			},
			want: []string{"react", "node.js"},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := NormalizeSkills(tc.milestones)
			assert.NotNil(t, got)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestOverlaps(t *testing.T) {
	assert.True(t, Overlaps("node.js", "node"))
	assert.True(t, Overlaps("Java", "javascript"))
	assert.False(t, Overlaps("python", "aws"))
	assert.False(t, Overlaps("", "aws"))
}
