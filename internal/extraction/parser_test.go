package extraction

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fadilmartias/careervision/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleResume = `Jane Doe
jane.doe@example.com | +14155550123
Summary
Backend engineer who likes Python and Docker.
Experience
Senior Software Engineer at Acme Corp, Berlin
Jan 2020 - Present
- Built microservices in Python and PostgreSQL
- Won internal hackathon award
Software Engineer, Initech (2016 - 2019)
- Maintained Java services
Education
B.Sc. Computer Science, State University 2012 - 2016
Certifications
AWS Solutions Architect by Amazon Web Services 2021
Projects
Resume Parser: tool that reads CVs with regular expressions 2022 - 2023
Awards
Employee of the Year 2019
`

func TestParser_Parse(t *testing.T) {
	data := NewParser(nil).Parse(sampleResume)

	assert.Equal(t, model.PersonalInfo{Name: "Jane Doe", Email: "jane.doe@example.com", Phone: "+14155550123"}, data.PersonalInfo)
	assert.Subset(t, data.Skills, []string{"Python", "Java", "PostgreSQL", "AWS", "Docker", "Microservices"})
	assert.NotContains(t, data.Skills, "SQL")

	require.Len(t, data.Experience, 2)
	senior := data.Experience[0]
	assert.Equal(t, "Senior Software Engineer", senior.Title)
	assert.Equal(t, "Acme Corp", senior.Company)
	assert.Equal(t, "Berlin", senior.Location)
	assert.Equal(t, "Jan 2020 - Present", senior.Duration)
	assert.Equal(t, "Built microservices in Python and PostgreSQL Won internal hackathon award", senior.Description)
	assert.Equal(t, []string{"Python", "PostgreSQL", "Microservices"}, senior.Skills)
	require.NotNil(t, senior.StartDate)
	assert.True(t, senior.StartDate.Equal(date(2020, time.January)))
	assert.Nil(t, senior.EndDate)
	assert.Equal(t, 0.9, senior.Confidence)

	previous := data.Experience[1]
	assert.Equal(t, "Software Engineer", previous.Title)
	assert.Equal(t, "Initech", previous.Company)
	require.NotNil(t, previous.EndDate)
	assert.True(t, previous.EndDate.Equal(date(2019, time.January)))

	require.Len(t, data.Education, 1)
	assert.Equal(t, "B.Sc. Computer Science", data.Education[0].Degree)
	assert.Equal(t, "State University", data.Education[0].Institution)
	assert.Equal(t, "2012", data.Education[0].Year)

	require.Len(t, data.Certifications, 1)
	assert.Equal(t, "AWS Solutions Architect", data.Certifications[0].Title)
	assert.Equal(t, "Amazon Web Services", data.Certifications[0].Issuer)
	assert.Equal(t, "AWS Solutions Architect from Amazon Web Services", data.Certifications[0].Description)

	require.Len(t, data.Projects, 1)
	assert.Equal(t, "Resume Parser", data.Projects[0].Title)
	assert.Equal(t, "tool that reads CVs with regular expressions", data.Projects[0].Description)
	assert.NotNil(t, data.Projects[0].EndDate)

	require.Len(t, data.Achievements, 2)
	assert.Equal(t, "Employee of the Year", data.Achievements[0].Title)
	assert.Equal(t, 0.9, data.Achievements[0].Confidence)
	assert.Equal(t, "Won internal hackathon award", data.Achievements[1].Title)
	assert.Equal(t, 0.7, data.Achievements[1].Confidence)
}

func TestParser_ParseEmpty(t *testing.T) {
	for _, text := range []string{"", "   \n\t "} {
		data := NewParser(nil).Parse(text)
		assert.Equal(t, model.NewExtractedData(), data)
		assert.Zero(t, data.Total())
	}
}

func TestParser_UnmatchedTextYieldsEmptyArrays(t *testing.T) {
	data := NewParser(nil).Parse("lorem ipsum dolor sit amet\nconsectetur adipiscing elit")
	assert.Empty(t, data.Experience)
	assert.Empty(t, data.Education)
	assert.Empty(t, data.Achievements)
	assert.NotNil(t, data.Experience)
}

func TestParser_UnmatchedHeaderStillBecomesEntry(t *testing.T) {
	data := NewParser(nil).Parse("Experience\nFreelancing\n- Various clients")
	require.Len(t, data.Experience, 1)
	assert.Equal(t, "Freelancing", data.Experience[0].Title)
	assert.Equal(t, 0.5, data.Experience[0].Confidence)
	assert.Nil(t, data.Experience[0].StartDate)
}

func TestParser_AchievementsAreCapped(t *testing.T) {
	text := "Awards\n"
	for i := 0; i < 15; i++ {
		text += "Award number " + string(rune('a'+i)) + "\n"
	}
	data := NewParser(nil).Parse(text)
	assert.Len(t, data.Achievements, 10)
}

func TestParser_SkillsMatchWholeTokens(t *testing.T) {
	data := NewParser(nil).Parse("Worked with JavaScript, C++ and node.js")
	assert.Contains(t, data.Skills, "JavaScript")
	assert.Contains(t, data.Skills, "C++")
	assert.Contains(t, data.Skills, "Node.js")
	assert.NotContains(t, data.Skills, "Java")
}

func TestLoadRules(t *testing.T) {
	dir := t.TempDir()
	write := func(name, body string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
		return path
	}

	t.Run("empty path uses defaults", func(t *testing.T) {
		r, err := LoadRules("")
		require.NoError(t, err)
		assert.Equal(t, 10, r.MaxAchievements)
		assert.NotEmpty(t, r.Vocabulary)
	})

	t.Run("custom table", func(t *testing.T) {
		path := write("rules.json", `{
			"vocabulary": ["Go", "gRPC"],
			"sections": {"job": ["work"]},
			"entries": [{"section": "job", "pattern": "^(?P<company>.+?) / (?P<title>.+)$"}]
		}`)
		r, err := LoadRules(path)
		require.NoError(t, err)
		assert.Equal(t, 10, r.MaxAchievements)

		data := NewParser(r).Parse("Work\nGopher Inc / Platform Engineer 2021 - 2023\n- Go and gRPC")
		require.Len(t, data.Experience, 1)
		assert.Equal(t, "Platform Engineer", data.Experience[0].Title)
		assert.Equal(t, "Gopher Inc", data.Experience[0].Company)
		assert.Equal(t, []string{"Go", "gRPC"}, data.Skills)
	})

	t.Run("unknown section", func(t *testing.T) {
		_, err := LoadRules(write("bad_section.json", `{"sections": {"hobby": ["fun"]}}`))
		assert.Error(t, err)
	})

	t.Run("bad pattern", func(t *testing.T) {
		_, err := LoadRules(write("bad_pattern.json", `{"entries": [{"section": "job", "pattern": "("}]}`))
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadRules(filepath.Join(dir, "nope.json"))
		assert.Error(t, err)
	})
}
