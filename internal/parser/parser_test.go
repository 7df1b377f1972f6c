package parser

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-resume-backend/internal/domain"
)

const sampleResume = `Jane Doe
jane.doe@example.com | (555) 123-4567
San Francisco, CA
linkedin.com/in/janedoe | github.com/janedoe

## Summary

Backend engineer focused on data pipelines.

## Experience

### Software Engineer | Acme Corp | San Francisco, CA | Jan 2021 - Present
[BULLET] Built the billing system
[BULLET] Reduced costs by 30%

### Intern | Initech | Jun 2019 - Aug 2019
[BULLET] Wrote internal tooling

## Education

### Bachelor of Science in Computer Science | State University | 2015 - 2019
[BULLET] Graduated with honors

## Skills

### Technical Skills
Python, Kubernetes, PostgreSQL
### Soft Skills
Leadership, Mentoring

## Projects

### Chess Engine | https://github.com/janedoe/chess | 2022 - Ongoing
[BULLET] Tech: Go, SQLite
[BULLET] Alpha-beta search

## Certifications

[BULLET] AWS Solutions Architect
`

func newTestParser() *Parser {
	return New(DefaultKeywords(), DefaultLayoutOptions())
}

func TestParseText(t *testing.T) {
	p := newTestParser()
	resume, err := p.ParseText(context.Background(), sampleResume)
	require.NoError(t, err)

	t.Run("personal info", func(t *testing.T) {
		require.NotNil(t, resume.PersonalInfo)
		assert.Equal(t, "Jane Doe", resume.PersonalInfo.Name)
		assert.Equal(t, "jane.doe@example.com", resume.PersonalInfo.Email)
	})

	t.Run("summary", func(t *testing.T) {
		assert.Equal(t, "Backend engineer focused on data pipelines.", resume.Summary)
	})

	t.Run("experiences in order", func(t *testing.T) {
		require.Len(t, resume.Experiences, 2)
		assert.Equal(t, "Acme Corp", resume.Experiences[0].Company)
		assert.True(t, resume.Experiences[0].IsCurrent)
		assert.Equal(t, "Initech", resume.Experiences[1].Company)
		assert.Equal(t, "2019-06-01", resume.Experiences[1].StartDate)
	})

	t.Run("education", func(t *testing.T) {
		require.Len(t, resume.Education, 1)
		assert.Equal(t, "State University", resume.Education[0].Institution)
	})

	t.Run("skills carry category context", func(t *testing.T) {
		require.NotEmpty(t, resume.Skills)
		for _, s := range resume.Skills {
			assert.GreaterOrEqual(t, s.Confidence, 0)
			assert.LessOrEqual(t, s.Confidence, 100)
		}
	})

	t.Run("projects", func(t *testing.T) {
		require.Len(t, resume.Projects, 1)
		assert.Equal(t, "Chess Engine", resume.Projects[0].Name)
		assert.Equal(t, []string{"Go", "SQLite"}, resume.Projects[0].Technologies)
	})

	t.Run("certifications preserved", func(t *testing.T) {
		assert.Equal(t, []string{"AWS Solutions Architect"}, resume.Certifications)
	})

	t.Run("order fields are contiguous permutations", func(t *testing.T) {
		for i, e := range resume.Experiences {
			assert.Equal(t, i, e.Order)
		}
		for i, e := range resume.Education {
			assert.Equal(t, i, e.Order)
		}
		for i, pr := range resume.Projects {
			assert.Equal(t, i, pr.Order)
		}
	})

	t.Run("no warnings for populated sections", func(t *testing.T) {
		assert.Empty(t, resume.Warnings)
		assert.Empty(t, resume.Errors)
	})
}

func TestParseTextDegraded(t *testing.T) {
	p := newTestParser()

	t.Run("document with zero detected sections", func(t *testing.T) {
		resume, err := p.ParseText(context.Background(), "lorem ipsum dolor\nsit amet")
		require.NoError(t, err)
		assert.Equal(t, 30, resume.OverallConfidence)
		assert.True(t, resume.NeedsReview)
		assert.Len(t, resume.Warnings, 4)
	})

	t.Run("empty document", func(t *testing.T) {
		resume, err := p.ParseText(context.Background(), "")
		require.NoError(t, err)
		assert.Equal(t, 30, resume.OverallConfidence)
		assert.True(t, resume.NeedsReview)
	})

	t.Run("unrecognized content is preserved and flagged", func(t *testing.T) {
		resume, err := p.ParseText(context.Background(), "jane@example.com\n## Hobbies\nChess")
		require.NoError(t, err)
		assert.Contains(t, resume.Unrecognized, "Chess")
		found := false
		for _, w := range resume.Warnings {
			if strings.Contains(w, "unrecognized") {
				found = true
			}
		}
		assert.True(t, found, "expected an unrecognized-content warning")
	})
}

func TestParseFragments(t *testing.T) {
	p := newTestParser()

	pages := [][]domain.Fragment{
		{
			frag("Jane Doe", 10, 20),
			frag("jane@example.com", 10, 32),
			frag("Experience", 10, 60),
			frag("Software Engineer | Acme Corp | Jan 2021 - Present", 10, 75),
			frag("•", 10, 90),
			frag("Built a tool", 20, 90),
		},
	}

	resume, err := p.ParseFragments(context.Background(), pages)
	require.NoError(t, err)
	require.NotNil(t, resume.PersonalInfo)
	assert.Equal(t, "Jane Doe", resume.PersonalInfo.Name)
	require.Len(t, resume.Experiences, 1)
	assert.Equal(t, "Software Engineer", resume.Experiences[0].Title)
	assert.Equal(t, "Acme Corp", resume.Experiences[0].Company)
	assert.Equal(t, []string{"Built a tool"}, resume.Experiences[0].Description)
}

// Re-parsing the renderer's own markdown must reproduce the same structured
// fields.
func TestMarkdownRoundTrip(t *testing.T) {
	p := newTestParser()

	first, err := p.ParseText(context.Background(), sampleResume)
	require.NoError(t, err)

	md := RenderMarkdown(first)
	second, err := p.ParseText(context.Background(), md)
	require.NoError(t, err)

	assert.Equal(t, first.PersonalInfo.Name, second.PersonalInfo.Name)
	assert.Equal(t, first.PersonalInfo.Email, second.PersonalInfo.Email)
	assert.Equal(t, first.Summary, second.Summary)

	require.Len(t, second.Experiences, len(first.Experiences))
	for i := range first.Experiences {
		assert.Equal(t, first.Experiences[i].Company, second.Experiences[i].Company, "experience %d company", i)
		assert.Equal(t, first.Experiences[i].Title, second.Experiences[i].Title, "experience %d title", i)
		assert.Equal(t, first.Experiences[i].StartDate, second.Experiences[i].StartDate, "experience %d start", i)
		assert.Equal(t, first.Experiences[i].IsCurrent, second.Experiences[i].IsCurrent, "experience %d current", i)
		assert.Equal(t, first.Experiences[i].Description, second.Experiences[i].Description, "experience %d bullets", i)
	}

	require.Len(t, second.Education, len(first.Education))
	assert.Equal(t, first.Education[0].Institution, second.Education[0].Institution)
	assert.Equal(t, first.Education[0].Degree, second.Education[0].Degree)
	assert.Equal(t, first.Education[0].Field, second.Education[0].Field)

	require.Len(t, second.Projects, len(first.Projects))
	assert.Equal(t, first.Projects[0].Name, second.Projects[0].Name)
	assert.Equal(t, first.Projects[0].Technologies, second.Projects[0].Technologies)

	assert.ElementsMatch(t, skillNames(first.Skills), skillNames(second.Skills))
	assert.Equal(t, first.Certifications, second.Certifications)
}

func TestRescore(t *testing.T) {
	t.Run("re-derives orders, clamps and averages", func(t *testing.T) {
		r := &domain.ParsedResume{
			Experiences: []domain.Experience{
				{Title: "Engineer", Order: 5, Confidence: 250},
				{Title: "Intern", Order: 9, Confidence: -10},
			},
			Projects:          []domain.Project{{Name: "Chess Engine", Order: 3, Confidence: 50}},
			OverallConfidence: 250,
		}
		Rescore(r)

		assert.Equal(t, 0, r.Experiences[0].Order)
		assert.Equal(t, 1, r.Experiences[1].Order)
		assert.Equal(t, 0, r.Projects[0].Order)
		assert.Equal(t, 100, r.Experiences[0].Confidence)
		assert.Equal(t, 0, r.Experiences[1].Confidence)
		assert.Equal(t, 50, r.OverallConfidence)
		assert.True(t, r.NeedsReview)
	})

	t.Run("empty resume falls back to the floor", func(t *testing.T) {
		r := &domain.ParsedResume{OverallConfidence: 95}
		Rescore(r)
		assert.Equal(t, 30, r.OverallConfidence)
		assert.True(t, r.NeedsReview)
	})
}

func skillNames(skills []domain.Skill) []string {
	names := make([]string, 0, len(skills))
	for _, s := range skills {
		names = append(names, s.Name)
	}
	return names
}
