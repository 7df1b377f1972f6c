package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEducationHeader(t *testing.T) {
	kw := DefaultKeywords()

	t.Run("degree in field with institution and dates", func(t *testing.T) {
		edu := parseEducationHeader("Bachelor of Science in Computer Science | State University | 2015 - 2019", kw)
		assert.Equal(t, "Bachelor of Science", edu.Degree)
		assert.Equal(t, "Computer Science", edu.Field)
		assert.Equal(t, "State University", edu.Institution)
		assert.Equal(t, "2015-01-01", edu.StartDate)
		require.NotNil(t, edu.EndDate)
		assert.Equal(t, "2019-01-01", *edu.EndDate)
	})

	t.Run("degree without field", func(t *testing.T) {
		edu := parseEducationHeader("MBA | Harvard Business School", kw)
		assert.Equal(t, "MBA", edu.Degree)
		assert.Empty(t, edu.Field)
		assert.Equal(t, "Harvard Business School", edu.Institution)
	})

	t.Run("gpa extracted from any part", func(t *testing.T) {
		edu := parseEducationHeader("State University | B.S. in Physics | GPA: 3.8", kw)
		assert.Equal(t, "3.8", edu.GPA)
		assert.Equal(t, "B.S.", edu.Degree)
		assert.Equal(t, "Physics", edu.Field)
	})

	t.Run("positional fallback for institution", func(t *testing.T) {
		edu := parseEducationHeader("Ecole 42 | 2018 - 2020", kw)
		assert.Equal(t, "Ecole 42", edu.Institution)
	})
}

func TestExtractEducation(t *testing.T) {
	kw := DefaultKeywords()

	lines := []string{
		"### Master of Science in Data Engineering | Tech Institute | 2019 - 2021",
		"[BULLET] Thesis on stream processing",
	}
	edus := ExtractEducation(lines, kw)
	require.Len(t, edus, 1)
	assert.Equal(t, "Master of Science", edus[0].Degree)
	assert.Equal(t, "Data Engineering", edus[0].Field)
	assert.Equal(t, "Tech Institute", edus[0].Institution)
	assert.Equal(t, []string{"Thesis on stream processing"}, edus[0].Description)
}
