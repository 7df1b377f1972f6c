package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-resume-backend/internal/domain"
)

func TestBuildPrompt(t *testing.T) {
	end := "2020-01-01"
	r := &domain.ParsedResume{
		PersonalInfo: &domain.PersonalInfo{Name: "Jane Doe"},
		Summary:      "Backend engineer.",
		Experiences: []domain.Experience{
			{Title: "Engineer", Company: "Acme", StartDate: "2021-01-01", IsCurrent: true},
			{Title: "Intern", Company: "Initech", StartDate: "2019-06-01", EndDate: &end},
		},
		Education: []domain.Education{
			{Degree: "B.S.", Field: "Physics", Institution: "State University"},
		},
		Skills: []domain.Skill{{Name: "Go"}, {Name: "Python"}},
	}

	prompt := buildPrompt(r)
	assert.Contains(t, prompt, "Candidate: Jane Doe")
	assert.Contains(t, prompt, "Engineer at Acme (2021-01-01 to present)")
	assert.Contains(t, prompt, "Intern at Initech (2019-06-01 to 2020-01-01)")
	assert.Contains(t, prompt, "B.S. in Physics, State University")
	assert.Contains(t, prompt, "Skills: Go, Python")
	assert.Contains(t, prompt, `"skill_gaps"`)
}

func TestCleanJSONBlock(t *testing.T) {
	assert.Equal(t, `{"a":1}`, cleanJSONBlock("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, cleanJSONBlock("{\"a\":1}"))
}
