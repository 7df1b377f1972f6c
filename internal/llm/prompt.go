package llm

import (
	"fmt"
	"strings"

	"go-resume-backend/internal/domain"
)

// buildPrompt renders the structured resume into a compact career-advice
// prompt. Raw resume text is deliberately left out.
func buildPrompt(r *domain.ParsedResume) string {
	var sb strings.Builder

	sb.WriteString("You are a career advisor. Based on the candidate profile below, " +
		"recommend up to three career tracks.\n\n")

	if r.PersonalInfo != nil && r.PersonalInfo.Name != "" {
		fmt.Fprintf(&sb, "Candidate: %s\n", r.PersonalInfo.Name)
	}
	if r.Summary != "" {
		fmt.Fprintf(&sb, "Summary: %s\n", r.Summary)
	}

	if len(r.Experiences) > 0 {
		sb.WriteString("\nExperience:\n")
		for _, e := range r.Experiences {
			fmt.Fprintf(&sb, "- %s at %s (%s)\n", e.Title, e.Company, describeRange(e.StartDate, e.EndDate, e.IsCurrent))
		}
	}

	if len(r.Education) > 0 {
		sb.WriteString("\nEducation:\n")
		for _, e := range r.Education {
			line := e.Degree
			if e.Field != "" {
				line += " in " + e.Field
			}
			if e.Institution != "" {
				line += ", " + e.Institution
			}
			fmt.Fprintf(&sb, "- %s\n", line)
		}
	}

	if len(r.Skills) > 0 {
		names := make([]string, 0, len(r.Skills))
		for _, s := range r.Skills {
			names = append(names, s.Name)
		}
		fmt.Fprintf(&sb, "\nSkills: %s\n", strings.Join(names, ", "))
	}

	sb.WriteString("\nRespond with JSON only, in this shape:\n" +
		`{"summary": "...", "tracks": [{"title": "...", "rationale": "...", "skill_gaps": ["..."]}]}` + "\n")

	return sb.String()
}

func describeRange(start string, end *string, current bool) string {
	switch {
	case start == "":
		return "dates unknown"
	case current:
		return start + " to present"
	case end != nil:
		return start + " to " + *end
	default:
		return "since " + start
	}
}
