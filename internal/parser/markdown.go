package parser

import (
	"strings"

	"go-resume-backend/internal/domain"
)

// RenderMarkdown renders a parsed resume back to the heading syntax the
// segmenter understands, so re-parsing the rendering reproduces the same
// structured fields. Callers persist this alongside the JSON form for
// display and editing.
func RenderMarkdown(r *domain.ParsedResume) string {
	var sb strings.Builder

	if r.PersonalInfo != nil {
		pi := r.PersonalInfo
		if pi.Name != "" {
			sb.WriteString(pi.Name + "\n")
		}
		contact := make([]string, 0, 4)
		for _, v := range []string{pi.Email, pi.Phone, pi.Location} {
			if v != "" {
				contact = append(contact, v)
			}
		}
		if pi.LinkedIn != "" {
			contact = append(contact, "LinkedIn: "+pi.LinkedIn)
		}
		if pi.GitHub != "" {
			contact = append(contact, "GitHub: "+pi.GitHub)
		}
		if pi.Portfolio != "" {
			contact = append(contact, "Portfolio: "+pi.Portfolio)
		}
		if len(contact) > 0 {
			sb.WriteString(strings.Join(contact, " | ") + "\n")
		}
		sb.WriteString("\n")
	}

	if r.Summary != "" {
		sb.WriteString("## Summary\n\n" + r.Summary + "\n\n")
	}

	if len(r.Experiences) > 0 {
		sb.WriteString("## Experience\n\n")
		for _, e := range r.Experiences {
			header := make([]string, 0, 4)
			if e.Title != "" {
				header = append(header, e.Title)
			}
			if e.Company != "" {
				header = append(header, e.Company)
			}
			if e.Location != "" {
				header = append(header, e.Location)
			}
			if rng := renderDateRange(e.StartDate, e.EndDate, e.IsCurrent); rng != "" {
				header = append(header, rng)
			}
			sb.WriteString("### " + strings.Join(header, " | ") + "\n")
			writeBullets(&sb, e.Description)
			sb.WriteString("\n")
		}
	}

	if len(r.Education) > 0 {
		sb.WriteString("## Education\n\n")
		for _, e := range r.Education {
			header := make([]string, 0, 4)
			if e.Degree != "" {
				if e.Field != "" {
					header = append(header, e.Degree+" in "+e.Field)
				} else {
					header = append(header, e.Degree)
				}
			}
			if e.Institution != "" {
				header = append(header, e.Institution)
			}
			if e.GPA != "" {
				header = append(header, "GPA: "+e.GPA)
			}
			if rng := renderDateRange(e.StartDate, e.EndDate, false); rng != "" {
				header = append(header, rng)
			}
			sb.WriteString("### " + strings.Join(header, " | ") + "\n")
			writeBullets(&sb, e.Description)
			sb.WriteString("\n")
		}
	}

	if len(r.Skills) > 0 {
		sb.WriteString("## Skills\n\n")
		for _, group := range groupSkills(r.Skills) {
			sb.WriteString("### " + group.heading + "\n")
			names := make([]string, 0, len(group.skills))
			for _, s := range group.skills {
				names = append(names, s.Name)
			}
			sb.WriteString(strings.Join(names, ", ") + "\n\n")
		}
	}

	if len(r.Projects) > 0 {
		sb.WriteString("## Projects\n\n")
		for _, p := range r.Projects {
			header := make([]string, 0, 3)
			if p.Name != "" {
				header = append(header, p.Name)
			}
			if p.URL != "" {
				header = append(header, p.URL)
			}
			if rng := renderDateRange(p.StartDate, p.EndDate, false); rng != "" {
				header = append(header, rng)
			}
			sb.WriteString("### " + strings.Join(header, " | ") + "\n")
			if len(p.Technologies) > 0 {
				sb.WriteString(BulletTag + " Tech: " + strings.Join(p.Technologies, ", ") + "\n")
			}
			writeBullets(&sb, p.Description)
			sb.WriteString("\n")
		}
	}

	if len(r.Certifications) > 0 {
		sb.WriteString("## Certifications\n\n")
		writeBullets(&sb, r.Certifications)
		sb.WriteString("\n")
	}

	return strings.TrimRight(sb.String(), "\n") + "\n"
}

func writeBullets(sb *strings.Builder, bullets []string) {
	for _, b := range bullets {
		sb.WriteString(BulletTag + " " + b + "\n")
	}
}

// renderDateRange emits the same range syntax the date parser accepts.
func renderDateRange(start string, end *string, current bool) string {
	if start == "" {
		return ""
	}
	switch {
	case current:
		return start + " - Present"
	case end != nil && *end != "":
		return start + " - " + *end
	default:
		return start
	}
}

type skillGroup struct {
	heading string
	skills  []domain.Skill
}

// groupSkills orders skills by category under stable headings so the
// classifier's category context survives a round trip.
func groupSkills(skills []domain.Skill) []skillGroup {
	headings := []struct {
		cat     domain.SkillCategory
		heading string
	}{
		{domain.SkillProgramming, "Technical Skills"},
		{domain.SkillTools, "Tools"},
		{domain.SkillSoft, "Soft Skills"},
		{domain.SkillLanguage, "Languages"},
		{domain.SkillOther, "Other"},
	}

	var out []skillGroup
	for _, h := range headings {
		g := skillGroup{heading: h.heading}
		for _, s := range skills {
			if s.Category == h.cat {
				g.skills = append(g.skills, s)
			}
		}
		if len(g.skills) > 0 {
			out = append(out, g)
		}
	}
	return out
}
