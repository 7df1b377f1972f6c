package parser

import (
	"strings"

	"go-resume-backend/internal/domain"
)

// Keywords holds the lookup tables driving section segmentation and field
// classification. Tables are read-only after construction; the pipeline never
// mutates them, so one instance can be shared across goroutines.
type Keywords struct {
	// Sections maps a lowercased heading phrase to its canonical section.
	Sections map[string]Section

	// JobTitles are substrings that mark a header part as a job title.
	JobTitles []string

	// Degrees are substrings that mark a header part as a degree.
	Degrees []string

	// Institutions are substrings that mark a header part as a school name.
	Institutions []string

	// SoftSkills are phrases classified as soft skills.
	SoftSkills []string

	// Technologies are core technology names classified as programming skills.
	Technologies []string
}

// DefaultKeywords returns the built-in heuristic tables.
func DefaultKeywords() *Keywords {
	return &Keywords{
		Sections: map[string]Section{
			"summary":                 SectionSummary,
			"professional summary":    SectionSummary,
			"profile":                 SectionSummary,
			"about":                   SectionSummary,
			"about me":                SectionSummary,
			"objective":               SectionSummary,
			"experience":              SectionExperience,
			"work experience":         SectionExperience,
			"employment":              SectionExperience,
			"employment history":      SectionExperience,
			"work history":            SectionExperience,
			"professional experience": SectionExperience,
			"education":               SectionEducation,
			"academic background":     SectionEducation,
			"qualifications":          SectionEducation,
			"skills":                  SectionSkills,
			"technical skills":        SectionSkills,
			"core competencies":       SectionSkills,
			"technologies":            SectionSkills,
			"projects":                SectionProjects,
			"personal projects":       SectionProjects,
			"side projects":           SectionProjects,
			"portfolio":               SectionProjects,
			"certifications":          SectionCertifications,
			"certificates":            SectionCertifications,
			"licenses":                SectionCertifications,
		},
		JobTitles: []string{
			"engineer", "developer", "manager", "analyst", "consultant",
			"architect", "designer", "scientist", "administrator", "director",
			"lead", "intern", "specialist", "coordinator", "officer",
			"president", "founder", "head of",
		},
		Degrees: []string{
			"bachelor", "master", "phd", "ph.d", "doctorate", "associate",
			"b.s", "b.a", "bs ", "ba ", "m.s", "m.a", "ms ", "mba", "b.sc",
			"m.sc", "bsc", "msc", "b.e", "btech", "b.tech", "mtech", "m.tech",
			"diploma", "licenciatura", "baccalaureate",
		},
		Institutions: []string{
			"university", "college", "institute", "school", "academy",
			"polytechnic",
		},
		SoftSkills: []string{
			"leadership", "communication", "teamwork", "collaboration",
			"problem solving", "problem-solving", "critical thinking",
			"time management", "adaptability", "creativity", "mentoring",
			"public speaking", "negotiation", "conflict resolution",
			"attention to detail", "project management",
		},
		Technologies: []string{
			"python", "java", "javascript", "typescript", "golang", "go",
			"rust", "ruby", "swift", "kotlin", "scala", "perl", "php",
			"react", "angular", "vue", "svelte", "node", "django", "flask",
			"spring", "rails", "docker", "kubernetes", "terraform",
			"postgres", "postgresql", "mysql", "mongodb", "redis",
			"elasticsearch", "kafka", "rabbitmq", "graphql", "linux", "git",
		},
	}
}

// categoryForHeading maps a skills sub-heading to a category context by
// substring match. Returns SkillOther when nothing matches.
func (k *Keywords) categoryForHeading(heading string) domain.SkillCategory {
	h := strings.ToLower(heading)
	switch {
	case strings.Contains(h, "soft"), strings.Contains(h, "interpersonal"):
		return domain.SkillSoft
	case strings.Contains(h, "language"):
		return domain.SkillLanguage
	case strings.Contains(h, "tool"), strings.Contains(h, "platform"), strings.Contains(h, "software"):
		return domain.SkillTools
	case strings.Contains(h, "technical"), strings.Contains(h, "programming"), strings.Contains(h, "technolog"):
		return domain.SkillProgramming
	default:
		return domain.SkillOther
	}
}
