package parser

import (
	"strings"
	"unicode"

	"go-resume-backend/internal/domain"
)

// HeuristicSkillConfidence is assigned to every classifier-derived skill.
// User-entered skills get UserSkillConfidence on the edit path.
const (
	HeuristicSkillConfidence = 70
	UserSkillConfidence      = 100
)

// ClassifySkills splits a Skills section into individual skills and assigns
// each a category. This is a best-effort bag-of-keywords classifier; false
// classifications are expected and reflected in the fixed confidence, never
// in an error.
func ClassifySkills(lines []string, kw *Keywords) []domain.Skill {
	category := domain.SkillOther
	seen := map[string]int{} // lowercased name -> index in out
	var out []domain.Skill

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "### ") {
			category = kw.categoryForHeading(strings.TrimPrefix(line, "### "))
			continue
		}

		text, _ := stripBullet(line)
		for _, name := range splitList(text) {
			key := strings.ToLower(name)
			if i, dup := seen[key]; dup {
				out[i].Frequency++
				continue
			}
			out = append(out, domain.Skill{
				Name:       name,
				Category:   classifySkillName(name, category, kw),
				Confidence: HeuristicSkillConfidence,
				Frequency:  1,
			})
			seen[key] = len(out) - 1
		}
	}
	return out
}

// classifySkillName resolves a single skill name, in priority order: soft
// skill phrases, then known technology names, then a symbol/uppercase
// heuristic, then the current category context.
func classifySkillName(name string, context domain.SkillCategory, kw *Keywords) domain.SkillCategory {
	if matchesAny(name, kw.SoftSkills) {
		return domain.SkillSoft
	}
	if matchesAny(name, kw.Technologies) {
		return domain.SkillProgramming
	}
	if strings.ContainsAny(name, "+#./-") || isAllUpper(name) {
		return domain.SkillProgramming
	}
	return context
}

// isAllUpper reports whether a name is entirely uppercase letters, at least
// two of them (acronyms like AWS, SQL).
func isAllUpper(s string) bool {
	letters := 0
	for _, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		if !unicode.IsUpper(r) {
			return false
		}
		letters++
	}
	return letters >= 2
}
