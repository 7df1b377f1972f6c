package parser

import (
	"regexp"
	"strings"

	"go-resume-backend/internal/domain"
)

const (
	eduDateDelta        = 15
	eduDegreeDelta      = 15
	eduInstitutionDelta = 10
	eduGPADelta         = 5
)

var (
	gpaRe           = regexp.MustCompile(`(?i)gpa[:\s]*([0-9]\.?[0-9]*(?:\s*/\s*[0-9]\.?[0-9]*)?)`)
	degreeInFieldRe = regexp.MustCompile(`(?i)^(.*?)\s+in\s+(.+)$`)
)

// ExtractEducation turns an Education section's lines into structured
// education records.
func ExtractEducation(lines []string, kw *Keywords) []domain.Education {
	records, _ := partitionRecords(lines)

	out := make([]domain.Education, 0, len(records))
	for _, rec := range records {
		edu := parseEducationHeader(rec.header, kw)
		edu.Description = rec.bullets
		if edu.Description == nil {
			edu.Description = []string{}
		}
		out = append(out, edu)
	}
	return out
}

// parseEducationHeader classifies header parts: date range, degree keywords
// (with a "<degree> in <field>" split), institution keywords, a GPA pattern
// anywhere, and a positional fallback for the institution.
func parseEducationHeader(header string, kw *Keywords) domain.Education {
	var edu domain.Education
	conf := newConfidence()

	if m := gpaRe.FindStringSubmatch(header); m != nil {
		edu.GPA = strings.TrimSpace(m[1])
		conf.add(eduGPADelta)
	}

	var unclaimed []string
	for _, part := range splitHeaderParts(header) {
		if r, ok := parseDateRange(part); ok && edu.StartDate == "" {
			edu.StartDate = r.start
			if r.end != "" {
				end := r.end
				edu.EndDate = &end
			}
			conf.add(eduDateDelta)
			continue
		}
		if gpaRe.MatchString(part) && strings.TrimSpace(gpaRe.ReplaceAllString(part, "")) == "" {
			// Pure GPA part, already captured above.
			continue
		}
		if edu.Degree == "" && matchesAny(part, kw.Degrees) {
			if m := degreeInFieldRe.FindStringSubmatch(part); m != nil {
				edu.Degree = strings.TrimSpace(m[1])
				edu.Field = strings.TrimSpace(m[2])
			} else {
				edu.Degree = part
			}
			conf.add(eduDegreeDelta)
			continue
		}
		if edu.Institution == "" && matchesAny(part, kw.Institutions) {
			edu.Institution = part
			conf.add(eduInstitutionDelta)
			continue
		}
		unclaimed = append(unclaimed, part)
	}

	// Positional fallback: the first unclaimed part is the institution.
	if edu.Institution == "" && len(unclaimed) > 0 {
		edu.Institution = unclaimed[0]
	}

	edu.Confidence = conf.value()
	return edu
}
