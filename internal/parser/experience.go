package parser

import (
	"strings"

	"go-resume-backend/internal/domain"
)

// Per-rule confidence deltas for experience header classification.
const (
	expDateDelta    = 15
	expTitleDelta   = 15
	expCompanyDelta = 10
)

// ExtractExperiences turns an Experience section's lines into structured
// work-history records.
func ExtractExperiences(lines []string, kw *Keywords) []domain.Experience {
	records, _ := partitionRecords(lines)

	out := make([]domain.Experience, 0, len(records))
	for _, rec := range records {
		exp := parseExperienceHeader(rec.header, kw)
		exp.Description = rec.bullets
		if exp.Description == nil {
			exp.Description = []string{}
		}
		out = append(out, exp)
	}
	return out
}

// parseExperienceHeader classifies each pipe-delimited part of a header line
// independent of position: date range first, then job-title keywords, then
// positional defaults for company and location.
func parseExperienceHeader(header string, kw *Keywords) domain.Experience {
	var exp domain.Experience
	conf := newConfidence()

	parts := splitHeaderParts(header)
	var unclaimed []string
	matchedAny := false

	for _, part := range parts {
		if r, ok := parseDateRange(part); ok && exp.StartDate == "" {
			exp.StartDate = r.start
			if r.end != "" {
				end := r.end
				exp.EndDate = &end
			}
			exp.IsCurrent = r.current
			conf.add(expDateDelta)
			matchedAny = true
			continue
		}
		if exp.Title == "" && matchesAny(part, kw.JobTitles) {
			exp.Title = part
			conf.add(expTitleDelta)
			matchedAny = true
			continue
		}
		unclaimed = append(unclaimed, part)
	}

	if len(unclaimed) > 0 {
		exp.Company = unclaimed[0]
		conf.add(expCompanyDelta)
	}
	if len(unclaimed) > 1 {
		exp.Location = unclaimed[1]
	}

	// Headers with no delimiter and no recognized field degrade to a comma
	// split: company first, then title; failing that the whole line is the
	// company.
	if len(parts) == 1 && !matchedAny {
		exp.Location = ""
		if company, title, ok := strings.Cut(header, ","); ok {
			exp.Company = strings.TrimSpace(company)
			exp.Title = strings.TrimSpace(title)
		} else {
			exp.Company = strings.TrimSpace(header)
			exp.Title = ""
		}
	}

	exp.Confidence = conf.value()
	return exp
}

// splitHeaderParts splits a record header on "|" and trims each part.
func splitHeaderParts(header string) []string {
	raw := strings.Split(header, "|")
	parts := make([]string, 0, len(raw))
	for _, p := range raw {
		if t := strings.TrimSpace(p); t != "" {
			parts = append(parts, t)
		}
	}
	if len(parts) == 0 {
		parts = []string{strings.TrimSpace(header)}
	}
	return parts
}

// matchesAny reports a case-insensitive substring match against a keyword
// list.
func matchesAny(s string, keywords []string) bool {
	l := strings.ToLower(s)
	for _, k := range keywords {
		if strings.Contains(l, k) {
			return true
		}
	}
	return false
}
