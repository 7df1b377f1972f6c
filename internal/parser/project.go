package parser

import (
	"regexp"
	"strings"

	"go-resume-backend/internal/domain"
)

const (
	projDateDelta = 15
	projURLDelta  = 10
	projNameDelta = 10
)

var (
	projectURLRe = regexp.MustCompile(`https?://\S+`)
	techPrefixRe = regexp.MustCompile(`(?i)^(?:tech|stack|built with|technologies)\s*:\s*`)
	listSplitRe  = regexp.MustCompile(`[,;]`)
)

// ExtractProjects turns a Projects section's lines into structured project
// records. A bullet like "Tech: Go, Postgres" feeds the technologies list
// instead of the description.
func ExtractProjects(lines []string, kw *Keywords) []domain.Project {
	records, _ := partitionRecords(lines)

	out := make([]domain.Project, 0, len(records))
	for _, rec := range records {
		proj := parseProjectHeader(rec.header)
		proj.Description = []string{}
		proj.Technologies = []string{}

		for _, b := range rec.bullets {
			if loc := techPrefixRe.FindStringIndex(b); loc != nil {
				proj.Technologies = append(proj.Technologies, splitList(b[loc[1]:])...)
				if len(proj.Technologies) > 0 {
					proj.Confidence = clampConfidence(proj.Confidence + 5)
				}
				continue
			}
			proj.Description = append(proj.Description, b)
		}
		out = append(out, proj)
	}
	return out
}

// parseProjectHeader classifies header parts: a date range ("Ongoing" counts
// as open-ended), an http(s) URL, and the first unclaimed part as the name.
func parseProjectHeader(header string) domain.Project {
	var proj domain.Project
	conf := newConfidence()

	var unclaimed []string
	for _, part := range splitHeaderParts(header) {
		if r, ok := parseDateRange(part); ok && proj.StartDate == "" {
			proj.StartDate = r.start
			if r.end != "" {
				end := r.end
				proj.EndDate = &end
			}
			conf.add(projDateDelta)
			continue
		}
		if url := projectURLRe.FindString(part); url != "" && proj.URL == "" {
			proj.URL = strings.TrimRight(url, ".,)")
			conf.add(projURLDelta)
			if rest := strings.TrimSpace(strings.Replace(part, url, "", 1)); rest != "" {
				unclaimed = append(unclaimed, rest)
			}
			continue
		}
		unclaimed = append(unclaimed, part)
	}

	if len(unclaimed) > 0 {
		proj.Name = unclaimed[0]
		conf.add(projNameDelta)
	}

	proj.Confidence = conf.value()
	return proj
}

// splitList breaks a comma or semicolon separated list into trimmed items.
func splitList(s string) []string {
	parts := listSplitRe.Split(s, -1)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}
