package parser

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"go-resume-backend/internal/domain"
)

const personalFieldDelta = 10

var (
	linkedInRe  = regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?linkedin\.com/in/[A-Za-z0-9_%-]+|linkedin[:\s]+\S+`)
	gitHubRe    = regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?github\.com/[A-Za-z0-9_-]+|github[:\s]+\S+`)
	portfolioRe = regexp.MustCompile(`(?i)(?:portfolio|website)[:\s]+(\S+)`)
	locationRe  = regexp.MustCompile(`\b([A-Z][a-zA-Z]+(?: [A-Z][a-zA-Z]+)*),\s*([A-Z]{2})\b`)
	bareURLRe   = regexp.MustCompile(`https?://\S+|www\.\S+`)
)

// ExtractPersonalInfo runs regex extraction over the joined contact block.
// Returns nil when neither a name, an email nor a phone number was found.
func ExtractPersonalInfo(lines []string) *domain.PersonalInfo {
	text := strings.Join(lines, "\n")
	var info domain.PersonalInfo
	conf := newConfidence()

	if m := emailSignalRe.FindString(text); m != "" {
		info.Email = m
		conf.add(personalFieldDelta)
	}
	if m := phoneSignalRe.FindString(text); m != "" {
		info.Phone = strings.TrimSpace(m)
		conf.add(personalFieldDelta)
	}
	if m := linkedInRe.FindString(text); m != "" {
		info.LinkedIn = cleanProfileRef(m, "linkedin")
		conf.add(personalFieldDelta)
	}
	if m := gitHubRe.FindString(text); m != "" {
		info.GitHub = cleanProfileRef(m, "github")
		conf.add(personalFieldDelta)
	}
	if m := portfolioRe.FindStringSubmatch(text); m != nil {
		info.Portfolio = m[1]
	}
	if m := locationRe.FindStringSubmatch(text); m != nil {
		info.Location = m[1] + ", " + m[2]
	}

	info.Name = extractName(lines)
	if info.Name != "" {
		conf.add(personalFieldDelta)
	}

	if info.Name == "" && info.Email == "" && info.Phone == "" {
		return nil
	}

	info.Confidence = conf.value()
	return &info
}

// cleanProfileRef normalizes "linkedin: handle" style labels to the bare
// value while leaving full URLs intact.
func cleanProfileRef(match, label string) string {
	v := strings.TrimSpace(match)
	l := strings.ToLower(v)
	if strings.HasPrefix(l, label+":") || strings.HasPrefix(l, label+" ") {
		return strings.TrimSpace(v[len(label)+1:])
	}
	return v
}

// extractName takes the first non-empty, non-heading line, strips contact
// substrings out of it and accepts the residue only when it is 2-49
// characters long.
func extractName(lines []string) string {
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, BulletTag) {
			continue
		}

		cleaned := emailSignalRe.ReplaceAllString(line, "")
		cleaned = phoneSignalRe.ReplaceAllString(cleaned, "")
		cleaned = linkedInRe.ReplaceAllString(cleaned, "")
		cleaned = gitHubRe.ReplaceAllString(cleaned, "")
		cleaned = bareURLRe.ReplaceAllString(cleaned, "")
		cleaned = strings.Trim(cleaned, " |,;-")

		// Length gate counts characters, not bytes, so accented names pass.
		if n := utf8.RuneCountInString(cleaned); n >= 2 && n < 50 {
			return cleaned
		}
		return ""
	}
	return ""
}
