package parser

import (
	"regexp"
	"strings"
)

// Section is a canonical resume section name.
type Section string

const (
	SectionPersonalInfo   Section = "personal_info"
	SectionSummary        Section = "summary"
	SectionExperience     Section = "experience"
	SectionEducation      Section = "education"
	SectionSkills         Section = "skills"
	SectionProjects       Section = "projects"
	SectionCertifications Section = "certifications"
	SectionUnrecognized   Section = "unrecognized"
)

// Segments maps canonical sections to their content lines in document order.
// Duplicate headings under the same canonical name merge by appending.
type Segments map[Section][]string

var (
	emailSignalRe = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	phoneSignalRe = regexp.MustCompile(`(?:\+?\d{1,3}[\s.-]?)?(?:\(\d{3}\)|\d{3})[\s.-]?\d{3}[\s.-]?\d{4}`)
	urlSignalRe   = regexp.MustCompile(`(?i)\b(?:linkedin|github|portfolio|www\.|https?://)`)
	regionCodeRe  = regexp.MustCompile(`,\s*[A-Z]{2}\b`)
	headingPrefix = regexp.MustCompile(`^#{2,3}\s+`)
)

// contactScanMax bounds the top-of-document contact block scan.
const contactScanMax = 5

// isContactSignal reports whether a line carries a personal-info marker:
// an email, a phone number, a profile/URL token or a region code.
func isContactSignal(line string) bool {
	return emailSignalRe.MatchString(line) ||
		phoneSignalRe.MatchString(line) ||
		urlSignalRe.MatchString(line) ||
		regionCodeRe.MatchString(line)
}

// matchSectionKeyword resolves a line to a canonical section when its
// lowercased, trimmed text equals, starts with or ends with a known heading
// phrase. Long lines never match; they are content, not headings.
func matchSectionKeyword(line string, kw *Keywords) (Section, bool) {
	t := strings.ToLower(strings.TrimSpace(headingPrefix.ReplaceAllString(line, "")))
	t = strings.TrimRight(t, ":")
	if t == "" || len(t) > 40 {
		return "", false
	}
	if sec, ok := kw.Sections[t]; ok {
		return sec, true
	}
	for phrase, sec := range kw.Sections {
		if strings.HasPrefix(t, phrase+" ") || strings.HasSuffix(t, " "+phrase) {
			return sec, true
		}
	}
	return "", false
}

// splitContactBlock peels the top-of-document contact block off the line
// list. The first non-empty, non-heading line joins tentatively (it is
// almost always the candidate's name); every further line must carry a
// contact signal. Scanning stops at the first non-matching line or after
// contactScanMax non-empty lines, and the block only exists at all when at
// least one real contact signal was seen.
func splitContactBlock(lines []string, kw *Keywords) (block []string, rest []string) {
	seen := 0
	end := 0 // index just past the last block line
	sawSignal := false

	for i, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if seen >= contactScanMax {
			break
		}
		seen++

		if strings.HasPrefix(line, "#") || strings.HasPrefix(line, BulletTag) {
			break
		}
		if _, isHeading := matchSectionKeyword(line, kw); isHeading {
			break
		}
		if isContactSignal(line) {
			sawSignal = true
			end = i + 1
			continue
		}
		if seen == 1 {
			end = i + 1
			continue
		}
		break
	}

	if !sawSignal {
		return nil, lines
	}
	for _, raw := range lines[:end] {
		if t := strings.TrimSpace(raw); t != "" {
			block = append(block, t)
		}
	}
	return block, lines[end:]
}

// Segment splits linearized text into named sections. Two strategies run in
// sequence: the contact-block scan, then keyword heading matching. Content
// before any heading lands in Summary rather than being discarded; marked
// headings that match no keyword open the Unrecognized bucket.
func Segment(text string, kw *Keywords) Segments {
	segs := Segments{}

	block, rest := splitContactBlock(strings.Split(text, "\n"), kw)
	if len(block) > 0 {
		segs[SectionPersonalInfo] = block
	}

	current := Section("")
	for _, raw := range rest {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		// Sub-headings ("### ") stay as content: they delimit records and
		// skill categories inside a section, not new sections.
		if !strings.HasPrefix(line, BulletTag) && !strings.HasPrefix(line, "### ") {
			if sec, ok := matchSectionKeyword(line, kw); ok {
				current = sec
				continue
			}
		}

		if strings.HasPrefix(line, "## ") {
			// Marked heading with no keyword match: open the unrecognized
			// bucket instead of polluting the previous section.
			current = SectionUnrecognized
			segs[current] = append(segs[current], strings.TrimSpace(strings.TrimPrefix(line, "## ")))
			continue
		}

		if current == "" {
			// First-content fallback.
			current = SectionSummary
		}
		segs[current] = append(segs[current], line)
	}

	return segs
}
