package parser

import "strings"

// rawRecord is one undelimited record: a header line plus its bullet lines.
type rawRecord struct {
	header  string
	bullets []string
}

// stripBullet removes a leading bullet tag or glyph, returning the cleaned
// text and whether the line was bullet-marked.
func stripBullet(line string) (string, bool) {
	switch {
	case strings.HasPrefix(line, BulletTag):
		return strings.TrimSpace(strings.TrimPrefix(line, BulletTag)), true
	case strings.HasPrefix(line, "- "):
		return strings.TrimSpace(strings.TrimPrefix(line, "- ")), true
	case strings.HasPrefix(line, "• "):
		return strings.TrimSpace(strings.TrimPrefix(line, "• ")), true
	case strings.HasPrefix(line, "* "):
		return strings.TrimSpace(strings.TrimPrefix(line, "* ")), true
	}
	return line, false
}

// partitionRecords splits a section's lines into records. "###" sub-headings
// delimit explicitly; otherwise a line that parses like a record header
// (pipe-delimited or carrying a date range) opens a record and everything
// else attaches to the open record's description. Bullet lines with no open
// record are returned as leftovers so the caller can preserve them.
func partitionRecords(lines []string) (records []rawRecord, leftovers []string) {
	var open *rawRecord

	flush := func() {
		if open != nil {
			records = append(records, *open)
			open = nil
		}
	}

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "### ") {
			flush()
			open = &rawRecord{header: strings.TrimSpace(strings.TrimPrefix(line, "### "))}
			continue
		}

		text, isBullet := stripBullet(line)
		if isBullet {
			if open != nil {
				open.bullets = append(open.bullets, text)
			} else {
				leftovers = append(leftovers, text)
			}
			continue
		}

		if open == nil || looksLikeRecordHeader(text) {
			flush()
			open = &rawRecord{header: text}
			continue
		}

		open.bullets = append(open.bullets, text)
	}
	flush()

	return records, leftovers
}
