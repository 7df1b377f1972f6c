package parser

import (
	"math"
	"regexp"
	"strings"

	"go-resume-backend/internal/domain"
)

// BulletTag is the literal token emitted in place of a detected list marker.
const BulletTag = "[BULLET]"

// LayoutOptions tunes the glyph layout reconstruction. The thresholds are in
// the source document's coordinate units.
type LayoutOptions struct {
	// LineBreakDelta is the vertical distance between fragments that starts
	// a new line.
	LineBreakDelta float64

	// WordGapDelta is the horizontal gap past the previous fragment's right
	// edge that inserts a space.
	WordGapDelta float64

	// GlyphWidth estimates a single glyph's width. Real font metrics are not
	// available, so a fragment's right edge is text length times this value;
	// it only drives the spacing decision for the next fragment.
	GlyphWidth float64
}

// DefaultLayoutOptions returns the tuned defaults.
func DefaultLayoutOptions() LayoutOptions {
	return LayoutOptions{
		LineBreakDelta: 5,
		WordGapDelta:   3,
		GlyphWidth:     5,
	}
}

var (
	bulletGlyphs   = map[string]bool{"•": true, "◦": true, "▪": true, "■": true, "▸": true, "▹": true, "◾": true, "-": true, "*": true}
	numberMarkerRe = regexp.MustCompile(`^(?:\d+|[a-z])[.)]$`)
)

// isBulletMarker reports whether a fragment's text is a list marker glyph or
// a numbered/lettered marker like "1." or "b)".
func isBulletMarker(text string) bool {
	t := strings.TrimSpace(text)
	return bulletGlyphs[t] || numberMarkerRe.MatchString(t)
}

// ReconstructPage linearizes one page of positioned fragments, assumed to be
// in natural reading order, into text with inferred newlines, inter-word
// spaces and BulletTag markers.
func ReconstructPage(frags []domain.Fragment, opts LayoutOptions) string {
	var sb strings.Builder
	var lastX, lastY float64
	var lastWidth float64
	atLineStart := true
	afterBullet := false
	first := true

	for _, f := range frags {
		if strings.TrimSpace(f.Text) == "" {
			continue
		}

		newLine := !first && math.Abs(f.Y-lastY) > opts.LineBreakDelta

		if isBulletMarker(f.Text) {
			// A bullet always opens its own line; the marker glyph itself is
			// dropped in favor of the tag.
			if !atLineStart {
				sb.WriteString("\n")
			}
			sb.WriteString(BulletTag + " ")
			lastX = f.X
			lastY = f.Y
			lastWidth = estimateWidth(f.Text, opts)
			atLineStart = false
			afterBullet = true
			first = false
			continue
		}

		switch {
		case first:
			// nothing before the first fragment
		case newLine:
			sb.WriteString("\n")
		case afterBullet:
			// the bullet tag already ends in a space
		default:
			gap := f.X - (lastX + lastWidth)
			if gap > opts.WordGapDelta {
				sb.WriteString(" ")
			}
		}

		sb.WriteString(f.Text)
		lastX = f.X
		lastY = f.Y
		lastWidth = estimateWidth(f.Text, opts)
		atLineStart = false
		afterBullet = false
		first = false
	}

	return sb.String()
}

func estimateWidth(text string, opts LayoutOptions) float64 {
	return float64(len([]rune(text))) * opts.GlyphWidth
}

// ReconstructPages linearizes every page and joins them with a blank line,
// then synthesizes markdown headings so the segmenter sees the same shape a
// markdown source would have.
func ReconstructPages(pages [][]domain.Fragment, opts LayoutOptions, kw *Keywords) string {
	texts := make([]string, 0, len(pages))
	for _, page := range pages {
		texts = append(texts, ReconstructPage(page, opts))
	}
	return synthesizeHeadings(strings.Join(texts, "\n\n"), kw)
}

// recordHeaderRe spots lines that look like record headers inside a section:
// either pipe-delimited or carrying a date range.
var pipeCountRe = regexp.MustCompile(`\|`)

// synthesizeHeadings promotes recognized section-keyword lines to "##"
// headings and, within record-bearing sections, promotes lines that look like
// record headers to "###". This pass and the segmenter are two halves of the
// same contract over heading syntax.
func synthesizeHeadings(text string, kw *Keywords) string {
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))

	inRecordSection := false
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			out = append(out, line)
			continue
		}

		if sec, ok := matchSectionKeyword(trimmed, kw); ok && !strings.HasPrefix(trimmed, BulletTag) {
			out = append(out, "## "+trimmed)
			inRecordSection = sec == SectionExperience || sec == SectionEducation || sec == SectionProjects
			continue
		}

		if inRecordSection && !strings.HasPrefix(trimmed, BulletTag) && looksLikeRecordHeader(trimmed) {
			out = append(out, "### "+trimmed)
			continue
		}

		out = append(out, line)
	}

	return strings.Join(out, "\n")
}

func looksLikeRecordHeader(line string) bool {
	if len(pipeCountRe.FindAllString(line, -1)) >= 1 {
		return true
	}
	return dateRangeRe.MatchString(line)
}
