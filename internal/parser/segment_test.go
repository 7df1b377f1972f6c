package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitContactBlock(t *testing.T) {
	kw := DefaultKeywords()

	t.Run("name line plus contact lines", func(t *testing.T) {
		lines := []string{
			"Jane Doe",
			"jane@example.com | (555) 123-4567",
			"San Francisco, CA",
			"Passionate engineer with ten years of experience.",
		}
		block, rest := splitContactBlock(lines, kw)
		assert.Equal(t, []string{
			"Jane Doe",
			"jane@example.com | (555) 123-4567",
			"San Francisco, CA",
		}, block)
		assert.Equal(t, []string{"Passionate engineer with ten years of experience."}, rest)
	})

	t.Run("heading stops the scan", func(t *testing.T) {
		lines := []string{"Jane Doe", "jane@example.com", "## Experience", "Acme"}
		block, rest := splitContactBlock(lines, kw)
		assert.Equal(t, []string{"Jane Doe", "jane@example.com"}, block)
		assert.Equal(t, []string{"## Experience", "Acme"}, rest)
	})

	t.Run("no contact signals means no block", func(t *testing.T) {
		lines := []string{"Seasoned backend developer.", "More prose."}
		block, rest := splitContactBlock(lines, kw)
		assert.Nil(t, block)
		assert.Equal(t, lines, rest)
	})

	t.Run("scan is bounded", func(t *testing.T) {
		lines := []string{
			"Jane Doe",
			"jane@example.com",
			"github.com/jane",
			"linkedin.com/in/jane",
			"(555) 123-4567",
			"extra@example.com", // sixth non-empty line, outside the scan
		}
		block, _ := splitContactBlock(lines, kw)
		assert.Len(t, block, 5)
	})
}

func TestSegment(t *testing.T) {
	kw := DefaultKeywords()

	t.Run("headings open canonical sections", func(t *testing.T) {
		text := strings.Join([]string{
			"Jane Doe",
			"jane@example.com",
			"",
			"## Work Experience",
			"### Acme Corp | 2019 - 2021",
			"[BULLET] Did things",
			"## Education",
			"### State University | 2015 - 2019",
			"## Technical Skills",
			"Go, Python",
		}, "\n")

		segs := Segment(text, kw)
		assert.Equal(t, []string{"Jane Doe", "jane@example.com"}, segs[SectionPersonalInfo])
		assert.Equal(t, []string{"### Acme Corp | 2019 - 2021", "[BULLET] Did things"}, segs[SectionExperience])
		assert.Equal(t, []string{"### State University | 2015 - 2019"}, segs[SectionEducation])
		assert.Equal(t, []string{"Go, Python"}, segs[SectionSkills])
	})

	t.Run("bare keyword lines act as headings", func(t *testing.T) {
		text := "Experience\nAcme Corp | 2019 - 2021"
		segs := Segment(text, kw)
		assert.Equal(t, []string{"Acme Corp | 2019 - 2021"}, segs[SectionExperience])
	})

	t.Run("content before any heading becomes summary", func(t *testing.T) {
		text := "Seasoned backend developer.\n## Skills\nGo"
		segs := Segment(text, kw)
		assert.Equal(t, []string{"Seasoned backend developer."}, segs[SectionSummary])
	})

	t.Run("sub-headings stay as section content", func(t *testing.T) {
		text := "## Skills\n### Technical Skills\nGo\n### Soft Skills\nLeadership"
		segs := Segment(text, kw)
		assert.Equal(t, []string{"### Technical Skills", "Go", "### Soft Skills", "Leadership"}, segs[SectionSkills])
	})

	t.Run("duplicate headings merge", func(t *testing.T) {
		text := "## Skills\nGo\n## Skills\nPython"
		segs := Segment(text, kw)
		assert.Equal(t, []string{"Go", "Python"}, segs[SectionSkills])
	})

	t.Run("unmatched marked heading goes to unrecognized", func(t *testing.T) {
		text := "## Hobbies\nChess\nHiking"
		segs := Segment(text, kw)
		assert.Equal(t, []string{"Hobbies", "Chess", "Hiking"}, segs[SectionUnrecognized])
	})

	t.Run("long lines never match as headings", func(t *testing.T) {
		text := "## Summary\nMy experience spans many industries and roles over the years"
		segs := Segment(text, kw)
		assert.Len(t, segs[SectionSummary], 1)
		assert.Empty(t, segs[SectionExperience])
	})
}
