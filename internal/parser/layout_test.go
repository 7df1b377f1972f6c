package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"go-resume-backend/internal/domain"
)

func frag(text string, x, y float64) domain.Fragment {
	return domain.Fragment{Text: text, X: x, Y: y}
}

func TestReconstructPage(t *testing.T) {
	opts := DefaultLayoutOptions()

	t.Run("bullet fragment sequence", func(t *testing.T) {
		frags := []domain.Fragment{
			frag("•", 10, 100),
			frag("Built", 20, 100),
			frag("a", 55, 100),
			frag("tool", 70, 100),
		}
		got := ReconstructPage(frags, opts)
		assert.Equal(t, "[BULLET] Built a tool", got)
	})

	t.Run("vertical delta breaks the line", func(t *testing.T) {
		frags := []domain.Fragment{
			frag("Jane", 10, 100),
			frag("Doe", 40, 100),
			frag("Software Engineer", 10, 112),
		}
		got := ReconstructPage(frags, opts)
		assert.Equal(t, "Jane Doe\nSoftware Engineer", got)
	})

	t.Run("small vertical jitter stays on one line", func(t *testing.T) {
		frags := []domain.Fragment{
			frag("Hello", 10, 100),
			frag("world", 50, 103),
		}
		got := ReconstructPage(frags, opts)
		assert.Equal(t, "Hello world", got)
	})

	t.Run("adjacent fragments are not spaced", func(t *testing.T) {
		// "Jane" ends at 10 + 4*5 = 30; next fragment starts at 31, within
		// the word gap threshold.
		frags := []domain.Fragment{
			frag("Jane", 10, 100),
			frag("t", 31, 100),
		}
		got := ReconstructPage(frags, opts)
		assert.Equal(t, "Janet", got)
	})

	t.Run("numbered markers become bullets", func(t *testing.T) {
		frags := []domain.Fragment{
			frag("Intro", 10, 100),
			frag("1.", 10, 115),
			frag("First item", 20, 115),
		}
		got := ReconstructPage(frags, opts)
		assert.Equal(t, "Intro\n[BULLET] First item", got)
	})

	t.Run("empty fragments are skipped", func(t *testing.T) {
		frags := []domain.Fragment{
			frag("A", 10, 100),
			frag("   ", 20, 100),
			frag("B", 50, 100),
		}
		got := ReconstructPage(frags, opts)
		assert.Equal(t, "A B", got)
	})
}

func TestReconstructPages(t *testing.T) {
	kw := DefaultKeywords()
	opts := DefaultLayoutOptions()

	pages := [][]domain.Fragment{
		{
			frag("Jane Doe", 10, 20),
			frag("jane@example.com", 10, 32),
			frag("Experience", 10, 50),
			frag("Acme Corp | Jan 2021 - Present", 10, 65),
			frag("•", 10, 80),
			frag("Shipped things", 20, 80),
		},
		{
			frag("Education", 10, 20),
		},
	}

	got := ReconstructPages(pages, opts, kw)

	assert.Contains(t, got, "## Experience")
	assert.Contains(t, got, "### Acme Corp | Jan 2021 - Present")
	assert.Contains(t, got, "[BULLET] Shipped things")
	assert.Contains(t, got, "\n\n") // page separator
	assert.Contains(t, got, "## Education")
}

func TestSynthesizeHeadings(t *testing.T) {
	kw := DefaultKeywords()

	t.Run("record headers are promoted only inside record sections", func(t *testing.T) {
		text := strings.Join([]string{
			"Summary",
			"I work at Acme | sometimes",
			"Experience",
			"Acme Corp | 2019 - 2021",
		}, "\n")
		got := synthesizeHeadings(text, kw)
		assert.Contains(t, got, "I work at Acme | sometimes")
		assert.NotContains(t, got, "### I work at Acme")
		assert.Contains(t, got, "### Acme Corp | 2019 - 2021")
	})

	t.Run("bullet lines are never promoted", func(t *testing.T) {
		text := "Experience\n[BULLET] built x in 2019 - 2021"
		got := synthesizeHeadings(text, kw)
		assert.NotContains(t, got, "### [BULLET]")
	})
}
