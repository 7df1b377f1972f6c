package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractProjects(t *testing.T) {
	kw := DefaultKeywords()

	t.Run("name url and dates from header", func(t *testing.T) {
		lines := []string{
			"### Chess Engine | https://github.com/jane/chess | 2022 - Ongoing",
			"[BULLET] Tech: Go, Bitboards, SQLite",
			"[BULLET] Search with alpha-beta pruning",
		}
		projs := ExtractProjects(lines, kw)
		require.Len(t, projs, 1)

		p := projs[0]
		assert.Equal(t, "Chess Engine", p.Name)
		assert.Equal(t, "https://github.com/jane/chess", p.URL)
		assert.Equal(t, "2022-01-01", p.StartDate)
		assert.Nil(t, p.EndDate) // ongoing
		assert.Equal(t, []string{"Go", "Bitboards", "SQLite"}, p.Technologies)
		assert.Equal(t, []string{"Search with alpha-beta pruning"}, p.Description)
	})

	t.Run("stack prefix variants feed technologies", func(t *testing.T) {
		lines := []string{
			"### Weather Bot",
			"[BULLET] Stack: Python; Redis",
			"[BULLET] Built with: Docker",
		}
		projs := ExtractProjects(lines, kw)
		require.Len(t, projs, 1)
		assert.Equal(t, []string{"Python", "Redis", "Docker"}, projs[0].Technologies)
		assert.Empty(t, projs[0].Description)
	})

	t.Run("plain header is just a name", func(t *testing.T) {
		projs := ExtractProjects([]string{"Dotfiles"}, kw)
		require.Len(t, projs, 1)
		assert.Equal(t, "Dotfiles", projs[0].Name)
		assert.Empty(t, projs[0].URL)
	})
}
