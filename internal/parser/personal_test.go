package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractPersonalInfo(t *testing.T) {
	t.Run("full contact block", func(t *testing.T) {
		info := ExtractPersonalInfo([]string{
			"Jane Doe",
			"jane.doe@example.com | (555) 123-4567",
			"San Francisco, CA",
			"linkedin.com/in/janedoe | github.com/janedoe",
		})
		require.NotNil(t, info)
		assert.Equal(t, "Jane Doe", info.Name)
		assert.Equal(t, "jane.doe@example.com", info.Email)
		assert.Equal(t, "(555) 123-4567", info.Phone)
		assert.Equal(t, "San Francisco, CA", info.Location)
		assert.Contains(t, info.LinkedIn, "linkedin.com/in/janedoe")
		assert.Contains(t, info.GitHub, "github.com/janedoe")
		// 50 base + 10 each for email, phone, linkedin, github, name
		assert.Equal(t, 100, info.Confidence)
	})

	t.Run("labelled profile references", func(t *testing.T) {
		info := ExtractPersonalInfo([]string{
			"John Smith",
			"john@example.com",
			"LinkedIn: johnsmith",
		})
		require.NotNil(t, info)
		assert.Equal(t, "johnsmith", info.LinkedIn)
	})

	t.Run("international prefix phone", func(t *testing.T) {
		info := ExtractPersonalInfo([]string{"Jane", "+1 415 555 0198"})
		require.NotNil(t, info)
		assert.NotEmpty(t, info.Phone)
	})

	t.Run("name line with inline contact stripped", func(t *testing.T) {
		info := ExtractPersonalInfo([]string{"Jane Doe | jane@example.com"})
		require.NotNil(t, info)
		assert.Equal(t, "Jane Doe", info.Name)
	})

	t.Run("nil when nothing identifiable", func(t *testing.T) {
		assert.Nil(t, ExtractPersonalInfo([]string{"### some heading", ""}))
		assert.Nil(t, ExtractPersonalInfo(nil))
	})

	t.Run("overlong residue rejected as a name", func(t *testing.T) {
		info := ExtractPersonalInfo([]string{
			"A very long opening line that could not possibly be anybody's actual name at all",
			"jane@example.com",
		})
		require.NotNil(t, info)
		assert.Empty(t, info.Name)
		assert.Equal(t, "jane@example.com", info.Email)
	})

	t.Run("accented names measured in characters", func(t *testing.T) {
		info := ExtractPersonalInfo([]string{"José García-Ibáñez", "jose@example.com"})
		require.NotNil(t, info)
		assert.Equal(t, "José García-Ibáñez", info.Name)

		// 44 characters but 52 UTF-8 bytes; must still pass the <50 gate.
		long := "Jörg Müller-Ängström von Drächenfürt Ödegård"
		info = ExtractPersonalInfo([]string{long, "jorg@example.com"})
		require.NotNil(t, info)
		assert.Equal(t, long, info.Name)
	})

	t.Run("portfolio keyword value", func(t *testing.T) {
		info := ExtractPersonalInfo([]string{"Jane Doe", "Portfolio: janedoe.dev"})
		require.NotNil(t, info)
		assert.Equal(t, "janedoe.dev", info.Portfolio)
	})
}
