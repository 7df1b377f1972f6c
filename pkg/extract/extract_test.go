package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract(t *testing.T) {
	e := New()

	t.Run("plain text passes through", func(t *testing.T) {
		doc, err := e.Extract("resume.txt", []byte("Jane Doe\njane@example.com"))
		require.NoError(t, err)
		assert.Equal(t, "Jane Doe\njane@example.com", doc.Text)
		assert.False(t, doc.HasLayout)
	})

	t.Run("extension match is case insensitive", func(t *testing.T) {
		doc, err := e.Extract("RESUME.TXT", []byte("hello"))
		require.NoError(t, err)
		assert.Equal(t, "hello", doc.Text)
	})

	t.Run("unsupported extension is rejected", func(t *testing.T) {
		_, err := e.Extract("resume.exe", []byte("MZ"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported file type")
	})

	t.Run("broken pdf reports an error instead of panicking", func(t *testing.T) {
		_, err := e.Extract("resume.pdf", []byte("%PDF-1.4 truncated garbage"))
		assert.Error(t, err)
	})

	t.Run("broken docx is rejected", func(t *testing.T) {
		_, err := e.Extract("resume.docx", []byte("not a zip archive"))
		assert.Error(t, err)
	})
}
