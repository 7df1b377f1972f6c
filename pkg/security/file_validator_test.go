package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateFile(t *testing.T) {
	pdfBytes := append([]byte("%PDF-1.7"), make([]byte, 16)...)
	zipBytes := append([]byte{0x50, 0x4B, 0x03, 0x04}, make([]byte, 16)...)

	t.Run("valid pdf", func(t *testing.T) {
		res := ValidateFile("resume.pdf", pdfBytes, "application/pdf")
		assert.True(t, res.Valid)
		assert.Equal(t, ".pdf", res.Extension)
	})

	t.Run("valid docx detected as zip", func(t *testing.T) {
		res := ValidateFile("resume.docx", zipBytes, "application/zip")
		assert.True(t, res.Valid)
	})

	t.Run("docx detected as octet-stream is allowed", func(t *testing.T) {
		res := ValidateFile("resume.docx", zipBytes, "application/octet-stream")
		assert.True(t, res.Valid)
	})

	t.Run("plain text", func(t *testing.T) {
		res := ValidateFile("resume.txt", []byte("Jane Doe, engineer"), "text/plain")
		assert.True(t, res.Valid)
	})

	t.Run("extension not on whitelist", func(t *testing.T) {
		res := ValidateFile("resume.exe", pdfBytes, "application/pdf")
		assert.False(t, res.Valid)
		assert.Contains(t, res.Error, "not allowed")
	})

	t.Run("spoofed extension", func(t *testing.T) {
		res := ValidateFile("resume.pdf", zipBytes, "application/pdf")
		assert.False(t, res.Valid)
		assert.Contains(t, res.Error, "does not match extension")
	})

	t.Run("octet-stream rejected for pdf", func(t *testing.T) {
		res := ValidateFile("resume.pdf", pdfBytes, "application/octet-stream")
		assert.False(t, res.Valid)
	})

	t.Run("missing extension", func(t *testing.T) {
		res := ValidateFile("resume", pdfBytes, "application/pdf")
		assert.False(t, res.Valid)
	})
}

func TestValidateFileExtension(t *testing.T) {
	assert.NoError(t, ValidateFileExtension("a.pdf"))
	assert.NoError(t, ValidateFileExtension("a.DOCX"))
	assert.Error(t, ValidateFileExtension("a.exe"))
	assert.Error(t, ValidateFileExtension("noext"))
}
