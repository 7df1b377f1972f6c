// Package extract turns uploaded resume files into text and positioned
// fragments for the parsing pipeline. PDF input keeps glyph coordinates so
// layout can be reconstructed; DOCX and plain text only yield linear text.
package extract

import (
	"fmt"
	"path/filepath"
	"strings"

	"go-resume-backend/internal/domain"
)

type Extractor struct{}

func New() *Extractor {
	return &Extractor{}
}

// Extract dispatches on the file extension. Unsupported types and
// structurally broken files are the only fatal outcomes; everything past
// extraction degrades to warnings in the parse result instead.
func (e *Extractor) Extract(filename string, data []byte) (*domain.ExtractedDocument, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return extractPDF(data)
	case ".docx":
		return extractDocx(data)
	case ".txt":
		return &domain.ExtractedDocument{Text: string(data)}, nil
	default:
		return nil, fmt.Errorf("unsupported file type: %s", filepath.Ext(filename))
	}
}
