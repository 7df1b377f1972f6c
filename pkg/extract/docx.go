package extract

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/nguyenthenguyen/docx"

	"go-resume-backend/internal/domain"
)

var (
	docxParaRe = regexp.MustCompile(`</w:p>`)
	docxTagRe  = regexp.MustCompile(`<[^>]+>`)
)

// extractDocx reads the document body. The docx package returns the raw
// paragraph XML, so paragraph boundaries become newlines and the remaining
// tags are stripped before the text reaches the parser.
func extractDocx(data []byte) (*domain.ExtractedDocument, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to parse docx: %w", err)
	}
	defer doc.Close()

	content := doc.Editable().GetContent()
	content = docxParaRe.ReplaceAllString(content, "\n")
	content = docxTagRe.ReplaceAllString(content, "")
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, fmt.Errorf("docx contains no extractable text")
	}
	return &domain.ExtractedDocument{Text: content}, nil
}
