package extract

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"

	"go-resume-backend/internal/domain"
)

// extractPDF reads glyph runs with their page coordinates. PDF's Y axis
// grows upward, so coordinates are flipped per page to put Y=0 at the top,
// which is the orientation the layout reconstructor expects. When no
// positioned content comes back the plain-text stream is used instead.
func extractPDF(data []byte) (doc *domain.ExtractedDocument, err error) {
	defer func() {
		// The pdf package panics on some malformed files.
		if r := recover(); r != nil {
			doc = nil
			err = fmt.Errorf("malformed pdf: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to read pdf: %w", err)
	}

	var pages [][]domain.Fragment
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		if frags := pageFragments(page); len(frags) > 0 {
			pages = append(pages, frags)
		}
	}

	if len(pages) > 0 {
		return &domain.ExtractedDocument{Pages: pages, HasLayout: true}, nil
	}

	// Scanned or oddly encoded documents: fall back to the linear stream.
	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}
	if sb.Len() == 0 {
		return nil, fmt.Errorf("pdf contains no extractable text")
	}
	return &domain.ExtractedDocument{Text: sb.String()}, nil
}

func pageFragments(page pdf.Page) []domain.Fragment {
	texts := page.Content().Text
	if len(texts) == 0 {
		return nil
	}

	maxY := texts[0].Y
	for _, t := range texts {
		if t.Y > maxY {
			maxY = t.Y
		}
	}

	frags := make([]domain.Fragment, 0, len(texts))
	for _, t := range texts {
		if strings.TrimSpace(t.S) == "" {
			continue
		}
		frags = append(frags, domain.Fragment{
			Text: t.S,
			X:    t.X,
			Y:    maxY - t.Y,
		})
	}

	sort.SliceStable(frags, func(i, j int) bool {
		if frags[i].Y != frags[j].Y {
			return frags[i].Y < frags[j].Y
		}
		return frags[i].X < frags[j].X
	})
	return frags
}
