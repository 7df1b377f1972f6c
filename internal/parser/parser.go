// Package parser implements the heuristic document-to-structured-resume
// pipeline: glyph layout reconstruction, section segmentation and the
// field-level extractors that turn unstructured prose into confidence-scored
// records. The pipeline is stateless and never fails on malformed content;
// degraded input yields a low-confidence result with warnings.
package parser

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"go-resume-backend/internal/domain"
)

// emptyResumeConfidence replaces the undefined mean when no records were
// extracted at all.
const emptyResumeConfidence = 30

// Parser is the assembled pipeline. Safe for concurrent use; it holds only
// read-only configuration.
type Parser struct {
	kw     *Keywords
	layout LayoutOptions
}

// New builds a Parser. A nil Keywords falls back to the built-in tables.
func New(kw *Keywords, layout LayoutOptions) *Parser {
	if kw == nil {
		kw = DefaultKeywords()
	}
	return &Parser{kw: kw, layout: layout}
}

// ParseFragments runs the full pipeline on positioned page fragments from a
// PDF-like source: layout reconstruction, heading synthesis, segmentation and
// extraction.
func (p *Parser) ParseFragments(ctx context.Context, pages [][]domain.Fragment) (*domain.ParsedResume, error) {
	text := ReconstructPages(pages, p.layout, p.kw)
	return p.assemble(ctx, text)
}

// ParseText runs the pipeline on plain extracted text with no positional
// metadata (DOCX, TXT, or pre-rendered markdown). Layout reconstruction is
// skipped, which degrades segmentation quality but never fails.
func (p *Parser) ParseText(ctx context.Context, text string) (*domain.ParsedResume, error) {
	return p.assemble(ctx, text)
}

// assemble segments the linearized text, fans out to the field extractors
// (they share no state, so they run concurrently), then merges the results
// and scores the whole.
func (p *Parser) assemble(ctx context.Context, text string) (*domain.ParsedResume, error) {
	segs := Segment(text, p.kw)

	resume := &domain.ParsedResume{
		RawText:  text,
		Warnings: []string{},
		Errors:   []string{},
	}

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		resume.PersonalInfo = ExtractPersonalInfo(segs[SectionPersonalInfo])
		return nil
	})
	g.Go(func() error {
		resume.Experiences = ExtractExperiences(segs[SectionExperience], p.kw)
		return nil
	})
	g.Go(func() error {
		resume.Education = ExtractEducation(segs[SectionEducation], p.kw)
		return nil
	})
	g.Go(func() error {
		resume.Skills = ClassifySkills(segs[SectionSkills], p.kw)
		return nil
	})
	g.Go(func() error {
		resume.Projects = ExtractProjects(segs[SectionProjects], p.kw)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	resume.Summary = joinSummary(segs[SectionSummary])
	resume.Certifications = bulletTexts(segs[SectionCertifications])
	resume.Unrecognized = bulletTexts(segs[SectionUnrecognized])

	p.score(resume)
	return resume, nil
}

// Rescore re-derives the aggregate invariants after the record set changes:
// record confidences are clamped to [0,100], display orders are re-assigned
// contiguously from zero, and the overall confidence (unweighted mean over
// every record) and review flag are recomputed. Callers that accept edited
// resumes must run this before persisting so client-supplied values cannot
// leave the stored aggregate inconsistent.
func Rescore(r *domain.ParsedResume) {
	sum, n := 0, 0
	if r.PersonalInfo != nil {
		r.PersonalInfo.Confidence = clampConfidence(r.PersonalInfo.Confidence)
		sum += r.PersonalInfo.Confidence
		n++
	}
	for i := range r.Experiences {
		r.Experiences[i].Order = i
		r.Experiences[i].Confidence = clampConfidence(r.Experiences[i].Confidence)
		sum += r.Experiences[i].Confidence
		n++
	}
	for i := range r.Education {
		r.Education[i].Order = i
		r.Education[i].Confidence = clampConfidence(r.Education[i].Confidence)
		sum += r.Education[i].Confidence
		n++
	}
	for i := range r.Skills {
		r.Skills[i].Confidence = clampConfidence(r.Skills[i].Confidence)
		sum += r.Skills[i].Confidence
		n++
	}
	for i := range r.Projects {
		r.Projects[i].Order = i
		r.Projects[i].Confidence = clampConfidence(r.Projects[i].Confidence)
		sum += r.Projects[i].Confidence
		n++
	}

	if n == 0 {
		r.OverallConfidence = emptyResumeConfidence
	} else {
		r.OverallConfidence = clampConfidence(sum / n)
	}
	r.NeedsReview = r.OverallConfidence < domain.ReviewThreshold
}

// score runs Rescore and adds the per-section missing warnings for a fresh
// parse.
func (p *Parser) score(r *domain.ParsedResume) {
	Rescore(r)

	if r.PersonalInfo == nil {
		r.Warnings = append(r.Warnings, "no personal info could be extracted")
	}
	if len(r.Experiences) == 0 {
		r.Warnings = append(r.Warnings, "no work experience could be extracted")
	}
	if len(r.Education) == 0 {
		r.Warnings = append(r.Warnings, "no education could be extracted")
	}
	if len(r.Skills) == 0 {
		r.Warnings = append(r.Warnings, "no skills could be extracted")
	}
	if len(r.Unrecognized) > 0 {
		r.Warnings = append(r.Warnings, fmt.Sprintf("%d line(s) of unrecognized content preserved", len(r.Unrecognized)))
	}
}

// joinSummary folds the summary section's lines into a single paragraph.
func joinSummary(lines []string) string {
	parts := make([]string, 0, len(lines))
	for _, l := range lines {
		text, _ := stripBullet(l)
		if text != "" {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, " ")
}

// bulletTexts strips bullet markers off a plain line list.
func bulletTexts(lines []string) []string {
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		text, _ := stripBullet(l)
		if text != "" {
			out = append(out, text)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
