package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"go-resume-backend/internal/domain"
	"go-resume-backend/internal/parser"
	"go-resume-backend/pkg/apperror"
	"go-resume-backend/pkg/logger"
	"go-resume-backend/pkg/security"
)

// MaxUploadBytes bounds accepted resume files. Real resumes are rarely over
// a couple of megabytes; anything bigger is either not a resume or abuse.
const MaxUploadBytes = 10 << 20

type resumeUsecase struct {
	repo      domain.ResumeRepository
	store     domain.ObjectStore
	extractor domain.DocumentExtractor
	parser    *parser.Parser
	validate  *validator.Validate
}

func NewResumeUsecase(
	repo domain.ResumeRepository,
	store domain.ObjectStore,
	extractor domain.DocumentExtractor,
	p *parser.Parser,
	validate *validator.Validate,
) domain.ResumeUsecase {
	return &resumeUsecase{
		repo:      repo,
		store:     store,
		extractor: extractor,
		parser:    p,
		validate:  validate,
	}
}

// Upload runs the full pipeline: validate the file, archive the original,
// extract text, parse, render markdown and persist the record. Heuristic
// trouble surfaces as warnings on the stored result; only file validation,
// extraction and persistence can fail the request.
func (u *resumeUsecase) Upload(ctx context.Context, userID, filename string, data []byte) (*domain.ResumeRecord, error) {
	if len(data) == 0 {
		return nil, apperror.BadRequest("uploaded file is empty")
	}
	if len(data) > MaxUploadBytes {
		return nil, apperror.BadRequest("uploaded file exceeds the 10MB limit")
	}

	if res := security.ValidateFile(filename, data, http.DetectContentType(data)); !res.Valid {
		return nil, apperror.BadRequest(res.Error)
	}

	doc, err := u.extractor.Extract(filename, data)
	if err != nil {
		logger.Log.Warn("document extraction failed",
			slog.String("filename", filename),
			slog.String("error", err.Error()),
		)
		return nil, apperror.BadRequest(fmt.Sprintf("could not read document: %v", err))
	}

	var parsed *domain.ParsedResume
	if doc.HasLayout {
		parsed, err = u.parser.ParseFragments(ctx, doc.Pages)
	} else {
		parsed, err = u.parser.ParseText(ctx, doc.Text)
	}
	if err != nil {
		return nil, apperror.Internal(err)
	}

	rec := &domain.ResumeRecord{
		ID:       uuid.New(),
		UserID:   userID,
		Filename: filename,
		Parsed:   *parsed,
		Markdown: parser.RenderMarkdown(parsed),
	}
	rec.SourceKey = fmt.Sprintf("resumes/%s/%s", userID, rec.ID)

	if err := u.store.Put(ctx, rec.SourceKey, data, http.DetectContentType(data)); err != nil {
		return nil, apperror.Internal(err)
	}

	if err := u.repo.Create(ctx, rec); err != nil {
		return nil, apperror.Internal(err)
	}

	logger.Log.Info("resume parsed",
		slog.String("resume_id", rec.ID.String()),
		slog.Int("confidence", parsed.OverallConfidence),
		slog.Bool("needs_review", parsed.NeedsReview),
	)
	return rec, nil
}

func (u *resumeUsecase) Get(ctx context.Context, id uuid.UUID) (*domain.ResumeRecord, error) {
	rec, err := u.repo.GetByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.NotFound("Resume not found")
	}
	if err != nil {
		return nil, err
	}
	return rec, nil
}

func (u *resumeUsecase) GetMarkdown(ctx context.Context, id uuid.UUID) (string, error) {
	rec, err := u.Get(ctx, id)
	if err != nil {
		return "", err
	}
	return rec.Markdown, nil
}

// Replace swaps the structured fields for a user-corrected version. User
// edits are authoritative: corrected skills get full confidence, then the
// aggregate is re-scored so client-supplied confidences and orders cannot
// persist an inconsistent record.
func (u *resumeUsecase) Replace(ctx context.Context, id uuid.UUID, parsed *domain.ParsedResume) (*domain.ResumeRecord, error) {
	if parsed == nil {
		return nil, apperror.BadRequest("missing resume payload")
	}
	if err := u.validate.Struct(parsed); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}

	rec, err := u.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	for i := range parsed.Skills {
		parsed.Skills[i].Confidence = parser.UserSkillConfidence
	}
	parser.Rescore(parsed)

	rec.Parsed = *parsed
	rec.Markdown = parser.RenderMarkdown(parsed)

	if err := u.repo.Update(ctx, rec); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Resume not found")
		}
		return nil, apperror.Internal(err)
	}
	return rec, nil
}

func (u *resumeUsecase) ListByUser(ctx context.Context, userID string, page, pageSize int) ([]domain.ResumeRecord, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return u.repo.FetchByUser(ctx, userID, pageSize, (page-1)*pageSize)
}

func (u *resumeUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	err := u.repo.Delete(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return apperror.NotFound("Resume not found")
	}
	return err
}
