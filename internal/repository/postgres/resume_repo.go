package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"

	"go-resume-backend/internal/domain"
)

type resumeRepo struct {
	db *pgxpool.Pool
}

func NewResumeRepository(db *pgxpool.Pool) domain.ResumeRepository {
	return &resumeRepo{db: db}
}

// The parse result is stored as jsonb so the structured shape can evolve
// without migrations. Skill names are denormalized into a text[] column to
// keep them queryable for matching.
func (r *resumeRepo) Create(ctx context.Context, rec *domain.ResumeRecord) error {
	parsed, err := json.Marshal(rec.Parsed)
	if err != nil {
		return fmt.Errorf("failed to encode parse result: %w", err)
	}

	now := time.Now().UTC()
	rec.CreatedAt = now
	rec.UpdatedAt = now
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}

	query := `INSERT INTO resumes (id, user_id, filename, source_key, parsed, markdown, skill_names, overall_confidence, needs_review, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err = r.db.Exec(ctx, query,
		rec.ID, rec.UserID, rec.Filename, rec.SourceKey, parsed, rec.Markdown,
		pq.Array(skillNames(rec.Parsed.Skills)),
		rec.Parsed.OverallConfidence, rec.Parsed.NeedsReview,
		rec.CreatedAt, rec.UpdatedAt,
	)
	return err
}

func (r *resumeRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.ResumeRecord, error) {
	query := `SELECT id, user_id, filename, source_key, parsed, markdown, created_at, updated_at FROM resumes WHERE id = $1`

	var rec domain.ResumeRecord
	var parsed []byte
	err := r.db.QueryRow(ctx, query, id).Scan(
		&rec.ID, &rec.UserID, &rec.Filename, &rec.SourceKey, &parsed, &rec.Markdown,
		&rec.CreatedAt, &rec.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(parsed, &rec.Parsed); err != nil {
		return nil, fmt.Errorf("failed to decode parse result: %w", err)
	}
	return &rec, nil
}

func (r *resumeRepo) Update(ctx context.Context, rec *domain.ResumeRecord) error {
	parsed, err := json.Marshal(rec.Parsed)
	if err != nil {
		return fmt.Errorf("failed to encode parse result: %w", err)
	}
	rec.UpdatedAt = time.Now().UTC()

	query := `UPDATE resumes SET parsed = $2, markdown = $3, skill_names = $4, overall_confidence = $5, needs_review = $6, updated_at = $7 WHERE id = $1`
	tag, err := r.db.Exec(ctx, query,
		rec.ID, parsed, rec.Markdown,
		pq.Array(skillNames(rec.Parsed.Skills)),
		rec.Parsed.OverallConfidence, rec.Parsed.NeedsReview,
		rec.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *resumeRepo) FetchByUser(ctx context.Context, userID string, limit, offset int) ([]domain.ResumeRecord, int64, error) {
	query := `SELECT id, user_id, filename, source_key, parsed, markdown, created_at, updated_at
              FROM resumes WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`

	rows, err := r.db.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var recs []domain.ResumeRecord
	for rows.Next() {
		var rec domain.ResumeRecord
		var parsed []byte
		if err := rows.Scan(&rec.ID, &rec.UserID, &rec.Filename, &rec.SourceKey, &parsed, &rec.Markdown, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
			return nil, 0, err
		}
		if err := json.Unmarshal(parsed, &rec.Parsed); err != nil {
			return nil, 0, fmt.Errorf("failed to decode parse result: %w", err)
		}
		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM resumes WHERE user_id = $1`, userID).Scan(&total); err != nil {
		return nil, 0, err
	}

	return recs, total, nil
}

func (r *resumeRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM resumes WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func skillNames(skills []domain.Skill) []string {
	names := make([]string, 0, len(skills))
	for _, s := range skills {
		names = append(names, s.Name)
	}
	return names
}
