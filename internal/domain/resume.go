package domain

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Common domain errors
var ErrNotFound = errors.New("resource not found")

// ReviewThreshold is the overall confidence below which a parsed resume is
// flagged for human review.
const ReviewThreshold = 70

// SkillCategory classifies an extracted skill.
type SkillCategory string

const (
	SkillProgramming SkillCategory = "programming"
	SkillTools       SkillCategory = "tools"
	SkillSoft        SkillCategory = "soft-skills"
	SkillLanguage    SkillCategory = "language"
	SkillOther       SkillCategory = "other"
)

// PersonalInfo is the contact block extracted from the top of a resume.
type PersonalInfo struct {
	Name       string `json:"name" validate:"omitempty,valid_name,no_emoji"`
	Email      string `json:"email,omitempty" validate:"omitempty,email"`
	Phone      string `json:"phone,omitempty" validate:"omitempty,valid_phone"`
	Location   string `json:"location,omitempty"`
	LinkedIn   string `json:"linkedin,omitempty"`
	GitHub     string `json:"github,omitempty"`
	Portfolio  string `json:"portfolio,omitempty"`
	Confidence int    `json:"confidence"`
}

// Experience is a single work history entry. Dates are ISO strings
// (YYYY-MM-DD). EndDate == nil with IsCurrent == false means the end date is
// unknown, not "present"; IsCurrent is true only when the source text said so.
type Experience struct {
	Company     string   `json:"company" validate:"required"`
	Title       string   `json:"title" validate:"required"`
	Location    string   `json:"location,omitempty"`
	StartDate   string   `json:"start_date" validate:"required"`
	EndDate     *string  `json:"end_date"`
	IsCurrent   bool     `json:"is_current"`
	Description []string `json:"description"`
	Confidence  int      `json:"confidence" validate:"min=0,max=100"`
	Order       int      `json:"order"`
}

type Education struct {
	Institution string   `json:"institution"`
	Degree      string   `json:"degree,omitempty"`
	Field       string   `json:"field,omitempty"`
	StartDate   string   `json:"start_date,omitempty"`
	EndDate     *string  `json:"end_date"`
	GPA         string   `json:"gpa,omitempty"`
	Description []string `json:"description"`
	Confidence  int      `json:"confidence" validate:"min=0,max=100"`
	Order       int      `json:"order"`
}

type Project struct {
	Name         string   `json:"name" validate:"required"`
	Description  []string `json:"description"`
	Technologies []string `json:"technologies"`
	URL          string   `json:"url,omitempty"`
	StartDate    string   `json:"start_date,omitempty"`
	EndDate      *string  `json:"end_date"`
	Confidence   int      `json:"confidence" validate:"min=0,max=100"`
	Order        int      `json:"order"`
}

type Skill struct {
	Name       string        `json:"name" validate:"required"`
	Category   SkillCategory `json:"category" validate:"oneof=programming tools soft-skills language other"`
	Confidence int           `json:"confidence" validate:"min=0,max=100"`
	Frequency  int           `json:"frequency,omitempty"`
}

// ParsedResume is the aggregate produced by one parse pass. It is an
// immutable snapshot: re-parsing or a user edit replaces it wholesale.
type ParsedResume struct {
	RawText           string        `json:"raw_text"`
	PersonalInfo      *PersonalInfo `json:"personal_info,omitempty"`
	Summary           string        `json:"summary,omitempty"`
	Experiences       []Experience  `json:"experiences" validate:"dive"`
	Education         []Education   `json:"education" validate:"dive"`
	Skills            []Skill       `json:"skills" validate:"dive"`
	Projects          []Project     `json:"projects" validate:"dive"`
	Certifications    []string      `json:"certifications,omitempty"`
	Unrecognized      []string      `json:"unrecognized,omitempty"`
	OverallConfidence int           `json:"overall_confidence"`
	NeedsReview       bool          `json:"needs_review"`
	Warnings          []string      `json:"warnings"`
	Errors            []string      `json:"errors"`
}

// ResumeRecord is the stored aggregate: the parse result plus upload
// metadata and the markdown rendering kept for display/editing.
type ResumeRecord struct {
	ID        uuid.UUID    `json:"id"`
	UserID    string       `json:"user_id" validate:"required"`
	Filename  string       `json:"filename"`
	SourceKey string       `json:"source_key"` // object storage key of the original document
	Parsed    ParsedResume `json:"parsed"`
	Markdown  string       `json:"markdown"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// Fragment is a single positioned run of text on a page. Coordinates are in
// the source document's units with the origin at the top-left.
type Fragment struct {
	Text string  `json:"text"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
}

// ExtractedDocument is the decoded form of an uploaded file handed to the
// parsing pipeline. Pages is set when the source format carries positional
// metadata (PDF); Text is the plain-text fallback for flow formats (DOCX,
// TXT) where no layout reconstruction is possible.
type ExtractedDocument struct {
	Pages     [][]Fragment
	Text      string
	HasLayout bool
}

type ResumeRepository interface {
	Create(ctx context.Context, rec *ResumeRecord) error
	GetByID(ctx context.Context, id uuid.UUID) (*ResumeRecord, error)
	Update(ctx context.Context, rec *ResumeRecord) error
	FetchByUser(ctx context.Context, userID string, limit, offset int) ([]ResumeRecord, int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ObjectStore persists original uploaded documents. Implemented by the
// S3-compatible storage client.
type ObjectStore interface {
	Put(ctx context.Context, key string, data []byte, contentType string) error
	Get(ctx context.Context, key string) ([]byte, error)
}

// DocumentExtractor decodes raw uploaded bytes into page fragments or plain
// text. A failure here is the only fatal error class in the pipeline.
type DocumentExtractor interface {
	Extract(filename string, data []byte) (*ExtractedDocument, error)
}

type ResumeUsecase interface {
	Upload(ctx context.Context, userID, filename string, data []byte) (*ResumeRecord, error)
	Get(ctx context.Context, id uuid.UUID) (*ResumeRecord, error)
	GetMarkdown(ctx context.Context, id uuid.UUID) (string, error)
	Replace(ctx context.Context, id uuid.UUID, parsed *ParsedResume) (*ResumeRecord, error)
	ListByUser(ctx context.Context, userID string, page, pageSize int) ([]ResumeRecord, int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
