package domain

import (
	"context"

	"github.com/google/uuid"
)

// CareerTrack is one recommended career direction for a candidate.
type CareerTrack struct {
	Title     string   `json:"title"`
	Rationale string   `json:"rationale"`
	SkillGaps []string `json:"skill_gaps"`
}

// CareerRecommendation is the LLM-produced advice for a parsed resume.
type CareerRecommendation struct {
	ResumeID uuid.UUID     `json:"resume_id"`
	Summary  string        `json:"summary"`
	Tracks   []CareerTrack `json:"tracks"`
}

// CareerAdvisor is the LLM boundary. The model's reasoning is opaque; the
// core only owns prompt construction and response decoding.
type CareerAdvisor interface {
	Recommend(ctx context.Context, parsed *ParsedResume) (*CareerRecommendation, error)
}

type RecommendationUsecase interface {
	RecommendForResume(ctx context.Context, resumeID uuid.UUID) (*CareerRecommendation, error)
}
