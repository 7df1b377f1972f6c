package domain

import (
	"context"

	"github.com/google/uuid"
)

// JobPosting is a matching posting returned by the third-party search API.
type JobPosting struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Company     string  `json:"company"`
	Location    string  `json:"location,omitempty"`
	URL         string  `json:"url,omitempty"`
	Description string  `json:"description,omitempty"`
	SalaryMin   float64 `json:"salary_min,omitempty"`
	SalaryMax   float64 `json:"salary_max,omitempty"`
}

// JobQuery is built from a parsed resume's strongest signals.
type JobQuery struct {
	Title    string   `json:"title"`
	Skills   []string `json:"skills"`
	Location string   `json:"location,omitempty"`
	Limit    int      `json:"limit"`
}

// JobSearchClient is the third-party job-search API boundary.
type JobSearchClient interface {
	Search(ctx context.Context, query JobQuery) ([]JobPosting, error)
}

type JobMatchUsecase interface {
	MatchesForResume(ctx context.Context, resumeID uuid.UUID, limit int) ([]JobPosting, error)
}
