// Package jobsearch wraps the third-party job posting search API. The
// service degrades gracefully when the API is unreachable; matching is an
// enrichment, never part of the parse pipeline.
package jobsearch

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go-resume-backend/internal/domain"
)

const (
	defaultTimeout = 10 * time.Second
	defaultLimit   = 10
	maxLimit       = 50
)

// Client calls an Adzuna-compatible search endpoint.
type Client struct {
	baseURL string
	appID   string
	appKey  string
	http    *http.Client
}

func NewClient(baseURL, appID, appKey string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		appID:   appID,
		appKey:  appKey,
		http:    &http.Client{Timeout: defaultTimeout},
	}
}

// searchResponse mirrors the API's result envelope.
type searchResponse struct {
	Results []struct {
		ID      string `json:"id"`
		Title   string `json:"title"`
		Company struct {
			DisplayName string `json:"display_name"`
		} `json:"company"`
		Location struct {
			DisplayName string `json:"display_name"`
		} `json:"location"`
		RedirectURL string  `json:"redirect_url"`
		Description string  `json:"description"`
		SalaryMin   float64 `json:"salary_min"`
		SalaryMax   float64 `json:"salary_max"`
	} `json:"results"`
}

func (c *Client) Search(ctx context.Context, query domain.JobQuery) ([]domain.JobPosting, error) {
	limit := query.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	terms := query.Title
	if len(query.Skills) > 0 {
		terms = strings.TrimSpace(terms + " " + strings.Join(query.Skills, " "))
	}

	params := url.Values{}
	params.Set("app_id", c.appID)
	params.Set("app_key", c.appKey)
	params.Set("what", terms)
	params.Set("results_per_page", strconv.Itoa(limit))
	if query.Location != "" {
		params.Set("where", query.Location)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create search request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("job search request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("job search returned status %d", resp.StatusCode)
	}

	var payload searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}

	postings := make([]domain.JobPosting, 0, len(payload.Results))
	for _, r := range payload.Results {
		postings = append(postings, domain.JobPosting{
			ID:          r.ID,
			Title:       r.Title,
			Company:     r.Company.DisplayName,
			Location:    r.Location.DisplayName,
			URL:         r.RedirectURL,
			Description: r.Description,
			SalaryMin:   r.SalaryMin,
			SalaryMax:   r.SalaryMax,
		})
	}
	return postings, nil
}
