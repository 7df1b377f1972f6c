// Package llm implements the career advisor on Google Gemini. The advisor
// receives the already-parsed resume, never the raw upload, so the prompt
// stays small and contains only structured fields.
package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"go-resume-backend/internal/domain"
)

const defaultModel = "gemini-1.5-flash"

// GeminiAdvisor implements the career advisor contract on the Gemini API.
type GeminiAdvisor struct {
	client *genai.Client
	model  string
}

func NewGeminiAdvisor(ctx context.Context, apiKey, model string) (*GeminiAdvisor, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if model == "" {
		model = defaultModel
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiAdvisor{client: client, model: model}, nil
}

func (a *GeminiAdvisor) Close() error {
	if a.client != nil {
		return a.client.Close()
	}
	return nil
}

// recommendationPayload mirrors the JSON shape the prompt asks for.
type recommendationPayload struct {
	Summary string `json:"summary"`
	Tracks  []struct {
		Title     string   `json:"title"`
		Rationale string   `json:"rationale"`
		SkillGaps []string `json:"skill_gaps"`
	} `json:"tracks"`
}

func (a *GeminiAdvisor) Recommend(ctx context.Context, parsed *domain.ParsedResume) (*domain.CareerRecommendation, error) {
	model := a.client.GenerativeModel(a.model)
	model.SetTemperature(0.1) // Low temperature for consistent output
	model.ResponseMIMEType = "application/json"

	resp, err := model.GenerateContent(ctx, genai.Text(buildPrompt(parsed)))
	if err != nil {
		return nil, fmt.Errorf("failed to generate recommendation: %w", err)
	}

	text, err := extractText(resp)
	if err != nil {
		return nil, err
	}

	var payload recommendationPayload
	if err := json.Unmarshal([]byte(cleanJSONBlock(text)), &payload); err != nil {
		return nil, fmt.Errorf("failed to decode recommendation: %w", err)
	}

	rec := &domain.CareerRecommendation{Summary: payload.Summary}
	for _, t := range payload.Tracks {
		rec.Tracks = append(rec.Tracks, domain.CareerTrack{
			Title:     t.Title,
			Rationale: t.Rationale,
			SkillGaps: t.SkillGaps,
		})
	}
	return rec, nil
}

// extractText pulls the text parts out of a Gemini response.
func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in response")
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("no content in response")
	}

	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}

	if len(parts) == 0 {
		return "", fmt.Errorf("no text parts in response")
	}
	return strings.Join(parts, ""), nil
}

// cleanJSONBlock removes markdown code block wrappers from JSON
func cleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}
