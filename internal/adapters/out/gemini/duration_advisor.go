// Package gemini implements the duration advisor port against the Google
// Gemini generateContent API. The estimate pre-fills the planning form; it is
// advisory only, so callers treat any failure as "no estimate".
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"pressflow/internal/pkg/errs"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com"
	defaultModel   = "gemini-2.0-flash"
)

// DurationAdvisor asks a Gemini model for a production duration estimate.
type DurationAdvisor struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

// NewDurationAdvisor creates an advisor using the given API key.
func NewDurationAdvisor(apiKey string) (*DurationAdvisor, error) {
	if apiKey == "" {
		return nil, errs.NewValueIsRequiredError("apiKey is required")
	}

	return &DurationAdvisor{
		apiKey:  apiKey,
		model:   defaultModel,
		baseURL: defaultBaseURL,
		client:  &http.Client{Timeout: 15 * time.Second},
	}, nil
}

// WithBaseURL overrides the API endpoint, used in tests.
func (a *DurationAdvisor) WithBaseURL(baseURL string) *DurationAdvisor {
	a.baseURL = baseURL
	return a
}

type generateContentRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

type durationEstimate struct {
	Duration int    `json:"duration"`
	Reason   string `json:"reason"`
}

// EstimateDurationHours implements ports.DurationAdvisor.
func (a *DurationAdvisor) EstimateDurationHours(ctx context.Context, orderDescription string) (int, error) {
	prompt := fmt.Sprintf(
		"You are a print production planning expert. Estimate the total production "+
			"duration (setup plus run) in whole hours for the following order: %s. "+
			`Answer with JSON only, in the form {"duration": 4, "reason": "..."}.`,
		orderDescription)

	body, err := json.Marshal(generateContentRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return 0, err
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", a.baseURL, a.model, a.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("gemini API returned status %d", resp.StatusCode)
	}

	var parsed generateContentResponse
	if err = json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return 0, err
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return 0, fmt.Errorf("gemini API returned no candidates")
	}

	estimate, err := parseEstimate(parsed.Candidates[0].Content.Parts[0].Text)
	if err != nil {
		return 0, err
	}
	if estimate.Duration <= 0 {
		return 0, fmt.Errorf("gemini API returned a non-positive duration %d", estimate.Duration)
	}

	return estimate.Duration, nil
}

// parseEstimate extracts the JSON answer, tolerating markdown code fences
// around it.
func parseEstimate(text string) (durationEstimate, error) {
	cleaned := strings.TrimSpace(text)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	var estimate durationEstimate
	if err := json.Unmarshal([]byte(cleaned), &estimate); err != nil {
		return durationEstimate{}, fmt.Errorf("gemini answer is not valid JSON: %w", err)
	}
	return estimate, nil
}
