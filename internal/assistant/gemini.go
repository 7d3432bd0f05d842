// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package assistant

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"google.golang.org/genai"
)

// DefaultModel is the Gemini model used when none is configured.
const DefaultModel = "gemini-2.0-flash"

// ErrNoAPIKey is returned by Generate when no API key was supplied.
var ErrNoAPIKey = errors.New("gemini API key is not configured")

// GeminiConfig configures a GeminiGenerator.
type GeminiConfig struct {
	APIKey string
	Model  string

	// BaseURL overrides the API endpoint. Empty uses the public Gemini API.
	BaseURL string
}

// GeminiGenerator calls the Gemini API through the genai SDK.
type GeminiGenerator struct {
	client *genai.Client
	model  string
}

// NewGeminiGenerator creates the genai client. A missing API key is not an
// error here: Generate reports ErrNoAPIKey so the caller still gets a
// response value.
func NewGeminiGenerator(ctx context.Context, cfg GeminiConfig) (*GeminiGenerator, error) {
	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}
	g := &GeminiGenerator{model: model}

	apiKey := strings.TrimSpace(cfg.APIKey)
	if apiKey == "" {
		return g, nil
	}

	cc := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}
	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("creating GenAI client: %w", err)
	}
	g.client = client
	return g, nil
}

// Generate sends a single-turn prompt with hate speech and harassment
// thresholds and returns the generated text.
func (g *GeminiGenerator) Generate(ctx context.Context, prompt string, safety SafetyConfig) (string, error) {
	if g.client == nil {
		return "", ErrNoAPIKey
	}

	config := &genai.GenerateContentConfig{
		SafetySettings: []*genai.SafetySetting{
			{
				Category:  genai.HarmCategoryHateSpeech,
				Threshold: genai.HarmBlockThreshold(safety.HateSpeechThreshold),
			},
			{
				Category:  genai.HarmCategoryHarassment,
				Threshold: genai.HarmBlockThreshold(safety.HarassmentThreshold),
			},
		},
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), config)
	if err != nil {
		if isRateLimit(err) {
			return "", fmt.Errorf("%w: %v", ErrRateLimited, err)
		}
		return "", err
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", fmt.Errorf("model %s returned no text", g.model)
	}
	return text, nil
}

// isRateLimit reports whether err is the service's HTTP 429 /
// RESOURCE_EXHAUSTED signal.
func isRateLimit(err error) bool {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code == http.StatusTooManyRequests || apiErr.Status == "RESOURCE_EXHAUSTED"
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) && apiErrPtr != nil {
		return apiErrPtr.Code == http.StatusTooManyRequests || apiErrPtr.Status == "RESOURCE_EXHAUSTED"
	}
	return false
}
