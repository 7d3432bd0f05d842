// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type generateRequest struct {
	Contents []struct {
		Parts []struct {
			Text string `json:"text"`
		} `json:"parts"`
	} `json:"contents"`
	SafetySettings []struct {
		Category  string `json:"category"`
		Threshold string `json:"threshold"`
	} `json:"safetySettings"`
}

func newGeminiServer(t *testing.T, status int, body string, got *generateRequest, calls *int32) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(calls, 1)
		if !strings.HasSuffix(r.URL.Path, ":generateContent") {
			http.NotFound(w, r)
			return
		}
		if got != nil {
			json.NewDecoder(r.Body).Decode(got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		fmt.Fprint(w, body)
	}))
	t.Cleanup(ts.Close)
	return ts
}

func TestGeminiGenerate(t *testing.T) {
	var got generateRequest
	var calls int32
	ts := newGeminiServer(t, http.StatusOK,
		`{"candidates":[{"content":{"role":"model","parts":[{"text":"  Transformers rely on attention.  "}]},"finishReason":"STOP"}]}`,
		&got, &calls)

	g, err := NewGeminiGenerator(context.Background(), GeminiConfig{APIKey: "test-key", BaseURL: ts.URL})
	require.NoError(t, err)

	text, err := g.Generate(context.Background(), "explain transformers", DefaultSafety())
	require.NoError(t, err)
	assert.Equal(t, "Transformers rely on attention.", text)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))

	require.Len(t, got.Contents, 1)
	assert.Equal(t, "explain transformers", got.Contents[0].Parts[0].Text)

	thresholds := map[string]string{}
	for _, s := range got.SafetySettings {
		thresholds[s.Category] = s.Threshold
	}
	assert.Equal(t, map[string]string{
		"HARM_CATEGORY_HATE_SPEECH": "BLOCK_ONLY_HIGH",
		"HARM_CATEGORY_HARASSMENT":  "BLOCK_ONLY_HIGH",
	}, thresholds)
}

func TestGeminiGenerateRateLimited(t *testing.T) {
	var calls int32
	ts := newGeminiServer(t, http.StatusTooManyRequests,
		`{"error":{"code":429,"message":"Resource has been exhausted","status":"RESOURCE_EXHAUSTED"}}`,
		nil, &calls)

	g, err := NewGeminiGenerator(context.Background(), GeminiConfig{APIKey: "test-key", BaseURL: ts.URL})
	require.NoError(t, err)

	_, err = g.Generate(context.Background(), "q", DefaultSafety())
	assert.ErrorIs(t, err, ErrRateLimited)
}

func TestGeminiGenerateServerError(t *testing.T) {
	var calls int32
	ts := newGeminiServer(t, http.StatusBadRequest,
		`{"error":{"code":400,"message":"API key not valid","status":"INVALID_ARGUMENT"}}`,
		nil, &calls)

	g, err := NewGeminiGenerator(context.Background(), GeminiConfig{APIKey: "bad-key", BaseURL: ts.URL})
	require.NoError(t, err)

	_, err = g.Generate(context.Background(), "q", DefaultSafety())
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrRateLimited)
	assert.Contains(t, err.Error(), "API key not valid")
}

func TestGeminiGenerateWithoutKey(t *testing.T) {
	g, err := NewGeminiGenerator(context.Background(), GeminiConfig{})
	require.NoError(t, err)
	assert.Equal(t, DefaultModel, g.model)

	_, err = g.Generate(context.Background(), "q", DefaultSafety())
	assert.ErrorIs(t, err, ErrNoAPIKey)
}
