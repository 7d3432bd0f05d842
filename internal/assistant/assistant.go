// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package assistant forwards free-text research questions to a hosted
// generative-language model.
//
// Ask makes exactly one model call. A rate-limit signal is answered with a
// fixed cooldown followed by a "please wait" error; there is no retry loop.
package assistant

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/pdiddy/research-assistant/pkg/types"
)

// ErrRateLimited is returned by a Generator when the service throttles us.
var ErrRateLimited = errors.New("rate limited by generative-language service")

// RateLimitedMessage is the error text Ask reports after a cooldown.
const RateLimitedMessage = "Too many requests, please wait"

const (
	// DefaultCooldown is the pause after a rate-limit signal.
	DefaultCooldown = 2 * time.Second

	// DefaultThreshold blocks only high-severity content.
	DefaultThreshold = string(genai.HarmBlockThresholdBlockOnlyHigh)

	// DefaultLocale selects the English prompt template.
	DefaultLocale = "en"
)

// promptTemplates holds the single-turn prompt per locale. The query is
// embedded twice.
var promptTemplates = map[string]string{
	"en": "The user is asking about the proposal %[1]s. Respond like a web search assistant and explain %[1]s.",
	"id": "User bertanya tentang proposal %[1]s. respon seperti asisten pencarian web. dan jelaskan tentang %[1]s",
}

// validThresholds lists the block thresholds the service accepts.
var validThresholds = map[string]bool{
	string(genai.HarmBlockThresholdBlockLowAndAbove):    true,
	string(genai.HarmBlockThresholdBlockMediumAndAbove): true,
	string(genai.HarmBlockThresholdBlockOnlyHigh):       true,
	string(genai.HarmBlockThresholdBlockNone):           true,
	string(genai.HarmBlockThresholdOff):                 true,
}

// SafetyConfig holds the per-category block thresholds sent with every
// prompt.
type SafetyConfig struct {
	HateSpeechThreshold string
	HarassmentThreshold string
}

// DefaultSafety blocks only high-severity content in both categories.
func DefaultSafety() SafetyConfig {
	return SafetyConfig{
		HateSpeechThreshold: DefaultThreshold,
		HarassmentThreshold: DefaultThreshold,
	}
}

// Validate checks both thresholds against the known values.
func (s SafetyConfig) Validate() error {
	if !validThresholds[s.HateSpeechThreshold] {
		return fmt.Errorf("invalid hate speech threshold %q", s.HateSpeechThreshold)
	}
	if !validThresholds[s.HarassmentThreshold] {
		return fmt.Errorf("invalid harassment threshold %q", s.HarassmentThreshold)
	}
	return nil
}

// Generator abstracts the generative-language API so tests can supply a
// fake. Implementations report throttling by wrapping ErrRateLimited.
type Generator interface {
	Generate(ctx context.Context, prompt string, safety SafetyConfig) (string, error)
}

// sleep waits for d or until ctx is done. Tests replace it to avoid real
// delays.
var sleep = func(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}

// Bridge formats prompts and applies the failure policy around a Generator.
type Bridge struct {
	gen      Generator
	safety   SafetyConfig
	template string
	cooldown time.Duration
	logger   *zap.Logger
}

// NewBridge builds a Bridge from cfg. Empty fields take their defaults;
// unknown thresholds or locales are rejected.
func NewBridge(gen Generator, cfg types.AssistantConfig, logger *zap.Logger) (*Bridge, error) {
	if gen == nil {
		return nil, fmt.Errorf("assistant generator is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	safety := DefaultSafety()
	if cfg.HateSpeechThreshold != "" {
		safety.HateSpeechThreshold = strings.ToUpper(cfg.HateSpeechThreshold)
	}
	if cfg.HarassmentThreshold != "" {
		safety.HarassmentThreshold = strings.ToUpper(cfg.HarassmentThreshold)
	}
	if err := safety.Validate(); err != nil {
		return nil, err
	}

	locale := cfg.Locale
	if locale == "" {
		locale = DefaultLocale
	}
	tmpl, ok := promptTemplates[locale]
	if !ok {
		return nil, fmt.Errorf("unsupported prompt locale %q", locale)
	}

	cooldown := cfg.RateLimitCooldown
	if cooldown <= 0 {
		cooldown = DefaultCooldown
	}

	return &Bridge{
		gen:      gen,
		safety:   safety,
		template: tmpl,
		cooldown: cooldown,
		logger:   logger,
	}, nil
}

// Prompt renders the prompt template for query.
func (b *Bridge) Prompt(query string) string {
	return fmt.Sprintf(b.template, query)
}

// Ask sends query to the model once and returns its text, or an error
// message. On a rate-limit signal it waits for the cooldown first so the
// caller's next attempt is throttled.
func (b *Bridge) Ask(ctx context.Context, query string) types.AssistantResponse {
	if strings.TrimSpace(query) == "" {
		return types.AssistantResponse{Error: "query is empty"}
	}

	text, err := b.gen.Generate(ctx, b.Prompt(query), b.safety)
	if err != nil {
		if errors.Is(err, ErrRateLimited) {
			b.logger.Warn("assistant rate limited", zap.Duration("cooldown", b.cooldown))
			sleep(ctx, b.cooldown)
			return types.AssistantResponse{Error: RateLimitedMessage}
		}
		b.logger.Debug("assistant call failed", zap.Error(err))
		return types.AssistantResponse{Error: err.Error()}
	}
	return types.AssistantResponse{Response: text}
}
