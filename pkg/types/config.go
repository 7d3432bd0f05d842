// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings for outbound provider requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "research-assistant/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent" mapstructure:"user_agent"`
}

// SearchConfig holds settings for the paper directory service.
type SearchConfig struct {
	HTTPConfig `yaml:",inline" mapstructure:",squash"`

	// MaxResults is the default number of results per topic search (default 5).
	MaxResults int `json:"max_results" yaml:"max_results" mapstructure:"max_results"`
}

// AssistantConfig holds settings for the generative-language service.
type AssistantConfig struct {
	// Model is the Gemini model identifier (e.g. "gemini-2.0-flash").
	Model string `json:"model" yaml:"model" mapstructure:"model"`

	// APIKey is the Gemini API key. Never compiled in; supplied by config,
	// environment or the secrets directory.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty" mapstructure:"api_key"`

	// HateSpeechThreshold is the block threshold for the hate speech
	// category (default "BLOCK_ONLY_HIGH").
	HateSpeechThreshold string `json:"hate_speech_threshold" yaml:"hate_speech_threshold" mapstructure:"hate_speech_threshold"`

	// HarassmentThreshold is the block threshold for the harassment
	// category (default "BLOCK_ONLY_HIGH").
	HarassmentThreshold string `json:"harassment_threshold" yaml:"harassment_threshold" mapstructure:"harassment_threshold"`

	// RateLimitCooldown is how long Ask waits after a rate-limit signal
	// before reporting it (default 2s).
	RateLimitCooldown time.Duration `json:"rate_limit_cooldown" yaml:"rate_limit_cooldown" mapstructure:"rate_limit_cooldown"`

	// Locale selects the prompt template: "en" or "id".
	Locale string `json:"locale" yaml:"locale" mapstructure:"locale"`
}

// LogConfig controls the zap logger.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `json:"level" yaml:"level" mapstructure:"level"`

	// Format is "console" or "json".
	Format string `json:"format" yaml:"format" mapstructure:"format"`
}

// ServerConfig holds settings for the HTTP API.
type ServerConfig struct {
	// Addr is the listen address (default ":8080").
	Addr string `json:"addr" yaml:"addr" mapstructure:"addr"`
}

// AppConfig groups all settings.
type AppConfig struct {
	// PapersDir is the root of the topic cache tree (default "papers").
	PapersDir string `json:"papers_dir" yaml:"papers_dir" mapstructure:"papers_dir"`

	Search    SearchConfig    `json:"search" yaml:"search" mapstructure:"search"`
	Assistant AssistantConfig `json:"assistant" yaml:"assistant" mapstructure:"assistant"`
	Log       LogConfig       `json:"log" yaml:"log" mapstructure:"log"`
	Server    ServerConfig    `json:"server" yaml:"server" mapstructure:"server"`
}
