// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets supplies the Gemini API key when neither the config file
// nor the environment sets one. The key lives in .secrets/gemini-api-key,
// kept out of version control, so it is never compiled into the binary.
package secrets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// GeminiAPIKey is the secret file holding the Gemini API key.
const GeminiAPIKey = "gemini-api-key"

// GeminiKey returns configured when it is set, otherwise the contents of
// dir/gemini-api-key. An empty result means no key is available.
func GeminiKey(configured, dir string, logger *zap.Logger) (string, error) {
	if key := strings.TrimSpace(configured); key != "" {
		return key, nil
	}
	s, err := Load(dir, logger)
	if err != nil {
		return "", err
	}
	return s[GeminiAPIKey], nil
}

// Load reads every non-hidden file in dir into a map keyed by file name.
// A missing directory yields an empty map. Unreadable files are logged and
// skipped; empty files are dropped.
func Load(dir string, logger *zap.Logger) (map[string]string, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("reading secrets directory %s: %w", dir, err)
	}

	secrets := make(map[string]string)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			logger.Warn("could not read secret", zap.String("name", name), zap.Error(err))
			continue
		}

		value := strings.TrimSpace(string(data))
		if value != "" {
			secrets[name] = value
		}
	}

	return secrets, nil
}
