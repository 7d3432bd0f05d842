// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/pdiddy/research-assistant/pkg/types"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name      string
		cfg       types.LogConfig
		wantLevel zapcore.Level
		wantErr   bool
	}{
		{"defaults", types.LogConfig{}, zapcore.InfoLevel, false},
		{"debug console", types.LogConfig{Level: "debug", Format: "console"}, zapcore.DebugLevel, false},
		{"warn json upper", types.LogConfig{Level: "WARN", Format: "JSON"}, zapcore.WarnLevel, false},
		{"bad level", types.LogConfig{Level: "loud"}, zapcore.InfoLevel, true},
		{"bad format", types.LogConfig{Format: "xml"}, zapcore.InfoLevel, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := New(tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, logger.Core().Enabled(tt.wantLevel))
			assert.False(t, logger.Core().Enabled(tt.wantLevel-1))
		})
	}
}
