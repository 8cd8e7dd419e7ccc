package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	tests := []struct {
		env       string
		level     zapcore.Level
		debugging bool
	}{
		{env: "production", level: zapcore.InfoLevel, debugging: false},
		{env: "development", level: zapcore.DebugLevel, debugging: true},
		{env: "local", level: zapcore.DebugLevel, debugging: true},
		{env: "", level: zapcore.DebugLevel, debugging: true},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			l, err := New(tt.env)
			assert.NoError(t, err)
			assert.True(t, l.Core().Enabled(tt.level))
			assert.Equal(t, tt.debugging, l.Core().Enabled(zapcore.DebugLevel))
		})
	}
}
