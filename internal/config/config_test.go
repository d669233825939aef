package config

import (
	"testing"

	"github.com/retroenv/lmcasm/internal/options"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestCreateLogger(t *testing.T) {
	tests := []struct {
		name  string
		flags options.Flags
		level log.Level
	}{
		{"default", options.Flags{}, log.DefaultLevel()},
		{"debug", options.Flags{Debug: true}, log.DebugLevel},
		{"quiet", options.Flags{Quiet: true}, log.ErrorLevel},
		{"debug and quiet", options.Flags{Debug: true, Quiet: true}, log.DebugLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := CreateLogger(options.Program{Flags: tt.flags})
			assert.NotNil(t, logger)
			assert.Equal(t, tt.level, logger.Level())
		})
	}
}
