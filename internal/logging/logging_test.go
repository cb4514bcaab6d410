package logging

import (
	"testing"

	"go.uber.org/zap/zapcore"

	"github.com/peapod-fundraiser/site/internal/config"
)

func TestNewLevels(t *testing.T) {
	tests := []struct {
		cfg     config.LogConfig
		verbose bool
		want    zapcore.Level
	}{
		{config.LogConfig{Level: "info"}, false, zapcore.InfoLevel},
		{config.LogConfig{Level: "warn"}, false, zapcore.WarnLevel},
		{config.LogConfig{Level: "error", Development: true}, false, zapcore.ErrorLevel},
		{config.LogConfig{Level: "info"}, true, zapcore.DebugLevel},
	}
	for _, tt := range tests {
		logger, err := New(tt.cfg, tt.verbose)
		if err != nil {
			t.Fatalf("New(%+v): %v", tt.cfg, err)
		}
		if !logger.Core().Enabled(tt.want) {
			t.Errorf("New(%+v, %v): level %v should be enabled", tt.cfg, tt.verbose, tt.want)
		}
		if tt.want > zapcore.DebugLevel && logger.Core().Enabled(tt.want-1) {
			t.Errorf("New(%+v, %v): level %v should be disabled", tt.cfg, tt.verbose, tt.want-1)
		}
	}
}

func TestNewInvalidLevel(t *testing.T) {
	if _, err := New(config.LogConfig{Level: "chatty"}, false); err == nil {
		t.Error("expected error for unknown level")
	}
}
