package logger

import (
	"food-rescue-dashboard/internal/config"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNewHonoursLevel(t *testing.T) {
	l, err := New("production", config.LoggerConfig{Level: "warn", Encoding: "json"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if l.Core().Enabled(zapcore.InfoLevel) {
		t.Fatalf("info should be disabled at warn level")
	}
	if !l.Core().Enabled(zapcore.ErrorLevel) {
		t.Fatalf("error should be enabled at warn level")
	}
}

func TestNewRejectsBadInput(t *testing.T) {
	cases := []config.LoggerConfig{
		{Level: "loud", Encoding: "json"},
		{Level: "info", Encoding: "xml"},
	}
	for _, c := range cases {
		if _, err := New("development", c); err == nil {
			t.Fatalf("expected error for %+v", c)
		}
	}
}
