package logging

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"
	"testing"

	"github.com/google/uuid"

	mdwlog "github.com/msto63/munits/foundation/core/log"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected mdwlog.Level
	}{
		{"trace", mdwlog.LevelTrace},
		{"debug", mdwlog.LevelDebug},
		{"info", mdwlog.LevelInfo},
		{"warn", mdwlog.LevelWarn},
		{"warning", mdwlog.LevelWarn},
		{"error", mdwlog.LevelError},
		{"fatal", mdwlog.LevelFatal},
		{"invalid", mdwlog.LevelInfo},
		{"", mdwlog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := parseLevel(tt.input); got != tt.expected {
				t.Errorf("parseLevel(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestDefaultLoggerConfig(t *testing.T) {
	cfg := DefaultLoggerConfig("munits")

	if cfg.Name != "munits" {
		t.Errorf("Name = %v, want munits", cfg.Name)
	}
	if cfg.Level != "warn" {
		t.Errorf("Level = %v, want warn", cfg.Level)
	}
	if cfg.Format != "text" {
		t.Errorf("Format = %v, want text", cfg.Format)
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerConfig{
		Name:          "munits",
		Level:         "debug",
		Format:        "json",
		Output:        &buf,
		CorrelationID: "run-42",
	})

	if logger.GetLevel() != mdwlog.LevelDebug {
		t.Errorf("Expected debug level, got %v", logger.GetLevel())
	}

	logger.Debug("unit registered", mdwlog.Fields{"unit": "km"})

	var entry map[string]interface{}
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry); err != nil {
		t.Fatalf("Expected one JSON entry, got %q: %v", buf.String(), err)
	}
	if entry["correlation_id"] != "run-42" {
		t.Errorf("Expected correlation_id run-42, got %v", entry["correlation_id"])
	}
	if entry["logger"] != "munits" {
		t.Errorf("Expected logger munits, got %v", entry["logger"])
	}
	if entry["unit"] != "km" {
		t.Errorf("Expected unit km, got %v", entry["unit"])
	}
}

func TestNewLoggerAdditionalOutputs(t *testing.T) {
	var primary, secondary bytes.Buffer
	logger := NewLogger(LoggerConfig{
		Level:             "info",
		Format:            "text",
		Output:            &primary,
		AdditionalOutputs: []io.Writer{&secondary},
	})

	logger.Debug("dropped")
	logger.Warn("catalog reloaded")

	if !strings.Contains(primary.String(), "catalog reloaded") {
		t.Errorf("Expected entry in primary output, got %q", primary.String())
	}
	if primary.String() != secondary.String() {
		t.Errorf("Expected identical outputs, got %q and %q", primary.String(), secondary.String())
	}
	if strings.Contains(primary.String(), "dropped") {
		t.Errorf("Debug entry must be filtered at info level")
	}
}

func TestNewCorrelationID(t *testing.T) {
	first := NewCorrelationID()
	second := NewCorrelationID()

	if first == second {
		t.Errorf("Expected unique correlation IDs")
	}
	if _, err := uuid.Parse(first); err != nil {
		t.Errorf("Expected a UUID, got %q", first)
	}
	if strings.Count(first, "-") != 4 {
		t.Errorf("Expected canonical UUID form, got %q", first)
	}
}
