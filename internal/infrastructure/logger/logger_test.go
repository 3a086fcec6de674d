package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	cfg := Config{
		Level:       "info",
		Format:      "json",
		ServiceName: "test-service",
	}

	log := NewWithOutput(cfg, &buf)
	log.Info().Msg("test message")

	var result map[string]interface{}
	err := json.Unmarshal(buf.Bytes(), &result)
	require.NoError(t, err)

	assert.Equal(t, "info", result["level"])
	assert.Equal(t, "test message", result["message"])
	assert.Equal(t, "test-service", result["service"])
	assert.NotEmpty(t, result["time"])
}

func TestNewLogger_ConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	cfg := Config{
		Level:       "info",
		Format:      "console",
		ServiceName: "test-service",
	}

	log := NewWithOutput(cfg, &buf)
	log.Info().Msg("test message")

	// Console format should be human-readable
	output := buf.String()
	assert.Contains(t, output, "test message")
	assert.Contains(t, output, "INF")
}

func TestNewLogger_LogLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput(Config{Level: "warn", Format: "json"}, &buf)

	log.Debug().Msg("debug message")
	log.Info().Msg("info message")
	assert.Empty(t, buf.String())

	log.Warn().Msg("warn message")
	assert.Contains(t, buf.String(), "warn message")
}

func TestNewLogger_InvalidLevelFallsBack(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput(Config{Level: "loud", Format: "json"}, &buf)

	log.Info().Msg("still logs")
	assert.Contains(t, buf.String(), "still logs")
}

func TestLogger_WithComponent(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput(Config{Level: "info", Format: "json"}, &buf)

	log.WithComponent("catalog").Info().Msg("tagged")

	var result map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
	assert.Equal(t, "catalog", result["component"])
}

func TestNop(t *testing.T) {
	// Nop must be safe to use anywhere without producing output.
	log := Nop()
	log.Info().Msg("dropped")
	log.WithComponent("x").Error().Msg("also dropped")
}
