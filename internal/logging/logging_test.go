package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_InfoLevelHidesDebug(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, Config{JSON: true})

	log.Debug().Msg("hidden")
	log.Warn().Str("url", "https://go.dev").Msg("repeated bookmark")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var event map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &event))
	assert.Equal(t, "warn", event["level"])
	assert.Equal(t, "repeated bookmark", event["message"])
	assert.Equal(t, "https://go.dev", event["url"])
	assert.Contains(t, event, "time")
}

func TestNew_DebugLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, Config{JSON: true, Debug: true})

	log.Debug().Msg("loaded bookmarks")

	assert.Contains(t, buf.String(), "loaded bookmarks")
}

func TestNew_ConsoleWriter(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, Config{NoColor: true})

	log.Warn().Str("safe_name", "A_B").Msg("tag stub collision")

	out := buf.String()
	assert.Contains(t, out, "WRN")
	assert.Contains(t, out, "tag stub collision")
	assert.Contains(t, out, "safe_name=A_B")
	assert.NotContains(t, out, "\033[")
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("NO_COLOR", "1")

	cfg := ConfigFromEnv(true)
	assert.Equal(t, Config{Debug: true, JSON: true, NoColor: true}, cfg)

	t.Setenv("LOG_FORMAT", "")
	t.Setenv("NO_COLOR", "")
	assert.Equal(t, Config{}, ConfigFromEnv(false))
}

func TestNop(t *testing.T) {
	log := Nop()
	log.Warn().Msg("discarded")
}
