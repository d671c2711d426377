package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("Should write text output", func(t *testing.T) {
		var buf bytes.Buffer
		log := New(&Config{Level: InfoLevel, Output: &buf, TimeFormat: "15:04:05"})
		log.Info("server started", "port", 8000)

		out := buf.String()
		assert.Contains(t, out, "server started")
		assert.Contains(t, out, "port=8000")
	})

	t.Run("Should write one JSON object per line", func(t *testing.T) {
		var buf bytes.Buffer
		log := New(&Config{Level: InfoLevel, Output: &buf, JSON: true})
		log.Warn("slow request", "path", "/score")

		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(buf.String())), &entry))
		assert.Equal(t, "slow request", entry["msg"])
		assert.Equal(t, "/score", entry["path"])
	})

	t.Run("Should filter below the configured level", func(t *testing.T) {
		var buf bytes.Buffer
		log := New(&Config{Level: WarnLevel, Output: &buf})
		log.Debug("debug message")
		log.Info("info message")
		log.Error("error message")

		out := buf.String()
		assert.NotContains(t, out, "debug message")
		assert.NotContains(t, out, "info message")
		assert.Contains(t, out, "error message")
	})
}

func TestParseLevel(t *testing.T) {
	for _, l := range Levels() {
		got, err := ParseLevel(l.String())
		require.NoError(t, err)
		assert.Equal(t, l, got)
	}

	_, err := ParseLevel("verbose")
	assert.Error(t, err)
}

func TestToCharmlogLevel(t *testing.T) {
	testCases := []struct {
		level    LogLevel
		expected int
	}{
		{DebugLevel, -4},
		{InfoLevel, 0},
		{WarnLevel, 4},
		{ErrorLevel, 8},
		{LogLevel("unknown"), 0},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, int(tc.level.ToCharmlogLevel()), "level %s", tc.level)
	}
}

func TestNop(t *testing.T) {
	log := Nop()
	require.NotNil(t, log)
	log.Info("discarded", "k", "v")
}
