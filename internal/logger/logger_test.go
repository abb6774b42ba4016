package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewStampsService(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := New("memory-browser", WithOutput(&buf))
	log.Info().Msg("hello")

	out := buf.String()
	assert.Contains(t, out, `"service":"memory-browser"`)
	assert.Contains(t, out, `"time":`)
}

func TestWithLevelFiltersBelowThreshold(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := New("memory-browser", WithLevel("warn"), WithOutput(&buf))
	log.Info().Msg("dropped")
	log.Warn().Msg("kept")

	out := buf.String()
	assert.NotContains(t, out, "dropped")
	assert.Contains(t, out, "kept")
}

func TestWithLevelUnknownFallsBackToInfo(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := New("memory-browser", WithLevel("loudest"), WithOutput(&buf))
	log.Debug().Msg("dropped")
	log.Info().Msg("kept")

	out := buf.String()
	assert.NotContains(t, out, "dropped")
	assert.Contains(t, out, "kept")
}

func TestWithConsoleProducesHumanOutput(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := New("memory-browser", WithConsole(), WithOutput(&buf))
	log.Info().Msg("readable line")

	out := buf.String()
	assert.Contains(t, out, "readable line")
	// Console output is not the JSON object form.
	assert.False(t, strings.HasPrefix(strings.TrimSpace(out), "{"))
}
