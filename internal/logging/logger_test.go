package logging

import (
	"bytes"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func setupTestLogger(buf *bytes.Buffer, level string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	SetLoggerForTest(zerolog.New(buf).With().Timestamp().Logger().Level(lvl))
}

func TestInfoLogging(t *testing.T) {
	var buf bytes.Buffer
	setupTestLogger(&buf, "info")

	Info("card rendered", "template", "tech_neon", "width", 1050)

	out := buf.String()
	assert.Contains(t, out, "card rendered")
	assert.Contains(t, out, `"template":"tech_neon"`)
	assert.Contains(t, out, `"width":1050`)
}

func TestErrorValuesAreLoggedAsStrings(t *testing.T) {
	var buf bytes.Buffer
	setupTestLogger(&buf, "info")

	Warn("logo skipped", "error", errors.New("bad header"))

	assert.Contains(t, buf.String(), `"error":"bad header"`)
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	setupTestLogger(&buf, "warn")

	Info("hidden")
	assert.NotContains(t, buf.String(), "hidden")

	SetLogLevel("debug")
	Debug("visible")
	assert.Contains(t, buf.String(), "visible")
}

func TestOddKeyValuesAreIgnored(t *testing.T) {
	var buf bytes.Buffer
	setupTestLogger(&buf, "info")

	Error("dangling", "only-key")
	assert.Contains(t, buf.String(), "dangling")
	assert.NotContains(t, buf.String(), "only-key")
}
