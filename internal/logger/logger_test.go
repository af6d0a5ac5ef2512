package logger

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDebug_Disabled(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)
	SetVerbose(false)

	Debug("should not appear")
	assert.Empty(t, buf.String())
}

func TestDebug_Enabled(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)
	SetVerbose(true)
	defer SetVerbose(false)

	Debug("value: %d", 42)
	assert.Contains(t, buf.String(), "[DEBUG] value: 42")
}

func TestWarn_AlwaysPrinted(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)
	SetVerbose(false)

	Warn("embedding provider unreachable")
	assert.Contains(t, buf.String(), "[WARN] embedding provider unreachable")
}

func TestSection(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)
	SetVerbose(true)
	defer SetVerbose(false)

	Section("Query Pipeline")
	assert.Contains(t, buf.String(), "=== Query Pipeline ===")
}
