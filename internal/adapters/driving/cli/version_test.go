package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersionCmd_Use(t *testing.T) {
	assert.Equal(t, "version", versionCmd.Use)
}

func TestVersionCmd_Executes(t *testing.T) {
	originalVersion := version
	version = "test-version-1.0.0"
	defer func() { version = originalVersion }()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"version"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "portfolio-assistant version test-version-1.0.0")
}

func TestCommandsRegistered(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}

	for _, want := range []string{"serve", "ask", "mcp", "version"} {
		assert.True(t, names[want], "command %s registered", want)
	}
}

func TestAskCmd_RequiresArgument(t *testing.T) {
	err := askCmd.Args(askCmd, nil)
	assert.Error(t, err)

	err = askCmd.Args(askCmd, []string{"question"})
	assert.NoError(t, err)
}
