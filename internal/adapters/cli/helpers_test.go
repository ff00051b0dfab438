package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/andrescamacho/mediator-go/internal/infrastructure/config"
)

func loggingConfig(level, output string) *config.Config {
	return &config.Config{
		Logging: config.LoggingConfig{Level: level, Output: output},
	}
}

func TestNewLogger_OutputSelectsWriter(t *testing.T) {
	// Arrange
	var stdout, stderr bytes.Buffer

	// Act - logging.output: stdout routes entries to the stdout writer
	logger := newLogger(loggingConfig("info", "stdout"), &stdout, &stderr)
	logger.Log("info", "to stdout", nil)

	// Assert
	assert.Equal(t, "[info] to stdout\n", stdout.String())
	assert.Empty(t, stderr.String())
}

func TestNewLogger_DefaultsToStderr(t *testing.T) {
	// Arrange
	var stdout, stderr bytes.Buffer

	// Act
	logger := newLogger(loggingConfig("info", "stderr"), &stdout, &stderr)
	logger.Log("warn", "to stderr", nil)

	// Assert
	assert.Empty(t, stdout.String())
	assert.Equal(t, "[warn] to stderr\n", stderr.String())
}

func TestNewLogger_LevelGatesDebugEntries(t *testing.T) {
	// Arrange
	var stdout, stderr bytes.Buffer

	// Act - the default info level drops the dispatch debug entries
	logger := newLogger(loggingConfig("info", "stderr"), &stdout, &stderr)
	logger.Log("debug", "dispatching request", nil)

	// Assert
	assert.Empty(t, stderr.String())

	// Act - logging.level: debug lets them through
	logger = newLogger(loggingConfig("debug", "stderr"), &stdout, &stderr)
	logger.Log("debug", "dispatching request", nil)

	// Assert
	assert.Equal(t, "[debug] dispatching request\n", stderr.String())
}

func TestNewLogger_VerboseFlagForcesDebug(t *testing.T) {
	// Arrange
	verbose = true
	t.Cleanup(func() { verbose = false })
	var stdout, stderr bytes.Buffer

	// Act - --verbose overrides the configured info level
	logger := newLogger(loggingConfig("info", "stderr"), &stdout, &stderr)
	logger.Log("debug", "dispatching request", nil)

	// Assert
	assert.Equal(t, "[debug] dispatching request\n", stderr.String())
}
