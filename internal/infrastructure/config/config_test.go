package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/mediator-go/internal/infrastructure/config"
)

func TestLoadConfig_DefaultsWithoutFile(t *testing.T) {
	// Arrange - run from a directory with no config file
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	// Act
	cfg, err := config.LoadConfig("")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "stderr", cfg.Logging.Output)
	assert.Empty(t, cfg.Demo.Script)
}

func TestLoadConfig_FromFile(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte(`
demo:
  script:
    - component: 1
      action: A
    - component: 2
      action: D
logging:
  level: debug
  output: stdout
`)
	require.NoError(t, os.WriteFile(path, content, 0644))

	// Act
	cfg, err := config.LoadConfig(path)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "stdout", cfg.Logging.Output)
	require.Len(t, cfg.Demo.Script, 2)
	assert.Equal(t, config.ScriptStepConfig{Component: 1, Action: "A"}, cfg.Demo.Script[0])
	assert.Equal(t, config.ScriptStepConfig{Component: 2, Action: "D"}, cfg.Demo.Script[1])
}

func TestLoadConfig_RejectsInvalidScriptStep(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte(`
demo:
  script:
    - component: 3
      action: Z
`)
	require.NoError(t, os.WriteFile(path, content, 0644))

	// Act
	_, err := config.LoadConfig(path)

	// Assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestLoadConfig_RejectsActionOnWrongComponent(t *testing.T) {
	// Arrange - both fields pass their own oneof, but the pairing is wrong
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte(`
demo:
  script:
    - component: 1
      action: C
`)
	require.NoError(t, os.WriteFile(path, content, 0644))

	// Act
	_, err := config.LoadConfig(path)

	// Assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), "action_for_component")
}

func TestValidateConfig_ActionComponentPairing(t *testing.T) {
	// Arrange
	cfg := &config.Config{
		Demo: config.DemoConfig{
			Script: []config.ScriptStepConfig{{Component: 2, Action: "B"}},
		},
	}
	config.SetDefaults(cfg)

	// Act
	err := config.ValidateConfig(cfg)

	// Assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), "action_for_component")
}

func TestSetDefaults(t *testing.T) {
	// Arrange
	cfg := &config.Config{}

	// Act
	config.SetDefaults(cfg)

	// Assert
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "stderr", cfg.Logging.Output)
}

func TestLoadConfigOrDefault_FallsBackOnError(t *testing.T) {
	// Act - nonexistent explicit path fails to load, defaults returned
	cfg := config.LoadConfigOrDefault(filepath.Join(t.TempDir(), "missing.yaml"))

	// Assert
	require.NotNil(t, cfg)
	assert.Equal(t, "info", cfg.Logging.Level)
}
