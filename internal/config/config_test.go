package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv("TEXTREPORT_LOG_LEVEL", "")
	t.Setenv("TEXTREPORT_LOG_FORMAT", "")
	t.Setenv("TEXTREPORT_DEBUG", "")
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Name != "textreport" {
		t.Errorf("expected Name=textreport, got %s", cfg.Name)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected Level=info, got %s", cfg.Logging.Level)
	}
	if cfg.Logging.DebugMode {
		t.Error("expected debug mode off by default")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestConfig_SaveLoad(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := DefaultConfig()
	cfg.Logging.Level = "debug"
	cfg.Logging.Format = "json"
	cfg.Logging.DebugMode = true
	cfg.Logging.Categories = map[string]bool{"report": false}

	require.NoError(t, cfg.save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging:\n  debug_mode: true\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.True(t, cfg.Logging.DebugMode)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "textreport", cfg.Name)
}

func TestLoad_InvalidYAML(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging: [unterminated\n"), 0644))

	_, err := Load(path)
	assert.ErrorContains(t, err, "failed to parse config")
}

func TestConfig_Validate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.Level = "loud"
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidLevel)

	cfg = DefaultConfig()
	cfg.Logging.Format = "xml"
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidFormat)

	cfg = DefaultConfig()
	cfg.Logging.Level = "warning"
	assert.NoError(t, cfg.Validate())
}

func TestLoggingConfig_IsCategoryEnabled(t *testing.T) {
	c := LoggingConfig{}
	assert.False(t, c.IsCategoryEnabled("report"), "production mode disables everything")

	c.DebugMode = true
	assert.True(t, c.IsCategoryEnabled("report"), "nil map enables all")

	c.Categories = map[string]bool{"report": false, "boot": true}
	assert.False(t, c.IsCategoryEnabled("report"))
	assert.True(t, c.IsCategoryEnabled("boot"))
	assert.True(t, c.IsCategoryEnabled("other"), "unlisted categories default on")
}
