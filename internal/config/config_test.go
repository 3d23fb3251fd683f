package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	v := New(filepath.Join(t.TempDir(), "missing.yaml"))

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "content.yaml", cfg.Content)
	assert.Equal(t, "static", cfg.StaticDir)
	assert.Equal(t, "dist", cfg.OutputDir)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.False(t, cfg.Dev)
}

func TestReadExplicitFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "folio.yaml")
	require.NoError(t, os.WriteFile(path, []byte("content: site.json\noutput_dir: public\nstylesheet: /app.css\n"), 0644))

	v := New(path)
	require.NoError(t, Read(v, true))

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "site.json", cfg.Content)
	assert.Equal(t, "public", cfg.OutputDir)
	assert.Equal(t, "/app.css", cfg.Stylesheet)
	assert.Equal(t, "static", cfg.StaticDir)
}

func TestReadMissingExplicitFile(t *testing.T) {
	v := New(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, Read(v, true))
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("FOLIO_ADDR", ":9090")
	t.Setenv("FOLIO_LOG_LEVEL", "debug")
	t.Setenv("FOLIO_DEV", "true")

	cfg, err := Load(New(filepath.Join(t.TempDir(), "missing.yaml")))
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.Dev)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(*Config) {}, false},
		{"empty content", func(c *Config) { c.Content = "" }, true},
		{"empty output", func(c *Config) { c.OutputDir = "" }, true},
		{"bad format", func(c *Config) { c.LogFormat = "xml" }, true},
		{"bad level", func(c *Config) { c.LogLevel = "trace" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{Content: "content.yaml", OutputDir: "dist", LogLevel: "info", LogFormat: "json"}
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestDir(t *testing.T) {
	assert.Equal(t, AppName, filepath.Base(Dir()))
}
