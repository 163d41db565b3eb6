package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "cfg.yaml")
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return p
}

func TestDefaultIsValid(t *testing.T) {
	assert.NoError(t, Default().Validate())
}

func TestDefaultLeavesHeadlineFontToTemplate(t *testing.T) {
	assert.Empty(t, Default().Render.DefaultFont)
}

func TestLoadFrom_OverridesDefaults(t *testing.T) {
	p := writeConfig(t, `render:
  default_palette: finance_green
  artifact_ttl: 2m
  batch_workers: 8
storage:
  backend: redis
cache:
  redis_host: "cache:6379"
  artifact_db: 3
`)
	cfg := LoadFrom(p)

	assert.Equal(t, "finance_green", cfg.Render.DefaultPalette)
	assert.Equal(t, 2*time.Minute, cfg.Render.ArtifactTTL)
	assert.Equal(t, 8, cfg.Render.BatchWorkers)
	assert.Equal(t, "redis", cfg.Storage.Backend)
	assert.Equal(t, 3, cfg.Cache.ArtifactDB)
	// untouched keys keep defaults
	assert.Equal(t, "executive_premium", cfg.Render.DefaultTemplate)
	assert.Equal(t, ":8080", cfg.Server.Port)
}

func TestLoadFrom_PanicsOnInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		yml  string
	}{
		{name: "zero ttl", yml: "render:\n  artifact_ttl: 0s\n"},
		{name: "no workers", yml: "render:\n  batch_workers: 0\n"},
		{name: "unknown backend", yml: "storage:\n  backend: s3\n"},
		{name: "file backend without dir", yml: "storage:\n  export_dir: ''\n"},
		{name: "negative upload limit", yml: "limits:\n  max_upload_bytes: -1\n"},
		{name: "malformed yaml", yml: "render: [\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := writeConfig(t, tc.yml)
			assert.Panics(t, func() { _ = LoadFrom(p) })
		})
	}
}

func TestLoad_UsesConfigPathEnv(t *testing.T) {
	p := writeConfig(t, "render:\n  default_template: tech_neon\n")
	t.Setenv("CONFIG_PATH", p)

	assert.Equal(t, "tech_neon", Load().Render.DefaultTemplate)
}

func TestLoad_MissingFileFallsBackToDefaults(t *testing.T) {
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "absent.yaml"))

	assert.Equal(t, Default(), Load())
}
