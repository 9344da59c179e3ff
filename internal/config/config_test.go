package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anton/hh-resume-extractor/internal/fetch"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `{
		"timeout_seconds": 30,
		"user_agent": "test-agent",
		"database_url": "postgres://localhost/test",
		"port": 9090
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.TimeoutSeconds)
	assert.Equal(t, "test-agent", cfg.UserAgent)
	assert.Equal(t, "postgres://localhost/test", cfg.DatabaseURL)
	assert.Equal(t, 9090, cfg.Port)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	path := writeConfig(t, `{broken`)
	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, (&Config{}).Validate())
	assert.Error(t, (&Config{TimeoutSeconds: -1}).Validate())
	assert.Error(t, (&Config{Concurrency: -1}).Validate())
	assert.Error(t, (&Config{Port: 99999}).Validate())
	assert.Error(t, (&Config{RawDir: "/definitely/not/a/dir"}).Validate())

	dir := t.TempDir()
	assert.NoError(t, (&Config{RawDir: dir}).Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{TimeoutSeconds: 5}
	defaults := Config{
		TimeoutSeconds: 30,
		UserAgent:      "default-agent",
		Port:           8080,
	}

	merged := cfg.MergeWithDefaults(defaults)
	assert.Equal(t, 5, merged.TimeoutSeconds) // explicit value wins
	assert.Equal(t, "default-agent", merged.UserAgent)
	assert.Equal(t, 8080, merged.Port)
}

func TestFetchOptions(t *testing.T) {
	cfg := Config{TimeoutSeconds: 7, UserAgent: "custom"}

	opts := cfg.FetchOptions()
	assert.Equal(t, 7*time.Second, opts.Timeout)
	assert.Equal(t, "custom", opts.UserAgent)
	assert.Equal(t, fetch.DefaultAcceptLanguage, opts.AcceptLanguage)

	// Unset fields keep the package defaults.
	opts = (&Config{}).FetchOptions()
	assert.Equal(t, fetch.DefaultTimeout, opts.Timeout)
	assert.Equal(t, fetch.DefaultUserAgent, opts.UserAgent)
}
