package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetServeFlags(t *testing.T) {
	t.Helper()
	port, path, browser := servePort, serveConfigPath, serveBrowser
	t.Cleanup(func() {
		servePort, serveConfigPath, serveBrowser = port, path, browser
	})
	servePort, serveConfigPath, serveBrowser = 0, "", false
	t.Setenv("DATABASE_URL", "postgres://localhost/hh_extractor")
}

func TestLoadServeConfig_FilePortApplies(t *testing.T) {
	resetServeFlags(t)
	serveConfigPath = writeConfigFile(t, `{"port": 9090}`)

	cfg, err := loadServeConfig()
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Port)
}

func TestLoadServeConfig_FlagOverridesFile(t *testing.T) {
	resetServeFlags(t)
	serveConfigPath = writeConfigFile(t, `{"port": 9090}`)
	servePort = 9999

	cfg, err := loadServeConfig()
	require.NoError(t, err)
	assert.Equal(t, 9999, cfg.Port)
}

func TestLoadServeConfig_DefaultPort(t *testing.T) {
	resetServeFlags(t)

	cfg, err := loadServeConfig()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Port)
}

func TestLoadServeConfig_RequiresDatabaseURL(t *testing.T) {
	resetServeFlags(t)
	t.Setenv("DATABASE_URL", "")

	_, err := loadServeConfig()
	assert.Error(t, err)
}

func TestLoadServeConfig_DatabaseURLFromFile(t *testing.T) {
	resetServeFlags(t)
	t.Setenv("DATABASE_URL", "")
	serveConfigPath = writeConfigFile(t, `{"database_url": "postgres://localhost/from_file"}`)

	cfg, err := loadServeConfig()
	require.NoError(t, err)
	assert.Equal(t, "postgres://localhost/from_file", cfg.DatabaseURL)
}
