package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anton/hh-resume-extractor/internal/hh"
)

// resetExtractFlags restores the flag-bound globals after a test mutated them.
func resetExtractFlags(t *testing.T) {
	t.Helper()
	path, timeout := extractConfigPath, extractTimeout
	browser, concurrency, rawDir := extractBrowser, extractConcurrency, extractRawDir
	t.Cleanup(func() {
		extractConfigPath, extractTimeout = path, timeout
		extractBrowser, extractConcurrency, extractRawDir = browser, concurrency, rawDir
	})
	extractConfigPath, extractTimeout = "", 0
	extractBrowser, extractConcurrency, extractRawDir = false, 0, ""
}

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadExtractConfig_FileValuesApply(t *testing.T) {
	resetExtractFlags(t)
	extractConfigPath = writeConfigFile(t, `{"concurrency": 2, "timeout_seconds": 30}`)

	cfg, err := loadExtractConfig()
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Concurrency)
	assert.Equal(t, 30, cfg.TimeoutSeconds)
}

func TestLoadExtractConfig_FlagOverridesFile(t *testing.T) {
	resetExtractFlags(t)
	extractConfigPath = writeConfigFile(t, `{"concurrency": 2}`)
	extractConcurrency = 8

	cfg, err := loadExtractConfig()
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.Concurrency)
}

func TestLoadExtractConfig_Defaults(t *testing.T) {
	resetExtractFlags(t)

	cfg, err := loadExtractConfig()
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Concurrency)
}

func TestPrintRecords_MultiURLPreservesInputOrder(t *testing.T) {
	urls := []string{"https://hh.ru/resume/a", "https://hh.ru/resume/b", "https://hh.ru/resume/c"}
	records := make([]hh.ResumeRecord, len(urls))
	for i, url := range urls {
		records[i] = hh.EmptyRecord()
		records[i].Position["title"] = url
	}
	failures := make([]error, len(urls))
	failures[1] = fmt.Errorf("boom")

	var buf bytes.Buffer
	require.NoError(t, printRecords(&buf, urls, records, failures))

	var out []struct {
		URL    string `json:"url"`
		Record struct {
			Position map[string]any `json:"position"`
		} `json:"record"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))

	// The failed URL is skipped; the survivors keep input order.
	require.Len(t, out, 2)
	assert.Equal(t, urls[0], out[0].URL)
	assert.Equal(t, urls[2], out[1].URL)
	assert.Equal(t, urls[0], out[0].Record.Position["title"])
	assert.Equal(t, urls[2], out[1].Record.Position["title"])
}

func TestPrintRecords_SingleURLIsObject(t *testing.T) {
	record := hh.EmptyRecord()
	record.Position["title"] = "Backend Engineer"

	var buf bytes.Buffer
	require.NoError(t, printRecords(&buf, []string{"https://hh.ru/resume/a"}, []hh.ResumeRecord{record}, []error{nil}))

	var out map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, "Backend Engineer", out["position"].(map[string]any)["title"])
}

func TestPrintRecords_SingleURLFailurePrintsNothing(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printRecords(&buf, []string{"https://hh.ru/resume/a"},
		[]hh.ResumeRecord{hh.EmptyRecord()}, []error{fmt.Errorf("boom")}))

	assert.Empty(t, buf.String())
}
