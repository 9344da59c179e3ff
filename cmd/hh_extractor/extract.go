package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/anton/hh-resume-extractor/internal/config"
	"github.com/anton/hh-resume-extractor/internal/hh"
)

var (
	extractConfigPath  string
	extractTimeout     int
	extractBrowser     bool
	extractConcurrency int
	extractRawDir      string
)

var extractCmd = &cobra.Command{
	Use:   "extract <url> [url...]",
	Short: "Extract resume records from one or more resume URLs",
	Long: `Extract fetches each resume page, decodes its embedded state and prints
the structured records to stdout in input order. URLs are processed
concurrently; a failure on one URL does not stop the others.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().StringVar(&extractConfigPath, "config", "", "Path to JSON config file")
	extractCmd.Flags().IntVar(&extractTimeout, "timeout", 0, "Page fetch timeout in seconds")
	extractCmd.Flags().BoolVar(&extractBrowser, "browser", false, "Render pages in a headless browser")
	extractCmd.Flags().IntVar(&extractConcurrency, "concurrency", 0, "Concurrent extractions (default 4)")
	extractCmd.Flags().StringVar(&extractRawDir, "raw-dir", "", "Directory for raw page dumps (opt-in)")
	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	cfg, err := loadExtractConfig()
	if err != nil {
		return err
	}

	urls := args
	records := make([]hh.ResumeRecord, len(urls))
	failures := make([]error, len(urls))

	g := new(errgroup.Group)
	g.SetLimit(cfg.Concurrency)
	for i, url := range urls {
		g.Go(func() error {
			opts := []hh.Option{hh.WithFetchOptions(cfg.FetchOptions())}
			if cfg.UseBrowser {
				opts = append(opts, hh.WithBrowser())
			}
			if cfg.RawDir != "" {
				opts = append(opts, hh.WithRawRetention())
			}
			extractor := hh.New(opts...)

			record, err := extractor.ExtractResume(cmd.Context(), url)
			records[i] = record
			if err != nil {
				failures[i] = err
				return nil // keep extracting the remaining URLs
			}

			if cfg.RawDir != "" {
				if err := dumpRaw(cfg.RawDir, i, extractor.LastRaw()); err != nil {
					fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
				}
			}
			return nil
		})
	}
	_ = g.Wait()

	if err := printRecords(os.Stdout, urls, records, failures); err != nil {
		return err
	}

	failed := 0
	for i, err := range failures {
		if err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "Error: %s: %v\n", urls[i], err)
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d extractions failed", failed, len(urls))
	}
	return nil
}

func loadExtractConfig() (config.Config, error) {
	cfg := config.Config{
		TimeoutSeconds: extractTimeout,
		UseBrowser:     extractBrowser,
		Concurrency:    extractConcurrency,
		RawDir:         extractRawDir,
	}
	if extractConfigPath != "" {
		fileCfg, err := config.LoadConfig(extractConfigPath)
		if err != nil {
			return config.Config{}, err
		}
		// Flags are registered with zero defaults so an unset flag defers
		// to the config file here.
		cfg = cfg.MergeWithDefaults(*fileCfg)
		if fileCfg.UseBrowser {
			cfg.UseBrowser = true
		}
	}
	if cfg.Concurrency == 0 {
		cfg.Concurrency = 4
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// printRecords writes successful records to w in input order: a single
// object for one URL, an array otherwise.
func printRecords(w io.Writer, urls []string, records []hh.ResumeRecord, failures []error) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	if len(urls) == 1 {
		if failures[0] != nil {
			return nil
		}
		return enc.Encode(records[0])
	}

	out := make([]map[string]any, 0, len(urls))
	for i, url := range urls {
		if failures[i] != nil {
			continue
		}
		out = append(out, map[string]any{
			"url":    url,
			"record": records[i],
		})
	}
	return enc.Encode(out)
}

// dumpRaw writes the fetched markup for diagnostic replay.
func dumpRaw(dir string, index int, html string) error {
	if html == "" {
		return nil
	}
	path := filepath.Join(dir, fmt.Sprintf("page_%03d.html", index))
	if err := os.WriteFile(path, []byte(html), 0o644); err != nil {
		return fmt.Errorf("failed to write raw dump %s: %w", path, err)
	}
	return nil
}
