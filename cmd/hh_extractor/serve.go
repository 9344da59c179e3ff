package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/anton/hh-resume-extractor/internal/config"
	"github.com/anton/hh-resume-extractor/internal/server"
)

var (
	servePort       int
	serveConfigPath string
	serveBrowser    bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that extracts resume records on demand and stores them per chat user in PostgreSQL.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default 8080)")
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to JSON config file")
	serveCmd.Flags().BoolVar(&serveBrowser, "browser", false, "Render pages in a headless browser")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := loadServeConfig()
	if err != nil {
		return err
	}

	srv, err := server.New(server.Config{
		Port:        cfg.Port,
		DatabaseURL: cfg.DatabaseURL,
		FetchOpts:   cfg.FetchOptions(),
		UseBrowser:  cfg.UseBrowser,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}

func loadServeConfig() (config.Config, error) {
	cfg := config.Config{
		Port:        servePort,
		UseBrowser:  serveBrowser,
		DatabaseURL: os.Getenv("DATABASE_URL"),
	}
	if serveConfigPath != "" {
		fileCfg, err := config.LoadConfig(serveConfigPath)
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
	if cfg.Port == 0 {
		cfg.Port = 8080
	}
	if cfg.DatabaseURL == "" {
		return config.Config{}, fmt.Errorf("DATABASE_URL environment variable is required")
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}
