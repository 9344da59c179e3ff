// Package main provides the entry point for the hh.ru resume extractor.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "hh_extractor",
	Short: "hh.ru resume extraction service",
	Long:  "hh_extractor turns public hh.ru resume pages into structured, schema-shaped records, either one-shot from the command line or as a REST service backed by PostgreSQL.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
