package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/anton/hh-resume-extractor/internal/schemas"
	schemafiles "github.com/anton/hh-resume-extractor/schemas"
)

var validateCmd = &cobra.Command{
	Use:   "validate <record.json>",
	Short: "Validate a stored record against the resume record schema",
	Args:  cobra.ExactArgs(1),
	RunE:  runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	if err := schemas.ValidateJSONFile(schemafiles.ResumeRecordSchema(), args[0]); err != nil {
		return err
	}
	fmt.Printf("%s: valid\n", args[0])
	return nil
}
