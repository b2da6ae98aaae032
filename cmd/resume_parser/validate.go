package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-parser/internal/schemas"
	"github.com/jonathan/resume-parser/internal/types"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate Resume JSON against the resume schema",
	Long:  "Validates a Resume JSON file against the embedded resume schema and its field constraints. Exits with code 1 on failure.",
	RunE:  runValidate,
}

var validateJSONPath string

func init() {
	validateCmd.Flags().StringVar(&validateJSONPath, "json", "", "Path to Resume JSON file (required)")

	if err := validateCmd.MarkFlagRequired("json"); err != nil {
		panic(fmt.Sprintf("failed to mark json flag as required: %v", err))
	}

	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	data, err := os.ReadFile(validateJSONPath)
	if err != nil {
		return fmt.Errorf("failed to read JSON file: %w", err)
	}

	if err := validateResumeJSON(data); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Validation passed: %s\n", validateJSONPath)
	return nil
}

func validateResumeJSON(data []byte) error {
	if err := schemas.ValidateResumeJSON(data); err != nil {
		return err
	}

	var resume types.Resume
	if err := json.Unmarshal(data, &resume); err != nil {
		return fmt.Errorf("failed to unmarshal resume: %w", err)
	}
	return resume.Validate()
}
