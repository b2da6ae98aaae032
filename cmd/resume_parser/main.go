// Package main provides the resume_parser CLI for turning resume documents into structured JSON.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_parser",
	Short: "Heuristic resume parser",
	Long: `resume_parser reads PDF, DOCX, HTML and plain text resumes and extracts a structured
Resume JSON (profile, education, work experience, projects, skills and other sections)
using layout reconstruction and feature scoring. No statistical model is involved.`,
	SilenceUsage: true,
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
