package main

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-parser/internal/ingestion"
	"github.com/jonathan/resume-parser/internal/observability"
)

var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Parse one resume document into Resume JSON",
	Long: `Parses a PDF, DOCX, HTML or text resume into Resume JSON.

Without --out the JSON is written to stdout. A document with no readable text produces an
empty Resume; only an undecodable document is an error.`,
	RunE: runParse,
}

var (
	parseInput       string
	parseOutput      string
	parseDebugScores string
	parseLogPath     string
	parseConfigPath  string
	parseVerbose     bool
)

func init() {
	parseCmd.Flags().StringVarP(&parseInput, "in", "i", "", "Path to resume document (required)")
	parseCmd.Flags().StringVarP(&parseOutput, "out", "o", "", "Path to output Resume JSON file (default stdout)")
	parseCmd.Flags().StringVar(&parseDebugScores, "debug-scores", "", "Path to write per-field candidate scores JSON")
	parseCmd.Flags().StringVar(&parseLogPath, "log", "", "Path to write the extraction log JSON")
	parseCmd.Flags().StringVar(&parseConfigPath, "config", "", "Path to config file (JSON or YAML, defaults to RESUME_PARSER_CONFIG)")
	parseCmd.Flags().BoolVarP(&parseVerbose, "verbose", "v", false, "Print a human-readable summary")

	if err := parseCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(parseConfigPath)
	if err != nil {
		return err
	}
	log := initLogger(cfg, parseVerbose)

	data, err := ingestion.ReadDocument(parseInput, cfg.MaxFileSizeBytes())
	if err != nil {
		return fmt.Errorf("failed to read resume: %w", err)
	}

	p := newParser(cfg, parseDebugScores != "", log)
	result, err := p.Parse(context.Background(), filepath.Base(parseInput), data)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", parseInput, err)
	}

	summaryOut := cmd.OutOrStdout()
	if parseOutput == "" {
		out, err := marshalJSON(result.Resume)
		if err != nil {
			return err
		}
		if _, err := cmd.OutOrStdout().Write(out); err != nil {
			return fmt.Errorf("failed to write resume: %w", err)
		}
		summaryOut = cmd.ErrOrStderr()
	} else {
		if err := writeJSONFile(parseOutput, result.Resume); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(summaryOut, "Successfully parsed resume: %s -> %s\n", parseInput, parseOutput)
	}

	if parseDebugScores != "" {
		if err := writeJSONFile(parseDebugScores, result.Scores); err != nil {
			return err
		}
	}
	if parseLogPath != "" {
		if err := writeJSONFile(parseLogPath, result.Log); err != nil {
			return err
		}
	}

	if parseVerbose {
		printSummary(summaryOut, result.Log, parseDebugScores != "")
		printer := observability.NewPrinter(summaryOut)
		printer.PrintResume(result.Resume)
		printer.PrintScores(result.Scores)
	}
	return nil
}

func printSummary(out io.Writer, log *ingestion.ExtractionLog, withScores bool) {
	_, _ = fmt.Fprintf(out, "Format: %s, items: %d, lines: %d, sections: %v (%d ms)\n",
		log.Format, log.ItemCount, log.LineCount, log.SectionNames, log.DurationMS)
	if withScores {
		_, _ = fmt.Fprintln(out, "Debug scores written")
	}
}
