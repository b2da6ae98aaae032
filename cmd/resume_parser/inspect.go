package main

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-parser/internal/extraction"
	"github.com/jonathan/resume-parser/internal/ingestion"
	"github.com/jonathan/resume-parser/internal/observability"
	"github.com/jonathan/resume-parser/internal/parser"
	"github.com/jonathan/resume-parser/internal/subsections"
)

// Layout stages printable by inspect
const (
	stageLines       = "lines"
	stageSections    = "sections"
	stageSubsections = "subsections"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Print the reconstructed layout of a resume document",
	Long:  "Prints the lines, sections or subsections reconstructed from a document, before any field is extracted.",
	RunE:  runInspect,
}

var (
	inspectInput      string
	inspectStage      string
	inspectConfigPath string
)

func init() {
	inspectCmd.Flags().StringVarP(&inspectInput, "in", "i", "", "Path to resume document (required)")
	inspectCmd.Flags().StringVar(&inspectStage, "stage", stageSections, "Stage to print: lines, sections or subsections")
	inspectCmd.Flags().StringVar(&inspectConfigPath, "config", "", "Path to config file (JSON or YAML, defaults to RESUME_PARSER_CONFIG)")

	if err := inspectCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, _ []string) error {
	switch inspectStage {
	case stageLines, stageSections, stageSubsections:
	default:
		return fmt.Errorf("unknown stage %q (want lines, sections or subsections)", inspectStage)
	}

	cfg, err := loadConfig(inspectConfigPath)
	if err != nil {
		return err
	}
	log := initLogger(cfg, false)

	data, err := ingestion.ReadDocument(inspectInput, cfg.MaxFileSizeBytes())
	if err != nil {
		return fmt.Errorf("failed to read resume: %w", err)
	}

	items, format, err := extraction.ExtractItems(context.Background(), filepath.Base(inspectInput), data)
	if err != nil {
		return fmt.Errorf("failed to extract text items: %w", err)
	}

	doc := newParser(cfg, false, log).BuildLayout(items)
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s: %s, %d items\n", inspectInput, format, len(doc.Items))
	printStage(observability.NewPrinter(cmd.OutOrStdout()), doc, inspectStage, cfg.ExtractOptions().Subsections)
	return nil
}

func printStage(printer *observability.Printer, doc *parser.Layout, stage string, opts subsections.Options) {
	switch stage {
	case stageLines:
		printer.PrintLines(doc.Lines)
	case stageSections:
		printer.PrintSections(doc.Sections)
	case stageSubsections:
		for _, section := range doc.Sections {
			printer.PrintSubsections(section.Name, subsections.Divide(section.Lines, opts))
		}
	}
}
