package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-parser/internal/export"
	"github.com/jonathan/resume-parser/internal/ingestion"
	"github.com/jonathan/resume-parser/internal/pipeline"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Parse every resume document in a directory",
	Long: `Parses every supported document (pdf, docx, html, htm, txt, md) directly inside --in-dir.
For each parsed document <name>.json and <name>.log.json are written to --out-dir.
A failing document is reported and does not stop the others.`,
	RunE: runBatch,
}

var (
	batchInDir       string
	batchOutDir      string
	batchSummary     string
	batchConcurrency int
	batchConfigPath  string
	batchVerbose     bool
)

func init() {
	batchCmd.Flags().StringVar(&batchInDir, "in-dir", "", "Directory of resume documents (required)")
	batchCmd.Flags().StringVar(&batchOutDir, "out-dir", "", "Directory for Resume JSON output (required)")
	batchCmd.Flags().StringVar(&batchSummary, "summary", "", "Path to write an XLSX summary workbook")
	batchCmd.Flags().IntVar(&batchConcurrency, "concurrency", 0, "Documents parsed at once (default from config)")
	batchCmd.Flags().StringVar(&batchConfigPath, "config", "", "Path to config file (JSON or YAML, defaults to RESUME_PARSER_CONFIG)")
	batchCmd.Flags().BoolVarP(&batchVerbose, "verbose", "v", false, "Log each document")

	if err := batchCmd.MarkFlagRequired("in-dir"); err != nil {
		panic(fmt.Sprintf("failed to mark in-dir flag as required: %v", err))
	}
	if err := batchCmd.MarkFlagRequired("out-dir"); err != nil {
		panic(fmt.Sprintf("failed to mark out-dir flag as required: %v", err))
	}

	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(batchConfigPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("concurrency") {
		if batchConcurrency < 1 {
			return fmt.Errorf("--concurrency must be at least 1")
		}
		cfg.Concurrency = batchConcurrency
	}
	log := initLogger(cfg, batchVerbose)

	files, err := pipeline.CollectFiles(batchInDir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no supported documents found in %s", batchInDir)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	out := cmd.OutOrStdout()
	results, runErr := pipeline.RunBatch(ctx, files, pipeline.BatchOptions{
		Parser:      newParser(cfg, false, log),
		Concurrency: cfg.Concurrency,
		MaxBytes:    cfg.MaxFileSizeBytes(),
		Logger:      log,
		OnProgress: func(event pipeline.ProgressEvent) {
			if event.Status == pipeline.StatusStarted {
				return
			}
			_, _ = fmt.Fprintf(out, "[%d/%d] %s\n", event.Index+1, event.Total, event.Message)
		},
	})

	failed, err := writeBatchOutputs(out, batchOutDir, results)
	if err != nil {
		return err
	}

	if batchSummary != "" {
		if err := export.WriteBatchSummary(batchSummary, results); err != nil {
			return fmt.Errorf("failed to write summary: %w", err)
		}
		_, _ = fmt.Fprintf(out, "Summary written to %s\n", batchSummary)
	}

	_, _ = fmt.Fprintf(out, "Parsed %d of %d documents\n", len(results)-failed, len(results))
	if runErr != nil {
		return runErr
	}
	if failed == len(results) {
		return fmt.Errorf("all %d documents failed", failed)
	}
	return nil
}

// writeBatchOutputs writes the JSON outputs of every successful result and returns the number of
// failed documents.
func writeBatchOutputs(out io.Writer, outDir string, results []pipeline.BatchResult) (int, error) {
	failed := 0
	for _, result := range results {
		if !result.OK() {
			failed++
			_, _ = fmt.Fprintf(out, "FAILED %s: %v\n", result.File, result.Err)
			continue
		}
		data, err := marshalJSON(result.Result.Resume)
		if err != nil {
			return failed, err
		}
		if err := ingestion.WriteOutput(outDir, pipeline.OutputBase(result.File), data, result.Result.Log); err != nil {
			return failed, err
		}
	}
	return failed, nil
}
