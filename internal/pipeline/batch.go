// Package pipeline runs the resume parser over many documents concurrently.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-parser/internal/ingestion"
	"github.com/jonathan/resume-parser/internal/parser"
)

// DefaultConcurrency is used when BatchOptions.Concurrency is not positive
const DefaultConcurrency = 4

// Progress statuses
const (
	StatusStarted = "started"
	StatusParsed  = "parsed"
	StatusFailed  = "failed"
)

// ProgressEvent represents a progress update during batch execution
type ProgressEvent struct {
	File    string `json:"file"`
	Index   int    `json:"index"`
	Total   int    `json:"total"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

// ProgressCallback is called when batch progress occurs. It may be called from several
// goroutines, but never concurrently.
type ProgressCallback func(event ProgressEvent)

// BatchOptions holds configuration for running a batch
type BatchOptions struct {
	Parser      *parser.Parser
	Concurrency int
	// MaxBytes rejects larger files; zero disables the limit
	MaxBytes   int64
	OnProgress ProgressCallback
	Logger     zerolog.Logger
}

// BatchResult is the outcome for one input file
type BatchResult struct {
	File   string
	Result *parser.Result
	Err    error
}

// OK reports whether the file parsed successfully
func (r BatchResult) OK() bool {
	return r.Err == nil && r.Result != nil
}

// RunBatch parses every file with an independent parse. A failing document is recorded on its
// BatchResult and does not stop the others. Results are returned in input order. The returned
// error is non-nil only when ctx is cancelled.
func RunBatch(ctx context.Context, files []string, opts BatchOptions) ([]BatchResult, error) {
	p := opts.Parser
	if p == nil {
		p = parser.New(parser.DefaultOptions())
	}
	concurrency := opts.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	results := make([]BatchResult, len(files))
	var mu sync.Mutex
	emit := func(event ProgressEvent) {
		if opts.OnProgress == nil {
			return
		}
		mu.Lock()
		defer mu.Unlock()
		opts.OnProgress(event)
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, file := range files {
		if gCtx.Err() != nil {
			break
		}
		i, file := i, file
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				results[i] = BatchResult{File: file, Err: err}
				return nil
			}
			emit(ProgressEvent{File: file, Index: i, Total: len(files), Status: StatusStarted,
				Message: fmt.Sprintf("Parsing %s", filepath.Base(file))})

			result, err := parseFile(gCtx, p, file, opts.MaxBytes)
			results[i] = BatchResult{File: file, Result: result, Err: err}

			if err != nil {
				opts.Logger.Warn().Err(err).Str("file", file).Msg("document failed")
				emit(ProgressEvent{File: file, Index: i, Total: len(files), Status: StatusFailed, Message: err.Error()})
				return nil
			}
			opts.Logger.Info().Str("file", file).Str("format", result.Log.Format).Int64("duration_ms", result.Log.DurationMS).Msg("document parsed")
			emit(ProgressEvent{File: file, Index: i, Total: len(files), Status: StatusParsed,
				Message: fmt.Sprintf("Parsed %s (%s)", filepath.Base(file), result.Log.Format)})
			return nil
		})
	}

	_ = g.Wait()

	// files skipped after cancellation
	for i := range results {
		if results[i].File == "" {
			results[i] = BatchResult{File: files[i], Err: context.Cause(gCtx)}
		}
	}

	if err := ctx.Err(); err != nil {
		return results, fmt.Errorf("batch cancelled: %w", err)
	}
	return results, nil
}

func parseFile(ctx context.Context, p *parser.Parser, path string, maxBytes int64) (*parser.Result, error) {
	data, err := ingestion.ReadDocument(path, maxBytes)
	if err != nil {
		return nil, err
	}
	return p.Parse(ctx, filepath.Base(path), data)
}

// supportedExtensions are the file extensions picked up by CollectFiles
var supportedExtensions = map[string]bool{
	".pdf": true, ".docx": true, ".html": true, ".htm": true, ".txt": true, ".md": true,
}

// CollectFiles lists the supported documents directly inside dir, sorted by name.
func CollectFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read input directory: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		if supportedExtensions[strings.ToLower(filepath.Ext(entry.Name()))] {
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}

// OutputBase returns the output file stem for an input path.
func OutputBase(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
