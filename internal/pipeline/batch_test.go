package pipeline

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-parser/internal/ingestion"
)

const sampleResume = `JANE DOE
jane@example.com | (555) 123-4567

EXPERIENCE
Acme Corp	2021 - Present
Software Engineer
• Built billing services
`

func writeFiles(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
	}
}

func TestRunBatch(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"a.txt": sampleResume,
		"b.pdf": "%PDF-1.4 this is not really a pdf",
		"c.txt": "",
	})
	files := []string{
		filepath.Join(dir, "a.txt"),
		filepath.Join(dir, "b.pdf"),
		filepath.Join(dir, "missing.txt"),
		filepath.Join(dir, "c.txt"),
	}

	var events []ProgressEvent
	results, err := RunBatch(context.Background(), files, BatchOptions{
		Concurrency: 2,
		OnProgress:  func(e ProgressEvent) { events = append(events, e) },
	})
	require.NoError(t, err)
	require.Len(t, results, len(files))

	for i, result := range results {
		assert.Equal(t, files[i], result.File, "results keep input order")
	}

	assert.True(t, results[0].OK())
	assert.Equal(t, "JANE DOE", results[0].Result.Resume.Profile.Name)
	assert.Equal(t, "txt", results[0].Result.Log.Format)

	assert.False(t, results[1].OK(), "undecodable pdf fails")
	assert.Error(t, results[1].Err)

	assert.False(t, results[2].OK())
	assert.Contains(t, results[2].Err.Error(), "file not found")

	require.True(t, results[3].OK(), "empty file parses to an empty resume")
	assert.True(t, results[3].Result.Resume.IsEmpty())

	statuses := map[string]int{}
	for _, e := range events {
		statuses[e.Status]++
		assert.Equal(t, len(files), e.Total)
	}
	assert.Equal(t, 4, statuses[StatusStarted])
	assert.Equal(t, 2, statuses[StatusParsed])
	assert.Equal(t, 2, statuses[StatusFailed])
}

func TestRunBatch_MaxBytes(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{"a.txt": sampleResume})

	results, err := RunBatch(context.Background(), []string{filepath.Join(dir, "a.txt")}, BatchOptions{MaxBytes: 10})
	require.NoError(t, err)

	var tooLarge *ingestion.FileTooLargeError
	assert.True(t, errors.As(results[0].Err, &tooLarge))
}

func TestRunBatch_Cancelled(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{"a.txt": sampleResume, "b.txt": sampleResume})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := RunBatch(ctx, []string{filepath.Join(dir, "a.txt"), filepath.Join(dir, "b.txt")}, BatchOptions{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
	require.Len(t, results, 2)
	for _, result := range results {
		assert.False(t, result.OK())
		assert.NotEmpty(t, result.File)
	}
}

func TestRunBatch_Empty(t *testing.T) {
	results, err := RunBatch(context.Background(), nil, BatchOptions{})
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestCollectFiles(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"b.PDF":       "x",
		"a.txt":       "x",
		"notes.json":  "{}",
		".hidden.txt": "x",
	})
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.txt"), 0755))

	files, err := CollectFiles(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "a.txt"), filepath.Join(dir, "b.PDF")}, files)

	_, err = CollectFiles(filepath.Join(dir, "nope"))
	assert.Error(t, err)
}

func TestOutputBase(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{path: "/tmp/jane.pdf", want: "jane"},
		{path: "resume.final.docx", want: "resume.final"},
		{path: "noext", want: "noext"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, OutputBase(tt.path))
		})
	}
}
