package main

import (
	"os"
	"path/filepath"
	"testing"
)

// getBinaryPath returns the path to the resume_parser binary for testing
func getBinaryPath(t *testing.T) string {
	binaryName := "resume_parser"
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := filepath.Join("..", "..", "bin", binaryName)
	if _, err := os.Stat(binaryPath); os.IsNotExist(err) {
		t.Skipf("Binary not found at %s, build it first with 'go build -o bin/resume_parser ./cmd/resume_parser'", binaryPath)
	}

	return binaryPath
}

// sampleResumeText is a small plain text resume used by the command tests
const sampleResumeText = "JANE DOE\n" +
	"jane@example.com | (555) 123-4567 | Austin, TX\n" +
	"\n" +
	"EXPERIENCE\n" +
	"Acme Corp\t2021 - Present\n" +
	"Software Engineer\n" +
	"• Built billing services\n" +
	"\n" +
	"SKILLS\n" +
	"Go, SQL, Kubernetes\n"

// writeSample writes content to name inside a fresh temp dir and returns its path
func writeSample(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}
