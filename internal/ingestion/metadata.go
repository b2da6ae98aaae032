package ingestion

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// ExtractionLog records how one document went through the parser
type ExtractionLog struct {
	ID           string   `json:"id"`
	FileName     string   `json:"file_name,omitempty"`
	Format       string   `json:"format"`
	FileSize     int      `json:"file_size"`
	SHA256       string   `json:"sha256"`    // hex digest of the raw document
	Timestamp    string   `json:"timestamp"` // RFC3339 format
	ItemCount    int      `json:"item_count"`
	LineCount    int      `json:"line_count"`
	SectionNames []string `json:"section_names"`
	DurationMS   int64    `json:"duration_ms"`
	Error        string   `json:"error,omitempty"`
}

// NewExtractionLog creates a log for a document with a fresh ID and the current timestamp
func NewExtractionLog(fileName string, data []byte) *ExtractionLog {
	return &ExtractionLog{
		ID:           uuid.NewString(),
		FileName:     fileName,
		FileSize:     len(data),
		SHA256:       ComputeHash(data),
		Timestamp:    time.Now().UTC().Format(time.RFC3339),
		SectionNames: []string{},
	}
}

// ComputeHash computes the SHA256 hash of data and returns it as hex
func ComputeHash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

// Finish stamps the elapsed time since start and the error, if any
func (l *ExtractionLog) Finish(start time.Time, err error) {
	l.DurationMS = time.Since(start).Milliseconds()
	if err != nil {
		l.Error = err.Error()
	}
}

// ToJSON marshals the log to pretty-printed JSON
func (l *ExtractionLog) ToJSON() ([]byte, error) {
	jsonBytes, err := json.MarshalIndent(l, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal extraction log to JSON: %w", err)
	}
	return jsonBytes, nil
}

// WriteOutput writes the parsed resume JSON and, when log is non-nil, its extraction log
// next to it. Files are named <base>.json and <base>.log.json.
func WriteOutput(outDir, base string, resumeJSON []byte, log *ExtractionLog) error {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	resumePath := filepath.Join(outDir, base+".json")
	if err := os.WriteFile(resumePath, resumeJSON, 0644); err != nil {
		return fmt.Errorf("failed to write resume: %w", err)
	}

	if log == nil {
		return nil
	}
	logJSON, err := log.ToJSON()
	if err != nil {
		return err
	}
	logPath := filepath.Join(outDir, base+".log.json")
	if err := os.WriteFile(logPath, logJSON, 0644); err != nil {
		return fmt.Errorf("failed to write extraction log: %w", err)
	}
	return nil
}
