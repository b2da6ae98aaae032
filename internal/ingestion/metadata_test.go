package ingestion

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractionLog_JSONMarshaling(t *testing.T) {
	log := &ExtractionLog{
		ID:           "7d9f0c5e-2b1a-4c3d-9e8f-0a1b2c3d4e5f",
		FileName:     "resume.pdf",
		Format:       "pdf",
		FileSize:     2048,
		SHA256:       "abcd1234",
		Timestamp:    "2024-01-01T00:00:00Z",
		ItemCount:    120,
		LineCount:    40,
		SectionNames: []string{"profile", "education"},
		DurationMS:   12,
	}

	jsonBytes, err := log.ToJSON()
	require.NoError(t, err)

	var unmarshaled ExtractionLog
	require.NoError(t, json.Unmarshal(jsonBytes, &unmarshaled))
	assert.Equal(t, *log, unmarshaled)
	assert.NotContains(t, string(jsonBytes), `"error"`)
}

func TestComputeHash(t *testing.T) {
	hash1 := ComputeHash([]byte("test content"))
	hash2 := ComputeHash([]byte("different content"))

	assert.Len(t, hash1, 64)
	assert.Len(t, hash2, 64)
	assert.NotEqual(t, hash1, hash2)
	assert.Equal(t, hash1, ComputeHash([]byte("test content")))
}

func TestNewExtractionLog(t *testing.T) {
	data := []byte("%PDF-1.7 test")

	log := NewExtractionLog("resume.pdf", data)

	assert.Equal(t, "resume.pdf", log.FileName)
	assert.Equal(t, len(data), log.FileSize)
	assert.Equal(t, ComputeHash(data), log.SHA256)
	assert.NotNil(t, log.SectionNames)

	_, err := uuid.Parse(log.ID)
	assert.NoError(t, err)
	_, err = time.Parse(time.RFC3339, log.Timestamp)
	assert.NoError(t, err)

	other := NewExtractionLog("resume.pdf", data)
	assert.NotEqual(t, log.ID, other.ID)
}

func TestExtractionLog_Finish(t *testing.T) {
	log := NewExtractionLog("a.txt", nil)
	log.Finish(time.Now().Add(-50*time.Millisecond), errors.New("decode failed"))

	assert.GreaterOrEqual(t, log.DurationMS, int64(50))
	assert.Equal(t, "decode failed", log.Error)

	ok := NewExtractionLog("b.txt", nil)
	ok.Finish(time.Now(), nil)
	assert.Empty(t, ok.Error)
}

func TestWriteOutput(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "nested", "out")
	log := NewExtractionLog("resume.pdf", []byte("x"))

	err := WriteOutput(outDir, "resume", []byte(`{"profile":{}}`), log)
	require.NoError(t, err)

	resume, err := os.ReadFile(filepath.Join(outDir, "resume.json"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"profile":{}}`, string(resume))

	logBytes, err := os.ReadFile(filepath.Join(outDir, "resume.log.json"))
	require.NoError(t, err)
	var decoded ExtractionLog
	require.NoError(t, json.Unmarshal(logBytes, &decoded))
	assert.Equal(t, log.ID, decoded.ID)
}

func TestWriteOutput_WithoutLog(t *testing.T) {
	outDir := t.TempDir()

	require.NoError(t, WriteOutput(outDir, "resume", []byte(`{}`), nil))

	_, err := os.Stat(filepath.Join(outDir, "resume.log.json"))
	assert.True(t, os.IsNotExist(err))
}
