// Package extraction decodes resume documents into positioned text items.
//
// Every adapter produces items with a top-left origin and y increasing downward. Formats
// without real geometry (DOCX, HTML, TXT) get synthetic coordinates laid out so that the
// line builder reconstructs one line per paragraph.
package extraction

import (
	"archive/zip"
	"bytes"
	"context"
	"path/filepath"
	"strings"

	"github.com/jonathan/resume-parser/internal/types"
)

// Format identifies a document format
type Format string

const (
	FormatPDF     Format = "pdf"
	FormatDOCX    Format = "docx"
	FormatHTML    Format = "html"
	FormatText    Format = "txt"
	FormatUnknown Format = "unknown"
)

// Extractor turns document bytes into positioned text items.
// Zero-length input yields no items and no error.
type Extractor interface {
	Extract(ctx context.Context, data []byte) ([]types.TextItem, error)
}

var (
	pdfMagic = []byte("%PDF")
	zipMagic = []byte("PK\x03\x04")
)

// sniffLen bounds how much of the document is inspected for HTML markers
const sniffLen = 512

// Detect identifies the document format from its leading bytes, falling back to the file
// extension and finally to plain text.
func Detect(filename string, data []byte) Format {
	switch {
	case bytes.HasPrefix(data, pdfMagic):
		return FormatPDF
	case bytes.HasPrefix(data, zipMagic) && isDOCX(data):
		return FormatDOCX
	case looksLikeHTML(data):
		return FormatHTML
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return FormatPDF
	case ".docx":
		return FormatDOCX
	case ".html", ".htm":
		return FormatHTML
	case ".txt", ".text", ".md", "":
		return FormatText
	}

	if bytes.HasPrefix(data, zipMagic) {
		return FormatUnknown
	}
	return FormatText
}

// isDOCX reports whether a zip archive carries a Word main document part
func isDOCX(data []byte) bool {
	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return false
	}
	for _, f := range reader.File {
		if f.Name == docxMainPart {
			return true
		}
	}
	return false
}

func looksLikeHTML(data []byte) bool {
	head := data[:min(len(data), sniffLen)]
	head = bytes.TrimLeft(head, " \t\r\n\ufeff")
	lower := strings.ToLower(string(head))
	return strings.HasPrefix(lower, "<!doctype html") || strings.HasPrefix(lower, "<html")
}

// ForFormat returns the adapter for a format
func ForFormat(format Format) (Extractor, error) {
	switch format {
	case FormatPDF:
		return NewPDFExtractor(), nil
	case FormatDOCX:
		return NewDOCXExtractor(), nil
	case FormatHTML:
		return NewHTMLExtractor(), nil
	case FormatText:
		return NewTextExtractor(), nil
	default:
		return nil, &UnsupportedFormatError{Format: format}
	}
}

// ExtractItems detects the format of data and runs the matching adapter
func ExtractItems(ctx context.Context, filename string, data []byte) ([]types.TextItem, Format, error) {
	format := Detect(filename, data)
	extractor, err := ForFormat(format)
	if err != nil {
		return nil, format, err
	}
	items, err := extractor.Extract(ctx, data)
	return items, format, err
}
