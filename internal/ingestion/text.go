// Package ingestion reads resume documents from disk and cleans extracted text before layout.
package ingestion

import (
	"fmt"
	"os"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/jonathan/resume-parser/internal/types"
)

var (
	excessiveBlankLines = regexp.MustCompile(`\n\n\n+`)
	horizontalSpace     = regexp.MustCompile(`[ \t\f\v\x{00A0}\x{2000}-\x{200A}\x{202F}\x{205F}\x{3000}]+`)
	inlineSpace         = regexp.MustCompile(`[ \f\v]+`)
	columnGap           = regexp.MustCompile(`[ ]*\t[ \t]*| {3,}`)
)

// CleanText normalizes a plain text document while keeping its line structure: line endings
// become LF, text is NFKC normalized and invisible characters are dropped. Within a line,
// tabs and runs of three or more spaces become one tab marking a column gap, other space runs
// collapse to one space, and the line is trimmed. Runs of blank lines are capped at one.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")
	content = norm.NFKC.String(content)

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		line = columnGap.ReplaceAllString(stripInvisible(line), "\t")
		line = inlineSpace.ReplaceAllString(line, " ")
		lines[i] = strings.TrimSpace(line)
	}

	result := strings.Join(lines, "\n")
	result = excessiveBlankLines.ReplaceAllString(result, "\n\n")
	return strings.Trim(result, "\n")
}

// CleanItemText normalizes the text of one positioned item: NFKC normalization (which also
// expands ligatures such as "ﬁ"), removal of control, zero-width and replacement characters,
// and collapsing of horizontal whitespace. Leading and trailing single spaces are kept since
// they carry word boundaries between neighboring items.
func CleanItemText(text string) string {
	if text == "" {
		return ""
	}
	text = norm.NFKC.String(text)
	text = stripInvisible(text)
	return horizontalSpace.ReplaceAllString(text, " ")
}

// CleanItems cleans every item's text and drops items left without visible characters.
// The input slice is not modified.
func CleanItems(items []types.TextItem) []types.TextItem {
	cleaned := make([]types.TextItem, 0, len(items))
	for _, item := range items {
		item.Text = CleanItemText(item.Text)
		if strings.TrimSpace(item.Text) == "" {
			continue
		}
		cleaned = append(cleaned, item)
	}
	return cleaned
}

// stripInvisible removes control characters, zero-width format characters and U+FFFD
func stripInvisible(text string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\t':
			return r
		case r == unicode.ReplacementChar:
			return -1
		case unicode.IsControl(r):
			return -1
		case unicode.Is(unicode.Cf, r):
			return -1
		}
		return r
	}, text)
}

// ReadDocument reads a document from disk, rejecting files larger than maxBytes when
// maxBytes is positive.
func ReadDocument(path string, maxBytes int64) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("file not found: %w", err)
		}
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory", path)
	}
	if maxBytes > 0 && info.Size() > maxBytes {
		return nil, &FileTooLargeError{Path: path, Size: info.Size(), Limit: maxBytes}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return data, nil
}

// FileTooLargeError reports a document above the configured size limit
type FileTooLargeError struct {
	Path  string
	Size  int64
	Limit int64
}

func (e *FileTooLargeError) Error() string {
	return fmt.Sprintf("file %s is %d bytes, above the %d byte limit", e.Path, e.Size, e.Limit)
}
