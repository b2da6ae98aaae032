package extraction

import (
	"context"
	"strings"
	"unicode"

	"github.com/jonathan/resume-parser/internal/ingestion"
	"github.com/jonathan/resume-parser/internal/types"
)

// maxHeadingWords bounds how long an all-caps plain text line may be to count as a heading
const maxHeadingWords = 4

// TextExtractor lays out a plain text document one line per item row
type TextExtractor struct{}

// NewTextExtractor creates a plain text extractor
func NewTextExtractor() *TextExtractor { return &TextExtractor{} }

// Extract cleans the text and writes each line with synthetic geometry. Column gaps split a
// line into separate items. Short all-caps lines are flagged bold since plain text has no
// font weight to mark headings with.
func (e *TextExtractor) Extract(ctx context.Context, data []byte) ([]types.TextItem, error) {
	if len(data) == 0 {
		return nil, nil
	}

	content := ingestion.CleanText(strings.ToValidUTF8(string(data), ""))
	writer := newPageWriter()
	for _, line := range strings.Split(content, "\n") {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		writer.writeLine([]styledRun{{text: line, bold: isPlainTextHeading(line)}})
	}
	return writer.items, nil
}

// isPlainTextHeading reports whether a line reads like a heading: a few upper case words made
// only of letters, spaces and "&", with an optional trailing colon. Digits and other punctuation
// rule a line out, so "GPA: 3.9/4.0" stays body text.
func isPlainTextHeading(line string) bool {
	line = strings.TrimSuffix(strings.TrimSpace(line), ":")
	words := strings.Fields(line)
	if len(words) == 0 || len(words) > maxHeadingWords {
		return false
	}
	hasLetter := false
	for _, r := range line {
		switch {
		case unicode.IsLetter(r):
			if !unicode.IsUpper(r) {
				return false
			}
			hasLetter = true
		case r == ' ' || r == '&':
		default:
			return false
		}
	}
	return hasLetter
}
