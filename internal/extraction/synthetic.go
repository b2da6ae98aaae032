package extraction

import (
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resume-parser/internal/types"
)

// Synthetic geometry for formats that carry no coordinates. A blank line doubles the pitch,
// which the subsection divider reads as an entry boundary.
const (
	syntheticMargin     = 72.0
	syntheticLinePitch  = 14.0
	syntheticCharWidth  = 6.0
	syntheticItemHeight = 12.0
	syntheticFont       = "Helvetica"
	// syntheticTabWidth separates tab-delimited columns widely enough to stay separate items
	syntheticTabWidth = 8 * syntheticCharWidth
)

// styledRun is a piece of text with uniform weight
type styledRun struct {
	text string
	bold bool
}

// pageWriter lays out lines of runs top to bottom
type pageWriter struct {
	items   []types.TextItem
	y       float64
	started bool
	blank   bool
}

func newPageWriter() *pageWriter {
	return &pageWriter{y: syntheticMargin}
}

// writeLine places runs left to right on the next line. A tab inside a run starts a new item
// after a column gap. Lines without visible text count as blank.
func (w *pageWriter) writeLine(runs []styledRun) {
	if !hasVisibleText(runs) {
		w.blankLine()
		return
	}
	if w.started {
		w.y += syntheticLinePitch
		if w.blank {
			w.y += syntheticLinePitch
		}
	}
	w.started = true
	w.blank = false

	x := syntheticMargin
	for _, run := range runs {
		for i, segment := range strings.Split(run.text, "\t") {
			if i > 0 {
				x += syntheticTabWidth
			}
			if segment == "" {
				continue
			}
			width := float64(utf8.RuneCountInString(segment)) * syntheticCharWidth
			w.items = append(w.items, types.TextItem{
				Text:     segment,
				X:        x,
				Y:        w.y,
				Width:    width,
				Height:   syntheticItemHeight,
				FontName: syntheticFont,
				BoldFlag: run.bold,
			})
			x += width
		}
	}
}

// blankLine records vertical whitespace before the next line
func (w *pageWriter) blankLine() {
	if w.started {
		w.blank = true
	}
}

func hasVisibleText(runs []styledRun) bool {
	for _, run := range runs {
		if strings.TrimSpace(run.text) != "" {
			return true
		}
	}
	return false
}
