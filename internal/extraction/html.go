package extraction

import (
	"bytes"
	"context"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonathan/resume-parser/internal/types"
)

var (
	blockElements = setOf("p", "div", "li", "tr", "h1", "h2", "h3", "h4", "h5", "h6",
		"section", "article", "header", "footer", "ul", "ol", "table", "blockquote", "dt", "dd", "address")
	// spacedElements are followed by a blank line
	spacedElements  = setOf("ul", "ol", "table", "section", "article", "header")
	headingElements = setOf("h1", "h2", "h3", "h4", "h5", "h6")
	boldElements    = setOf("b", "strong", "th", "h1", "h2", "h3", "h4", "h5", "h6")
	skipElements    = setOf("script", "style", "head", "noscript", "template", "svg")

	htmlSpace = regexp.MustCompile(`[ \t\r\n\f]+`)
	spaceRuns = regexp.MustCompile(` {2,}`)
)

func setOf(names ...string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, name := range names {
		set[name] = true
	}
	return set
}

// HTMLExtractor lays out block elements of an HTML resume as lines
type HTMLExtractor struct{}

// NewHTMLExtractor creates an HTML extractor
func NewHTMLExtractor() *HTMLExtractor { return &HTMLExtractor{} }

// Extract walks the body. Block elements start new lines, list items get a bullet, table
// cells are separated by column gaps, and text under b, strong, th or a heading is bold.
func (e *HTMLExtractor) Extract(ctx context.Context, data []byte) ([]types.TextItem, error) {
	if len(data) == 0 {
		return nil, nil
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return nil, &DecodeError{Format: FormatHTML, Message: "failed to parse document", Cause: err}
	}

	root := doc.Find("body").First()
	if root.Length() == 0 {
		root = doc.Selection
	}

	walker := &htmlWalker{writer: newPageWriter()}
	walker.walk(root, false)
	walker.flush()
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return walker.writer.items, nil
}

type htmlWalker struct {
	writer *pageWriter
	runs   []styledRun
}

func (w *htmlWalker) walk(sel *goquery.Selection, bold bool) {
	sel.Contents().Each(func(_ int, child *goquery.Selection) {
		name := goquery.NodeName(child)
		switch {
		case name == "#text":
			text := htmlSpace.ReplaceAllString(child.Text(), " ")
			if strings.TrimSpace(text) == "" && len(w.runs) == 0 {
				return
			}
			w.runs = append(w.runs, styledRun{text: text, bold: bold})
		case skipElements[name]:
		case name == "br":
			w.flush()
		case name == "hr":
			w.flush()
			w.writer.blankLine()
		case name == "td" || name == "th":
			if hasVisibleText(w.runs) {
				w.runs = append(w.runs, styledRun{text: "\t"})
			}
			w.walk(child, bold || boldElements[name])
		case blockElements[name]:
			w.flush()
			if headingElements[name] {
				w.writer.blankLine()
			}
			if name == "li" {
				w.runs = append(w.runs, styledRun{text: "• "})
			}
			w.walk(child, bold || boldElements[name])
			w.flush()
			if spacedElements[name] {
				w.writer.blankLine()
			}
		default:
			w.walk(child, bold || boldElements[name])
		}
	})
}

// flush writes the pending runs as one line, joining neighbors of equal weight
func (w *htmlWalker) flush() {
	if len(w.runs) == 0 {
		return
	}

	var merged []styledRun
	for _, run := range w.runs {
		if n := len(merged); n > 0 && merged[n-1].bold == run.bold {
			merged[n-1].text += run.text
			continue
		}
		merged = append(merged, run)
	}
	for i := range merged {
		merged[i].text = spaceRuns.ReplaceAllString(merged[i].text, " ")
	}
	merged[0].text = strings.TrimLeft(merged[0].text, " ")
	last := len(merged) - 1
	merged[last].text = strings.TrimRight(merged[last].text, " ")

	w.writer.writeLine(merged)
	w.runs = nil
}
