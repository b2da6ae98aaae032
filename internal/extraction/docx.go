package extraction

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-parser/internal/types"
)

// docxMainPart is the archive entry holding the document body
const docxMainPart = "word/document.xml"

// DOCXExtractor reads paragraphs and runs from a Word document
type DOCXExtractor struct{}

// NewDOCXExtractor creates a DOCX extractor
func NewDOCXExtractor() *DOCXExtractor { return &DOCXExtractor{} }

// docxParagraph is one w:p element
type docxParagraph struct {
	runs    []styledRun
	heading bool
	list    bool
}

// Extract lays out one line per paragraph. Bold comes from w:b run properties and from
// heading or title paragraph styles. List paragraphs are prefixed with a bullet.
func (e *DOCXExtractor) Extract(ctx context.Context, data []byte) ([]types.TextItem, error) {
	if len(data) == 0 {
		return nil, nil
	}

	archive, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, &DecodeError{Format: FormatDOCX, Message: "failed to open archive", Cause: err}
	}

	var part *zip.File
	for _, f := range archive.File {
		if f.Name == docxMainPart {
			part = f
			break
		}
	}
	if part == nil {
		return nil, &DecodeError{Format: FormatDOCX, Message: fmt.Sprintf("missing %s", docxMainPart)}
	}

	rc, err := part.Open()
	if err != nil {
		return nil, &DecodeError{Format: FormatDOCX, Message: "failed to open document part", Cause: err}
	}
	defer func() { _ = rc.Close() }()

	paragraphs, err := parseDocumentXML(ctx, rc)
	if err != nil {
		return nil, err
	}

	writer := newPageWriter()
	for _, p := range paragraphs {
		runs := p.runs
		if p.heading {
			runs = make([]styledRun, len(p.runs))
			for i, run := range p.runs {
				runs[i] = styledRun{text: run.text, bold: true}
			}
		}
		if p.list && hasVisibleText(runs) {
			runs = append([]styledRun{{text: "• "}}, runs...)
		}
		writer.writeLine(runs)
	}
	return writer.items, nil
}

// parseDocumentXML streams document.xml into paragraphs. Paragraphs nested in text boxes
// are emitted before their enclosing paragraph.
func parseDocumentXML(ctx context.Context, r io.Reader) ([]docxParagraph, error) {
	decoder := xml.NewDecoder(r)

	var (
		paragraphs []docxParagraph
		stack      []*docxParagraph
		run        *styledRun
		inPPr      bool
		inRPr      bool
	)

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		token, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &DecodeError{Format: FormatDOCX, Message: "malformed document.xml", Cause: err}
		}

		switch t := token.(type) {
		case xml.StartElement:
			var current *docxParagraph
			if len(stack) > 0 {
				current = stack[len(stack)-1]
			}
			switch t.Name.Local {
			case "p":
				stack = append(stack, &docxParagraph{})
			case "pPr":
				inPPr = true
			case "pStyle":
				if inPPr && current != nil && isHeadingStyle(attrValue(t, "val")) {
					current.heading = true
				}
			case "numPr":
				if inPPr && current != nil {
					current.list = true
				}
			case "r":
				run = &styledRun{}
			case "rPr":
				inRPr = run != nil
			case "b":
				if inRPr && run != nil {
					run.bold = isOn(attrValue(t, "val"))
				}
			case "t":
				if run == nil {
					continue
				}
				var text string
				if err := decoder.DecodeElement(&text, &t); err != nil {
					return nil, &DecodeError{Format: FormatDOCX, Message: "malformed text run", Cause: err}
				}
				run.text += text
			case "tab":
				if run != nil {
					run.text += "\t"
				}
			case "br", "cr":
				if run != nil {
					run.text += " "
				}
			}

		case xml.EndElement:
			switch t.Name.Local {
			case "pPr":
				inPPr = false
			case "rPr":
				inRPr = false
			case "r":
				if run != nil && run.text != "" && len(stack) > 0 {
					current := stack[len(stack)-1]
					current.runs = append(current.runs, *run)
				}
				run = nil
			case "p":
				if len(stack) > 0 {
					paragraphs = append(paragraphs, *stack[len(stack)-1])
					stack = stack[:len(stack)-1]
				}
			}
		}
	}

	return paragraphs, nil
}

func attrValue(el xml.StartElement, local string) string {
	for _, attr := range el.Attr {
		if attr.Name.Local == local {
			return attr.Value
		}
	}
	return ""
}

// isOn reads an OOXML boolean toggle, where a missing value means true
func isOn(val string) bool {
	switch strings.ToLower(val) {
	case "0", "false", "off":
		return false
	}
	return true
}

func isHeadingStyle(style string) bool {
	style = strings.ToLower(style)
	return strings.HasPrefix(style, "heading") || style == "title"
}
