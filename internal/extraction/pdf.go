package extraction

import (
	"bytes"
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/jonathan/resume-parser/internal/types"
)

const (
	// defaultPageHeight is US Letter height in points, used when a page has no usable MediaBox
	defaultPageHeight = 792.0
	// runGapRatio is the horizontal gap, relative to font size, that still continues a glyph run
	runGapRatio = 0.3
	// baselineTolerance is how far two glyph baselines may differ within one run
	baselineTolerance = 0.5
)

// PDFExtractor reads glyphs from every page and joins them into runs
type PDFExtractor struct{}

// NewPDFExtractor creates a PDF extractor
func NewPDFExtractor() *PDFExtractor { return &PDFExtractor{} }

// Extract returns one item per glyph run. Pages are stacked vertically so items on later
// pages always sort below items on earlier ones.
func (e *PDFExtractor) Extract(ctx context.Context, data []byte) (items []types.TextItem, err error) {
	if len(data) == 0 {
		return nil, nil
	}

	// The pdf library panics on some malformed streams
	defer func() {
		if r := recover(); r != nil {
			items = nil
			err = &DecodeError{Format: FormatPDF, Message: fmt.Sprintf("malformed document: %v", r)}
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, &DecodeError{Format: FormatPDF, Message: "failed to open document", Cause: err}
	}

	offset := 0.0
	for i := 1; i <= reader.NumPage(); i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		height := pageHeight(page)
		items = append(items, pageItems(page.Content().Text, height, offset)...)
		offset += height
	}
	return items, nil
}

// pageHeight reads the MediaBox height of a page, including one inherited from its parent
func pageHeight(page pdf.Page) float64 {
	for _, box := range []pdf.Value{page.V.Key("MediaBox"), page.V.Key("Parent").Key("MediaBox")} {
		if height, ok := mediaBoxHeight(box); ok {
			return height
		}
	}
	return defaultPageHeight
}

func mediaBoxHeight(box pdf.Value) (float64, bool) {
	if box.IsNull() || box.Kind() != pdf.Array || box.Len() != 4 {
		return 0, false
	}
	height := math.Abs(box.Index(3).Float64() - box.Index(1).Float64())
	if height <= 0 {
		return 0, false
	}
	return height, true
}

// glyphRun is a sequence of glyphs sharing font, size and baseline
type glyphRun struct {
	text     strings.Builder
	font     string
	size     float64
	x        float64
	right    float64
	baseline float64
}

func (r *glyphRun) continues(g pdf.Text) bool {
	if g.Font != r.font || g.FontSize != r.size {
		return false
	}
	if math.Abs(g.Y-r.baseline) > baselineTolerance {
		return false
	}
	gap := g.X - r.right
	return gap >= -r.size*runGapRatio && gap <= r.size*runGapRatio
}

func (r *glyphRun) item(pageHeight, offset float64) types.TextItem {
	return types.TextItem{
		Text:     r.text.String(),
		X:        r.x,
		Y:        offset + pageHeight - r.baseline - r.size,
		Width:    r.right - r.x,
		Height:   r.size,
		FontName: r.font,
	}
}

// pageItems converts the glyphs of one page, in content stream order, into text items
func pageItems(glyphs []pdf.Text, pageHeight, offset float64) []types.TextItem {
	var items []types.TextItem
	var current *glyphRun

	flush := func() {
		if current != nil && strings.TrimSpace(current.text.String()) != "" {
			items = append(items, current.item(pageHeight, offset))
		}
		current = nil
	}

	for _, g := range glyphs {
		if g.S == "" {
			continue
		}
		if current == nil || !current.continues(g) {
			flush()
			current = &glyphRun{font: g.Font, size: g.FontSize, x: g.X, right: g.X, baseline: g.Y}
		}
		current.text.WriteString(g.S)
		current.right = max(current.right, g.X+g.W)
	}
	flush()

	return items
}
