// Package layout rebuilds reading-order lines from positioned text items.
package layout

import (
	"math"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jonathan/resume-parser/internal/bullets"
	"github.com/jonathan/resume-parser/internal/types"
)

const (
	// DefaultYToleranceRatio is the share of the line's first item height within which
	// another item counts as sitting on the same line
	DefaultYToleranceRatio = 0.5
	// DefaultMinYTolerance is the absolute floor for the y tolerance
	DefaultMinYTolerance = 2.0
	// DefaultCharWidth is used when no item carries text
	DefaultCharWidth = 5.0
	// DefaultMinCharWidth and DefaultMaxCharWidth clamp the typical character width
	DefaultMinCharWidth = 2.0
	DefaultMaxCharWidth = 15.0
	// wordGapRatio is the share of the typical char width above which a merge inserts a space
	wordGapRatio = 0.3
)

// spaceSensitiveEnds are characters after which a merge always inserts a space
var spaceSensitiveEnds = []string{":", ",", "|", "."}

// Options tunes line grouping and merging.
type Options struct {
	YToleranceRatio float64
	MinYTolerance   float64
	MinCharWidth    float64
	MaxCharWidth    float64
}

// DefaultOptions returns the standard line building options.
func DefaultOptions() Options {
	return Options{
		YToleranceRatio: DefaultYToleranceRatio,
		MinYTolerance:   DefaultMinYTolerance,
		MinCharWidth:    DefaultMinCharWidth,
		MaxCharWidth:    DefaultMaxCharWidth,
	}
}

// withDefaults fills zero values from DefaultOptions
func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.YToleranceRatio <= 0 {
		o.YToleranceRatio = d.YToleranceRatio
	}
	if o.MinYTolerance <= 0 {
		o.MinYTolerance = d.MinYTolerance
	}
	if o.MinCharWidth <= 0 {
		o.MinCharWidth = d.MinCharWidth
	}
	if o.MaxCharWidth <= 0 || o.MaxCharWidth < o.MinCharWidth {
		o.MaxCharWidth = d.MaxCharWidth
	}
	return o
}

// GroupTextItemsIntoLines groups items into visual lines and merges adjacent items on each line.
//
// Items are sorted by (round(y), x). An item joins the current line when its y is within
// tolerance of the line's first item, where tolerance is YToleranceRatio times that item's
// height, never below MinYTolerance. Adjacent items whose horizontal gap is at most the
// typical character width are then merged.
func GroupTextItemsIntoLines(items []types.TextItem, opts Options) types.Lines {
	if len(items) == 0 {
		return types.Lines{}
	}
	opts = opts.withDefaults()

	sorted := make([]types.TextItem, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		yi, yj := math.Round(sorted[i].Y), math.Round(sorted[j].Y)
		if yi != yj {
			return yi < yj
		}
		return sorted[i].X < sorted[j].X
	})

	var lines types.Lines
	current := types.Line{sorted[0]}
	for _, item := range sorted[1:] {
		ref := current[0]
		tolerance := math.Max(ref.Height*opts.YToleranceRatio, opts.MinYTolerance)
		if math.Abs(item.Y-ref.Y) <= tolerance {
			current = append(current, item)
			continue
		}
		lines = append(lines, sortByX(current))
		current = types.Line{item}
	}
	lines = append(lines, sortByX(current))

	charWidth := TypicalCharWidth(lines.Items(), opts)

	merged := make(types.Lines, 0, len(lines))
	for _, line := range lines {
		merged = append(merged, mergeLine(line, charWidth))
	}
	return merged
}

// sortByX orders a line's items left to right
func sortByX(line types.Line) types.Line {
	sort.SliceStable(line, func(i, j int) bool {
		return line[i].X < line[j].X
	})
	return line
}

// mergeLine merges adjacent items whose gap is within charWidth
func mergeLine(line types.Line, charWidth float64) types.Line {
	out := make(types.Line, 0, len(line))
	acc := line[0]
	for _, next := range line[1:] {
		gap := next.X - acc.Right()
		if gap > charWidth {
			out = append(out, acc)
			acc = next
			continue
		}
		acc = mergeItems(acc, next, gap > charWidth*wordGapRatio)
	}
	return append(out, acc)
}

// mergeItems concatenates two items and unions their bounding boxes. The merged item keeps
// the left item's font.
func mergeItems(left, right types.TextItem, wordGap bool) types.TextItem {
	text := left.Text
	if ShouldInsertSpace(left.Text, right.Text) || (wordGap && !endsWithSpace(left.Text) && !startsWithSpace(right.Text)) {
		text += " "
	}
	text += right.Text

	x := math.Min(left.X, right.X)
	y := math.Min(left.Y, right.Y)
	return types.TextItem{
		Text:     text,
		X:        x,
		Y:        y,
		Width:    math.Max(left.Right(), right.Right()) - x,
		Height:   math.Max(left.Bottom(), right.Bottom()) - y,
		FontName: left.FontName,
		BoldFlag: left.BoldFlag,
	}
}

// ShouldInsertSpace reports whether a merge of left and right needs a separating space:
// the left text ends with punctuation or a bullet and the right does not start with a space,
// or the right text starts with a separator or bullet and the left does not end with a space.
func ShouldInsertSpace(left, right string) bool {
	if left == "" || right == "" {
		return false
	}
	leftEnd, _ := utf8.DecodeLastRuneInString(left)
	rightStart, _ := utf8.DecodeRuneInString(right)

	if isSeparatorEnd(left) && rightStart != ' ' {
		return true
	}
	if leftEnd != ' ' && (strings.HasPrefix(right, "|") || startsWithBullet(right)) {
		return true
	}
	return false
}

func isSeparatorEnd(text string) bool {
	for _, end := range spaceSensitiveEnds {
		if strings.HasSuffix(text, end) {
			return true
		}
	}
	return bullets.HasGlyphSuffix(text)
}

func startsWithBullet(text string) bool {
	return bullets.HasGlyphPrefix(text)
}

func endsWithSpace(text string) bool {
	r, _ := utf8.DecodeLastRuneInString(text)
	return unicode.IsSpace(r)
}

func startsWithSpace(text string) bool {
	r, _ := utf8.DecodeRuneInString(text)
	return unicode.IsSpace(r)
}
