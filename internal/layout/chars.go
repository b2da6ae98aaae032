package layout

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resume-parser/internal/types"
)

// TypicalCharWidth returns the average width per character of the document's dominant text,
// i.e. items sharing the most common height and the font covering the most characters.
// The result is clamped to [MinCharWidth, MaxCharWidth].
func TypicalCharWidth(items []types.TextItem, opts Options) float64 {
	opts = opts.withDefaults()

	var withText []types.TextItem
	for _, item := range items {
		if strings.TrimSpace(item.Text) != "" {
			withText = append(withText, item)
		}
	}
	if len(withText) == 0 {
		return DefaultCharWidth
	}

	heightCount := make(map[float64]int)
	var commonHeight float64
	heightMax := 0

	fontChars := make(map[string]int)
	var commonFont string
	fontMax := 0

	// first value to reach a new maximum wins, so ties resolve by input order
	for _, item := range withText {
		h := roundTo(item.Height, 2)
		heightCount[h]++
		if heightCount[h] > heightMax {
			heightMax = heightCount[h]
			commonHeight = h
		}

		fontChars[item.FontName] += utf8.RuneCountInString(item.Text)
		if fontChars[item.FontName] > fontMax {
			fontMax = fontChars[item.FontName]
			commonFont = item.FontName
		}
	}

	var common []types.TextItem
	for _, item := range withText {
		if item.FontName == commonFont && roundTo(item.Height, 2) == commonHeight {
			common = append(common, item)
		}
	}
	if len(common) == 0 {
		common = withText
	}

	var totalWidth float64
	totalChars := 0
	for _, item := range common {
		totalWidth += item.Width
		totalChars += utf8.RuneCountInString(item.Text)
	}
	if totalChars == 0 {
		return DefaultCharWidth
	}

	return clamp(totalWidth/float64(totalChars), opts.MinCharWidth, opts.MaxCharWidth)
}

func roundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}
