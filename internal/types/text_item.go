// Package types provides type definitions for structured data used throughout the resume-parser system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "strings"

// boldFontMarkers are substrings of a normalized font name that indicate a heavy weight
var boldFontMarkers = []string{"bold", "black", "heavy", "demi", "semibold"}

// TextItem is one positioned text fragment produced by a text-extraction adapter.
// Coordinates use a top-left origin with y increasing downward.
type TextItem struct {
	Text     string  `json:"text"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	FontName string  `json:"font_name"`

	// BoldFlag is set by adapters that know the font weight directly (DOCX, HTML, TXT).
	BoldFlag bool `json:"bold,omitempty"`
}

// NormalizeFontName strips a PDF subset prefix such as "ABCDEF+" from a font name.
func NormalizeFontName(fontName string) string {
	if idx := strings.Index(fontName, "+"); idx >= 0 {
		return fontName[idx+1:]
	}
	return fontName
}

// IsBoldFontName reports whether a font name denotes a bold face.
func IsBoldFontName(fontName string) bool {
	normalized := strings.ToLower(NormalizeFontName(fontName))
	for _, marker := range boldFontMarkers {
		if strings.Contains(normalized, marker) {
			return true
		}
	}
	return false
}

// IsBold reports whether the item is rendered in a bold face.
func (t TextItem) IsBold() bool {
	return t.BoldFlag || IsBoldFontName(t.FontName)
}

// Right returns the x coordinate of the item's right edge.
func (t TextItem) Right() float64 {
	return t.X + t.Width
}

// Bottom returns the y coordinate of the item's bottom edge.
func (t TextItem) Bottom() float64 {
	return t.Y + t.Height
}
