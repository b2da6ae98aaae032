// Package bullets splits description blocks into discrete description strings.
package bullets

import (
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jonathan/resume-parser/internal/types"
)

// glyphs is the catalog of bullet characters recognized anywhere in a line
var glyphs = []string{"⋅", "∙", "🞄", "•", "⦁", "⚫︎", "●", "⬤", "⚬", "○"}

// Glyphs returns a copy of the bullet glyph catalog.
func Glyphs() []string {
	return slices.Clone(glyphs)
}

// Dash is the bullet recognized only at the start of a line when followed by a space.
const Dash = "-"

const (
	// shortLineChars is the average line length under which bullet-less lines are
	// treated as separate descriptions
	shortLineChars = 60
	// proseWordCount is the word count that marks a single-item line as prose
	proseWordCount = 8
)

// IsDashLine reports whether text starts with a "- " dash bullet.
func IsDashLine(text string) bool {
	trimmed := strings.TrimSpace(text)
	return len(trimmed) > 2 && strings.HasPrefix(trimmed, Dash+" ")
}

// ContainsGlyph reports whether text contains any catalog bullet glyph.
func ContainsGlyph(text string) bool {
	for _, glyph := range glyphs {
		if strings.Contains(text, glyph) {
			return true
		}
	}
	return false
}

// HasGlyphPrefix reports whether text starts with a catalog bullet glyph.
func HasGlyphPrefix(text string) bool {
	for _, glyph := range glyphs {
		if strings.HasPrefix(text, glyph) {
			return true
		}
	}
	return false
}

// HasGlyphSuffix reports whether text ends with a catalog bullet glyph.
func HasGlyphSuffix(text string) bool {
	for _, glyph := range glyphs {
		if strings.HasSuffix(text, glyph) {
			return true
		}
	}
	return false
}

// LineHasBullet reports whether a line carries a bullet glyph or starts with a dash bullet.
func LineHasBullet(line types.Line) bool {
	for _, item := range line {
		if ContainsGlyph(item.Text) {
			return true
		}
	}
	return IsDashLine(line.Text())
}

// FirstBulletLineIndex returns the index of the first line carrying a bullet, or -1.
func FirstBulletLineIndex(lines types.Lines) int {
	for i, line := range lines {
		if LineHasBullet(line) {
			return i
		}
	}
	return -1
}

// DescriptionsStartIndex returns where descriptions begin inside a subsection: the first
// bullet line, else the first single-item line holding at least eight words. It returns -1
// when neither is found.
func DescriptionsStartIndex(lines types.Lines) int {
	if idx := FirstBulletLineIndex(lines); idx >= 0 {
		return idx
	}
	for i, line := range lines {
		if len(line) == 1 && countWords(line[0].Text) >= proseWordCount {
			return i
		}
	}
	return -1
}

// countWords counts whitespace-separated tokens that contain no digits
func countWords(text string) int {
	n := 0
	for _, field := range strings.Fields(text) {
		if !strings.ContainsFunc(field, unicode.IsDigit) {
			n++
		}
	}
	return n
}

// MostCommonBullet returns the bullet that occurs most often in lines: a catalog glyph
// (counted per occurrence) or Dash (counted per line). It returns "" when lines carry no bullet.
func MostCommonBullet(lines types.Lines) string {
	text := joinItems(lines)
	best := ""
	bestCount := 0
	for _, glyph := range glyphs {
		if count := strings.Count(text, glyph); count > bestCount {
			best, bestCount = glyph, count
		}
	}

	dashCount := 0
	for _, line := range lines {
		if IsDashLine(line.Text()) {
			dashCount++
		}
	}
	if dashCount > bestCount {
		best = Dash
	}
	return best
}

// Extract splits lines into description strings. Every returned string is non-empty.
//
// With a bullet present the block is split on the most common bullet and text before the
// first bullet is dropped. Without bullets, many short lines become one description each and
// anything else becomes a single paragraph.
func Extract(lines types.Lines) []string {
	descriptions := []string{}
	if len(lines) == 0 {
		return descriptions
	}

	switch bullet := MostCommonBullet(lines); bullet {
	case "":
		return plainDescriptions(lines)
	case Dash:
		return dashDescriptions(lines)
	default:
		text := joinItems(lines)
		if idx := strings.Index(text, bullet); idx >= 0 {
			text = text[idx:]
		}
		for _, part := range strings.Split(text, bullet) {
			if desc := collapseSpaces(part); desc != "" {
				descriptions = append(descriptions, desc)
			}
		}
		return descriptions
	}
}

// plainDescriptions handles blocks without any bullet
func plainDescriptions(lines types.Lines) []string {
	texts := make([]string, 0, len(lines))
	totalChars := 0
	for _, line := range lines {
		if text := collapseSpaces(line.Text()); text != "" {
			texts = append(texts, text)
			totalChars += utf8.RuneCountInString(text)
		}
	}
	if len(texts) <= 1 {
		return texts
	}
	if totalChars/len(texts) < shortLineChars {
		return texts
	}
	return []string{strings.Join(texts, " ")}
}

// dashDescriptions starts a description at every "- " line and appends continuation lines to it
func dashDescriptions(lines types.Lines) []string {
	descriptions := []string{}
	var current []string
	flush := func() {
		if desc := collapseSpaces(strings.Join(current, " ")); desc != "" {
			descriptions = append(descriptions, desc)
		}
		current = nil
	}

	started := false
	for _, line := range lines {
		text := strings.TrimSpace(line.Text())
		if IsDashLine(text) {
			if started {
				flush()
			}
			started = true
			current = append(current, strings.TrimPrefix(text, Dash))
			continue
		}
		if started {
			current = append(current, text)
		}
	}
	if started {
		flush()
	}
	return descriptions
}

// joinItems concatenates all item texts of lines, separating items with single spaces
func joinItems(lines types.Lines) string {
	var sb strings.Builder
	last := ""
	for _, item := range lines.Items() {
		if item.Text == "" {
			continue
		}
		if last != "" && !strings.HasSuffix(last, " ") && !strings.HasPrefix(item.Text, " ") {
			sb.WriteString(" ")
		}
		sb.WriteString(item.Text)
		last = item.Text
	}
	return strings.TrimSpace(sb.String())
}

func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
