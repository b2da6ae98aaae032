package types

import "strings"

// Line is a sequence of TextItems on the same visual baseline, ordered left to right.
type Line []TextItem

// Lines is a top-to-bottom sequence of Line.
type Lines []Line

// Subsection is a contiguous run of a section's lines describing one entry.
type Subsection = Lines

// Text joins the line's item texts with single spaces.
func (l Line) Text() string {
	parts := make([]string, 0, len(l))
	for _, item := range l {
		parts = append(parts, item.Text)
	}
	return strings.TrimSpace(strings.Join(parts, " "))
}

// Y returns the reference y of the line (its first item), or 0 for an empty line.
func (l Line) Y() float64 {
	if len(l) == 0 {
		return 0
	}
	return l[0].Y
}

// Items flattens the lines into a single slice of items.
func (ls Lines) Items() []TextItem {
	var items []TextItem
	for _, line := range ls {
		items = append(items, line...)
	}
	return items
}

// Text returns the lines joined with newlines.
func (ls Lines) Text() string {
	out := make([]string, 0, len(ls))
	for _, line := range ls {
		out = append(out, line.Text())
	}
	return strings.Join(out, "\n")
}

// Section is a named group of lines. Title holds the heading line that opened the section;
// it is nil for the leading profile section.
type Section struct {
	Name  string `json:"name"`
	Title Line   `json:"title,omitempty"`
	Lines Lines  `json:"lines"`
}
