// Package subsections splits a section's lines into per-entry groups such as one job or
// one degree.
package subsections

import (
	"math"
	"strings"

	"github.com/jonathan/resume-parser/internal/bullets"
	"github.com/jonathan/resume-parser/internal/types"
)

const (
	// DefaultGapRatio multiplies the typical line gap to get the split threshold
	DefaultGapRatio = 1.4
	// DefaultMinGap is the absolute floor for the split threshold
	DefaultMinGap = 8.0
)

// Options tunes subsection detection.
type Options struct {
	GapRatio float64
	MinGap   float64
}

// DefaultOptions returns the standard subsection options.
func DefaultOptions() Options {
	return Options{GapRatio: DefaultGapRatio, MinGap: DefaultMinGap}
}

func (o Options) withDefaults() Options {
	if o.GapRatio <= 0 {
		o.GapRatio = DefaultGapRatio
	}
	if o.MinGap <= 0 {
		o.MinGap = DefaultMinGap
	}
	return o
}

// startsSubsection decides whether line opens a new group given the previous non-empty line
type startsSubsection func(line, prev types.Line) bool

// Divide groups lines into subsections. A vertical gap well above the typical line gap
// starts a new subsection; when that yields a single group for several lines, a bold line
// following a non-bold line is used instead. Every group is non-empty and the groups
// concatenate back to lines.
func Divide(lines types.Lines, opts Options) []types.Lines {
	if len(lines) == 0 {
		return []types.Lines{}
	}
	opts = opts.withDefaults()

	groups := split(lines, byLineGap(lines, opts))
	if len(groups) == 1 && len(lines) > 1 {
		if boldGroups := split(lines, byBoldHeader); len(boldGroups) > 1 {
			return boldGroups
		}
	}
	return groups
}

// GapThreshold returns the vertical distance above which two consecutive lines belong to
// different subsections.
func GapThreshold(lines types.Lines, opts Options) float64 {
	opts = opts.withDefaults()
	typical := typicalLineGap(lines)
	return math.Max(typical*opts.GapRatio, opts.MinGap)
}

// typicalLineGap returns the most frequent positive gap between consecutive line tops,
// falling back to the average item height
func typicalLineGap(lines types.Lines) float64 {
	counts := make(map[int]int)
	best, bestCount := 0, 0
	prevY, havePrev := 0.0, false
	for _, line := range lines {
		if len(line) == 0 {
			continue
		}
		y := line.Y()
		if havePrev {
			gap := int(math.Abs(math.Ceil(y) - math.Ceil(prevY)))
			if gap > 0 {
				counts[gap]++
				if counts[gap] > bestCount {
					best, bestCount = gap, counts[gap]
				}
			}
		}
		prevY, havePrev = y, true
	}
	if best > 0 {
		return float64(best)
	}

	total, n := 0.0, 0
	for _, item := range lines.Items() {
		total += item.Height
		n++
	}
	if n == 0 {
		return 0
	}
	return math.Round(total / float64(n))
}

func byLineGap(lines types.Lines, opts Options) startsSubsection {
	threshold := GapThreshold(lines, opts)
	return func(line, prev types.Line) bool {
		return math.Round(line.Y()-prev.Y()) > threshold
	}
}

func byBoldHeader(line, prev types.Line) bool {
	first, prevFirst := line[0], prev[0]
	if !first.IsBold() || bullets.ContainsGlyph(first.Text) || bullets.IsDashLine(first.Text) {
		return false
	}
	return !prevFirst.IsBold() || isBulletText(prevFirst.Text)
}

func isBulletText(text string) bool {
	return bullets.ContainsGlyph(text) || bullets.IsDashLine(text) || strings.TrimSpace(text) == bullets.Dash
}

// split walks lines and starts a new group wherever starts fires. Empty lines stay in the
// current group and are skipped when looking back for the previous line.
func split(lines types.Lines, starts startsSubsection) []types.Lines {
	groups := []types.Lines{}
	current := types.Lines{}
	var prev types.Line

	for _, line := range lines {
		if len(line) > 0 && prev != nil && starts(line, prev) && len(current) > 0 {
			groups = append(groups, current)
			current = types.Lines{}
		}
		current = append(current, line)
		if len(line) > 0 {
			prev = line
		}
	}
	if len(current) > 0 {
		groups = append(groups, current)
	}
	return groups
}
