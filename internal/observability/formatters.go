// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jonathan/resume-parser/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// truncate shortens s to at most n runes, marking the cut with "...".
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-3]) + "..."
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintLines dumps grouped lines with the y of each line and its item texts separated by " | ".
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintLines(lines types.Lines) {
	fmt.Fprintf(p.out, "%d lines\n", len(lines))
	for i, line := range lines {
		parts := make([]string, 0, len(line))
		for _, item := range line {
			text := item.Text
			if item.IsBold() {
				text = "*" + text + "*"
			}
			parts = append(parts, text)
		}
		fmt.Fprintf(p.out, "%4d  y=%-7.1f %s\n", i, line.Y(), strings.Join(parts, " | "))
	}
}

// PrintSections dumps each section name followed by its lines.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintSections(sections []types.Section) {
	for _, section := range sections {
		fmt.Fprintf(p.out, "== %s (%d lines)\n", section.Name, len(section.Lines))
		for _, line := range section.Lines {
			fmt.Fprintf(p.out, "   %s\n", line.Text())
		}
	}
}

// PrintSubsections dumps the subsections of one section, numbered from 1.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintSubsections(name string, subsections []types.Subsection) {
	fmt.Fprintf(p.out, "== %s (%d subsections)\n", name, len(subsections))
	for i, subsection := range subsections {
		fmt.Fprintf(p.out, "-- #%d\n", i+1)
		for _, line := range subsection {
			fmt.Fprintf(p.out, "   %s\n", line.Text())
		}
	}
}

// PrintResume outputs a human-readable summary of a parsed resume.
func (p *Printer) PrintResume(resume *types.Resume) {
	if resume == nil {
		return
	}

	var sb strings.Builder
	profile := resume.Profile
	sb.WriteString(fmt.Sprintf("Name:     %s\n", profile.Name))
	sb.WriteString(fmt.Sprintf("Email:    %s\n", profile.Email))
	sb.WriteString(fmt.Sprintf("Phone:    %s\n", profile.Phone))
	sb.WriteString(fmt.Sprintf("Location: %s\n", profile.Location))
	sb.WriteString(fmt.Sprintf("URL:      %s\n", profile.URL))
	sb.WriteString("\n")

	if len(resume.Educations) > 0 {
		sb.WriteString("Education:\n")
		writeEntries(&sb, len(resume.Educations), func(i int) string {
			e := resume.Educations[i]
			return joinNonEmpty(e.School, e.Degree, e.Date)
		})
		sb.WriteString("\n")
	}

	if len(resume.WorkExperiences) > 0 {
		sb.WriteString("Work Experience:\n")
		writeEntries(&sb, len(resume.WorkExperiences), func(i int) string {
			w := resume.WorkExperiences[i]
			return joinNonEmpty(w.Company, w.JobTitle, w.Date)
		})
		sb.WriteString("\n")
	}

	if len(resume.Projects) > 0 {
		sb.WriteString("Projects:\n")
		writeEntries(&sb, len(resume.Projects), func(i int) string {
			pr := resume.Projects[i]
			return joinNonEmpty(pr.Project, pr.Date)
		})
		sb.WriteString("\n")
	}

	if len(resume.Skills.Descriptions) > 0 {
		sb.WriteString(fmt.Sprintf("Skills:   %d lines\n", len(resume.Skills.Descriptions)))
	}

	if len(resume.Custom) > 0 {
		names := make([]string, 0, len(resume.Custom))
		for name := range resume.Custom {
			names = append(names, name)
		}
		sort.Strings(names)
		sb.WriteString(fmt.Sprintf("Other:    %s\n", strings.Join(names, ", ")))
	}

	p.printBox("PARSED RESUME", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintScores outputs the top candidates of every scored profile field.
func (p *Printer) PrintScores(scores *types.DebugScores) {
	if scores == nil {
		return
	}

	var sb strings.Builder
	fields := make([]string, 0, len(scores.Profile))
	for field := range scores.Profile {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	for _, field := range fields {
		sb.WriteString(fmt.Sprintf("%s:\n", field))
		candidates := scores.Profile[field]
		count := min(len(candidates), 3)
		for i := 0; i < count; i++ {
			c := candidates[i]
			marker := " "
			if c.Matched {
				marker = "✓"
			}
			sb.WriteString(fmt.Sprintf("  %s %3d  %s\n", marker, c.Score, truncate(c.Text, 40)))
		}
	}
	sb.WriteString(fmt.Sprintf("\nScored entries: %d education, %d work, %d projects",
		len(scores.Educations), len(scores.WorkExperiences), len(scores.Projects)))

	p.printBox("PROFILE FIELD SCORES", sb.String())
}

func writeEntries(sb *strings.Builder, n int, label func(i int) string) {
	count := min(n, maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", label(i)))
	}
	if n > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", n-maxItemsToShow))
	}
}

func joinNonEmpty(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, part := range parts {
		if part != "" {
			kept = append(kept, part)
		}
	}
	return strings.Join(kept, " / ")
}
