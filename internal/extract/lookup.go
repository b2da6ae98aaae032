// Package extract turns sectioned resume lines into structured profile, education, work,
// project, skills and custom entries.
package extract

import (
	"strings"

	"github.com/jonathan/resume-parser/internal/bullets"
	"github.com/jonathan/resume-parser/internal/sections"
	"github.com/jonathan/resume-parser/internal/subsections"
	"github.com/jonathan/resume-parser/internal/types"
)

// Options tunes the extractors.
type Options struct {
	Subsections subsections.Options
}

// DefaultOptions returns the standard extractor options.
func DefaultOptions() Options {
	return Options{Subsections: subsections.DefaultOptions()}
}

// EducationLines returns the lines of the education section and its resolved name.
func EducationLines(secs sections.Sections) (types.Lines, string) {
	return secs.Find(sections.Education, "education", "academic")
}

// WorkLines returns the lines of the work experience section and its resolved name.
func WorkLines(secs sections.Sections) (types.Lines, string) {
	return secs.Find(sections.Experience, "work", "experience", "employment", "history", "job", "career")
}

// ProjectLines returns the lines of the projects section and its resolved name.
func ProjectLines(secs sections.Sections) (types.Lines, string) {
	return secs.Find(sections.Projects, "project", "portfolio")
}

// SkillLines returns the lines of the skills section and its resolved name.
func SkillLines(secs sections.Sections) (types.Lines, string) {
	return secs.Find(sections.Skills, "skill", "technologies", "competencies")
}

// headerItems flattens the first n lines of a subsection
func headerItems(lines types.Lines, n int) []types.TextItem {
	if n > len(lines) {
		n = len(lines)
	}
	if n <= 0 {
		return []types.TextItem{}
	}
	return lines[:n].Items()
}

// descriptionsFrom extracts descriptions from lines[start:], or none when start is past the end
func descriptionsFrom(lines types.Lines, start int) []string {
	if start < 0 {
		start = 0
	}
	if start >= len(lines) {
		return []string{}
	}
	return bullets.Extract(lines[start:])
}

// withoutCoreFields drops descriptions that repeat an already extracted field
func withoutCoreFields(descriptions []string, fields ...string) []string {
	core := make(map[string]bool, len(fields))
	for _, field := range fields {
		if trimmed := strings.TrimSpace(field); trimmed != "" {
			core[trimmed] = true
		}
	}
	out := make([]string, 0, len(descriptions))
	for _, desc := range descriptions {
		trimmed := strings.TrimSpace(desc)
		if trimmed != "" && !core[trimmed] {
			out = append(out, desc)
		}
	}
	return out
}
