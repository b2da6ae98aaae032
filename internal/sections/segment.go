package sections

import (
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resume-parser/internal/types"
)

// Sections is the ordered list of sections found in a document. A category may appear
// more than once; lookups concatenate every entry with the same name.
type Sections []types.Section

// nestedHeadingSections hold entries whose bold headers often collide with section keywords
var nestedHeadingSections = map[string]bool{Projects: true, Experience: true}

// coreSections may always break out of a nested section when a line names them exactly.
// Other categories break out only when styled like the heading of the section they close.
var coreSections = map[string]bool{Education: true, Experience: true, Projects: true, Skills: true}

// entrySections are sections where an unknown bold heading is an entry header, not a new section
var entrySections = map[string]bool{Education: true, Experience: true, Projects: true}

// GroupLinesIntoSections splits lines into sections. Lines before the first heading belong
// to the profile section. Heading lines are kept on Section.Title, not in Section.Lines.
func GroupLinesIntoSections(lines types.Lines) Sections {
	result := Sections{}
	current := Profile
	var title types.Line
	buffer := types.Lines{}

	flush := func() {
		if len(buffer) == 0 && title == nil {
			return
		}
		result = append(result, types.Section{Name: current, Title: title, Lines: buffer})
	}

	for idx, line := range lines {
		next := detectSection(line, idx, current, title)
		if next == "" || next == current {
			buffer = append(buffer, line)
			continue
		}
		flush()
		current = next
		title = line
		buffer = types.Lines{}
	}
	flush()

	return result
}

// detectSection returns the section a line opens, or "" when the line is content
func detectSection(line types.Line, idx int, current string, currentTitle types.Line) string {
	text := line.Text()

	if IsSectionTitle(line, idx) {
		if category := FindCategory(text); category != "" {
			if !isSuppressed(current, category) {
				return category
			}
		} else if isAllCaps(text) && !entrySections[current] {
			return KeyFromTitle(text)
		}
	}

	if len(line) > 0 && len(line) <= maxTitleItems && utf8.RuneCountInString(text) < maxFallbackChars {
		category := FindExactCategory(text)
		if category != "" && isSuppressed(current, category) && !coreSections[category] &&
			!sameHeadingStyle(text, currentTitle) {
			return ""
		}
		return category
	}
	return ""
}

// isSuppressed reports whether a styled heading inside projects or experience is an entry
// header that merely contains a keyword of another category
func isSuppressed(current, category string) bool {
	return nestedHeadingSections[current] && category != current && category != Profile
}

// sameHeadingStyle reports whether text and title agree on being ALL-CAPS
func sameHeadingStyle(text string, title types.Line) bool {
	return title != nil && isAllCaps(text) == isAllCaps(title.Text())
}

// Names returns the distinct section names in order of first appearance.
func (s Sections) Names() []string {
	seen := make(map[string]bool)
	names := []string{}
	for _, section := range s {
		if !seen[section.Name] {
			seen[section.Name] = true
			names = append(names, section.Name)
		}
	}
	return names
}

// Lines returns the content lines of every section with the given name.
func (s Sections) Lines(name string) types.Lines {
	lines := types.Lines{}
	for _, section := range s {
		if section.Name == name {
			lines = append(lines, section.Lines...)
		}
	}
	return lines
}

// Has reports whether a section with the given name exists.
func (s Sections) Has(name string) bool {
	for _, section := range s {
		if section.Name == name {
			return true
		}
	}
	return false
}

// Find resolves a section by exact name first and then by the first section whose name
// contains one of keywords. It returns the section's lines and the resolved name, or an
// empty name when nothing matches.
func (s Sections) Find(name string, keywords ...string) (types.Lines, string) {
	if s.Has(name) {
		return s.Lines(name), name
	}
	for _, candidate := range s.Names() {
		lower := strings.ToLower(candidate)
		for _, keyword := range keywords {
			if strings.Contains(lower, strings.ToLower(keyword)) {
				return s.Lines(candidate), candidate
			}
		}
	}
	return types.Lines{}, ""
}

// AllLines returns every title and content line in emission order.
func (s Sections) AllLines() types.Lines {
	lines := types.Lines{}
	for _, section := range s {
		if section.Title != nil {
			lines = append(lines, section.Title)
		}
		lines = append(lines, section.Lines...)
	}
	return lines
}
