package sections

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jonathan/resume-parser/internal/types"
)

const (
	// headerLines is the number of leading document lines that are never section titles
	headerLines = 2
	// maxTitleItems caps the number of items a title line may hold
	maxTitleItems = 4
	// maxTitleCaseWords caps the word count of a Title-Case heading
	maxTitleCaseWords = 5
	minTitleChars     = 2
	maxTitleChars     = 50
	// maxFallbackChars caps the text of a line considered by the keyword fallback
	maxFallbackChars = 60
)

// deniedTitles are short all-caps tokens that look like headings but are not
var deniedTitles = map[string]bool{
	"GPA": true, "USA": true, "MS": true, "BS": true, "PHD": true,
	"FAQ": true, "DOB": true, "ID": true, "NO": true,
}

// minorWords may stay lower case inside a Title-Case heading
var minorWords = map[string]bool{
	"and": true, "of": true, "the": true, "in": true, "for": true, "to": true, "a": true, "an": true, "on": true, "at": true,
}

// IsSectionTitle reports whether a line looks like a section heading by style alone:
// every item is bold, the text is ALL-CAPS or a short Title-Case phrase, and it is not one
// of the first two lines of the document.
func IsSectionTitle(line types.Line, index int) bool {
	if index < headerLines || len(line) == 0 || len(line) > maxTitleItems {
		return false
	}
	for _, item := range line {
		if !item.IsBold() {
			return false
		}
	}

	text := line.Text()
	if !strings.ContainsFunc(text, unicode.IsLetter) {
		return false
	}
	if _, detail, found := strings.Cut(text, ":"); found && strings.TrimSpace(detail) != "" {
		return false
	}
	if !isAllCaps(text) && !(isTitleCase(text) && len(strings.Fields(text)) <= maxTitleCaseWords) {
		return false
	}

	compactLen := utf8.RuneCountInString(strings.ReplaceAll(text, " ", ""))
	if compactLen < minTitleChars || compactLen > maxTitleChars {
		return false
	}
	return !deniedTitles[strings.ToUpper(text)]
}

// isAllCaps reports whether text has at least two letters and no lower-case letter
func isAllCaps(text string) bool {
	letters := 0
	for _, r := range text {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsLetter(r) {
			letters++
		}
	}
	return letters >= 2
}

// isTitleCase reports whether every word starts upper case and continues lower case.
// Minor words such as "and" may be fully lower case after the first word.
func isTitleCase(text string) bool {
	words := strings.Fields(text)
	seen := 0
	for _, word := range words {
		letters := strings.Map(func(r rune) rune {
			if unicode.IsLetter(r) {
				return r
			}
			return -1
		}, word)
		if letters == "" {
			continue
		}
		if seen > 0 && minorWords[letters] {
			seen++
			continue
		}
		first, size := utf8.DecodeRuneInString(letters)
		if !unicode.IsUpper(first) {
			return false
		}
		for _, r := range letters[size:] {
			if unicode.IsUpper(r) {
				return false
			}
		}
		seen++
	}
	return seen > 0
}
