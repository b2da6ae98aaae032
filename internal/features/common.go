// Package features holds the text predicates and shared feature sets used by the field
// extractors.
package features

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/jonathan/resume-parser/internal/scoring"
	"github.com/jonathan/resume-parser/internal/types"
)

var (
	letterPattern = regexp.MustCompile(`[a-zA-Z]`)
	digitPattern  = regexp.MustCompile(`\d`)
)

// techKeywords are technology names that mark a line as a tech stack listing
var techKeywords = []string{
	"react", "node", "python", "java", "aws", "azure", "sql", "mongo", "docker", "api",
	"c#", ".net", "swift", "kotlin", "angular", "spring", "django", "flask", "express",
	"javascript", "typescript", "html", "css", "ruby", "php", "kubernetes", "terraform",
	"pandas", "numpy", "sklearn", "tensorflow", "pytorch", "three.js", "fastapi", "sqlalchemy",
	"golang", "postgresql", "redis", "graphql", "gcp",
}

// techSeparators are the list separators that, together with one tech keyword, indicate a stack
var techSeparators = []string{",", "/", "|", " & "}

// IsBold reports whether the item is set in a bold face.
func IsBold(item types.TextItem) bool {
	return item.IsBold()
}

// HasLetter reports whether the item contains an ASCII letter.
func HasLetter(item types.TextItem) bool {
	return letterPattern.MatchString(item.Text)
}

// HasNumber reports whether the item contains a digit.
func HasNumber(item types.TextItem) bool {
	return digitPattern.MatchString(item.Text)
}

// HasComma reports whether the item contains a comma.
func HasComma(item types.TextItem) bool {
	return strings.Contains(item.Text, ",")
}

// WordCount returns the number of whitespace-separated words in the item.
func WordCount(item types.TextItem) int {
	return len(strings.Fields(item.Text))
}

// MoreThanWords returns a predicate that holds for items with more than n words.
func MoreThanWords(n int) scoring.BoolPredicate {
	return func(item types.TextItem) bool { return WordCount(item) > n }
}

// HasLetterAndIsAllUpperCase reports whether the item has at least two letters, all upper case.
func HasLetterAndIsAllUpperCase(item types.TextItem) bool {
	letters := 0
	for _, r := range item.Text {
		if !unicode.IsLetter(r) {
			continue
		}
		if !unicode.IsUpper(r) {
			return false
		}
		letters++
	}
	return letters > 1
}

// IsLikelyTechStack reports whether the item reads like a list of technologies: two or
// more tech keywords, or one keyword alongside a list separator.
func IsLikelyTechStack(item types.TextItem) bool {
	text := strings.ToLower(item.Text)
	found := 0
	for _, tech := range techKeywords {
		if scoring.ContainsPhrase(text, tech) {
			found++
		}
	}
	if found >= 2 {
		return true
	}
	if found == 0 {
		return false
	}
	for _, sep := range techSeparators {
		if strings.Contains(text, sep) {
			return true
		}
	}
	return false
}

// Text builds a bool predicate that holds when the item contains value as a whole phrase.
// An empty value never matches.
func Text(value string) scoring.BoolPredicate {
	return func(item types.TextItem) bool {
		return scoring.ContainsPhrase(item.Text, value)
	}
}
