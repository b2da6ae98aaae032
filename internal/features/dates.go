package features

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-parser/internal/scoring"
	"github.com/jonathan/resume-parser/internal/types"
)

const (
	monthNames   = `January|February|March|April|May|June|July|August|September|October|November|December|Jan|Feb|Mar|Apr|Jun|Jul|Aug|Sept|Sep|Oct|Nov|Dec`
	yearPattern  = `(?:19\d{2}|20\d{2})`
	presentWords = `(?:Present|Current|Ongoing|Now)`
	rangeSep     = `\s*(?:[-–—]+|to)\s*`
)

var (
	monthPattern   = regexp.MustCompile(`(?i)\b(?:` + monthNames + `)\b`)
	yearOnly       = regexp.MustCompile(`\b` + yearPattern + `\b`)
	presentPattern = regexp.MustCompile(`(?i)\b` + presentWords + `\b`)
	seasonPattern  = regexp.MustCompile(`(?i)\b(?:Spring|Summer|Fall|Autumn|Winter)\b`)
	bareYear       = regexp.MustCompile(`^\d{4}$`)

	// dateRangePatterns are tried in order, most specific first
	dateRangePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(?:` + monthNames + `)\.?\s+` + yearPattern + rangeSep +
			`(?:(?:` + monthNames + `)\.?\s+` + yearPattern + `|` + presentWords + `)\b`),
		regexp.MustCompile(`(?i)\b` + yearPattern + rangeSep + `(?:` + yearPattern + `|` + presentWords + `)\b`),
		regexp.MustCompile(`(?i)\b(?:(?:` + monthNames + `)\.?\s+)?` + yearPattern + `\b`),
	}

	organizationSuffix = regexp.MustCompile(`(?i)\b(?:Inc\.?|LLC|Ltd\.?|Corp\.?|Corporation|University|College|Institute|Foundation|Group|Technologies|Solutions|Labs?)\b`)
)

// HasMonth reports whether the item names a month, in full or abbreviated.
func HasMonth(item types.TextItem) bool {
	return monthPattern.MatchString(item.Text)
}

// HasYear reports whether the item holds a year between 1900 and 2099.
func HasYear(item types.TextItem) bool {
	return yearOnly.MatchString(item.Text)
}

// HasPresent reports whether the item says a period is ongoing.
func HasPresent(item types.TextItem) bool {
	return presentPattern.MatchString(item.Text)
}

// HasSeason reports whether the item names a season, as in "Fall 2023".
func HasSeason(item types.TextItem) bool {
	return seasonPattern.MatchString(item.Text)
}

// IsBareYear reports whether the item is exactly four digits.
func IsBareYear(item types.TextItem) bool {
	return bareYear.MatchString(strings.TrimSpace(item.Text))
}

// MatchDateRange finds a month-year range, a year range, or a single (month) year.
func MatchDateRange(item types.TextItem) scoring.PredicateResult {
	for _, pattern := range dateRangePatterns {
		if result := scoring.FromRegexp(pattern, item.Text); result.IsMatch() {
			return result
		}
	}
	return scoring.NoMatch()
}

// IsLikelyOrganizationName reports whether the item reads like a company or school name
// rather than a date: it carries a corporate suffix, or it is a short capitalized phrase
// with no date in it.
func IsLikelyOrganizationName(item types.TextItem) bool {
	text := strings.TrimSpace(item.Text)
	if text == "" {
		return false
	}
	if organizationSuffix.MatchString(text) {
		return true
	}
	words := len(strings.Fields(text))
	first := text[0]
	return first >= 'A' && first <= 'Z' && words > 1 && words < 6 &&
		!MatchDateRange(item).IsMatch() && !HasMonth(item)
}

// DateFeatureSet scores candidates for a job or project date.
var DateFeatureSet = scoring.FeatureSet{
	scoring.Match("date_range", MatchDateRange, 5, true),
	scoring.Bool("present", HasPresent, 3),
	scoring.Bool("month", HasMonth, 2),
	scoring.Bool("year", HasYear, 2),
	scoring.Bool("bare_year", IsBareYear, 1),
	scoring.Bool("organization", IsLikelyOrganizationName, -4),
	scoring.Bool("tech_stack", IsLikelyTechStack, -4),
	scoring.Bool("long_text", MoreThanWords(7), -3),
	scoring.Bool("many_commas", func(item types.TextItem) bool { return strings.Count(item.Text, ",") > 1 }, -2),
}
