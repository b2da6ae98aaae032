package features

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/jonathan/resume-parser/internal/scoring"
	"github.com/jonathan/resume-parser/internal/types"
)

const (
	minPhoneDigits   = 7
	minSummaryWords  = 5
	maxNameWords     = 4
	minSingleNameLen = 4
)

var (
	namePattern       = regexp.MustCompile(`^[a-zA-Z\s.'-]+$`)
	singleNamePattern = regexp.MustCompile(`^[a-zA-Z'-]+$`)
	emailPattern      = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,7}\b`)
	phonePattern      = regexp.MustCompile(`\(?\+?\d{1,3}\)?[\s.-]?\(?\d{2,5}\)?[\s.-]?\d{2,5}[\s.-]?\d{2,5}(?:[\s.-]?(?:ext|x)?\.?\s*\d{1,5})?`)

	cityRegionPattern = regexp.MustCompile(`\b[A-Z][a-zA-Z\s.-]+,\s*(?:[A-Z]{2}|[A-Za-z\s]+)\b`)
	placePattern      = regexp.MustCompile(`^[A-Z][a-zA-Z\s.-]+$`)

	linkedInPattern = regexp.MustCompile(`(?i)linkedin\.com/(?:in|pub)/[\w%/.-]+/?`)
	gitHubPattern   = regexp.MustCompile(`(?i)(?:github\.com/|github/|[\w-]+\.github\.io/?)[\w%/.-]*`)
	imageExtPattern = regexp.MustCompile(`(?i)\.(?:png|jpe?g|svg)`)
	otherURLPattern = regexp.MustCompile(`(?i)(?:https?://|www\.)?[\w.-]+\.[a-z]{2,}(?:/\S*)?`)
)

// MatchName finds a person's name: two to four capitalized words, or one prominent word
// that is bold or upper case.
func MatchName(item types.TextItem) scoring.PredicateResult {
	text := strings.TrimSpace(item.Text)
	words := strings.Fields(text)

	if len(words) > 1 && len(words) <= maxNameWords && namePattern.MatchString(text) {
		for _, word := range words {
			if !unicode.IsUpper(rune(word[0])) {
				return scoring.NoMatch()
			}
		}
		return scoring.MatchedSpan(text)
	}
	if len(words) == 1 && len(text) >= minSingleNameLen && (item.IsBold() || strings.ToUpper(text) == text) &&
		singleNamePattern.MatchString(text) {
		return scoring.MatchedSpan(text)
	}
	return scoring.NoMatch()
}

// MatchEmail finds an email address.
func MatchEmail(item types.TextItem) scoring.PredicateResult {
	return scoring.FromRegexp(emailPattern, item.Text)
}

// MatchPhone finds a phone number with at least seven digits.
func MatchPhone(item types.TextItem) scoring.PredicateResult {
	for _, loc := range phonePattern.FindAllStringIndex(item.Text, -1) {
		span := item.Text[loc[0]:loc[1]]
		if countDigits(span) >= minPhoneDigits {
			return scoring.MatchedSpan(strings.TrimSpace(span))
		}
	}
	return scoring.NoMatch()
}

func countDigits(text string) int {
	n := 0
	for _, r := range text {
		if unicode.IsDigit(r) {
			n++
		}
	}
	return n
}

// MatchLocation finds a place such as "Austin, TX" or a short capitalized city or country,
// skipping lines that hold school, degree, year, email or profile links.
func MatchLocation(item types.TextItem) scoring.PredicateResult {
	text := strings.TrimSpace(item.Text)
	if text == "" || HasDegree(item) || HasSchool(item) || HasYear(item) {
		return scoring.NoMatch()
	}
	lower := strings.ToLower(text)
	if strings.Contains(text, "@") || strings.Contains(lower, "linkedin.com") || strings.Contains(lower, "github") {
		return scoring.NoMatch()
	}
	if result := scoring.FromRegexp(cityRegionPattern, text); result.IsMatch() {
		return result
	}
	if !strings.Contains(text, ",") && len(strings.Fields(text)) <= 3 && !strings.ContainsFunc(text, unicode.IsDigit) {
		return scoring.FromRegexp(placePattern, text)
	}
	return scoring.NoMatch()
}

// MatchLinkedInURL finds a LinkedIn profile link.
func MatchLinkedInURL(item types.TextItem) scoring.PredicateResult {
	return scoring.FromRegexp(linkedInPattern, item.Text)
}

// MatchGitHubURL finds a GitHub profile or pages link that does not point at an image.
func MatchGitHubURL(item types.TextItem) scoring.PredicateResult {
	loc := gitHubPattern.FindStringIndex(item.Text)
	if loc == nil || imageExtPattern.MatchString(item.Text[loc[0]:]) {
		return scoring.NoMatch()
	}
	return scoring.MatchedSpan(item.Text[loc[0]:loc[1]])
}

// MatchOtherURL finds any other web address, ignoring emails and LinkedIn or GitHub links.
func MatchOtherURL(item types.TextItem) scoring.PredicateResult {
	lower := strings.ToLower(item.Text)
	if strings.Contains(lower, "@") || strings.Contains(lower, "linkedin.com") || strings.Contains(lower, "github") {
		return scoring.NoMatch()
	}
	return scoring.FromRegexp(otherURLPattern, item.Text)
}

// IsSummaryCandidate reports whether the item is a sentence of at least five words that is
// none of the other profile fields.
func IsSummaryCandidate(item types.TextItem) bool {
	if WordCount(item) < minSummaryWords {
		return false
	}
	for _, match := range []scoring.MatchPredicate{MatchName, MatchEmail, MatchPhone, MatchLocation, MatchLinkedInURL, MatchGitHubURL} {
		if match(item).IsMatch() {
			return false
		}
	}
	return !HasDegree(item) && !HasSchool(item)
}

// NameFeatureSet scores candidates for the person's name.
var NameFeatureSet = scoring.FeatureSet{
	scoring.Match("name", MatchName, 5, true),
	scoring.Bool("bold", IsBold, 2),
}

// EmailFeatureSet scores candidates for the email address.
var EmailFeatureSet = scoring.FeatureSet{scoring.Match("email", MatchEmail, 5, true)}

// PhoneFeatureSet scores candidates for the phone number.
var PhoneFeatureSet = scoring.FeatureSet{scoring.Match("phone", MatchPhone, 5, true)}

// LocationFeatureSet scores candidates for the location, penalizing the already extracted name.
func LocationFeatureSet(name string) scoring.FeatureSet {
	return scoring.FeatureSet{
		scoring.Match("location", MatchLocation, 4, true),
		scoring.NotEqualTo(name, -4),
	}
}

// URLFeatureSet scores candidates for profile links, LinkedIn first.
var URLFeatureSet = scoring.FeatureSet{
	scoring.Match("linkedin", MatchLinkedInURL, 6, true),
	scoring.Match("github", MatchGitHubURL, 5, true),
	scoring.Match("other_url", MatchOtherURL, 3, true),
}

// SummaryFeatureSet scores candidate summary sentences.
var SummaryFeatureSet = scoring.FeatureSet{
	scoring.Bool("summary", IsSummaryCandidate, 3),
	scoring.Bool("degree", HasDegree, -5),
	scoring.Bool("school", HasSchool, -5),
	scoring.Bool("tech_stack", IsLikelyTechStack, -4),
	scoring.Bool("year", HasYear, -3),
}
