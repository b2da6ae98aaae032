// Package scoring picks the best candidate text for a resume field by summing weighted
// feature rules over text items.
package scoring

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-parser/internal/types"
)

// Kind distinguishes the rule variants understood by the engine.
type Kind int

const (
	// BoolRule adds its weight to the item when its predicate holds.
	BoolRule Kind = iota
	// MatchRule adds its weight to the item, or to the matched span when ExtractSubmatch is set.
	MatchRule
	// NotEqualToRule adds its weight to items that contain a previously extracted value.
	NotEqualToRule
)

func (k Kind) String() string {
	switch k {
	case BoolRule:
		return "bool"
	case MatchRule:
		return "match"
	case NotEqualToRule:
		return "not_equal_to"
	default:
		return "unknown"
	}
}

// PredicateResult is the outcome of evaluating a match predicate against one item.
// The zero value is NoMatch.
type PredicateResult struct {
	matched bool
	span    string
	hasSpan bool
}

// NoMatch reports that the predicate did not fire.
func NoMatch() PredicateResult { return PredicateResult{} }

// Matched reports a match covering the whole item.
func Matched() PredicateResult { return PredicateResult{matched: true} }

// MatchedSpan reports a match of the given substring of the item text.
func MatchedSpan(span string) PredicateResult {
	return PredicateResult{matched: true, span: span, hasSpan: true}
}

// FromRegexp runs re against text and wraps the leftmost match.
func FromRegexp(re *regexp.Regexp, text string) PredicateResult {
	loc := re.FindStringIndex(text)
	if loc == nil {
		return NoMatch()
	}
	return MatchedSpan(text[loc[0]:loc[1]])
}

// IsMatch reports whether the predicate fired.
func (r PredicateResult) IsMatch() bool { return r.matched }

// Span returns the matched substring and whether the match carried one.
func (r PredicateResult) Span() (string, bool) { return r.span, r.hasSpan }

// BoolPredicate tests a condition on an item.
type BoolPredicate func(types.TextItem) bool

// MatchPredicate finds a pattern in an item.
type MatchPredicate func(types.TextItem) PredicateResult

// Rule is one weighted feature of a FeatureSet.
type Rule struct {
	Kind            Kind
	Name            string
	Test            BoolPredicate
	Match           MatchPredicate
	Weight          int
	ExtractSubmatch bool
	// Value is the text compared by NotEqualToRule.
	Value string
}

// Bool builds a BoolRule.
func Bool(name string, test BoolPredicate, weight int) Rule {
	return Rule{Kind: BoolRule, Name: name, Test: test, Weight: weight}
}

// Match builds a MatchRule. With extract set, a match narrower than the item text is
// scored as its own candidate.
func Match(name string, match MatchPredicate, weight int, extract bool) Rule {
	return Rule{Kind: MatchRule, Name: name, Match: match, Weight: weight, ExtractSubmatch: extract}
}

// NotEqualTo builds a rule that fires for items containing value as a whole phrase,
// ignoring case. An empty value never fires.
func NotEqualTo(value string, weight int) Rule {
	return Rule{Kind: NotEqualToRule, Name: "not_equal_to:" + value, Weight: weight, Value: value}
}

// FeatureSet is an ordered list of rules scored together for one field.
type FeatureSet []Rule

// Validate checks that every rule is well formed.
func (fs FeatureSet) Validate() error {
	for i, rule := range fs {
		switch rule.Kind {
		case BoolRule:
			if rule.Test == nil {
				return &FeatureSetError{Index: i, Rule: rule.Name, Message: "bool rule has no predicate"}
			}
			if rule.ExtractSubmatch {
				return &FeatureSetError{Index: i, Rule: rule.Name, Message: "bool rule cannot extract a submatch"}
			}
		case MatchRule:
			if rule.Match == nil {
				return &FeatureSetError{Index: i, Rule: rule.Name, Message: "match rule has no predicate"}
			}
		case NotEqualToRule:
			if rule.ExtractSubmatch {
				return &FeatureSetError{Index: i, Rule: rule.Name, Message: "not-equal-to rule cannot extract a submatch"}
			}
		default:
			return &FeatureSetError{Index: i, Rule: rule.Name, Message: "unknown rule kind " + rule.Kind.String()}
		}
	}
	return nil
}

// evaluate runs the rule against an item
func (r Rule) evaluate(item types.TextItem) PredicateResult {
	switch r.Kind {
	case BoolRule:
		if r.Test(item) {
			return Matched()
		}
	case MatchRule:
		return r.Match(item)
	case NotEqualToRule:
		if ContainsPhrase(item.Text, r.Value) {
			return Matched()
		}
	}
	return NoMatch()
}

// ContainsPhrase reports whether text contains phrase, case-insensitively, bounded by
// non-word characters on both sides
func ContainsPhrase(text, phrase string) bool {
	phrase = strings.TrimSpace(phrase)
	if phrase == "" {
		return false
	}
	lowerText := strings.ToLower(text)
	lowerPhrase := strings.ToLower(phrase)
	for start := 0; start <= len(lowerText); {
		idx := strings.Index(lowerText[start:], lowerPhrase)
		if idx < 0 {
			return false
		}
		begin := start + idx
		end := begin + len(lowerPhrase)
		if boundaryBefore(lowerText, begin, lowerPhrase) && boundaryAfter(lowerText, end, lowerPhrase) {
			return true
		}
		start = begin + 1
	}
	return false
}

func boundaryBefore(text string, at int, phrase string) bool {
	if at == 0 || !isWordByte(phrase[0]) {
		return true
	}
	return !isWordByte(text[at-1])
}

func boundaryAfter(text string, at int, phrase string) bool {
	if at == len(text) || !isWordByte(phrase[len(phrase)-1]) {
		return true
	}
	return !isWordByte(text[at])
}

func isWordByte(b byte) bool {
	return b == '_' || ('0' <= b && b <= '9') || ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z') || b >= 0x80
}
