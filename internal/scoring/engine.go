package scoring

import (
	"sort"
	"strings"

	"github.com/jonathan/resume-parser/internal/types"
)

// Options controls how the winning candidate is chosen.
type Options struct {
	// AllowNonPositive returns the best candidate even when its score is zero or negative.
	AllowNonPositive bool
	// ConcatenateTies joins every top-scoring candidate with spaces instead of picking one.
	ConcatenateTies bool
}

// Compute scores every item against set. The result holds one entry per item, in input
// order, followed by one entry per distinct extracted submatch in order of first occurrence.
// It panics with *FeatureSetError when set is malformed.
func Compute(items []types.TextItem, set FeatureSet) []types.TextScore {
	if err := set.Validate(); err != nil {
		panic(err)
	}

	scores := make([]types.TextScore, len(items))
	for i, item := range items {
		scores[i] = types.TextScore{Text: item.Text}
	}

	var submatches []types.TextScore
	submatchIndex := make(map[string]int)

	for i, item := range items {
		for _, rule := range set {
			result := rule.evaluate(item)
			if !result.IsMatch() {
				continue
			}

			span, hasSpan := result.Span()
			if rule.ExtractSubmatch && hasSpan && span != item.Text {
				if idx, ok := submatchIndex[span]; ok {
					submatches[idx].Score += rule.Weight
					continue
				}
				submatchIndex[span] = len(submatches)
				submatches = append(submatches, types.TextScore{Text: span, Score: rule.Weight, Matched: true})
				continue
			}

			scores[i].Score += rule.Weight
			if rule.ExtractSubmatch {
				scores[i].Matched = true
			}
		}
	}

	return append(scores, submatches...)
}

// HighestScoring returns the text with the highest total score along with every computed
// score. Candidates produced by a submatch win over plain items at the same score. Ties
// are broken lexicographically. With default options, a best score of zero or less yields "".
func HighestScoring(items []types.TextItem, set FeatureSet, opts Options) (string, []types.TextScore) {
	scores := Compute(items, set)
	if len(scores) == 0 {
		return "", []types.TextScore{}
	}

	best := scores[0].Score
	for _, score := range scores[1:] {
		if score.Score > best {
			best = score.Score
		}
	}
	if best <= 0 && !opts.AllowNonPositive {
		return "", scores
	}

	var matched, unmatched []string
	for _, score := range scores {
		if score.Score != best {
			continue
		}
		if score.Matched {
			matched = append(matched, score.Text)
		} else {
			unmatched = append(unmatched, score.Text)
		}
	}

	candidates := unmatched
	if len(matched) > 0 {
		candidates = matched
	}
	candidates = dedupeSorted(candidates)
	if len(candidates) == 0 {
		return "", scores
	}

	if !opts.ConcatenateTies {
		return strings.TrimSpace(candidates[0]), scores
	}
	parts := make([]string, 0, len(candidates))
	for _, candidate := range candidates {
		parts = append(parts, strings.TrimSpace(candidate))
	}
	return strings.TrimSpace(strings.Join(parts, " ")), scores
}

func dedupeSorted(texts []string) []string {
	seen := make(map[string]bool, len(texts))
	out := make([]string, 0, len(texts))
	for _, text := range texts {
		if !seen[text] {
			seen[text] = true
			out = append(out, text)
		}
	}
	sort.Strings(out)
	return out
}
