package scoring

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-parser/internal/types"
)

var gpaPattern = regexp.MustCompile(`[0-4]\.\d{1,2}`)

func items(texts ...string) []types.TextItem {
	out := make([]types.TextItem, 0, len(texts))
	for _, text := range texts {
		out = append(out, types.TextItem{Text: text})
	}
	return out
}

func contains(sub string) BoolPredicate {
	return func(item types.TextItem) bool { return strings.Contains(item.Text, sub) }
}

func matchGPA(item types.TextItem) PredicateResult {
	return FromRegexp(gpaPattern, item.Text)
}

func TestHighestScoring_ExtractsSubmatch(t *testing.T) {
	set := FeatureSet{Match("gpa", matchGPA, 4, true)}

	got, scores := HighestScoring(items("GPA: 4.0", "Dean's List"), set, Options{})

	assert.Equal(t, "4.0", got)
	require.Len(t, scores, 3)
	assert.Equal(t, types.TextScore{Text: "GPA: 4.0", Score: 0}, scores[0])
	assert.Equal(t, types.TextScore{Text: "4.0", Score: 4, Matched: true}, scores[2])
}

func TestHighestScoring_WholeItemMatchMarksItem(t *testing.T) {
	set := FeatureSet{Match("gpa", matchGPA, 4, true)}

	got, scores := HighestScoring(items("3.85"), set, Options{})

	assert.Equal(t, "3.85", got)
	require.Len(t, scores, 1)
	assert.True(t, scores[0].Matched)
}

func TestHighestScoring_SubmatchesAccumulate(t *testing.T) {
	set := FeatureSet{Match("gpa", matchGPA, 2, true)}

	_, scores := HighestScoring(items("GPA 3.9", "Cumulative 3.9", "Major 3.5"), set, Options{})

	require.Len(t, scores, 5)
	assert.Equal(t, types.TextScore{Text: "3.9", Score: 4, Matched: true}, scores[3])
	assert.Equal(t, types.TextScore{Text: "3.5", Score: 2, Matched: true}, scores[4])
}

func TestHighestScoring_MatchWithoutExtractScoresItem(t *testing.T) {
	set := FeatureSet{Match("gpa", matchGPA, 3, false)}

	got, scores := HighestScoring(items("GPA: 4.0"), set, Options{})

	assert.Equal(t, "GPA: 4.0", got)
	require.Len(t, scores, 1)
	assert.False(t, scores[0].Matched)
}

func TestHighestScoring_RejectsNonPositive(t *testing.T) {
	set := FeatureSet{
		Bool("acme", contains("Acme"), -2),
		Bool("never", func(types.TextItem) bool { return false }, 5),
	}

	got, scores := HighestScoring(items("Acme", "Globex"), set, Options{})
	assert.Equal(t, "", got)
	assert.Len(t, scores, 2)

	got, _ = HighestScoring(items("Acme", "Globex"), set, Options{AllowNonPositive: true})
	assert.Equal(t, "Globex", got)
}

func TestHighestScoring_PrefersMatchedAtTopScore(t *testing.T) {
	set := FeatureSet{
		Bool("long", func(item types.TextItem) bool { return len(item.Text) > 6 }, 4),
		Match("gpa", matchGPA, 4, true),
	}

	got, _ := HighestScoring(items("Honors List", "GPA 3.2"), set, Options{})

	assert.Equal(t, "3.2", got)
}

func TestHighestScoring_TiesAreLexicographic(t *testing.T) {
	set := FeatureSet{Bool("any", func(types.TextItem) bool { return true }, 1)}

	got, _ := HighestScoring(items("zeta", "alpha", "mid"), set, Options{})
	assert.Equal(t, "alpha", got)

	got, _ = HighestScoring(items("mid", "zeta", "alpha"), set, Options{})
	assert.Equal(t, "alpha", got, "order of items does not change the winner")
}

func TestHighestScoring_ConcatenatesTies(t *testing.T) {
	set := FeatureSet{Bool("any", func(types.TextItem) bool { return true }, 1)}

	got, _ := HighestScoring(items("second line", "first line "), set, Options{ConcatenateTies: true})

	assert.Equal(t, "first line second line", got)
}

func TestHighestScoring_DuplicateTextsCollapse(t *testing.T) {
	set := FeatureSet{Bool("any", func(types.TextItem) bool { return true }, 1)}

	got, _ := HighestScoring(items("same", "same"), set, Options{ConcatenateTies: true})

	assert.Equal(t, "same", got)
}

func TestHighestScoring_Empty(t *testing.T) {
	got, scores := HighestScoring(nil, FeatureSet{Bool("any", contains("x"), 1)}, Options{})
	assert.Equal(t, "", got)
	assert.NotNil(t, scores)
	assert.Empty(t, scores)
}

func TestHighestScoring_NotEqualTo(t *testing.T) {
	set := FeatureSet{
		Bool("any", func(types.TextItem) bool { return true }, 1),
		NotEqualTo("Jan 2020 - Present", -4),
	}

	got, _ := HighestScoring(items("Acme Corp", "jan 2020 - present"), set, Options{})

	assert.Equal(t, "Acme Corp", got)
}

func TestNotEqualTo_Matching(t *testing.T) {
	tests := []struct {
		name  string
		value string
		text  string
		want  bool
	}{
		{name: "exact", value: "Engineer", text: "Engineer", want: true},
		{name: "case insensitive", value: "Engineer", text: "senior ENGINEER", want: true},
		{name: "inside a word", value: "Eng", text: "Engineer", want: false},
		{name: "empty value", value: "", text: "anything", want: false},
		{name: "blank value", value: "  ", text: "anything", want: false},
		{name: "punctuation edge", value: "C++", text: "Go, C++, Rust", want: true},
		{name: "absent", value: "Globex", text: "Acme", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NotEqualTo(tt.value, -1).evaluate(types.TextItem{Text: tt.text})
			assert.Equal(t, tt.want, result.IsMatch())
		})
	}
}

func TestCompute_Monotonicity(t *testing.T) {
	base := FeatureSet{
		Bool("acme", contains("Acme"), 2),
		Bool("corp", contains("Corp"), 1),
	}
	extended := append(FeatureSet{}, base...)
	extended = append(extended, Bool("inc", contains("Inc"), 3))

	input := items("Acme Corp", "Globex Inc", "Initech")
	before := Compute(input, base)
	after := Compute(input, extended)

	require.Len(t, after, len(before))
	for i := range before {
		assert.GreaterOrEqual(t, after[i].Score, before[i].Score, before[i].Text)
	}
	assert.Equal(t, before[0].Score, after[0].Score, "unaffected item keeps its score")
}

func TestCompute_PanicsOnMalformedSet(t *testing.T) {
	tests := []struct {
		name string
		set  FeatureSet
	}{
		{name: "nil bool predicate", set: FeatureSet{{Kind: BoolRule, Name: "broken", Weight: 1}}},
		{name: "nil match predicate", set: FeatureSet{{Kind: MatchRule, Name: "broken", Weight: 1}}},
		{name: "extract on bool", set: FeatureSet{{Kind: BoolRule, Name: "broken", Test: contains("x"), ExtractSubmatch: true}}},
		{name: "unknown kind", set: FeatureSet{{Kind: Kind(42), Name: "broken"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				recovered := recover()
				require.NotNil(t, recovered)
				var fsErr *FeatureSetError
				require.ErrorAs(t, recovered.(error), &fsErr)
				assert.Equal(t, "broken", fsErr.Rule)
			}()
			Compute(items("x"), tt.set)
		})
	}
}

func TestFeatureSet_ValidateAcceptsWellFormed(t *testing.T) {
	set := FeatureSet{
		Bool("bold", func(item types.TextItem) bool { return item.IsBold() }, 2),
		Match("gpa", matchGPA, 4, true),
		NotEqualTo("Acme", -4),
	}
	assert.NoError(t, set.Validate())
}
