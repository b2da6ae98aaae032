package subsections

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-parser/internal/types"
)

func lineAt(y float64, text string, bold bool) types.Line {
	return types.Line{{Text: text, X: 40, Y: y, Width: 100, Height: 10, BoldFlag: bold}}
}

func flatten(groups []types.Lines) types.Lines {
	out := types.Lines{}
	for _, group := range groups {
		out = append(out, group...)
	}
	return out
}

func TestDivide_SplitsOnLargeGap(t *testing.T) {
	lines := types.Lines{
		lineAt(100, "Acme Corp", false),
		lineAt(112, "Engineer", false),
		lineAt(124, "Built things", false),
		lineAt(160, "Globex", false),
	}

	got := Divide(lines, DefaultOptions())

	require.Len(t, got, 2)
	assert.Len(t, got[0], 3)
	assert.Equal(t, "Globex", got[1][0].Text())
	assert.Equal(t, lines, flatten(got))
}

func TestGapThreshold(t *testing.T) {
	lines := types.Lines{
		lineAt(100, "a", false),
		lineAt(112, "b", false),
		lineAt(124, "c", false),
		lineAt(160, "d", false),
	}
	assert.InDelta(t, 16.8, GapThreshold(lines, DefaultOptions()), 0.001)

	single := types.Lines{lineAt(100, "a", false)}
	assert.InDelta(t, 14.0, GapThreshold(single, DefaultOptions()), 0.001, "falls back to item height")

	tight := types.Lines{lineAt(100, "a", false), lineAt(103, "b", false)}
	assert.InDelta(t, DefaultMinGap, GapThreshold(tight, DefaultOptions()), 0.001, "floor applies")
}

func TestDivide_EvenSpacingIsOneSubsection(t *testing.T) {
	lines := types.Lines{
		lineAt(100, "one", false),
		lineAt(114, "two", false),
		lineAt(128, "three", false),
	}

	got := Divide(lines, DefaultOptions())

	require.Len(t, got, 1)
	assert.Equal(t, lines, got[0])
}

func TestDivide_BoldFallback(t *testing.T) {
	lines := types.Lines{
		lineAt(100, "Acme Corp", true),
		lineAt(114, "• Built services", false),
		lineAt(128, "Globex", true),
		lineAt(142, "• Ran migrations", false),
	}

	got := Divide(lines, DefaultOptions())

	require.Len(t, got, 2)
	assert.Equal(t, "Acme Corp", got[0][0].Text())
	assert.Equal(t, "Globex", got[1][0].Text())
	assert.Equal(t, lines, flatten(got))
}

func TestDivide_BoldAfterBoldDoesNotSplit(t *testing.T) {
	lines := types.Lines{
		lineAt(100, "Acme Corp", true),
		lineAt(114, "Senior Engineer", true),
		lineAt(128, "Built services", false),
	}

	got := Divide(lines, DefaultOptions())

	require.Len(t, got, 1)
}

func TestDivide_BoldBulletLineDoesNotSplit(t *testing.T) {
	lines := types.Lines{
		lineAt(100, "Acme Corp", false),
		lineAt(114, "• Led the team", true),
	}

	got := Divide(lines, DefaultOptions())

	require.Len(t, got, 1)
}

func TestDivide_Empty(t *testing.T) {
	got := Divide(nil, DefaultOptions())
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestDivide_SingleLine(t *testing.T) {
	lines := types.Lines{lineAt(100, "only", true)}
	got := Divide(lines, Options{})
	require.Len(t, got, 1)
	assert.Equal(t, lines, got[0])
}

func TestDivide_PartitionInvariant(t *testing.T) {
	tests := []struct {
		name  string
		lines types.Lines
	}{
		{
			name: "mixed gaps",
			lines: types.Lines{
				lineAt(10, "a", true), lineAt(22, "b", false), lineAt(60, "c", true),
				lineAt(72, "d", false), lineAt(84, "e", false), lineAt(140, "f", true),
			},
		},
		{
			name: "with empty line",
			lines: types.Lines{
				lineAt(10, "a", false), {}, lineAt(50, "b", false), lineAt(62, "c", false),
			},
		},
		{
			name: "unsorted y",
			lines: types.Lines{
				lineAt(100, "a", false), lineAt(50, "b", false), lineAt(200, "c", false),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Divide(tt.lines, DefaultOptions())
			assert.Equal(t, tt.lines, flatten(got))
			for _, group := range got {
				assert.NotEmpty(t, group)
			}
		})
	}
}
