package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-parser/internal/types"
)

func item(text string, x, y, width, height float64) types.TextItem {
	return types.TextItem{Text: text, X: x, Y: y, Width: width, Height: height, FontName: "Helvetica"}
}

func TestGroupTextItemsIntoLines_Empty(t *testing.T) {
	lines := GroupTextItemsIntoLines(nil, DefaultOptions())
	assert.NotNil(t, lines)
	assert.Empty(t, lines)
}

func TestGroupTextItemsIntoLines_NameAndEmail(t *testing.T) {
	items := []types.TextItem{
		{Text: "JOHN SMITH", X: 50, Y: 40, Width: 100, Height: 14, FontName: "ABCDEF+Helvetica-Bold"},
		{Text: "Email: john@x.com", X: 50, Y: 60, Width: 85, Height: 10, FontName: "Helvetica"},
	}

	lines := GroupTextItemsIntoLines(items, DefaultOptions())

	require.Len(t, lines, 2)
	assert.Equal(t, "JOHN SMITH", lines[0].Text())
	assert.True(t, lines[0][0].IsBold())
	assert.Equal(t, "Email: john@x.com", lines[1].Text())
}

func TestGroupTextItemsIntoLines_YTolerance(t *testing.T) {
	tests := []struct {
		name      string
		items     []types.TextItem
		wantLines int
	}{
		{
			name:      "within ratio of height",
			items:     []types.TextItem{item("Acme", 0, 100, 20, 10), item("2020", 300, 104, 20, 10)},
			wantLines: 1,
		},
		{
			name:      "beyond ratio of height",
			items:     []types.TextItem{item("Acme", 0, 100, 20, 10), item("2020", 300, 106, 20, 10)},
			wantLines: 2,
		},
		{
			name:      "tiny items fall back to absolute minimum",
			items:     []types.TextItem{item("a", 0, 100, 1, 1), item("b", 300, 101.5, 1, 1)},
			wantLines: 1,
		},
		{
			name:      "reference is the first item of the line",
			items:     []types.TextItem{item("a", 0, 100, 5, 10), item("b", 100, 104, 5, 10), item("c", 200, 108, 5, 10)},
			wantLines: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := GroupTextItemsIntoLines(tt.items, DefaultOptions())
			assert.Len(t, lines, tt.wantLines)
		})
	}
}

func TestGroupTextItemsIntoLines_SortsReadingOrder(t *testing.T) {
	items := []types.TextItem{
		item("second", 0, 200, 30, 10),
		item("right", 300, 100, 25, 10),
		item("left", 0, 100, 20, 10),
	}

	lines := GroupTextItemsIntoLines(items, DefaultOptions())

	require.Len(t, lines, 2)
	require.Len(t, lines[0], 2)
	assert.Equal(t, "left", lines[0][0].Text)
	assert.Equal(t, "right", lines[0][1].Text)
	assert.Equal(t, "second", lines[1][0].Text)
}

func TestGroupTextItemsIntoLines_MergesAdjacentItems(t *testing.T) {
	tests := []struct {
		name  string
		items []types.TextItem
		want  []string
	}{
		{
			name:  "touching items join without space",
			items: []types.TextItem{item("Hello", 0, 100, 25, 10), item("World", 25, 100, 25, 10)},
			want:  []string{"HelloWorld"},
		},
		{
			name:  "word gap inserts a space",
			items: []types.TextItem{item("Hello", 0, 100, 25, 10), item("World", 27, 100, 25, 10)},
			want:  []string{"Hello World"},
		},
		{
			name:  "punctuation inserts a space",
			items: []types.TextItem{item("Email:", 0, 100, 30, 10), item("a@b.io", 30, 100, 30, 10)},
			want:  []string{"Email: a@b.io"},
		},
		{
			name:  "distant items stay separate",
			items: []types.TextItem{item("Google", 0, 100, 30, 10), item("2020", 300, 100, 20, 10)},
			want:  []string{"Google", "2020"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := GroupTextItemsIntoLines(tt.items, DefaultOptions())
			require.Len(t, lines, 1)
			var got []string
			for _, it := range lines[0] {
				got = append(got, it.Text)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGroupTextItemsIntoLines_MergeUnionsBoundingBox(t *testing.T) {
	items := []types.TextItem{
		item("Hello", 10, 100, 25, 10),
		item("World", 37, 101, 25, 12),
	}

	lines := GroupTextItemsIntoLines(items, DefaultOptions())

	require.Len(t, lines, 1)
	require.Len(t, lines[0], 1)
	merged := lines[0][0]
	assert.Equal(t, 10.0, merged.X)
	assert.Equal(t, 100.0, merged.Y)
	assert.Equal(t, 52.0, merged.Width)
	assert.Equal(t, 13.0, merged.Height)
	assert.Equal(t, "Helvetica", merged.FontName)
}

func TestGroupTextItemsIntoLines_Deterministic(t *testing.T) {
	items := []types.TextItem{
		item("c", 100, 50, 5, 10),
		item("a", 0, 50, 5, 10),
		item("b", 0, 10, 5, 10),
		item("d", 0, 50.4, 5, 10),
	}

	first := GroupTextItemsIntoLines(items, DefaultOptions())
	second := GroupTextItemsIntoLines(items, DefaultOptions())

	assert.Equal(t, first, second)
}

func TestGroupTextItemsIntoLines_DoesNotMutateInput(t *testing.T) {
	items := []types.TextItem{item("b", 0, 20, 5, 10), item("a", 0, 10, 5, 10)}
	GroupTextItemsIntoLines(items, DefaultOptions())
	assert.Equal(t, "b", items[0].Text)
}

func TestShouldInsertSpace(t *testing.T) {
	tests := []struct {
		name  string
		left  string
		right string
		want  bool
	}{
		{name: "colon", left: "Email:", right: "john", want: true},
		{name: "comma", left: "Austin,", right: "TX", want: true},
		{name: "pipe on right", left: "a", right: "| b", want: true},
		{name: "bullet on left", left: "•", right: "Built", want: true},
		{name: "bullet on right", left: "Skills", right: "•Go", want: true},
		{name: "right already spaced", left: "a:", right: " b", want: false},
		{name: "left already spaced", left: "a ", right: "|", want: false},
		{name: "plain letters", left: "abc", right: "def", want: false},
		{name: "empty", left: "", right: "x", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ShouldInsertSpace(tt.left, tt.right))
		})
	}
}

func TestTypicalCharWidth(t *testing.T) {
	tests := []struct {
		name  string
		items []types.TextItem
		want  float64
	}{
		{name: "no items", items: nil, want: DefaultCharWidth},
		{name: "blank items only", items: []types.TextItem{item("  ", 0, 0, 10, 10)}, want: DefaultCharWidth},
		{name: "average width", items: []types.TextItem{item("abcd", 0, 0, 24, 10), item("ef", 0, 20, 12, 10)}, want: 6},
		{name: "clamped high", items: []types.TextItem{item("ab", 0, 0, 100, 10)}, want: DefaultMaxCharWidth},
		{name: "clamped low", items: []types.TextItem{item("abcd", 0, 0, 2, 10)}, want: DefaultMinCharWidth},
		{
			name: "dominant height and font only",
			items: []types.TextItem{
				item("body", 0, 0, 20, 10),
				item("text", 0, 20, 20, 10),
				{Text: "HEADER", Width: 120, Height: 20, FontName: "Helvetica-Bold"},
			},
			want: 5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, TypicalCharWidth(tt.items, DefaultOptions()), 1e-9)
		})
	}
}
