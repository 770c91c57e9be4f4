package transform

import (
	"testing"

	"popon/internal/caption"
	"popon/internal/cea608"
)

func styledCells(text string, styles []cea608.CharStyle) []cea608.Cell {
	runes := []rune(text)
	cells := make([]cea608.Cell, len(runes))
	for i, r := range runes {
		cells[i] = cea608.Cell{Rune: r, Style: styles[i], Set: true}
	}
	return cells
}

func plainCells(text string) []cea608.Cell {
	styles := make([]cea608.CharStyle, len([]rune(text)))
	for i := range styles {
		styles[i] = cea608.DefaultStyle()
	}
	return styledCells(text, styles)
}

func TestBuildTreePlainText(t *testing.T) {
	tree, err := buildTree(plainCells("Test"))
	if err != nil {
		t.Fatalf("buildTree: %v", err)
	}
	want := caption.NewRoot(caption.NewText("Test"))
	if !tree.Equal(want) {
		t.Errorf("tree = %+v, want Root(Text(Test))", tree)
	}
}

func TestBuildTreeSingleColorSpan(t *testing.T) {
	red := cea608.CharStyle{Color: cea608.ColorRed}
	cells := styledCells("AB", []cea608.CharStyle{cea608.DefaultStyle(), red})
	tree, err := buildTree(cells)
	if err != nil {
		t.Fatalf("buildTree: %v", err)
	}
	want := caption.NewRoot(
		caption.NewText("A"),
		caption.NewColor(cea608.ColorRed, caption.NewText("B")),
	)
	if !tree.Equal(want) {
		t.Errorf("tree mismatch: got %+v", tree)
	}
}

func TestBuildTreeLongerRunNestsOuter(t *testing.T) {
	// Underline covers both characters, color only the first: underline
	// must be the outer node so the span is not split.
	ulRed := cea608.CharStyle{Color: cea608.ColorRed, Underline: true}
	ul := cea608.CharStyle{Underline: true}
	tree, err := buildTree(styledCells("AB", []cea608.CharStyle{ulRed, ul}))
	if err != nil {
		t.Fatalf("buildTree: %v", err)
	}
	want := caption.NewRoot(
		caption.NewUnderline(
			caption.NewColor(cea608.ColorRed, caption.NewText("A")),
			caption.NewText("B"),
		),
	)
	if !tree.Equal(want) {
		t.Errorf("tree mismatch: got %+v", tree)
	}
}

func TestBuildTreeColorChangeInsideUnderline(t *testing.T) {
	ul := cea608.CharStyle{Underline: true}
	ulRed := cea608.CharStyle{Color: cea608.ColorRed, Underline: true}
	tree, err := buildTree(styledCells("ABC", []cea608.CharStyle{ul, ulRed, ul}))
	if err != nil {
		t.Fatalf("buildTree: %v", err)
	}
	want := caption.NewRoot(
		caption.NewUnderline(
			caption.NewText("A"),
			caption.NewColor(cea608.ColorRed, caption.NewText("B")),
			caption.NewText("C"),
		),
	)
	if !tree.Equal(want) {
		t.Errorf("tree mismatch: got %+v", tree)
	}
}

func TestBuildTreeReopensInnocentNode(t *testing.T) {
	// Underline closes while color is still in effect: the color node gets
	// popped with it and must reopen under the root.
	ul := cea608.CharStyle{Underline: true}
	ulRed := cea608.CharStyle{Color: cea608.ColorRed, Underline: true}
	red := cea608.CharStyle{Color: cea608.ColorRed}
	tree, err := buildTree(styledCells("ABC", []cea608.CharStyle{ul, ulRed, red}))
	if err != nil {
		t.Fatalf("buildTree: %v", err)
	}
	want := caption.NewRoot(
		caption.NewUnderline(
			caption.NewText("A"),
			caption.NewColor(cea608.ColorRed, caption.NewText("B")),
		),
		caption.NewColor(cea608.ColorRed, caption.NewText("C")),
	)
	if !tree.Equal(want) {
		t.Errorf("tree mismatch: got %+v", tree)
	}
}

func TestBuildTreeDeterministic(t *testing.T) {
	styles := []cea608.CharStyle{
		{Color: cea608.ColorRed, Italics: true, Underline: true},
		{Color: cea608.ColorRed, Italics: true},
		{Color: cea608.ColorGreen, Flash: true},
		{},
		{Color: cea608.ColorGreen, Flash: true},
	}
	first, err := buildTree(styledCells("abcde", styles))
	if err != nil {
		t.Fatalf("buildTree: %v", err)
	}
	second, err := buildTree(styledCells("abcde", styles))
	if err != nil {
		t.Fatalf("buildTree: %v", err)
	}
	if !first.Equal(second) {
		t.Error("identical style sequences must produce identical trees")
	}
}

func TestBuildTreeFlattenLaw(t *testing.T) {
	inputs := [][]cea608.CharStyle{
		{{}, {Italics: true}, {Italics: true, Flash: true}, {}},
		{{Color: cea608.ColorCyan}, {Color: cea608.ColorCyan, Underline: true}, {}},
	}
	for _, styles := range inputs {
		text := "wxyz"[:len(styles)]
		tree, err := buildTree(styledCells(text, styles))
		if err != nil {
			t.Fatalf("buildTree: %v", err)
		}
		if got := tree.Flatten(); got != text {
			t.Errorf("Flatten() = %q, want %q", got, text)
		}
	}
}
