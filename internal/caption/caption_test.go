package caption

import (
	"errors"
	"testing"

	"popon/internal/cea608"
)

func TestNewPositionRange(t *testing.T) {
	if _, err := NewPosition(0.5, 0.5); err != nil {
		t.Fatalf("NewPosition(0.5, 0.5): %v", err)
	}
	bad := [][2]float64{{-0.1, 0.5}, {1.1, 0.5}, {0.5, -0.1}, {0.5, 1.1}}
	for _, coords := range bad {
		if _, err := NewPosition(coords[0], coords[1]); !errors.Is(err, ErrRange) {
			t.Errorf("NewPosition(%v, %v): expected ErrRange, got %v", coords[0], coords[1], err)
		}
	}
}

func TestPositionAccessors(t *testing.T) {
	pos, err := NewPosition(0.25, 0.75)
	if err != nil {
		t.Fatalf("NewPosition: %v", err)
	}
	x, y, ok := pos.Coords()
	if !ok || x != 0.25 || y != 0.75 {
		t.Errorf("Coords() = %v, %v, %v", x, y, ok)
	}
	if pos.IsTop() || pos.IsBottom() {
		t.Error("coordinate position should not be symbolic")
	}
	if !PositionTop.IsTop() || !PositionBottom.IsBottom() {
		t.Error("symbolic positions misreport")
	}
	if _, _, ok := PositionTop.Coords(); ok {
		t.Error("symbolic position should have no coordinates")
	}
}

func TestNodeEqual(t *testing.T) {
	a := NewRoot(NewColor(cea608.ColorRed, NewText("hi")))
	b := NewRoot(NewColor(cea608.ColorRed, NewText("hi")))
	if !a.Equal(b) {
		t.Error("structurally identical trees should be equal")
	}

	c := NewRoot(NewColor(cea608.ColorGreen, NewText("hi")))
	if a.Equal(c) {
		t.Error("trees differing in hue should not be equal")
	}

	d := NewRoot(NewItalics(NewText("hi")))
	if a.Equal(d) {
		t.Error("trees differing in kind should not be equal")
	}

	e := NewRoot(NewColor(cea608.ColorRed, NewText("hi"), NewText("!")))
	if a.Equal(e) {
		t.Error("trees differing in child count should not be equal")
	}
}

func TestNodeFlatten(t *testing.T) {
	tree := NewRoot(
		NewText("a"),
		NewItalics(NewText("b"), NewUnderline(NewText("c"))),
		NewFlash(NewText("d")),
	)
	if got := tree.Flatten(); got != "abcd" {
		t.Errorf("Flatten() = %q, want %q", got, "abcd")
	}
}
