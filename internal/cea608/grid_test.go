package cea608

import "testing"

func TestGridEmptyAndEqual(t *testing.T) {
	a := NewGrid()
	b := NewGrid()
	if !a.Empty() {
		t.Error("fresh grid should be empty")
	}
	if !a.Equal(b) {
		t.Error("two fresh grids should be equal")
	}

	a.SetCell(3, 7, 'x', DefaultStyle())
	if a.Empty() {
		t.Error("grid with a character is not empty")
	}
	if a.Equal(b) {
		t.Error("grids should differ after a write")
	}

	b.SetCell(3, 7, 'x', DefaultStyle())
	if !a.Equal(b) {
		t.Error("grids with identical cells should be equal")
	}

	// A styled character differs from the same rune unstyled.
	b.SetCell(3, 7, 'x', CharStyle{Color: ColorRed})
	if a.Equal(b) {
		t.Error("style differences should break equality")
	}
}

func TestGridCloneIsIndependent(t *testing.T) {
	a := NewGrid()
	a.SetCell(0, 0, 'a', DefaultStyle())
	clone := a.Clone()
	a.SetCell(0, 1, 'b', DefaultStyle())
	if clone.At(0, 1).Set {
		t.Error("mutating the original should not touch the clone")
	}
}

func TestGridOutOfRangeAccess(t *testing.T) {
	g := NewGrid()
	g.SetCell(-1, 0, 'x', DefaultStyle())
	g.SetCell(GridRows, 0, 'x', DefaultStyle())
	g.SetCell(0, GridCols, 'x', DefaultStyle())
	if !g.Empty() {
		t.Error("out-of-range writes should be dropped")
	}
	if g.At(99, 99).Set {
		t.Error("out-of-range reads should be empty")
	}
}

func TestColorByCode(t *testing.T) {
	if c, ok := ColorByCode(4); !ok || c != ColorRed {
		t.Errorf("ColorByCode(4) = %v, %v; want red", c, ok)
	}
	if _, ok := ColorByCode(7); ok {
		t.Error("code 7 is italics, not a color")
	}
	if _, ok := ColorByCode(-1); ok {
		t.Error("negative codes are invalid")
	}
	if ColorCyan.String() != "cyan" {
		t.Errorf("String() = %q, want cyan", ColorCyan.String())
	}
}
