package cea608

// Grid dimensions fixed by CEA-608: 15 caption rows of 32 columns.
const (
	GridRows = 15
	GridCols = 32
)

// Cell is one grid position. Set distinguishes a real character from an empty
// cell; an empty cell is not a space, and the distinction drives chunk
// detection downstream.
type Cell struct {
	Rune  rune
	Style CharStyle
	Set   bool
}

// Grid is a fixed 15x32 character matrix. The decoder owns two of them and
// swaps them on end-of-caption rather than copying.
type Grid struct {
	cells [GridRows][GridCols]Cell
}

// NewGrid returns an all-empty grid.
func NewGrid() *Grid {
	return &Grid{}
}

// At returns the cell at the given position. Out-of-range positions read as
// empty.
func (g *Grid) At(row, col int) Cell {
	if row < 0 || row >= GridRows || col < 0 || col >= GridCols {
		return Cell{}
	}
	return g.cells[row][col]
}

// SetCell writes a character at the given position. Out-of-range writes are
// dropped; the cursor is clamped before calling, so they indicate nothing to
// do rather than a fault.
func (g *Grid) SetCell(row, col int, r rune, style CharStyle) {
	if row < 0 || row >= GridRows || col < 0 || col >= GridCols {
		return
	}
	g.cells[row][col] = Cell{Rune: r, Style: style, Set: true}
}

// ClearCell marks the cell empty.
func (g *Grid) ClearCell(row, col int) {
	if row < 0 || row >= GridRows || col < 0 || col >= GridCols {
		return
	}
	g.cells[row][col] = Cell{}
}

// ClearToRowEnd empties every cell from col through the end of the row.
func (g *Grid) ClearToRowEnd(row, col int) {
	if row < 0 || row >= GridRows {
		return
	}
	if col < 0 {
		col = 0
	}
	for c := col; c < GridCols; c++ {
		g.cells[row][c] = Cell{}
	}
}

// Empty reports whether no cell holds a character.
func (g *Grid) Empty() bool {
	for row := range g.cells {
		for col := range g.cells[row] {
			if g.cells[row][col].Set {
				return false
			}
		}
	}
	return true
}

// Equal reports structural equality of two grids.
func (g *Grid) Equal(other *Grid) bool {
	if g == nil || other == nil {
		return g == other
	}
	return g.cells == other.cells
}

// Clone returns an independent copy, used when a snapshot must survive
// further decoder mutation.
func (g *Grid) Clone() *Grid {
	clone := *g
	return &clone
}
