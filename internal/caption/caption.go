// Package caption holds the shared caption model: a tree of styled text
// nodes plus timing, screen position, and alignment. The transform package
// produces it; filtering and serialization consume it.
package caption

import (
	"errors"
	"fmt"

	"popon/internal/timecode"
)

// ErrRange marks a position coordinate outside [0,1]. The transformer always
// derives positions from valid grid coordinates, so hitting this indicates a
// programming fault, not bad input.
var ErrRange = errors.New("caption: position coordinate out of range")

// Alignment is the horizontal text alignment of a cue.
type Alignment int

const (
	AlignStart Alignment = iota
	AlignMiddle
	AlignEnd
)

func (a Alignment) String() string {
	switch a {
	case AlignMiddle:
		return "middle"
	case AlignEnd:
		return "end"
	default:
		return "start"
	}
}

type positionKind int

const (
	positionCoords positionKind = iota
	positionTop
	positionBottom
)

// Position is either a normalized (x, y) screen coordinate pair or one of
// the symbolic top/bottom buckets the filter rewrites fine positions into.
type Position struct {
	kind positionKind
	x, y float64
}

// Symbolic screen buckets.
var (
	PositionTop    = Position{kind: positionTop}
	PositionBottom = Position{kind: positionBottom}
)

// NewPosition builds a coordinate position. Both coordinates must lie in
// [0,1].
func NewPosition(x, y float64) (Position, error) {
	if x < 0 || x > 1 || y < 0 || y > 1 {
		return Position{}, fmt.Errorf("%w: (%v, %v)", ErrRange, x, y)
	}
	return Position{kind: positionCoords, x: x, y: y}, nil
}

// Coords returns the normalized coordinates; ok is false for symbolic
// positions.
func (p Position) Coords() (x, y float64, ok bool) {
	if p.kind != positionCoords {
		return 0, 0, false
	}
	return p.x, p.y, true
}

// IsTop reports whether the position is the symbolic top bucket.
func (p Position) IsTop() bool { return p.kind == positionTop }

// IsBottom reports whether the position is the symbolic bottom bucket.
func (p Position) IsBottom() bool { return p.kind == positionBottom }

func (p Position) String() string {
	switch p.kind {
	case positionTop:
		return "top"
	case positionBottom:
		return "bottom"
	default:
		return fmt.Sprintf("(%.3f, %.3f)", p.x, p.y)
	}
}

// Caption is one timed, positioned cue. Start is strictly before End.
type Caption struct {
	Start    timecode.Timecode
	End      timecode.Timecode
	Position Position
	Align    Alignment
	Content  *Node
}
