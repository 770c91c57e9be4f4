package transform

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"popon/internal/caption"
	"popon/internal/cea608"
)

// ErrInvariant reports a logic fault in the tree builder: a style property
// scheduled for closing and reopening in the same step. Valid style
// sequences cannot produce it; if it fires, the builder itself is wrong.
var ErrInvariant = errors.New("transform: close and reopen sets overlap")

// prop identifies one style property. The order of the constants is the
// fixed priority order, highest first, used to break run-length ties.
type prop int

const (
	propColor prop = iota
	propUnderline
	propItalics
	propFlash
)

var allProps = []prop{propColor, propUnderline, propItalics, propFlash}

// propEqual reports whether styles a and b agree on property p.
func propEqual(a, b cea608.CharStyle, p prop) bool {
	switch p {
	case propColor:
		return a.Color == b.Color
	case propUnderline:
		return a.Underline == b.Underline
	case propItalics:
		return a.Italics == b.Italics
	case propFlash:
		return a.Flash == b.Flash
	default:
		return true
	}
}

// nodeProp maps a container node back to the property it scopes. Root and
// text nodes scope nothing.
func nodeProp(n *caption.Node) (prop, bool) {
	switch n.Kind {
	case caption.KindColor:
		return propColor, true
	case caption.KindUnderline:
		return propUnderline, true
	case caption.KindItalics:
		return propItalics, true
	case caption.KindFlash:
		return propFlash, true
	default:
		return 0, false
	}
}

// newStyleNode builds the container node that scopes property p with the
// style's current value.
func newStyleNode(p prop, style cea608.CharStyle) *caption.Node {
	switch p {
	case propColor:
		return caption.NewColor(style.Color)
	case propUnderline:
		return caption.NewUnderline()
	case propItalics:
		return caption.NewItalics()
	default:
		return caption.NewFlash()
	}
}

// buildTree folds a chunk's characters into a minimal style tree.
//
// The stack holds the currently open containers, root at the bottom. When a
// character's style departs from the previous one, nodes are closed down to
// the shallowest affected container; innocent bystanders popped along the
// way are reopened. New containers open outermost-first for the longest
// upcoming run, which keeps long-lived properties on the outside and makes
// the result deterministic.
func buildTree(cells []cea608.Cell) (*caption.Node, error) {
	root := caption.NewRoot()
	stack := []*caption.Node{root}
	var buf strings.Builder
	prev := cea608.DefaultStyle()
	def := cea608.DefaultStyle()

	for i, cell := range cells {
		style := cell.Style

		diffs := map[prop]bool{}
		for _, p := range allProps {
			if !propEqual(style, prev, p) {
				diffs[p] = true
			}
		}

		if len(diffs) > 0 {
			if buf.Len() > 0 {
				top := stack[len(stack)-1]
				top.Append(caption.NewText(buf.String()))
				buf.Reset()
			}

			toClose := map[prop]bool{}
			for p := range diffs {
				if !propEqual(prev, def, p) {
					toClose[p] = true
				}
			}

			if len(toClose) > 0 {
				cut := 0
				for idx := 1; idx < len(stack); idx++ {
					if p, ok := nodeProp(stack[idx]); ok && toClose[p] {
						cut = idx
						break
					}
				}
				if cut > 0 {
					popped := stack[cut:]
					stack = stack[:cut]
					for _, n := range popped {
						p, ok := nodeProp(n)
						if !ok {
							continue
						}
						if toClose[p] {
							continue
						}
						if diffs[p] {
							return nil, fmt.Errorf("%w: property %d", ErrInvariant, p)
						}
						// Reopen: the property still holds its value, it was
						// only popped because it nested inside a closing node.
						diffs[p] = true
					}
				}
			}

			var toOpen []prop
			for p := range diffs {
				if !propEqual(style, def, p) {
					toOpen = append(toOpen, p)
				}
			}
			// The property holding its value longest opens first and ends
			// up outermost; ties fall back to the fixed priority order.
			sort.Slice(toOpen, func(a, b int) bool {
				ra := runLength(cells, i, toOpen[a])
				rb := runLength(cells, i, toOpen[b])
				if ra != rb {
					return ra > rb
				}
				return toOpen[a] < toOpen[b]
			})
			for _, p := range toOpen {
				node := newStyleNode(p, style)
				top := stack[len(stack)-1]
				top.Append(node)
				stack = append(stack, node)
			}
		}

		buf.WriteRune(cell.Rune)
		prev = style
	}

	if buf.Len() > 0 {
		top := stack[len(stack)-1]
		top.Append(caption.NewText(buf.String()))
	}
	return root, nil
}

// runLength counts how many consecutive cells from index i keep property
// p's value at cell i.
func runLength(cells []cea608.Cell, i int, p prop) int {
	n := 0
	for j := i; j < len(cells); j++ {
		if !propEqual(cells[j].Style, cells[i].Style, p) {
			break
		}
		n++
	}
	return n
}
