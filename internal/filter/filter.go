// Package filter post-processes caption trees for plain renderers: it drops
// style nodes most players cannot show, snaps fine positions into top/bottom
// bands, and merges cues that share a band and timespan.
//
// Everything here is pure tree rewriting over the caption model; fresh
// captions are built rather than mutated in place.
package filter

import (
	"popon/internal/caption"
)

// Apply rewrites cues in three steps: strip Color and Flash nodes (their
// children are spliced into the parent), re-bucket coordinate positions into
// top/bottom with middle alignment, and merge cues sharing timespan and
// bucket by joining their text with a line break.
func Apply(cues []caption.Caption) []caption.Caption {
	out := make([]caption.Caption, 0, len(cues))
	for _, cue := range cues {
		cue.Content = strip(cue.Content)
		cue.Position = bucket(cue.Position)
		cue.Align = caption.AlignMiddle
		if idx := mergeTarget(out, cue); idx >= 0 {
			out[idx].Content = join(out[idx].Content, cue.Content)
			continue
		}
		out = append(out, cue)
	}
	return out
}

// strip rebuilds the tree without Color and Flash containers.
func strip(n *caption.Node) *caption.Node {
	if n == nil {
		return nil
	}
	if n.Kind == caption.KindText {
		return caption.NewText(n.Text)
	}
	children := stripChildren(n.Children)
	switch n.Kind {
	case caption.KindRoot:
		return caption.NewRoot(children...)
	case caption.KindItalics:
		return caption.NewItalics(children...)
	case caption.KindUnderline:
		return caption.NewUnderline(children...)
	default:
		// Color and Flash are handled by stripChildren; anything else
		// reaching here keeps only its children.
		return caption.NewRoot(children...)
	}
}

func stripChildren(nodes []*caption.Node) []*caption.Node {
	var out []*caption.Node
	for _, child := range nodes {
		if child.Kind == caption.KindColor || child.Kind == caption.KindFlash {
			out = append(out, stripChildren(child.Children)...)
			continue
		}
		out = append(out, strip(child))
	}
	return out
}

// bucket snaps a coordinate position into the top or bottom band. Symbolic
// positions pass through.
func bucket(pos caption.Position) caption.Position {
	_, y, ok := pos.Coords()
	if !ok {
		return pos
	}
	if y < 0.5 {
		return caption.PositionTop
	}
	return caption.PositionBottom
}

func mergeTarget(cues []caption.Caption, cue caption.Caption) int {
	for i := range cues {
		if cues[i].Start.Cmp(cue.Start) != 0 || cues[i].End.Cmp(cue.End) != 0 {
			continue
		}
		if cues[i].Position != cue.Position {
			continue
		}
		return i
	}
	return -1
}

func join(a, b *caption.Node) *caption.Node {
	children := make([]*caption.Node, 0, len(a.Children)+len(b.Children)+1)
	children = append(children, a.Children...)
	children = append(children, caption.NewText("\n"))
	children = append(children, b.Children...)
	return caption.NewRoot(children...)
}
