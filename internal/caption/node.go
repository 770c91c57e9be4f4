package caption

import (
	"strings"

	"popon/internal/cea608"
)

// NodeKind discriminates the closed set of caption tree node variants.
// Every consumer switches exhaustively on it; adding a kind should make the
// compiler point at each switch that needs a new case.
type NodeKind int

const (
	KindText NodeKind = iota
	KindRoot
	KindItalics
	KindUnderline
	KindFlash
	KindColor
)

func (k NodeKind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindRoot:
		return "root"
	case KindItalics:
		return "italics"
	case KindUnderline:
		return "underline"
	case KindFlash:
		return "flash"
	case KindColor:
		return "color"
	default:
		return "unknown"
	}
}

// Node is one node of a caption tree. Text nodes are leaves carrying
// content; every other kind is a container owning its children. Trees are
// acyclic and never share nodes.
type Node struct {
	Kind     NodeKind
	Text     string       // KindText only
	Color    cea608.Color // KindColor only
	Children []*Node
}

// Constructors for each variant.

func NewText(content string) *Node { return &Node{Kind: KindText, Text: content} }

func NewRoot(children ...*Node) *Node { return &Node{Kind: KindRoot, Children: children} }

func NewItalics(children ...*Node) *Node { return &Node{Kind: KindItalics, Children: children} }

func NewUnderline(children ...*Node) *Node { return &Node{Kind: KindUnderline, Children: children} }

func NewFlash(children ...*Node) *Node { return &Node{Kind: KindFlash, Children: children} }

func NewColor(color cea608.Color, children ...*Node) *Node {
	return &Node{Kind: KindColor, Color: color, Children: children}
}

// Container reports whether the node owns children.
func (n *Node) Container() bool { return n.Kind != KindText }

// Append adds a child to a container node.
func (n *Node) Append(child *Node) {
	n.Children = append(n.Children, child)
}

// Equal reports structural equality: kind, text, hue, and children.
func (n *Node) Equal(other *Node) bool {
	if n == nil || other == nil {
		return n == other
	}
	if n.Kind != other.Kind || n.Text != other.Text {
		return false
	}
	if n.Kind == KindColor && n.Color != other.Color {
		return false
	}
	if len(n.Children) != len(other.Children) {
		return false
	}
	for i := range n.Children {
		if !n.Children[i].Equal(other.Children[i]) {
			return false
		}
	}
	return true
}

// Flatten concatenates all text content in document order.
func (n *Node) Flatten() string {
	var b strings.Builder
	n.flatten(&b)
	return b.String()
}

func (n *Node) flatten(b *strings.Builder) {
	if n == nil {
		return
	}
	if n.Kind == KindText {
		b.WriteString(n.Text)
		return
	}
	for _, child := range n.Children {
		child.flatten(b)
	}
}
