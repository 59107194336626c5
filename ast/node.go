package ast

//go:generate go run gen_variant.go

// Idx is a byte offset into the JavaScript source.
type Idx int

// Range is the half-open byte span [Range[0], Range[1]) covered by a node.
type Range [2]Idx

// Position is a line (1-based) and byte column (0-based) in the source.
type Position struct {
	Line   int
	Column int
}

// SourceLocation is the line/column form of a Range. Source names the
// input the node came from and is empty unless the parser was given one.
type SourceLocation struct {
	Source string `optional:"true"`
	Start  Position
	End    Position
}

// NodeBase carries the source span shared by every node kind.
//
// GroupRange and GroupLoc are only set on expressions that were written
// inside parentheses. They cover the outermost pair of parentheses.
type NodeBase struct {
	Range      Range
	Loc        *SourceLocation `optional:"true"`
	GroupRange *Range          `optional:"true"`
	GroupLoc   *SourceLocation `optional:"true"`
}

type Node interface {
	// Idx0 returns the index of the first character belonging to the node.
	Idx0() Idx
	// Idx1 returns the index of the first character immediately after the node.
	Idx1() Idx
	// Base returns the span information of the node.
	Base() *NodeBase
}

type VisitableNode interface {
	Node
	VisitWith(v Visitor)
	VisitChildrenWith(v Visitor)
}

func (n *NodeBase) Idx0() Idx       { return n.Range[0] }
func (n *NodeBase) Idx1() Idx       { return n.Range[1] }
func (n *NodeBase) Base() *NodeBase { return n }

// Span returns the node's byte range.
func (n *NodeBase) Span() Range { return n.Range }

// Location returns the line/column span, or nil when locations were not
// requested.
func (n *NodeBase) Location() *SourceLocation { return n.Loc }

// Group returns the range of the outermost parentheses around the node.
func (n *NodeBase) Group() (*Range, *SourceLocation) { return n.GroupRange, n.GroupLoc }

// Parenthesized reports whether the node was written inside parentheses.
func (n *NodeBase) Parenthesized() bool { return n.GroupRange != nil }

// Program is the root of every parse.
type Program struct {
	NodeBase
	Body Statements
}
