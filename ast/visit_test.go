package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/t14raptor/go-esprima/token"
)

// a + b * c;
func buildSum(a *Arena) *Program {
	x := a.Identifier(span(0, 1), "a")
	y := a.Identifier(span(4, 5), "b")
	z := a.Identifier(span(8, 9), "c")
	mul := a.BinaryExpression(span(4, 9), token.Multiply, NewIdentExpr(y), NewIdentExpr(z))
	add := a.BinaryExpression(span(0, 9), token.Plus, NewIdentExpr(x), NewBinaryExpr(mul))
	stmt := a.ExpressionStatement(span(0, 10), NewBinaryExpr(add), "")
	return a.Program(span(0, 10), a.CopyStatements([]Statement{NewExpressionStmt(stmt)}))
}

type identCounter struct {
	NoopVisitor
	names []string
}

func (c *identCounter) VisitIdentifier(n *Identifier) {
	c.names = append(c.names, n.Name)
}

func TestNoopVisitorDispatchesToOverride(t *testing.T) {
	prog := buildSum(NewArena())
	c := &identCounter{}
	c.V = c
	prog.VisitWith(c)
	assert.Equal(t, []string{"a", "b", "c"}, c.names)
}

type binarySkipper struct {
	NoopVisitor
	idents int
}

func (b *binarySkipper) VisitIdentifier(n *Identifier) { b.idents++ }

// VisitBinaryExpression does not descend, so nothing below it is seen.
func (b *binarySkipper) VisitBinaryExpression(n *BinaryExpression) {}

func TestVisitorOverrideCanPrune(t *testing.T) {
	prog := buildSum(NewArena())
	b := &binarySkipper{}
	b.V = b
	Walk(b, prog)
	assert.Equal(t, 0, b.idents)
}

func TestInspectOrder(t *testing.T) {
	prog := buildSum(NewArena())

	var kinds []string
	Inspect(prog, func(n Node) bool {
		switch n := n.(type) {
		case nil:
		case *Program:
			kinds = append(kinds, "Program")
		case *ExpressionStatement:
			kinds = append(kinds, "ExpressionStatement")
		case *BinaryExpression:
			kinds = append(kinds, n.Operator.String())
		case *Identifier:
			kinds = append(kinds, n.Name)
		}
		return true
	})
	assert.Equal(t, []string{"Program", "ExpressionStatement", "+", "a", "*", "b", "c"}, kinds)
}

func TestInspectBalanced(t *testing.T) {
	prog := buildSum(NewArena())
	depth, maxDepth, visits := 0, 0, 0
	Inspect(prog, func(n Node) bool {
		if n == nil {
			depth--
			return false
		}
		visits++
		depth++
		if depth > maxDepth {
			maxDepth = depth
		}
		return true
	})
	assert.Equal(t, 0, depth)
	assert.Equal(t, 7, visits)
	assert.Equal(t, 5, maxDepth)
}

func TestInspectRangesNest(t *testing.T) {
	prog := buildSum(NewArena())
	var stack []Node
	Inspect(prog, func(n Node) bool {
		if n == nil {
			stack = stack[:len(stack)-1]
			return false
		}
		if len(stack) > 0 {
			parent := stack[len(stack)-1]
			assert.LessOrEqual(t, int(parent.Idx0()), int(n.Idx0()))
			assert.GreaterOrEqual(t, int(parent.Idx1()), int(n.Idx1()))
		}
		stack = append(stack, n)
		return true
	})
}

func TestVisitSkipsMissingChildren(t *testing.T) {
	a := NewArena()
	ret := a.ReturnStatement(span(0, 7), Expression{})
	brk := a.BreakStatement(span(8, 14), nil)
	try := a.TryStatement(span(15, 30), a.BlockStatement(span(19, 21), nil), nil, a.BlockStatement(span(28, 30), nil))
	prog := a.Program(span(0, 30), a.CopyStatements([]Statement{
		NewReturnStmt(ret), NewBreakStmt(brk), NewTryStmt(try),
	}))

	n := 0
	Inspect(prog, func(node Node) bool {
		if node != nil {
			n++
		}
		return true
	})
	// Program, return, break, try, block, block
	assert.Equal(t, 6, n)
}
