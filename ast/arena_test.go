package ast

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/t14raptor/go-esprima/token"
)

func span(a, b int) NodeBase {
	return NodeBase{Range: Range{Idx(a), Idx(b)}}
}

func TestArenaPointersSurviveGrowth(t *testing.T) {
	a := NewArena()
	var ids []*Identifier
	for i := 0; i < 5000; i++ {
		ids = append(ids, a.Identifier(span(i, i+1), fmt.Sprintf("v%d", i)))
	}
	for i, id := range ids {
		require.Equal(t, fmt.Sprintf("v%d", i), id.Name)
		require.Equal(t, Idx(i), id.Idx0())
	}
	assert.Equal(t, 5000, a.Len())
}

func TestArenaLenCountsNodesOnly(t *testing.T) {
	a := NewArena()
	x := a.Identifier(span(0, 1), "x")
	one := a.NumericLiteral(span(4, 5), 1, "1")
	a.Location(Position{Line: 1}, Position{Line: 1, Column: 5})
	a.CopyExpressions([]Expression{NewIdentExpr(x), NewNumLitExpr(one)})
	a.BinaryExpression(span(0, 5), token.Plus, NewIdentExpr(x), NewNumLitExpr(one))
	assert.Equal(t, 3, a.Len())
}

func TestArenaRelease(t *testing.T) {
	a := NewArena()
	id := a.Identifier(span(0, 3), "foo")
	a.Release()
	assert.Equal(t, 0, a.Len())
	assert.Equal(t, "", id.Name)

	// The arena can be used again after a release.
	bar := a.Identifier(span(0, 3), "bar")
	assert.Equal(t, "bar", bar.Name)
	assert.Equal(t, 1, a.Len())
}

func TestCopyExpressionsIsolated(t *testing.T) {
	a := NewArena()
	x := NewIdentExpr(a.Identifier(span(0, 1), "x"))
	y := NewIdentExpr(a.Identifier(span(2, 3), "y"))

	first := a.CopyExpressions([]Expression{x})
	second := a.CopyExpressions([]Expression{y})
	require.Equal(t, 1, cap(first))

	grown := append(first, x)
	assert.Len(t, grown, 2)
	assert.Equal(t, "y", second[0].MustIdent().Name)
	assert.Nil(t, a.CopyExpressions(nil))
}

func TestExpressionVariant(t *testing.T) {
	a := NewArena()
	var none Expression
	assert.True(t, none.IsNone())
	assert.Nil(t, none.Unwrap())
	assert.Nil(t, none.Base())
	assert.Equal(t, Idx(-1), none.Idx0())
	assert.Equal(t, ExprNone, NewIdentExpr(nil).Kind())

	lit := a.StringLiteral(span(0, 5), "abc", `"abc"`)
	e := NewStrLitExpr(lit)
	assert.Equal(t, ExprStrLit, e.Kind())
	assert.Equal(t, "StringLiteral", e.Kind().String())
	assert.True(t, e.IsStrLit())
	assert.False(t, e.IsNumLit())

	got, ok := e.StrLit()
	require.True(t, ok)
	assert.Same(t, lit, got)
	_, ok = e.NumLit()
	assert.False(t, ok)
	assert.Equal(t, Idx(5), e.Idx1())
	assert.Panics(t, func() { e.MustIdent() })
}

func TestStatementVariant(t *testing.T) {
	a := NewArena()
	dbg := a.DebuggerStatement(span(0, 9))
	s := NewDebuggerStmt(dbg)
	assert.True(t, s.IsDebugger())
	assert.Equal(t, "DebuggerStatement", s.Kind().String())
	assert.Same(t, dbg, s.Unwrap())

	var none Statement
	assert.True(t, none.IsNone())
	assert.Equal(t, "None", none.Kind().String())
}

func TestForHead(t *testing.T) {
	a := NewArena()
	var h ForHead
	assert.True(t, h.IsNone())
	assert.Nil(t, h.Unwrap())

	x := a.Identifier(span(5, 6), "x")
	h = ForHead{Expression: NewIdentExpr(x)}
	assert.False(t, h.IsNone())
	assert.Same(t, x, h.Unwrap())
}
