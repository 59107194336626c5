package scanner

import (
	"strings"

	"github.com/t14raptor/go-esprima/ast"
	"github.com/t14raptor/go-esprima/token"
)

type Token struct {
	Kind token.Token

	Idx0, Idx1 ast.Idx

	// Line (1-based) and byte Column (0-based) of Idx0.
	Line   int
	Column int

	// OnNewLine is set when a line terminator separates this token from the
	// previous one.
	OnNewLine bool

	// Literal is the source text of the token.
	Literal string
	// Value is the cooked text: identifier names with escapes resolved,
	// string contents, the body of a regular expression.
	Value string
	// Number is the value of a numeric literal.
	Number float64
}

// RegExp splits a RegExp token into its pattern and flags.
func (t Token) RegExp() (pattern, flags string) {
	end := strings.LastIndexByte(t.Literal, '/')
	if end <= 0 {
		return "", ""
	}
	return t.Literal[1:end], t.Literal[end+1:]
}

// IsIdentifierName reports whether the token may appear where an
// IdentifierName is expected (property names, member access).
func (t Token) IsIdentifierName() bool {
	return token.ID(t.Kind)
}
