package generator

import (
	"strings"

	"github.com/t14raptor/go-esprima/ast"
)

type state struct {
	out    *strings.Builder
	node   ast.Node
	parent *state
	indent int

	// noIn is set inside a for head, where a bare in operator would be
	// read as for-in.
	noIn bool
}

func (s *state) wrap(node ast.Node) *state {
	return &state{
		out:    s.out,
		node:   node,
		parent: s,
		indent: s.indent,
		noIn:   s.noIn,
	}
}

// capture generates node into a separate buffer and returns the text.
func (s *state) capture(node ast.Node) string {
	sub := s.wrap(node)
	sub.out = &strings.Builder{}
	gen(sub)
	return sub.out.String()
}

func (s *state) line() {
	s.out.WriteString("\n")
}

func (s *state) lineAndPad() {
	s.line()
	s.out.WriteString(strings.Repeat("    ", s.indent))
}
