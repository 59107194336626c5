// Package parser implements a parser for ES5 JavaScript that produces an
// ESTree-shaped syntax tree.
package parser

import (
	"github.com/t14raptor/go-esprima/ast"
	"github.com/t14raptor/go-esprima/parser/scanner"
	"github.com/t14raptor/go-esprima/token"
)

type parser struct {
	token   scanner.Token
	scanner *scanner.Scanner
	arena   *ast.Arena
	opts    options

	scope *scope

	// lastEnd is the offset just past the previously consumed token.
	lastEnd ast.Idx
	depth   int

	err *ParseError

	// Scratch buffers for building child lists. Each list is collected at
	// the end of its buffer and copied into the arena once complete.
	exprBuf  []ast.Expression
	stmtBuf  []ast.Statement
	identBuf []*ast.Identifier
	propBuf  []*ast.Property
	caseBuf  []*ast.SwitchCase
	declBuf  []*ast.VariableDeclarator
}

func newParser(arena *ast.Arena, src string, opts []Option) *parser {
	p := &parser{
		scanner: scanner.New(src),
		arena:   arena,
	}
	for _, opt := range opts {
		opt(&p.opts)
	}
	return p
}

// Parse parses the source code of a single JavaScript program and returns
// the corresponding ast.Program node. Every node is allocated from arena.
// On failure the returned error is a *ParseError describing the first
// problem found, and no tree is returned.
func Parse(arena *ast.Arena, src string, opts ...Option) (*ast.Program, error) {
	return newParser(arena, src, opts).parse()
}

// ParseFile is Parse with a fresh arena.
func ParseFile(src string, opts ...Option) (*ast.Program, error) {
	return Parse(ast.NewArena(), src, opts...)
}

// bailout is the panic value used to abandon a parse at the first error.
type bailout struct{}

func (p *parser) parse() (program *ast.Program, err error) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(bailout); !ok {
				panic(r)
			}
			program, err = nil, p.err
		}
	}()

	p.openScope(false)
	p.next()
	p.lastEnd = p.token.Idx0
	program = p.parseProgram()
	p.closeScope()
	return program, nil
}

func (p *parser) parseProgram() *ast.Program {
	start := p.token.Idx0
	body := p.parseSourceElements(token.Eof)
	return p.arena.Program(p.finish(start), body)
}

// finish builds the span of a node that began at start and ends with the
// previously consumed token.
func (p *parser) finish(start ast.Idx) ast.NodeBase {
	base := ast.NodeBase{Range: ast.Range{start, p.lastEnd}}
	if p.opts.locations {
		base.Loc = p.location(start, p.lastEnd)
	}
	return base
}

// tokenBase is the span of a single token.
func (p *parser) tokenBase(tok scanner.Token) ast.NodeBase {
	base := ast.NodeBase{Range: ast.Range{tok.Idx0, tok.Idx1}}
	if p.opts.locations {
		base.Loc = p.location(tok.Idx0, tok.Idx1)
	}
	return base
}

func (p *parser) location(start, end ast.Idx) *ast.SourceLocation {
	loc := p.arena.Location(p.scanner.Position(start), p.scanner.Position(end))
	loc.Source = p.opts.source
	return loc
}

// group records the outermost parentheses around expr.
func (p *parser) group(expr ast.Expression, start ast.Idx) {
	base := expr.Base()
	base.GroupRange = p.arena.Range(ast.Range{start, p.lastEnd})
	if p.opts.locations {
		base.GroupLoc = p.location(start, p.lastEnd)
	}
}

func (p *parser) enter() {
	p.depth++
	if p.opts.maxDepth > 0 && p.depth > p.opts.maxDepth {
		p.errorAt(p.token.Idx0, errMaxDepth)
	}
}

func (p *parser) leave() {
	p.depth--
}

func (p *parser) finishExprBuf(mark int) ast.Expressions {
	list := p.arena.CopyExpressions(p.exprBuf[mark:])
	p.exprBuf = p.exprBuf[:mark]
	return list
}

func (p *parser) finishStmtBuf(mark int) ast.Statements {
	list := p.arena.CopyStatements(p.stmtBuf[mark:])
	p.stmtBuf = p.stmtBuf[:mark]
	return list
}

func (p *parser) finishIdentBuf(mark int) []*ast.Identifier {
	list := p.arena.CopyIdentifiers(p.identBuf[mark:])
	p.identBuf = p.identBuf[:mark]
	return list
}

func (p *parser) finishPropBuf(mark int) []*ast.Property {
	list := p.arena.CopyProperties(p.propBuf[mark:])
	p.propBuf = p.propBuf[:mark]
	return list
}

func (p *parser) finishCaseBuf(mark int) []*ast.SwitchCase {
	list := p.arena.CopySwitchCases(p.caseBuf[mark:])
	p.caseBuf = p.caseBuf[:mark]
	return list
}

func (p *parser) finishDeclBuf(mark int) []*ast.VariableDeclarator {
	list := p.arena.CopyDeclarators(p.declBuf[mark:])
	p.declBuf = p.declBuf[:mark]
	return list
}
