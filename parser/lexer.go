package parser

import (
	"github.com/t14raptor/go-esprima/parser/scanner"
	"github.com/t14raptor/go-esprima/token"
)

// next advances to the following token. A lexical error ends the parse.
func (p *parser) next() {
	p.lastEnd = p.token.Idx1
	p.token = p.scanner.Next()
	if p.token.Kind == token.Illegal {
		p.errorLexical()
	}
}

// peek returns the token after the current one without consuming it.
func (p *parser) peek() scanner.Token {
	return p.scanner.Peek()
}

// rescanRegExp re-reads the current slash token as a regular expression.
func (p *parser) rescanRegExp() {
	p.token = p.scanner.RescanAsRegExp()
	if p.token.Kind == token.Illegal {
		p.errorLexical()
	}
}

func (p *parser) expect(kind token.Token) {
	if p.token.Kind != kind {
		p.errorUnexpectedToken(p.token)
	}
	p.next()
}

// consumeSemicolon ends a statement: an explicit semicolon, or an inserted
// one before }, at the end of input or after a line terminator.
func (p *parser) consumeSemicolon() {
	switch {
	case p.token.Kind == token.Semicolon:
		p.next()
	case p.token.OnNewLine, p.token.Kind == token.RightBrace, p.token.Kind == token.Eof:
	default:
		p.errorUnexpectedToken(p.token)
	}
}
