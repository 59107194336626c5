// Package scanner turns ES5 source text into tokens.
package scanner

import (
	"github.com/t14raptor/go-esprima/ast"
	"github.com/t14raptor/go-esprima/token"
)

type Scanner struct {
	token Token

	src Source

	// line is the 1-based line of the cursor; lineStart is the offset at
	// which it begins.
	line      int
	lineStart ast.Idx
	lines     lineTable

	err *Error
}

func New(src string) *Scanner {
	return &Scanner{
		src:   NewSource(src),
		line:  1,
		lines: newLineTable(),
	}
}

// Next scans and returns the next token. A lexical error yields a token of
// kind token.Illegal; Err reports the details. Once an error has occurred
// every further call returns the same Illegal token.
func (s *Scanner) Next() Token {
	if s.err != nil {
		return s.token
	}

	s.token = Token{OnNewLine: s.skipSpace()}
	if s.err != nil {
		s.token.Kind = token.Illegal
		s.token.Idx0, s.token.Idx1 = s.err.Offset, s.err.Offset
		s.token.Line, s.token.Column = s.err.Line, s.err.Column
		return s.token
	}

	start := s.src.Offset()
	s.token.Idx0 = start
	s.token.Line = s.line
	s.token.Column = int(start - s.lineStart)

	if s.src.EOF() {
		s.token.Kind = token.Eof
		s.token.Idx1 = start
		return s.token
	}

	s.token.Kind = s.scan()
	s.token.Idx1 = s.src.Offset()
	s.token.Literal = s.src.Slice(start, s.token.Idx1)
	if s.err != nil {
		s.token.Kind = token.Illegal
	}
	return s.token
}

func (s *Scanner) scan() token.Token {
	b, _ := s.src.PeekByte()
	switch {
	case asciiStart[b] || b == '\\':
		return s.scanIdentifier()
	case b >= 0x80:
		if r, _ := s.src.PeekRune(); isIdentifierStart(r) {
			return s.scanIdentifier()
		}
		s.src.NextRune()
		return s.fail(msgIllegal, s.token.Idx0)
	case isDecimalDigit(b):
		return s.scanNumber()
	case b == '.':
		if next, ok := s.src.PeekByteAt(1); ok && isDecimalDigit(next) {
			return s.scanNumber()
		}
		s.src.NextByte()
		return token.Period
	case b == '"' || b == '\'':
		return s.scanString(b)
	}
	return s.scanPunctuator()
}

// Token returns the most recently scanned token.
func (s *Scanner) Token() Token {
	return s.token
}

// Err returns the lexical error that stopped the scanner, if any.
func (s *Scanner) Err() *Error {
	return s.err
}

// Checkpoint captures the scanner state so that it can be restored with
// Rewind.
type Checkpoint struct {
	pos       ast.Idx
	tok       Token
	line      int
	lineStart ast.Idx
	err       *Error
}

func (s *Scanner) Checkpoint() Checkpoint {
	return Checkpoint{
		pos:       s.src.Offset(),
		tok:       s.token,
		line:      s.line,
		lineStart: s.lineStart,
		err:       s.err,
	}
}

func (s *Scanner) Rewind(c Checkpoint) {
	s.src.SetPosition(c.pos)
	s.token = c.tok
	s.line = c.line
	s.lineStart = c.lineStart
	s.err = c.err
}

// Peek returns the token after the current one without consuming it.
func (s *Scanner) Peek() Token {
	c := s.Checkpoint()
	tok := s.Next()
	s.Rewind(c)
	return tok
}

// Position converts an offset that has already been scanned into a line
// and column.
func (s *Scanner) Position(offset ast.Idx) ast.Position {
	return s.lines.position(offset)
}

// LineCol is Position split into its parts.
func (s *Scanner) LineCol(offset ast.Idx) (line, column int) {
	p := s.lines.position(offset)
	return p.Line, p.Column
}

// newline records that a line terminator ended just before next.
func (s *Scanner) newline(next ast.Idx) {
	s.line++
	s.lineStart = next
	s.lines.add(next)
}

// fail records a lexical error at offset and returns token.Illegal.
func (s *Scanner) fail(msg string, offset ast.Idx) token.Token {
	if s.err == nil {
		s.err = &Error{
			Message: msg,
			Offset:  offset,
			Line:    s.line,
			Column:  int(offset - s.lineStart),
		}
		if offset < s.lineStart {
			p := s.lines.position(offset)
			s.err.Line, s.err.Column = p.Line, p.Column
		}
	}
	return token.Illegal
}
