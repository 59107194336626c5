package parser

import (
	"fmt"

	"github.com/t14raptor/go-esprima/ast"
	"github.com/t14raptor/go-esprima/parser/scanner"
	"github.com/t14raptor/go-esprima/token"
)

const (
	errUnexpectedToken      = "Unexpected token %s"
	errUnexpectedEndOfInput = "Unexpected end of input"
	errUnexpectedNumber     = "Unexpected number"
	errUnexpectedString     = "Unexpected string"
	errUnexpectedIdentifier = "Unexpected identifier"
	errUnexpectedReserved   = "Unexpected reserved word"
	errNewlineAfterThrow    = "Illegal newline after throw"
	errIllegalReturn        = "Illegal return statement"
	errIllegalBreak         = "Illegal break statement"
	errIllegalContinue      = "Illegal continue statement"
	errUnknownLabel         = "Undefined label '%s'"
	errLabelRedeclaration   = "Label '%s' has already been declared"
	errMultipleDefaults     = "More than one default clause in switch statement"
	errNoCatchOrFinally     = "Missing catch or finally after try"
	errInvalidLHSAssignment = "Invalid left-hand side in assignment"
	errInvalidLHSForIn      = "Invalid left-hand side in for-in"
	errMaxDepth             = "Maximum nesting depth exceeded"
)

// ParseError describes the first problem found in the source. Index is the
// byte offset of the offending token, LineNumber is 1-based and Column is
// the 1-based byte column.
type ParseError struct {
	Description string
	Index       int
	LineNumber  int
	Column      int

	cause error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("Line %d: %s", e.LineNumber, e.Description)
}

// Unwrap returns the *scanner.Error behind a lexical failure, or nil.
func (e *ParseError) Unwrap() error {
	return e.cause
}

// errorAt records an error at offset and abandons the parse.
func (p *parser) errorAt(offset ast.Idx, msg string, args ...any) {
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	pos := p.scanner.Position(offset)
	p.err = &ParseError{
		Description: msg,
		Index:       int(offset),
		LineNumber:  pos.Line,
		Column:      pos.Column + 1,
	}
	panic(bailout{})
}

// errorLexical converts the scanner's error and abandons the parse.
func (p *parser) errorLexical() {
	err := p.scanner.Err()
	p.err = &ParseError{
		Description: err.Message,
		Index:       int(err.Offset),
		LineNumber:  err.Line,
		Column:      err.Column + 1,
		cause:       err,
	}
	panic(bailout{})
}

func (p *parser) errorUnexpectedToken(tkn scanner.Token) {
	switch tkn.Kind {
	case token.Eof:
		p.errorAt(tkn.Idx0, errUnexpectedEndOfInput)
	case token.Number:
		p.errorAt(tkn.Idx0, errUnexpectedNumber)
	case token.String:
		p.errorAt(tkn.Idx0, errUnexpectedString)
	case token.Identifier:
		p.errorAt(tkn.Idx0, errUnexpectedIdentifier)
	case token.Keyword:
		p.errorAt(tkn.Idx0, errUnexpectedReserved)
	}
	p.errorAt(tkn.Idx0, errUnexpectedToken, tkn.Literal)
}
