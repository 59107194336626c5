package scanner

import (
	"fmt"

	"github.com/t14raptor/go-esprima/ast"
)

// Error is a lexical error. Line is 1-based, Column is a 0-based byte
// column.
type Error struct {
	Message string
	Offset  ast.Idx
	Line    int
	Column  int
}

func (e *Error) Error() string {
	return fmt.Sprintf("Line %d: %s", e.Line, e.Message)
}

const (
	msgIllegal               = "Unexpected token ILLEGAL"
	msgUnterminatedString    = "Unterminated string constant"
	msgUnterminatedComment   = "Unterminated comment"
	msgUnterminatedRegExp    = "Invalid regular expression: missing /"
	msgInvalidRegExpFlags    = "Invalid regular expression flags"
	msgInvalidNumber         = "Invalid number"
	msgIdentifierAfterNumber = "Identifier directly after number"
	msgInvalidEscape         = "Invalid escape sequence"
)
