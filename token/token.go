package token

import (
	"strconv"
)

// Token is the set of lexical tokens in JavaScript (ECMA5).
type Token int

// String returns the string corresponding to the token.
func (t Token) String() string {
	if t == 0 {
		return "UNKNOWN"
	}
	if t < Token(len(token2string)) && token2string[t] != "" {
		return token2string[t]
	}
	return "token(" + strconv.Itoa(int(t)) + ")"
}

// Precedence returns the binding power of a binary, logical or compound
// assignment operator, or 0 if t is not one. The in operator only binds
// when in is true.
func (t Token) Precedence(in bool) int {
	switch t {
	case LogicalOr:
		return 1
	case LogicalAnd:
		return 2
	case Or, OrAssign:
		return 3
	case ExclusiveOr, ExclusiveOrAssign:
		return 4
	case And, AndAssign:
		return 5
	case Equal,
		NotEqual,
		StrictEqual,
		StrictNotEqual:
		return 6
	case Less, Greater, LessOrEqual, GreaterOrEqual, InstanceOf:
		return 7
	case In:
		if in {
			return 7
		}
		return 0
	case ShiftLeft, ShiftRight, UnsignedShiftRight:
		fallthrough
	case ShiftLeftAssign, ShiftRightAssign, UnsignedShiftRightAssign:
		return 8
	case Plus, Minus, AddAssign, SubtractAssign:
		return 9
	case Multiply, Slash, Remainder, MultiplyAssign, QuotientAssign, RemainderAssign:
		return 11
	}
	return 0
}

// IsAssign reports whether t is = or a compound assignment operator.
func (t Token) IsAssign() bool {
	return t == Assign || (t >= AddAssign && t <= UnsignedShiftRightAssign)
}

// IsLogical reports whether t is && or ||.
func (t Token) IsLogical() bool {
	return t == LogicalAnd || t == LogicalOr
}

// keyword ...
type keyword struct {
	token         Token
	futureKeyword bool
}

// LiteralKeyword returns the keyword token if literal is a keyword, a Keyword token
// if the literal is a future reserved word (class, enum, export, ...), or
// false if the literal is an ordinary identifier.
func LiteralKeyword(literal string) (Token, bool) {
	if k, exists := keywordTable[literal]; exists {
		if k.futureKeyword {
			return Keyword, true
		}
		return k.token, true
	}
	return 0, false
}

// ID reports whether the token is an IdentifierName: an identifier, a
// keyword, a future reserved word or one of true, false and null.
func ID(token Token) bool {
	return token >= Identifier
}

// IsKeyword reports whether the token is a reserved word that cannot be
// used as an identifier.
func IsKeyword(token Token) bool {
	return token > Identifier
}
