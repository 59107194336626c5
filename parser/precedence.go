package parser

import "github.com/t14raptor/go-esprima/token"

// Precedence represents operator binding power for the binary expression
// loop.
//
// Even values are left-associative operators. The loop uses a single
// comparison (lbp <= minBP) and the recursive call passes lbp ^ 1 as the
// new minimum, so an operator of the same level ends the right operand.
// Every ES5 binary operator is left-associative; assignment and the
// conditional operator are parsed separately.
type Precedence uint8

const (
	PrecedenceLowest     Precedence = 0
	PrecedenceLogicalOr  Precedence = 14 // ||
	PrecedenceLogicalAnd Precedence = 16 // &&
	PrecedenceBitwiseOr  Precedence = 18 // |
	PrecedenceBitwiseXor Precedence = 20 // ^
	PrecedenceBitwiseAnd Precedence = 22 // &
	PrecedenceEquals     Precedence = 24 // == != === !==
	PrecedenceCompare    Precedence = 26 // < > <= >= instanceof in
	PrecedenceShift      Precedence = 28 // << >> >>>
	PrecedenceAdd        Precedence = 30 // + -
	PrecedenceMultiply   Precedence = 32 // * / %
)

// tokenPrecedence maps each token kind to its left binding power.
// Zero means the token is not a binary or logical operator.
var tokenPrecedence [256]Precedence

func init() {
	tokenPrecedence[token.LogicalOr] = PrecedenceLogicalOr
	tokenPrecedence[token.LogicalAnd] = PrecedenceLogicalAnd
	tokenPrecedence[token.Or] = PrecedenceBitwiseOr
	tokenPrecedence[token.ExclusiveOr] = PrecedenceBitwiseXor
	tokenPrecedence[token.And] = PrecedenceBitwiseAnd
	tokenPrecedence[token.Equal] = PrecedenceEquals
	tokenPrecedence[token.StrictEqual] = PrecedenceEquals
	tokenPrecedence[token.NotEqual] = PrecedenceEquals
	tokenPrecedence[token.StrictNotEqual] = PrecedenceEquals
	tokenPrecedence[token.Less] = PrecedenceCompare
	tokenPrecedence[token.Greater] = PrecedenceCompare
	tokenPrecedence[token.LessOrEqual] = PrecedenceCompare
	tokenPrecedence[token.GreaterOrEqual] = PrecedenceCompare
	tokenPrecedence[token.InstanceOf] = PrecedenceCompare
	tokenPrecedence[token.In] = PrecedenceCompare
	tokenPrecedence[token.ShiftLeft] = PrecedenceShift
	tokenPrecedence[token.ShiftRight] = PrecedenceShift
	tokenPrecedence[token.UnsignedShiftRight] = PrecedenceShift
	tokenPrecedence[token.Plus] = PrecedenceAdd
	tokenPrecedence[token.Minus] = PrecedenceAdd
	tokenPrecedence[token.Multiply] = PrecedenceMultiply
	tokenPrecedence[token.Slash] = PrecedenceMultiply
	tokenPrecedence[token.Remainder] = PrecedenceMultiply
}

// kindToPrecedence returns the left binding power for a token kind.
// The in operator has none while allowIn is off.
func kindToPrecedence(kind token.Token, allowIn bool) Precedence {
	if kind == token.In && !allowIn {
		return PrecedenceLowest
	}
	return tokenPrecedence[kind]
}
