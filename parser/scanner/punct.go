package scanner

import "github.com/t14raptor/go-esprima/token"

func (s *Scanner) scanPunctuator() token.Token {
	b, _ := s.src.NextByte()
	switch b {
	case '(':
		return token.LeftParenthesis
	case ')':
		return token.RightParenthesis
	case '[':
		return token.LeftBracket
	case ']':
		return token.RightBracket
	case '{':
		return token.LeftBrace
	case '}':
		return token.RightBrace
	case ';':
		return token.Semicolon
	case ',':
		return token.Comma
	case ':':
		return token.Colon
	case '?':
		return token.QuestionMark
	case '~':
		return token.BitwiseNot
	case '+':
		return s.switch3(token.Plus, token.AddAssign, '+', token.Increment)
	case '-':
		return s.switch3(token.Minus, token.SubtractAssign, '-', token.Decrement)
	case '*':
		return s.switch2(token.Multiply, token.MultiplyAssign)
	case '/':
		return s.switch2(token.Slash, token.QuotientAssign)
	case '%':
		return s.switch2(token.Remainder, token.RemainderAssign)
	case '^':
		return s.switch2(token.ExclusiveOr, token.ExclusiveOrAssign)
	case '&':
		return s.switch3(token.And, token.AndAssign, '&', token.LogicalAnd)
	case '|':
		return s.switch3(token.Or, token.OrAssign, '|', token.LogicalOr)
	case '<':
		if s.src.AdvanceIfByteEquals('<') {
			return s.switch2(token.ShiftLeft, token.ShiftLeftAssign)
		}
		return s.switch2(token.Less, token.LessOrEqual)
	case '>':
		if s.src.AdvanceIfByteEquals('>') {
			if s.src.AdvanceIfByteEquals('>') {
				return s.switch2(token.UnsignedShiftRight, token.UnsignedShiftRightAssign)
			}
			return s.switch2(token.ShiftRight, token.ShiftRightAssign)
		}
		return s.switch2(token.Greater, token.GreaterOrEqual)
	case '=':
		if s.src.AdvanceIfByteEquals('=') {
			return s.switch2(token.Equal, token.StrictEqual)
		}
		return token.Assign
	case '!':
		if s.src.AdvanceIfByteEquals('=') {
			return s.switch2(token.NotEqual, token.StrictNotEqual)
		}
		return token.Not
	}
	return s.fail(msgIllegal, s.token.Idx0)
}

// switch2 returns tkn0 unless the next byte is '=', in which case it is
// consumed and tkn1 is returned.
func (s *Scanner) switch2(tkn0, tkn1 token.Token) token.Token {
	if s.src.AdvanceIfByteEquals('=') {
		return tkn1
	}
	return tkn0
}

func (s *Scanner) switch3(tkn0, tkn1 token.Token, chr2 byte, tkn2 token.Token) token.Token {
	if s.src.AdvanceIfByteEquals('=') {
		return tkn1
	}
	if s.src.AdvanceIfByteEquals(chr2) {
		return tkn2
	}
	return tkn0
}
