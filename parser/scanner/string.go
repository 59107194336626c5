package scanner

import (
	"strings"
	"unicode/utf16"

	"github.com/t14raptor/go-esprima/ast"
	"github.com/t14raptor/go-esprima/token"
)

// scanString scans a single or double quoted string literal and stores its
// cooked value in the current token.
func (s *Scanner) scanString(delim byte) token.Token {
	start := s.src.Offset()
	s.src.NextByte()
	afterOpen := s.src.Offset()

	for {
		b, ok := s.src.PeekByte()
		if !ok || b == '\n' || b == '\r' {
			return s.fail(msgUnterminatedString, start)
		}
		if b == delim {
			s.token.Value = s.src.FromPositionToCurrent(afterOpen)
			s.src.NextByte()
			return token.String
		}
		if b == '\\' {
			return s.scanStringEscaped(delim, start, afterOpen)
		}
		r, _ := s.src.NextRune()
		if isLineTerminator(r) {
			return s.fail(msgUnterminatedString, start)
		}
	}
}

func (s *Scanner) scanStringEscaped(delim byte, start, afterOpen ast.Idx) token.Token {
	var str strings.Builder
	str.WriteString(s.src.FromPositionToCurrent(afterOpen))

	for {
		r, ok := s.src.PeekRune()
		if !ok || isLineTerminator(r) {
			return s.fail(msgUnterminatedString, start)
		}
		if r == rune(delim) {
			s.src.NextByte()
			break
		}
		if r != '\\' {
			s.src.NextRune()
			str.WriteRune(r)
			continue
		}

		escStart := s.src.Offset()
		s.src.NextByte()
		r, ok = s.src.PeekRune()
		if !ok {
			return s.fail(msgUnterminatedString, start)
		}
		if isLineTerminator(r) {
			// Line continuation.
			s.skipLineTerminator()
			continue
		}
		s.src.NextRune()
		switch r {
		case 'b':
			str.WriteByte('\b')
		case 'f':
			str.WriteByte('\f')
		case 'n':
			str.WriteByte('\n')
		case 'r':
			str.WriteByte('\r')
		case 't':
			str.WriteByte('\t')
		case 'v':
			str.WriteByte('\v')
		case 'x', 'u':
			n := 2
			if r == 'u' {
				n = 4
			}
			value, ok := s.scanHexEscape(n)
			if !ok {
				return s.fail(msgInvalidEscape, escStart)
			}
			if utf16.IsSurrogate(value) && value < 0xdc00 {
				if low, ok := s.lowSurrogate(); ok {
					value = utf16.DecodeRune(value, low)
				}
			}
			str.WriteRune(value)
		case '0', '1', '2', '3', '4', '5', '6', '7':
			// Legacy octal escape: up to three digits, the first of which
			// limits the length (\377 is the largest).
			value := r - '0'
			limit := 2
			if r >= '4' {
				limit = 1
			}
			for i := 0; i < limit; i++ {
				b, ok := s.src.PeekByte()
				if !ok || !isOctalDigit(b) {
					break
				}
				s.src.NextByte()
				value = value*8 + rune(b-'0')
			}
			str.WriteRune(value)
		default:
			str.WriteRune(r)
		}
	}

	s.token.Value = str.String()
	return token.String
}

// lowSurrogate consumes a \uDC00-\uDFFF escape following a high surrogate
// so that the pair is decoded as one code point. Lone surrogates cannot be
// represented in UTF-8 and are written as U+FFFD.
func (s *Scanner) lowSurrogate() (rune, bool) {
	c := s.src.Offset()
	if s.src.AdvanceIfByteEquals('\\') && s.src.AdvanceIfByteEquals('u') {
		if low, ok := s.scanHexEscape(4); ok && low >= 0xdc00 && low <= 0xdfff {
			return low, true
		}
	}
	s.src.SetPosition(c)
	return 0, false
}
