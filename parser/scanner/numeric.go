package scanner

import (
	"strconv"
	"unicode/utf8"

	"github.com/t14raptor/go-esprima/ast"
	"github.com/t14raptor/go-esprima/token"
)

// scanNumber scans a decimal, hex or legacy octal numeric literal and
// stores its value in the current token.
func (s *Scanner) scanNumber() token.Token {
	start := s.src.Offset()
	b, _ := s.src.PeekByte()
	if b == '0' {
		next, _ := s.src.PeekByteAt(1)
		switch {
		case next == 'x' || next == 'X':
			return s.scanHexLiteral(start)
		case isOctalDigit(next):
			return s.scanLegacyOctal(start)
		}
	}

	s.decimalDigits()
	if s.src.AdvanceIfByteEquals('.') {
		s.decimalDigits()
	}
	if b, ok := s.src.PeekByte(); ok && (b == 'e' || b == 'E') {
		s.src.NextByte()
		if b, ok := s.src.PeekByte(); ok && (b == '+' || b == '-') {
			s.src.NextByte()
		}
		if b, ok := s.src.PeekByte(); !ok || !isDecimalDigit(b) {
			return s.fail(msgInvalidNumber, s.src.Offset())
		}
		s.decimalDigits()
	}
	if kind := s.checkAfterNumericLiteral(); kind != token.Number {
		return kind
	}

	value, err := strconv.ParseFloat(s.src.FromPositionToCurrent(start), 64)
	if err != nil {
		// Out of range values still parse to ±Inf or 0.
		if ne, ok := err.(*strconv.NumError); !ok || ne.Err != strconv.ErrRange {
			return s.fail(msgInvalidNumber, start)
		}
	}
	s.token.Number = value
	return token.Number
}

func (s *Scanner) scanHexLiteral(start ast.Idx) token.Token {
	s.src.SetPosition(start + 2)
	var value float64
	digits := 0
	for {
		b, ok := s.src.PeekByte()
		if !ok || digitValue(b) >= 16 {
			break
		}
		s.src.NextByte()
		value = value*16 + float64(digitValue(b))
		digits++
	}
	if digits == 0 {
		return s.fail(msgInvalidNumber, s.src.Offset())
	}
	if kind := s.checkAfterNumericLiteral(); kind != token.Number {
		return kind
	}
	s.token.Number = value
	return token.Number
}

func (s *Scanner) scanLegacyOctal(start ast.Idx) token.Token {
	s.src.SetPosition(start + 1)
	var value float64
	for {
		b, ok := s.src.PeekByte()
		if !ok || !isOctalDigit(b) {
			break
		}
		s.src.NextByte()
		value = value*8 + float64(b-'0')
	}
	if b, ok := s.src.PeekByte(); ok && isDecimalDigit(b) {
		return s.fail(msgInvalidNumber, s.src.Offset())
	}
	if kind := s.checkAfterNumericLiteral(); kind != token.Number {
		return kind
	}
	s.token.Number = value
	return token.Number
}

func (s *Scanner) decimalDigits() {
	for {
		b, ok := s.src.PeekByte()
		if !ok || !isDecimalDigit(b) {
			return
		}
		s.src.NextByte()
	}
}

// checkAfterNumericLiteral rejects an identifier start directly after a
// number, as in 3in or 0x1g.
func (s *Scanner) checkAfterNumericLiteral() token.Token {
	b, ok := s.src.PeekByte()
	if !ok {
		return token.Number
	}
	if b < utf8.RuneSelf {
		if !asciiStart[b] && b != '\\' {
			return token.Number
		}
	} else if r, _ := s.src.PeekRune(); !isIdentifierStart(r) {
		return token.Number
	}
	return s.fail(msgIdentifierAfterNumber, s.src.Offset())
}

func isDecimalDigit(chr byte) bool {
	return '0' <= chr && chr <= '9'
}

func isOctalDigit(chr byte) bool {
	return '0' <= chr && chr <= '7'
}

func digitValue(chr byte) int {
	switch {
	case '0' <= chr && chr <= '9':
		return int(chr - '0')
	case 'a' <= chr && chr <= 'f':
		return int(chr - 'a' + 10)
	case 'A' <= chr && chr <= 'F':
		return int(chr - 'A' + 10)
	}
	return 16 // Larger than any legal digit value
}
