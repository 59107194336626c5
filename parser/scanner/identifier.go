package scanner

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/nukilabs/unicodeid"
	"github.com/t14raptor/go-esprima/ast"
	"github.com/t14raptor/go-esprima/token"
)

// Lookup tables for ASCII identifier characters.
// Non-ASCII bytes (>= 128) are always false, branching to the Unicode path.
var asciiStart, asciiContinue [256]bool

func init() {
	for i := 0; i < 128; i++ {
		if i >= 'a' && i <= 'z' || i >= 'A' && i <= 'Z' || i == '$' || i == '_' {
			asciiStart[i] = true
			asciiContinue[i] = true
		}
		if i >= '0' && i <= '9' {
			asciiContinue[i] = true
		}
	}
}

// ES5 identifiers are defined by general category alone. The
// Other_ID_Start and Other_ID_Continue compatibility characters that
// ID_Start and ID_Continue add are not identifier characters here.
var otherIDChars = []*unicode.RangeTable{unicode.Other_ID_Start, unicode.Other_ID_Continue}

func isIdentifierStart(chr rune) bool {
	if chr < utf8.RuneSelf {
		return chr >= 0 && asciiStart[chr]
	}
	return unicodeid.IsIDStartUnicode(chr) && !unicode.IsOneOf(otherIDChars, chr)
}

func isIdentifierPart(chr rune) bool {
	if chr < utf8.RuneSelf {
		return chr >= 0 && asciiContinue[chr]
	}
	switch chr {
	case '\u200c', '\u200d':
		return true
	}
	return unicodeid.IsIDContinueUnicode(chr) && !unicode.IsOneOf(otherIDChars, chr)
}

// scanIdentifier scans an IdentifierName and classifies it as an
// identifier, a keyword, a boolean or null.
func (s *Scanner) scanIdentifier() token.Token {
	start := s.src.Offset()
	for {
		b, ok := s.src.PeekByte()
		if !ok {
			break
		}
		if asciiContinue[b] {
			s.src.NextByte()
			continue
		}
		if b == '\\' {
			return s.scanIdentifierEscaped(start)
		}
		if b < utf8.RuneSelf {
			break
		}
		r, _ := s.src.PeekRune()
		if !isIdentifierPart(r) {
			break
		}
		s.src.NextRune()
	}
	return s.classifyIdentifier(s.src.FromPositionToCurrent(start))
}

// scanIdentifierEscaped continues an identifier that contains \uXXXX
// escapes, cooking the name as it goes.
func (s *Scanner) scanIdentifierEscaped(start ast.Idx) token.Token {
	var str strings.Builder
	str.WriteString(s.src.FromPositionToCurrent(start))
	for {
		r, ok := s.src.PeekRune()
		if !ok {
			break
		}
		if r == '\\' {
			escStart := s.src.Offset()
			s.src.NextByte()
			if !s.src.AdvanceIfByteEquals('u') {
				return s.fail(msgIllegal, escStart)
			}
			value, ok := s.scanHexEscape(4)
			if !ok {
				return s.fail(msgIllegal, escStart)
			}
			valid := isIdentifierPart(value)
			if escStart == start {
				valid = isIdentifierStart(value)
			}
			if !valid || value == '\\' {
				return s.fail(msgIllegal, escStart)
			}
			str.WriteRune(value)
			continue
		}
		if !isIdentifierPart(r) {
			break
		}
		s.src.NextRune()
		str.WriteRune(r)
	}
	return s.classifyIdentifier(str.String())
}

func (s *Scanner) classifyIdentifier(name string) token.Token {
	s.token.Value = name
	if kind, ok := token.LiteralKeyword(name); ok {
		return kind
	}
	return token.Identifier
}
