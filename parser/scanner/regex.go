package scanner

import (
	"strings"

	"github.com/t14raptor/go-esprima/token"
)

// RescanAsRegExp re-reads the current / or /= token as the start of a
// regular expression literal. The parser calls it when a slash appears
// where an expression may begin.
func (s *Scanner) RescanAsRegExp() Token {
	if s.err != nil {
		return s.token
	}
	if s.token.Kind != token.Slash && s.token.Kind != token.QuotientAssign {
		return s.token
	}

	start := s.token.Idx0
	s.src.SetPosition(start + 1)

	var inClass bool
	for {
		r, ok := s.src.PeekRune()
		if !ok || isLineTerminator(r) {
			s.token.Kind = s.fail(msgUnterminatedRegExp, s.src.Offset())
			return s.token
		}
		s.src.NextRune()
		if r == '\\' {
			r, ok = s.src.PeekRune()
			if !ok || isLineTerminator(r) {
				s.token.Kind = s.fail(msgUnterminatedRegExp, s.src.Offset())
				return s.token
			}
			s.src.NextRune()
			continue
		}
		if inClass {
			if r == ']' {
				inClass = false
			}
			continue
		}
		if r == '[' {
			inClass = true
		} else if r == '/' {
			break
		}
	}

	pattern := s.src.FromPositionToCurrent(start + 1)
	pattern = pattern[:len(pattern)-1]

	flagStart := s.src.Offset()
	for {
		r, ok := s.src.PeekRune()
		if !ok || !isIdentifierPart(r) {
			break
		}
		s.src.NextRune()
	}
	flags := s.src.FromPositionToCurrent(flagStart)
	if !validRegExpFlags(flags) {
		s.token.Kind = s.fail(msgInvalidRegExpFlags, flagStart)
		return s.token
	}
	if b, ok := s.src.PeekByte(); ok && b == '\\' {
		s.token.Kind = s.fail(msgIllegal, s.src.Offset())
		return s.token
	}

	s.token.Kind = token.RegExp
	s.token.Idx1 = s.src.Offset()
	s.token.Literal = s.src.Slice(start, s.token.Idx1)
	s.token.Value = pattern
	return s.token
}

// validRegExpFlags accepts any combination of g, i and m, each at most once.
func validRegExpFlags(flags string) bool {
	for i := 0; i < len(flags); i++ {
		if !strings.ContainsRune("gim", rune(flags[i])) || strings.IndexByte(flags[i+1:], flags[i]) >= 0 {
			return false
		}
	}
	return true
}
