package scanner

import (
	"unicode"
)

func isLineTerminator(chr rune) bool {
	switch chr {
	case '\u000a', '\u000d', '\u2028', '\u2029':
		return true
	}
	return false
}

func isWhiteSpace(chr rune) bool {
	switch chr {
	case '\u0009', '\u000b', '\u000c', '\u0020', '\u00a0', '\ufeff':
		return true
	}
	return chr >= 0x80 && unicode.Is(unicode.Zs, chr)
}

// skipLineTerminator consumes one line terminator (CRLF counts as one) and
// moves the scanner to the next line. The cursor must be on a terminator.
func (s *Scanner) skipLineTerminator() {
	r, _ := s.src.NextRune()
	if r == '\r' {
		s.src.AdvanceIfByteEquals('\n')
	}
	s.newline(s.src.Offset())
}

// skipSpace skips whitespace, line terminators and comments, and reports
// whether a line terminator was among them.
func (s *Scanner) skipSpace() (onNewLine bool) {
	for {
		b, ok := s.src.PeekByte()
		if !ok {
			return
		}
		switch b {
		case ' ', '\t', '\v', '\f':
			s.src.NextByte()
			continue
		case '\n', '\r':
			s.skipLineTerminator()
			onNewLine = true
			continue
		case '/':
			next, _ := s.src.PeekByteAt(1)
			if next == '/' {
				s.skipSingleLineComment()
				continue
			}
			if next == '*' {
				if s.skipMultiLineComment() {
					onNewLine = true
				}
				if s.err != nil {
					return
				}
				continue
			}
			return
		}
		if b < 0x80 {
			return
		}
		r, _ := s.src.PeekRune()
		switch {
		case isLineTerminator(r):
			s.skipLineTerminator()
			onNewLine = true
		case isWhiteSpace(r):
			s.src.NextRune()
		default:
			return
		}
	}
}
