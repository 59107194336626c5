package scanner

import (
	"unicode/utf8"

	"github.com/t14raptor/go-esprima/ast"
)

// Source is a read cursor over the JavaScript text.
type Source struct {
	str string
	pos ast.Idx
	len ast.Idx
}

func NewSource(src string) Source {
	return Source{
		str: src,
		len: ast.Idx(len(src)),
	}
}

func (s *Source) EOF() bool {
	return s.pos >= s.len
}

func (s *Source) Offset() ast.Idx {
	return s.pos
}

func (s *Source) SetPosition(pos ast.Idx) {
	s.pos = pos
}

func (s *Source) NextRune() (rune, bool) {
	r, ok := s.PeekRune()
	if ok {
		s.pos += ast.Idx(runeWidth(s.str[s.pos:]))
	}
	return r, ok
}

func (s *Source) PeekRune() (rune, bool) {
	if s.EOF() {
		return 0, false
	}
	if b := s.str[s.pos]; b < utf8.RuneSelf {
		return rune(b), true
	}
	r, _ := utf8.DecodeRuneInString(s.str[s.pos:])
	return r, true
}

func (s *Source) NextByte() (byte, bool) {
	if s.EOF() {
		return 0, false
	}
	b := s.str[s.pos]
	s.pos++
	return b, true
}

func (s *Source) PeekByte() (byte, bool) {
	if s.EOF() {
		return 0, false
	}
	return s.str[s.pos], true
}

// PeekByteAt returns the byte n bytes after the cursor.
func (s *Source) PeekByteAt(n ast.Idx) (byte, bool) {
	if s.pos+n >= s.len {
		return 0, false
	}
	return s.str[s.pos+n], true
}

func (s *Source) AdvanceIfByteEquals(b byte) bool {
	if next, ok := s.PeekByte(); ok && next == b {
		s.pos++
		return true
	}
	return false
}

func (s *Source) FromPositionToCurrent(pos ast.Idx) string {
	return s.str[pos:s.pos]
}

func (s *Source) Slice(from, to ast.Idx) string {
	return s.str[from:to]
}

// runeWidth returns the byte length of the first rune in str. Invalid UTF-8
// counts as one byte so the cursor always advances.
func runeWidth(str string) int {
	if str[0] < utf8.RuneSelf {
		return 1
	}
	_, w := utf8.DecodeRuneInString(str)
	return w
}
