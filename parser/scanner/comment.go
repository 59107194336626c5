package scanner

// skipSingleLineComment skips a // comment up to, not including, the line
// terminator.
func (s *Scanner) skipSingleLineComment() {
	s.src.SetPosition(s.src.Offset() + 2)
	for {
		r, ok := s.src.PeekRune()
		if !ok || isLineTerminator(r) {
			return
		}
		s.src.NextRune()
	}
}

// skipMultiLineComment skips a /* */ comment and reports whether it spans a
// line terminator.
func (s *Scanner) skipMultiLineComment() (hasLineTerminator bool) {
	start := s.src.Offset()
	s.src.SetPosition(start + 2)
	for {
		r, ok := s.src.PeekRune()
		if !ok {
			s.fail(msgUnterminatedComment, start)
			return
		}
		if isLineTerminator(r) {
			s.skipLineTerminator()
			hasLineTerminator = true
			continue
		}
		s.src.NextRune()
		if r == '*' && s.src.AdvanceIfByteEquals('/') {
			return
		}
	}
}
