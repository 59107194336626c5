package scanner

// scanHexEscape reads n hex digits and returns their value. The cursor is
// left after the last digit consumed.
func (s *Scanner) scanHexEscape(n int) (rune, bool) {
	var value rune
	for i := 0; i < n; i++ {
		b, ok := s.src.PeekByte()
		if !ok {
			return 0, false
		}
		d := digitValue(b)
		if d >= 16 {
			return 0, false
		}
		s.src.NextByte()
		value = value<<4 | rune(d)
	}
	return value, true
}
