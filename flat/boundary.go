package flat

import "unicode/utf8"

// IsCharBoundary reports whether byte index i is 0, Len, or the start of a
// rune in the content.
func (s *String[A]) IsCharBoundary(i int) bool {
	if i == 0 || i == int(s.n) {
		return true
	}
	if i < 0 || i > int(s.n) {
		return false
	}
	return utf8.RuneStart(s.buf()[i])
}

// NextCharBoundary returns the first char boundary after i, clamped to
// [0, Len].
func (s *String[A]) NextCharBoundary(i int) int {
	n := int(s.n)
	if i < 0 {
		return 0
	}
	if i >= n {
		return n
	}
	buf := s.buf()
	i++
	for i < n && !utf8.RuneStart(buf[i]) {
		i++
	}
	return i
}

// PrevCharBoundary returns the last char boundary before i, clamped to
// [0, Len].
func (s *String[A]) PrevCharBoundary(i int) int {
	n := int(s.n)
	if i <= 0 {
		return 0
	}
	if i > n {
		return n
	}
	buf := s.buf()
	i--
	for i > 0 && !utf8.RuneStart(buf[i]) {
		i--
	}
	return i
}

// ByteOffset converts a rune offset into a byte offset.
// It reports false if off is outside [0, Chars].
func (s *String[A]) ByteOffset(off int) (int, bool) {
	if off < 0 || off > int(s.chars) {
		return 0, false
	}
	if off == int(s.chars) {
		return int(s.n), true
	}
	b := s.Bytes()
	i := 0
	for ; off > 0; off-- {
		_, size := utf8.DecodeRune(b[i:])
		i += size
	}
	return i, true
}

// CharOffset converts a byte offset into a rune offset.
// It reports false if i is not a char boundary.
func (s *String[A]) CharOffset(i int) (int, bool) {
	if !s.IsCharBoundary(i) {
		return 0, false
	}
	return utf8.RuneCount(s.buf()[:i]), true
}
