package flat

import "unicode/utf8"

// Truncate shortens s to n bytes. It does nothing if n >= Len and panics if
// n is negative or does not lie on a char boundary.
func (s *String[A]) Truncate(n int) {
	if n >= int(s.n) {
		return
	}
	s.mustBoundary("truncate", n, int(s.n))
	s.n = uint8(n)
	s.recount()
}

// Pop removes the last rune and returns it. It reports false if s is empty.
func (s *String[A]) Pop() (rune, bool) {
	if s.n == 0 {
		return 0, false
	}
	r, size := utf8.DecodeLastRune(s.Bytes())
	s.n -= uint8(size)
	s.chars--
	return r, true
}

// Remove removes the rune starting at byte index i and returns it.
// It panics if i >= Len or i does not lie on a char boundary.
func (s *String[A]) Remove(i int) rune {
	s.mustBoundary("remove", i, int(s.n)-1)
	buf := s.buf()
	r, size := utf8.DecodeRune(buf[i:s.n])
	copy(buf[i:], buf[i+size:s.n])
	s.n -= uint8(size)
	s.chars--
	return r
}
