package flat

import "unicode/utf8"

// String is a UTF-8 string of at most len(A) bytes, stored inline in A.
//
// A must be a byte array type, [N]byte with N in [1, MaxCap]. New checks this
// and panics otherwise; a zero value of a bad type panics on first use.
//
// The zero value is an empty string ready to use. Bytes past Len are stale
// and never observed, which also means == on two Strings may report false
// for equal content; use Equal.
type String[A any] struct {
	data  A
	n     uint8
	chars uint8
}

// Default is the capacity used when nothing better is known.
type Default = String[[14]byte]

// New returns an empty String. It panics if A is not a byte array or its
// length is outside [1, MaxCap].
func New[A any]() String[A] {
	mustStorage[A]()
	return String[A]{}
}

// From returns a String holding the longest prefix of text that fits.
func From[A any](text string) String[A] {
	s := New[A]()
	s.PushString(text)
	return s
}

// FromBytes is From for a byte slice. b is not retained.
func FromBytes[A any](b []byte) String[A] {
	s := New[A]()
	s.PushBytes(b)
	return s
}

// Len returns the content length in bytes.
func (s *String[A]) Len() int { return int(s.n) }

// IsEmpty reports whether Len is zero.
func (s *String[A]) IsEmpty() bool { return s.n == 0 }

// Chars returns the number of runes in the content.
func (s *String[A]) Chars() int { return int(s.chars) }

// Cap returns the capacity in bytes.
func (s *String[A]) Cap() int { return len(s.buf()) }

// Available returns how many more bytes fit.
func (s *String[A]) Available() int { return s.Cap() - int(s.n) }

// Clear empties s. Storage is kept as is.
func (s *String[A]) Clear() {
	s.n = 0
	s.chars = 0
}

// Bytes returns the content as a slice aliasing s. The slice is valid until
// the next call that modifies s and must not be written to.
func (s *String[A]) Bytes() []byte {
	n := int(s.n)
	return s.buf()[:n:n]
}

// UnsafeString returns the content as a string sharing memory with s, without
// copying. It carries the same lifetime rules as Bytes: the result changes
// under the caller if s is modified, so it must not be retained.
func (s *String[A]) UnsafeString() string {
	return bytesToString(s.Bytes())
}

// String returns a copy of the content.
func (s String[A]) String() string {
	return string(s.Bytes())
}

// assign replaces the content with text, or reports why it cannot.
// s is unchanged on error.
func (s *String[A]) assign(text string) error {
	if !utf8.ValidString(text) {
		return ErrInvalidUTF8
	}
	buf := s.buf()
	if len(text) > len(buf) {
		return overflowf(len(text), len(buf))
	}
	copy(buf, text)
	s.n = uint8(len(text))
	s.chars = uint8(utf8.RuneCountInString(text))
	return nil
}

// recount recomputes chars from the content.
func (s *String[A]) recount() {
	s.chars = uint8(utf8.RuneCount(s.Bytes()))
}
