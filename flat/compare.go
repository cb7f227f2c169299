package flat

import (
	"bytes"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Equal reports whether s and o hold the same content.
func (s *String[A]) Equal(o *String[A]) bool {
	return bytes.Equal(s.Bytes(), o.Bytes())
}

// Compare compares content lexicographically by bytes.
func (s *String[A]) Compare(o *String[A]) int {
	return bytes.Compare(s.Bytes(), o.Bytes())
}

// EqualString reports whether the content equals text. Use it to compare
// Strings of different capacities through one of their views.
func (s *String[A]) EqualString(text string) bool {
	return s.UnsafeString() == text
}

// CompareString compares the content with text lexicographically by bytes.
func (s *String[A]) CompareString(text string) int {
	return strings.Compare(s.UnsafeString(), text)
}

// Hash returns the xxHash64 of the content. Equal content hashes equally
// regardless of capacity or stale bytes.
func (s *String[A]) Hash() uint64 {
	return xxhash.Sum64(s.Bytes())
}
