package flat

import "github.com/iw2rmb/flatstr/internal/grapheme"

// Graphemes returns the number of user-perceived characters (extended
// grapheme clusters) in the content.
func (s *String[A]) Graphemes() int {
	return grapheme.Count(s.UnsafeString())
}

// Width returns the number of terminal cells the content occupies.
func (s *String[A]) Width() int {
	return grapheme.Width(s.UnsafeString())
}
