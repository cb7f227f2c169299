package flat

import (
	"unicode/utf8"

	"github.com/iw2rmb/flatstr/internal/utf8fit"
)

// Insert inserts text at byte index i.
//
// When the result would exceed the capacity, the inserted text keeps as many
// whole characters as fit after i, and the old content after i keeps the
// longest whole-character prefix that fits behind it; everything else is
// dropped from the end.
//
// text may be a view of s itself, such as a slice of UnsafeString.
//
// Insert panics if i is greater than Len or does not lie on a char boundary.
func (s *String[A]) Insert(i int, text string) {
	s.mustBoundary("insert", i, int(s.n))
	s.insert(i, utf8fit.Sanitize(text))
}

// InsertRune inserts r at byte index i. It panics like Insert.
func (s *String[A]) InsertRune(i int, r rune) {
	s.mustBoundary("insert", i, int(s.n))
	var enc [utf8.UTFMax]byte
	w := utf8.EncodeRune(enc[:], r)
	s.insert(i, bytesToString(enc[:w]))
}

func (s *String[A]) insert(i int, text string) {
	if text == "" {
		return
	}
	buf := s.buf()
	room := len(buf) - i
	tb, _ := utf8fit.Fit(text, room)
	if tb == 0 {
		return
	}
	keep, _ := utf8fit.FitBytes(buf[i:s.n], room-tb)

	// The shift below would overwrite text if it points into s.
	if overlaps(buf, text[:tb]) {
		var scratch [MaxCap]byte
		text = bytesToString(scratch[:copy(scratch[:], text[:tb])])
	}
	copy(buf[i+tb:], buf[i:i+keep])
	copy(buf[i:], text[:tb])
	s.n = uint8(i + tb + keep)
	s.recount()
}
