package flat

import (
	"io"
	"unicode/utf8"

	"github.com/iw2rmb/flatstr/internal/grapheme"
	"github.com/iw2rmb/flatstr/internal/utf8fit"
)

// PushString appends text. If it does not fit, the longest prefix made of
// whole characters is appended and the rest is dropped.
//
// Invalid UTF-8 in text is replaced by U+FFFD before appending.
func (s *String[A]) PushString(text string) {
	s.push(utf8fit.Sanitize(text))
}

// PushBytes is PushString for a byte slice. b is not retained.
func (s *String[A]) PushBytes(b []byte) {
	s.push(bytesToString(utf8fit.SanitizeBytes(b)))
}

// Push appends r if its encoding fits.
func (s *String[A]) Push(r rune) {
	var enc [utf8.UTFMax]byte
	w := utf8.EncodeRune(enc[:], r)
	s.pushWhole(bytesToString(enc[:w]))
}

// TryPushString appends text only if all of it fits. On success it returns
// the new content, as Bytes would; otherwise s is left unchanged.
func (s *String[A]) TryPushString(text string) ([]byte, bool) {
	if !s.pushWhole(utf8fit.Sanitize(text)) {
		return nil, false
	}
	return s.Bytes(), true
}

// TryPush is TryPushString for a single rune.
func (s *String[A]) TryPush(r rune) ([]byte, bool) {
	var enc [utf8.UTFMax]byte
	w := utf8.EncodeRune(enc[:], r)
	if !s.pushWhole(bytesToString(enc[:w])) {
		return nil, false
	}
	return s.Bytes(), true
}

// Set replaces the content with the longest whole-character prefix of text
// that fits.
func (s *String[A]) Set(text string) {
	s.Clear()
	s.PushString(text)
}

// PushGraphemes is PushString, except that when text does not fit it is cut
// at a grapheme cluster boundary, so combining marks, flags and emoji
// sequences are kept or dropped as a unit.
func (s *String[A]) PushGraphemes(text string) {
	text = utf8fit.Sanitize(text)
	if s.pushWhole(text) {
		return
	}
	nb, nc := grapheme.Fit(text, s.Available())
	s.pushPrefix(text, nb, nc)
}

// Write appends p following the PushString policy and implements io.Writer.
// It returns io.ErrShortWrite when part of p was dropped, and
// ErrInvalidUTF8 without writing anything when p is not valid UTF-8.
func (s *String[A]) Write(p []byte) (int, error) {
	if !utf8.Valid(p) {
		return 0, ErrInvalidUTF8
	}
	n := s.push(bytesToString(p))
	if n < len(p) {
		return n, io.ErrShortWrite
	}
	return n, nil
}

// WriteString is Write for a string.
func (s *String[A]) WriteString(text string) (int, error) {
	if !utf8.ValidString(text) {
		return 0, ErrInvalidUTF8
	}
	n := s.push(text)
	if n < len(text) {
		return n, io.ErrShortWrite
	}
	return n, nil
}

// WriteRune appends r and returns its encoded length, or io.ErrShortWrite
// if it does not fit.
func (s *String[A]) WriteRune(r rune) (int, error) {
	var enc [utf8.UTFMax]byte
	w := utf8.EncodeRune(enc[:], r)
	if !s.pushWhole(bytesToString(enc[:w])) {
		return 0, io.ErrShortWrite
	}
	return w, nil
}

// push appends valid UTF-8 text and returns the number of bytes taken.
func (s *String[A]) push(text string) int {
	if s.pushWhole(text) {
		return len(text)
	}
	nb, nc := utf8fit.Fit(text, s.Available())
	s.pushPrefix(text, nb, nc)
	return nb
}

// pushWhole appends text if all of it fits.
func (s *String[A]) pushWhole(text string) bool {
	n := int(s.n)
	buf := s.buf()
	if n+len(text) > len(buf) {
		return false
	}
	copy(buf[n:], text)
	s.n += uint8(len(text))
	s.chars += uint8(utf8.RuneCountInString(text))
	return true
}

func (s *String[A]) pushPrefix(text string, nbytes, nchars int) {
	if nbytes == 0 {
		return
	}
	copy(s.buf()[s.n:], text[:nbytes])
	s.n += uint8(nbytes)
	s.chars += uint8(nchars)
}
