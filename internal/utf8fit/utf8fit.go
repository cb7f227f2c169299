// Package utf8fit measures how much UTF-8 text fits into a byte budget
// without splitting an encoded character.
package utf8fit

import (
	"bytes"
	"strings"
	"unicode/utf8"
)

// Fit returns the byte and rune length of the longest prefix of s that is at
// most room bytes long and ends on a character boundary.
func Fit(s string, room int) (nbytes, nchars int) {
	if room <= 0 || s == "" {
		return 0, 0
	}
	if len(s) <= room {
		return len(s), utf8.RuneCountInString(s)
	}
	for nbytes < len(s) {
		_, size := utf8.DecodeRuneInString(s[nbytes:])
		if nbytes+size > room {
			break
		}
		nbytes += size
		nchars++
	}
	return nbytes, nchars
}

// FitBytes is Fit for byte slices.
func FitBytes(b []byte, room int) (nbytes, nchars int) {
	if room <= 0 || len(b) == 0 {
		return 0, 0
	}
	if len(b) <= room {
		return len(b), utf8.RuneCount(b)
	}
	for nbytes < len(b) {
		_, size := utf8.DecodeRune(b[nbytes:])
		if nbytes+size > room {
			break
		}
		nbytes += size
		nchars++
	}
	return nbytes, nchars
}

// Sanitize returns s unchanged when it is valid UTF-8. Otherwise every run of
// invalid bytes is replaced by a single U+FFFD.
func Sanitize(s string) string {
	if utf8.ValidString(s) {
		return s
	}
	return strings.ToValidUTF8(s, string(utf8.RuneError))
}

// SanitizeBytes is Sanitize for byte slices. Valid input is returned as is,
// without copying.
func SanitizeBytes(b []byte) []byte {
	if utf8.Valid(b) {
		return b
	}
	return bytes.ToValidUTF8(b, []byte(string(utf8.RuneError)))
}
