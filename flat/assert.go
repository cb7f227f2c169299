package flat

import (
	"fmt"
	"unicode/utf8"
)

func failf(format string, a ...any) {
	panic("flat: " + fmt.Sprintf(format, a...))
}

// mustBoundary panics unless 0 <= i <= limit and i is a char boundary.
func (s *String[A]) mustBoundary(op string, i, limit int) {
	if i < 0 || i > limit {
		failf("%s: byte index %d out of range [0, %d]", op, i, limit)
	}
	if i < int(s.n) && !utf8.RuneStart(s.buf()[i]) {
		failf("%s: byte index %d is not a char boundary", op, i)
	}
}
