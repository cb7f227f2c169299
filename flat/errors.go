package flat

import "github.com/pkg/errors"

var (
	// ErrOverflow is returned by decoders when the input is longer than the
	// capacity. Decoding never truncates.
	ErrOverflow = errors.New("flat: content exceeds capacity")

	ErrInvalidUTF8 = errors.New("flat: invalid UTF-8")
)

func overflowf(size, capacity int) error {
	return errors.Wrapf(ErrOverflow, "%d bytes into capacity %d", size, capacity)
}
