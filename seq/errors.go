package seq

import "github.com/pkg/errors"

var (
	// ErrIndexOutOfBounds - index outside [0, size).
	ErrIndexOutOfBounds = errors.New("index out of bounds")

	// ErrEmpty - first/last/min/max requested on an empty sequence.
	ErrEmpty = errors.New("sequence is empty")

	// ErrUnsupported - the operation is deliberately not implemented
	// for this adapter family.
	ErrUnsupported = errors.New("operation is not supported")

	// ErrIteratorExhausted - the cursor was advanced past the last element.
	ErrIteratorExhausted = errors.New("iterator is exhausted")
)
