package tessellate

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is returned, possibly wrapped, when a function is called
// with arguments it cannot process, such as an empty path or a division count
// smaller than one. No work is performed in that case.
var ErrInvalidInput = errors.New("tessellate: invalid input")

// ErrGeometry is returned, wrapped in a *[JoinError], when the rebuilt
// segments cannot be joined into a single continuous path.
var ErrGeometry = errors.New("tessellate: geometry failure")

// JoinError reports that joining segments resulted in a number of paths
// other than one.
type JoinError struct {
	// Number of paths that the segments were joined into.
	Pieces int
	// Tolerance that was used for joining.
	Tolerance float64
}

func (err *JoinError) Error() string {
	return fmt.Sprintf("tessellate: segments joined into %d curves instead of 1 (tolerance %g)", err.Pieces, err.Tolerance)
}

func (err *JoinError) Unwrap() error {
	return ErrGeometry
}

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}
