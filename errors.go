package hausdorff

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptySet is returned when either point set is empty, so no pair exists.
	// It is never confused with a legitimate zero distance.
	ErrEmptySet = errors.New("empty point set")

	// ErrInvalidPercentile is returned when the percentile is NaN or outside [0, 1].
	ErrInvalidPercentile = errors.New("percentile must be within [0, 1]")
)

// ErrDimensionMismatch indicates that the points handed to a search do not
// share one dimensionality.
type ErrDimensionMismatch struct {
	Expected int
	Actual   int
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}
