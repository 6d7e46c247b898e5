package distance

import (
	"fmt"
	"math"

	"github.com/hupe1980/hausdorff/point"
)

// DimensionMismatchError is the panic value raised when a metric is handed
// vectors of different dimensionality.
type DimensionMismatchError struct {
	A, B int
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("distance: dimension mismatch: %d != %d", e.A, e.B)
}

func mustMatch(a, b point.Point) {
	if len(a) != len(b) {
		panic(&DimensionMismatchError{A: len(a), B: len(b)})
	}
}

// SquaredL2 calculates the squared L2 (Euclidean) distance between two vectors.
// Panics with *DimensionMismatchError if the lengths differ.
func SquaredL2(a, b point.Point) uint64 {
	mustMatch(a, b)
	var sum uint64
	for i := range a {
		d := int64(a[i]) - int64(b[i])
		sum += uint64(d * d)
	}
	return sum
}

// Manhattan calculates the L1 distance between two vectors.
// Panics with *DimensionMismatchError if the lengths differ.
func Manhattan(a, b point.Point) uint64 {
	mustMatch(a, b)
	var sum uint64
	for i := range a {
		sum += absDiff(a[i], b[i])
	}
	return sum
}

// Chebyshev calculates the L-infinity distance between two vectors.
// Panics with *DimensionMismatchError if the lengths differ.
func Chebyshev(a, b point.Point) uint64 {
	mustMatch(a, b)
	var m uint64
	for i := range a {
		m = max(m, absDiff(a[i], b[i]))
	}
	return m
}

func absDiff(x, y int) uint64 {
	d := int64(x) - int64(y)
	if d < 0 {
		d = -d
	}
	return uint64(d)
}

// Metric represents the distance metric used for point comparison.
type Metric int

const (
	MetricSquaredL2 Metric = iota
	MetricManhattan
	MetricChebyshev
)

func (m Metric) String() string {
	switch m {
	case MetricSquaredL2:
		return "SquaredL2"
	case MetricManhattan:
		return "Manhattan"
	case MetricChebyshev:
		return "Chebyshev"
	default:
		return fmt.Sprintf("Unknown(%d)", m)
	}
}

// Func is a function type for distance calculation.
type Func func(a, b point.Point) uint64

// Provider returns the distance function for the given metric.
func Provider(m Metric) (Func, error) {
	switch m {
	case MetricSquaredL2:
		return SquaredL2, nil
	case MetricManhattan:
		return Manhattan, nil
	case MetricChebyshev:
		return Chebyshev, nil
	default:
		return nil, fmt.Errorf("unsupported metric: %v", m)
	}
}

// Boundary converts a raw metric value into the reported real distance.
// Only the squared metric needs a square root.
func Boundary(m Metric, v uint64) float64 {
	if m == MetricSquaredL2 {
		return math.Sqrt(float64(v))
	}
	return float64(v)
}
