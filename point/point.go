// Package point defines integer coordinate vectors and candidate pairs.
package point

import (
	"math"
	"slices"
	"strconv"
	"strings"
)

// Point is an integer coordinate vector. Treat it as immutable once built.
type Point []int

// Dim returns the dimensionality of p.
func (p Point) Dim() int { return len(p) }

// Equal reports whether p and q have the same coordinates.
func (p Point) Equal(q Point) bool {
	return slices.Equal(p, q)
}

// Clone returns a copy of p that shares no memory with it.
func (p Point) Clone() Point {
	return slices.Clone(p)
}

func (p Point) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, c := range p {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.Itoa(c))
	}
	sb.WriteByte(')')
	return sb.String()
}

// Pair is a candidate pair: Y is the nearest point found for X and Value is
// the raw metric value between them.
type Pair struct {
	X     Point
	Y     Point
	Value uint64
}

// Distance returns the square root of Value.
func (p Pair) Distance() float64 {
	return math.Sqrt(float64(p.Value))
}

func (p Pair) String() string {
	return p.X.String() + " -> " + p.Y.String() + " (" + strconv.FormatUint(p.Value, 10) + ")"
}
