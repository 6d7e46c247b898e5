package grid

import (
	"errors"
	"fmt"
)

// maxCells is the number of offsets a 32-bit Roaring bitmap can address.
const maxCells = 1 << 32

// ErrInvalidShape is returned when a grid shape has no axes, a negative
// extent, or more cells than a mask can address.
var ErrInvalidShape = errors.New("grid: invalid shape")

// Dense is a row-major N-dimensional array.
type Dense[T any] struct {
	shape   []int
	strides []int
	data    []T
}

// New returns a zero-valued grid with the given extents.
func New[T any](shape ...int) (*Dense[T], error) {
	strides, n, err := layout(shape)
	if err != nil {
		return nil, err
	}
	return &Dense[T]{
		shape:   append([]int(nil), shape...),
		strides: strides,
		data:    make([]T, n),
	}, nil
}

// FromRows builds a 2D grid from rows of equal length.
func FromRows[T any](rows [][]T) (*Dense[T], error) {
	cols := 0
	if len(rows) > 0 {
		cols = len(rows[0])
	}
	g, err := New[T](len(rows), cols)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrInvalidShape, i, len(row), cols)
		}
		copy(g.data[i*cols:], row)
	}
	return g, nil
}

// Shape returns a copy of the grid extents.
func (g *Dense[T]) Shape() []int { return append([]int(nil), g.shape...) }

// Len returns the number of cells.
func (g *Dense[T]) Len() int { return len(g.data) }

// At returns the value at idx. It panics if idx is out of range.
func (g *Dense[T]) At(idx ...int) T {
	return g.data[mustOffset(g.shape, g.strides, idx)]
}

// Set stores v at idx. It panics if idx is out of range.
func (g *Dense[T]) Set(v T, idx ...int) {
	g.data[mustOffset(g.shape, g.strides, idx)] = v
}

// Mask returns the mask of cells for which pred reports true.
func (g *Dense[T]) Mask(pred func(T) bool) *Mask {
	m := newMask(g.shape, g.strides)
	for i, v := range g.data {
		if pred(v) {
			m.rb.Add(uint32(i))
		}
	}
	return m
}

func layout(shape []int) ([]int, int, error) {
	if len(shape) == 0 {
		return nil, 0, fmt.Errorf("%w: no axes", ErrInvalidShape)
	}
	strides := make([]int, len(shape))
	n := 1
	for i := len(shape) - 1; i >= 0; i-- {
		if shape[i] < 0 {
			return nil, 0, fmt.Errorf("%w: axis %d has extent %d", ErrInvalidShape, i, shape[i])
		}
		strides[i] = n
		if shape[i] > 0 && int64(n) > maxCells/int64(shape[i]) {
			return nil, 0, fmt.Errorf("%w: more than %d cells", ErrInvalidShape, int64(maxCells))
		}
		n *= shape[i]
	}
	return strides, n, nil
}

// offset maps idx to its row-major position; ok is false when idx is out of range.
func offset(shape, strides, idx []int) (int, bool) {
	if len(idx) != len(shape) {
		return 0, false
	}
	off := 0
	for i, c := range idx {
		if c < 0 || c >= shape[i] {
			return 0, false
		}
		off += c * strides[i]
	}
	return off, true
}

func mustOffset(shape, strides, idx []int) int {
	off, ok := offset(shape, strides, idx)
	if !ok {
		panic(fmt.Sprintf("grid: index %v out of range for shape %v", idx, shape))
	}
	return off
}
