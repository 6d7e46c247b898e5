package grid

import (
	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/hausdorff/point"
)

// Shuffler permutes n elements through swap. *rand.Rand satisfies it.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// Mask is a boolean grid storing the row-major offsets of its "on" cells in
// a Roaring bitmap.
type Mask struct {
	shape   []int
	strides []int
	rb      *roaring.Bitmap
}

// NewMask returns an all-off mask with the given extents.
func NewMask(shape ...int) (*Mask, error) {
	strides, _, err := layout(shape)
	if err != nil {
		return nil, err
	}
	return newMask(append([]int(nil), shape...), strides), nil
}

func newMask(shape, strides []int) *Mask {
	return &Mask{
		shape:   shape,
		strides: strides,
		rb:      roaring.New(),
	}
}

// Shape returns a copy of the mask extents.
func (m *Mask) Shape() []int { return append([]int(nil), m.shape...) }

// Dim returns the number of axes.
func (m *Mask) Dim() int { return len(m.shape) }

// Set turns the cell at idx on. It panics if idx is out of range.
func (m *Mask) Set(idx ...int) {
	m.rb.Add(uint32(mustOffset(m.shape, m.strides, idx)))
}

// Contains reports whether the cell at idx is on. Out-of-range cells are off.
func (m *Mask) Contains(idx ...int) bool {
	off, ok := offset(m.shape, m.strides, idx)
	return ok && m.rb.Contains(uint32(off))
}

// Count returns the number of on cells.
func (m *Mask) Count() int {
	return int(m.rb.GetCardinality())
}

// IsEmpty returns true if no cell is on.
func (m *Mask) IsEmpty() bool {
	return m.rb.IsEmpty()
}

// Points returns the coordinates of every on cell, permuted by s.
// A nil s keeps row-major order.
func (m *Mask) Points(s Shuffler) []point.Point {
	pts := make([]point.Point, 0, m.Count())
	it := m.rb.Iterator()
	for it.HasNext() {
		pts = append(pts, m.coords(int(it.Next())))
	}
	if s != nil {
		s.Shuffle(len(pts), func(i, j int) {
			pts[i], pts[j] = pts[j], pts[i]
		})
	}
	return pts
}

// coords is the inverse of offset.
func (m *Mask) coords(off int) point.Point {
	p := make(point.Point, len(m.shape))
	for i, stride := range m.strides {
		p[i] = off / stride
		off %= stride
	}
	return p
}

// Points extracts the cells of g accepted by pred as a shuffled point list.
func Points[T any](g *Dense[T], pred func(T) bool, s Shuffler) []point.Point {
	return g.Mask(pred).Points(s)
}
