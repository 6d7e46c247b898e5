package testutil

import (
	"math/rand"
	"slices"
	"sync"

	"github.com/hupe1980/hausdorff/distance"
	"github.com/hupe1980/hausdorff/grid"
	"github.com/hupe1980/hausdorff/point"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe and satisfies grid.Shuffler.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

var _ grid.Shuffler = (*RNG)(nil)

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Shuffle pseudo-randomizes the order of n elements.
func (r *RNG) Shuffle(n int, swap func(i, j int)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Shuffle(n, swap)
}

// RandomMask returns a mask of the given shape where each cell is on with
// probability density. It panics on an invalid shape.
func (r *RNG) RandomMask(density float64, shape ...int) *grid.Mask {
	g, err := grid.New[bool](shape...)
	if err != nil {
		panic(err)
	}
	r.mu.Lock()
	idx := make([]int, len(shape))
	for i, n := 0, g.Len(); i < n; i++ {
		g.Set(r.rand.Float64() < density, idx...)
		next(idx, shape)
	}
	r.mu.Unlock()
	return g.Mask(func(on bool) bool { return on })
}

// next advances idx to the following row-major index.
func next(idx, shape []int) {
	for i := len(idx) - 1; i >= 0; i-- {
		idx[i]++
		if idx[i] < shape[i] {
			return
		}
		idx[i] = 0
	}
}

// RandomPoints returns num points of dimension dim with coordinates in
// [-extent, extent].
func (r *RNG) RandomPoints(num, dim, extent int) []point.Point {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := make([]int, num*dim)
	pts := make([]point.Point, num)
	for i := 0; i < num; i++ {
		p := point.Point(data[i*dim : (i+1)*dim : (i+1)*dim])
		for j := range p {
			p[j] = r.rand.Intn(2*extent+1) - extent
		}
		pts[i] = p
	}
	return pts
}

// MinDistances returns, for every x, the metric value to its nearest y,
// sorted in descending order. It returns nil if ys is empty.
func MinDistances(xs, ys []point.Point, fn distance.Func) []uint64 {
	if len(ys) == 0 {
		return nil
	}
	out := make([]uint64, 0, len(xs))
	for _, x := range xs {
		m := fn(x, ys[0])
		for _, y := range ys[1:] {
			m = min(m, fn(x, y))
		}
		out = append(out, m)
	}
	slices.Sort(out)
	slices.Reverse(out)
	return out
}

// BruteForceDirected computes max over xs of min over ys without pruning.
// ok is false when either set is empty.
func BruteForceDirected(xs, ys []point.Point, fn distance.Func) (best point.Pair, ok bool) {
	if len(xs) == 0 || len(ys) == 0 {
		return point.Pair{}, false
	}
	for i, x := range xs {
		nn := point.Pair{X: x, Y: ys[0], Value: fn(x, ys[0])}
		for _, y := range ys[1:] {
			if d := fn(x, y); d < nn.Value {
				nn.Y, nn.Value = y, d
			}
		}
		if i == 0 || nn.Value > best.Value {
			best = nn
		}
	}
	return best, true
}
