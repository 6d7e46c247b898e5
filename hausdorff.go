package hausdorff

import (
	"context"
	"time"

	"github.com/hupe1980/hausdorff/distance"
	"github.com/hupe1980/hausdorff/point"
)

// Mode names a search kind in logs and metrics.
type Mode string

const (
	ModeDirected   Mode = "directed"
	ModePercentile Mode = "percentile"
	ModeSymmetric  Mode = "symmetric"
)

// Stats records the work a search performed.
type Stats struct {
	// Comparisons is the number of metric evaluations.
	Comparisons int
	// Pruned is the number of points of X whose scan stopped early.
	Pruned int
}

func (s Stats) add(o Stats) Stats {
	return Stats{Comparisons: s.Comparisons + o.Comparisons, Pruned: s.Pruned + o.Pruned}
}

// Result is the extremal pair found by a search.
type Result struct {
	// Pair holds x, its nearest y and the raw metric value between them.
	Pair point.Pair
	// Distance is Pair.Value converted at the boundary (the square root for
	// the default metric).
	Distance float64
	Stats    Stats
}

// Searcher computes directed Hausdorff distances between point sets.
// A Searcher holds no mutable state and may be shared.
type Searcher struct {
	dist     distance.Func
	boundary func(uint64) float64
	logger   *Logger
	metrics  MetricsCollector
}

// New creates a Searcher. The default metric is squared Euclidean distance.
func New(optFns ...Option) (*Searcher, error) {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.err != nil {
		return nil, opts.err
	}
	return &Searcher{
		dist:     opts.dist,
		boundary: opts.boundary,
		logger:   opts.logger,
		metrics:  opts.metricsCollector,
	}, nil
}

// Directed returns the pair realizing max over x in xs of min over y in ys.
//
// Points of xs are visited in the given order; shuffled input (see
// grid.Mask.Points) keeps pruning effective on spatially ordered data.
// ErrEmptySet is returned when either set is empty.
func (s *Searcher) Directed(ctx context.Context, xs, ys []point.Point) (Result, error) {
	start := time.Now()
	res, err := s.directed(ctx, xs, ys)
	s.finish(ctx, ModeDirected, res, start, err)
	return res, err
}

// Symmetric returns the larger of Directed(xs, ys) and Directed(ys, xs).
// Pair.X belongs to the set the winning direction started from.
func (s *Searcher) Symmetric(ctx context.Context, xs, ys []point.Point) (Result, error) {
	start := time.Now()
	res, err := s.symmetric(ctx, xs, ys)
	s.finish(ctx, ModeSymmetric, res, start, err)
	return res, err
}

func (s *Searcher) symmetric(ctx context.Context, xs, ys []point.Point) (Result, error) {
	fwd, err := s.directed(ctx, xs, ys)
	if err != nil {
		return Result{}, err
	}
	rev, err := s.directed(ctx, ys, xs)
	if err != nil {
		return Result{}, err
	}
	stats := fwd.Stats.add(rev.Stats)
	if rev.Pair.Value > fwd.Pair.Value {
		rev.Stats = stats
		return rev, nil
	}
	fwd.Stats = stats
	return fwd, nil
}

func (s *Searcher) directed(ctx context.Context, xs, ys []point.Point) (Result, error) {
	if err := validate(xs, ys); err != nil {
		return Result{}, err
	}

	var (
		best  point.Pair
		found bool
		stats Stats
	)
	for _, x := range xs {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		// The bound is fixed for the whole scan of x.
		bound := best.Value
		nn, ok := s.nearest(x, ys, bound, &stats)
		s.logger.LogScan(ctx, x, nn.Value, bound, !ok)
		if !ok {
			continue
		}
		if !found || nn.Value > best.Value {
			best = nn
			found = true
		}
	}

	return Result{
		Pair:     best,
		Distance: s.boundary(best.Value),
		Stats:    stats,
	}, nil
}

// nearest scans ys for the nearest neighbor of x. The scan stops as soon as
// some y lies closer than bound: x's nearest distance is then below bound and
// x cannot matter, so ok is false.
func (s *Searcher) nearest(x point.Point, ys []point.Point, bound uint64, stats *Stats) (nn point.Pair, ok bool) {
	nn.X = x
	for i, y := range ys {
		d := s.dist(x, y)
		stats.Comparisons++
		if d < bound {
			stats.Pruned++
			return nn, false
		}
		if i == 0 || d < nn.Value {
			nn.Y = y
			nn.Value = d
		}
	}
	return nn, true
}

func (s *Searcher) finish(ctx context.Context, mode Mode, res Result, start time.Time, err error) {
	s.metrics.RecordSearch(mode, res.Stats, time.Since(start), err)
	s.logger.LogSearch(ctx, mode, res, err)
}

// validate rejects empty sets and mixed dimensionality before any metric runs.
func validate(xs, ys []point.Point) error {
	if len(xs) == 0 || len(ys) == 0 {
		return ErrEmptySet
	}
	dim := xs[0].Dim()
	for _, set := range [][]point.Point{xs, ys} {
		for _, p := range set {
			if p.Dim() != dim {
				return &ErrDimensionMismatch{Expected: dim, Actual: p.Dim()}
			}
		}
	}
	return nil
}
