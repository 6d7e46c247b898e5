package hausdorff

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/hupe1980/hausdorff/internal/queue"
	"github.com/hupe1980/hausdorff/point"
)

// PercentileResult is the outcome of a bounded percentile search.
type PercentileResult struct {
	Result
	// Percentile echoes the requested percentile.
	Percentile float64
	// Capacity is k, the size of the retained top set.
	Capacity int
	// Genuine is the number of per-x minimum distances actually retained.
	Genuine int
}

// Complete reports whether the retained set reached its capacity. Only then
// is the result the k-th largest minimum distance; otherwise it is the
// smallest of the Genuine retained values.
func (r PercentileResult) Complete() bool {
	return r.Genuine >= r.Capacity
}

// Percentile approximates the p-th percentile of the per-x nearest-neighbor
// distances from xs to ys.
//
// Only the k = max(1, ceil(|xs|*|ys|*(1-p))) largest minimum distances are
// kept, so memory stays O(k) regardless of input size. The returned pair is
// the smallest retained one.
func (s *Searcher) Percentile(ctx context.Context, xs, ys []point.Point, p float64) (PercentileResult, error) {
	start := time.Now()
	res, err := s.percentile(ctx, xs, ys, p)
	s.finish(ctx, ModePercentile, res.Result, start, err)
	if err == nil && !res.Complete() {
		s.logger.LogIncomplete(ctx, res)
	}
	return res, err
}

func (s *Searcher) percentile(ctx context.Context, xs, ys []point.Point, p float64) (PercentileResult, error) {
	if math.IsNaN(p) || p < 0 || p > 1 {
		return PercentileResult{}, fmt.Errorf("%w: %v", ErrInvalidPercentile, p)
	}
	if err := validate(xs, ys); err != nil {
		return PercentileResult{}, err
	}

	top := queue.NewBounded[point.Pair](capacity(len(xs), len(ys), p))
	var stats Stats
	for _, x := range xs {
		if err := ctx.Err(); err != nil {
			return PercentileResult{}, err
		}
		// Nothing can be pruned until k genuine values are held.
		var threshold uint64
		if top.Full() {
			m, _ := top.Min()
			threshold = m.Distance
		}
		nn, ok := s.nearest(x, ys, threshold, &stats)
		s.logger.LogScan(ctx, x, nn.Value, threshold, !ok)
		if !ok {
			continue
		}
		top.Offer(queue.Item[point.Pair]{Value: nn, Distance: nn.Value})
	}

	// The first x is never pruned, so top holds at least one item.
	m, _ := top.Min()
	return PercentileResult{
		Result: Result{
			Pair:     m.Value,
			Distance: s.boundary(m.Distance),
			Stats:    stats,
		},
		Percentile: p,
		Capacity:   top.Cap(),
		Genuine:    top.Len(),
	}, nil
}

// capacity returns max(1, ceil(nx*ny*(1-p))).
func capacity(nx, ny int, p float64) int {
	k := int(math.Ceil(float64(nx) * float64(ny) * (1 - p)))
	return max(k, 1)
}
