// Package hausdorff computes directed Hausdorff distances between point sets
// extracted from boolean grids.
//
// Given sets X and Y, the directed distance is max over x in X of min over y
// in Y of dist(x, y): the point of X whose nearest neighbor in Y is farthest
// away.
//
// # Quick Start
//
//	a, _ := grid.FromRows(rowsA)
//	b, _ := grid.FromRows(rowsB)
//	rng := rand.New(rand.NewSource(seed))
//	xs := grid.Points(a, isTarget, rng)
//	ys := grid.Points(b, isTarget, rng)
//
//	s, _ := hausdorff.New()
//	res, _ := s.Directed(ctx, xs, ys)
//	fmt.Println(res.Pair.X, res.Pair.Y, res.Distance)
//
// # Exact Search
//
// Directed scans Y for every x and abandons the scan as soon as some y is
// closer than the best minimum found so far, since such an x can no longer
// raise the maximum. Pruning only changes the work done, never the result.
// Shuffled input keeps pruning effective on spatially ordered grids.
//
// # Percentile Search
//
// Percentile approximates a percentile of the per-x nearest-neighbor
// distances while keeping only the k = max(1, ceil(|X|*|Y|*(1-p))) largest
// values in a bounded min-heap. PercentileResult.Complete reports whether k
// values were actually retained.
//
// # Metrics
//
// Distances are exact integers (squared Euclidean by default, see package
// distance). The square root is taken once, when the result is built.
package hausdorff
