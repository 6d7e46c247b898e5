// Package distance provides distance metrics over integer coordinate vectors.
//
// All metrics return exact non-negative integers so comparisons inside the
// searches never accumulate floating-point error. Conversion to a real-valued
// distance happens once, at the boundary, via Boundary.
//
// # Supported Metrics
//
//   - MetricSquaredL2: Squared Euclidean distance (default)
//   - MetricManhattan: Sum of absolute per-axis differences
//   - MetricChebyshev: Largest absolute per-axis difference
//
// # Usage
//
//	d := distance.SquaredL2(a, b)
//	fn, _ := distance.Provider(distance.MetricManhattan)
//	real := distance.Boundary(distance.MetricSquaredL2, d)
package distance
