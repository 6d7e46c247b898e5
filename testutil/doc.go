// Package testutil provides testing utilities for hausdorff.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded shuffle source, random masks and point sets, and
// brute-force ground truth without pruning.
//
// # Random Inputs
//
//	rng := testutil.NewRNG(seed)
//	m := rng.RandomMask(0.2, 32, 32)
//	xs := m.Points(rng)
//
// # Ground Truth
//
//	want := testutil.BruteForceDirected(xs, ys, distance.SquaredL2)
package testutil
