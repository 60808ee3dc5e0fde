// Copyright (c) 2025 The kdtree Authors
// SPDX-License-Identifier: MIT

// Package golden provides randomly generated point sets and a slow,
// obviously-correct brute-force reference table, for use as the
// oracle property-based tests check Build/NN/KNN against.
package golden

import "math/rand/v2"

// RandomPoints returns n random points of dimension dim, each
// coordinate uniform in [0, scale).
func RandomPoints(prng *rand.Rand, n, dim int, scale float64) [][]float64 {
	pts := make([][]float64, n)
	for i := range pts {
		row := make([]float64, dim)
		for j := range row {
			row[j] = prng.Float64() * scale
		}
		pts[i] = row
	}
	return pts
}

// RandomQuery returns a single random query point of dimension dim,
// in the same coordinate range as RandomPoints.
func RandomQuery(prng *rand.Rand, dim int, scale float64) []float64 {
	q := make([]float64, dim)
	for j := range q {
		q[j] = prng.Float64() * scale
	}
	return q
}
