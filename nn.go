// Copyright (c) 2025 The kdtree Authors
// SPDX-License-Identifier: MIT

package kdtree

import (
	"math"

	"github.com/samridh-dev/kdtree/internal/traverse"
)

// NN returns the index of the nearest point in p (already built via
// Build) to q under the squared Euclidean metric. rmax optionally
// bounds the search to squared distances strictly less than rmax;
// omit it to search without a bound.
//
// ok is false if no point within rmax was found (p is empty, or
// every point is farther than rmax); in that case idx is 0, but the
// explicit ok flag lets the caller distinguish "no match" from
// "index 0 matched."
//
// NN returns an error if q's length does not match p.Dim().
//
// ctx is accepted for symmetry with Build: queries are single-threaded
// with respect to one query and never spawn goroutines, so ctx's hint
// is unused here.
func NN[V Number](ctx Context, q []V, p PointSet[V], dim int, rmax ...float64) (idx int, ok bool, err error) {
	if dim <= 0 || p.Dim() != dim || len(q) != dim {
		return 0, false, ErrInvalidArgument
	}

	n := p.Len()
	if n == 0 {
		return 0, false, nil
	}

	bound := math.Inf(1)
	if len(rmax) > 0 {
		bound = rmax[0]
	}

	qf := make([]float64, dim)
	for i, v := range q {
		qf[i] = float64(v)
	}

	at := func(i, j int) float64 { return float64(p.At(i, j)) }

	bestIdx := -1

	visit := func(node int, rmax *float64) {
		d := squaredDistance(qf, at, node, dim)
		if d < *rmax {
			*rmax = d
			bestIdx = node
		}
	}

	traverse.Walk(n, traverse.Axis(dim), at, qf, &bound, visit)

	if bestIdx < 0 {
		return 0, false, nil
	}
	return bestIdx, true, nil
}

func squaredDistance(q []float64, at func(i, j int) float64, node, dim int) float64 {
	d := 0.0
	for a := 0; a < dim; a++ {
		diff := q[a] - at(node, a)
		d += diff * diff
	}
	return d
}
