// Copyright (c) 2025 The kdtree Authors
// SPDX-License-Identifier: MIT

package kdtree

import (
	"math"

	"github.com/samridh-dev/kdtree/internal/maxheap"
	"github.com/samridh-dev/kdtree/internal/traverse"
)

// KNN returns up to k indices of the points in p (already built via
// Build) nearest to q under the squared Euclidean metric, ordered by
// ascending squared distance. rmax optionally bounds the search to
// squared distances strictly less than rmax.
//
// If fewer than k points lie within rmax, KNN returns a shorter slice
// rather than padding with a sentinel index.
//
// KNN returns an error if dim <= 0, k <= 0, or q's length does not
// match p.Dim().
//
// ctx is accepted for symmetry with Build; queries are single-threaded
// with respect to one query.
func KNN[V Number](ctx Context, q []V, p PointSet[V], dim, k int, rmax ...float64) ([]int, error) {
	if dim <= 0 || k <= 0 || p.Dim() != dim || len(q) != dim {
		return nil, ErrInvalidArgument
	}

	n := p.Len()
	if n == 0 {
		return nil, nil
	}
	if k > n {
		k = n
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

	idx := make([]int, k)
	dst := make([]float64, k)
	for i := range dst {
		dst[i] = math.Inf(1)
	}
	filled := 0

	visit := func(node int, rmax *float64) {
		d := squaredDistance(qf, at, node, dim)
		if d < dst[0] && d < *rmax {
			dst[0] = d
			idx[0] = node
			if filled < k {
				filled++
			}
			maxheap.Heapify(idx, dst, k, 0)
			if dst[0] < *rmax {
				*rmax = dst[0]
			}
		}
	}

	traverse.Walk(n, traverse.Axis(dim), at, qf, &bound, visit)

	maxheap.HeapSort(idx, dst, k)

	if filled < k {
		return idx[:filled], nil
	}
	return idx, nil
}
