// Copyright (c) 2025 The kdtree Authors
// SPDX-License-Identifier: MIT

package kdtree

import "github.com/samridh-dev/kdtree/internal/construct"

// Build permutes p in place into an implicit left-balanced k-d tree
// of dimension dim. ctx's parallelism hint drives both the per-level
// sort and the per-level tag update.
//
// Build reports ErrInvalidArgument if dim <= 0 or if dim does not
// match p.Dim(). n <= 1 is a no-op: an index of zero or one points is
// trivially already a valid tree.
func Build[V Number](ctx Context, p PointSet[V], dim int) error {
	if dim <= 0 {
		return ErrInvalidArgument
	}
	if p.Dim() != dim {
		return ErrInvalidArgument
	}

	n := p.Len()
	if n <= 1 {
		return nil
	}

	at := func(i, j int) float64 { return float64(p.At(i, j)) }
	swap := func(i, j int) { p.SwapRows(i, j) }

	construct.Build(ctx.Hint(), n, dim, at, swap)
	return nil
}
