// Copyright (c) 2025 The kdtree Authors
// SPDX-License-Identifier: MIT

// Package traverse implements the stateless iterative descent over
// the implicit tree shared by nn and knn. It uses two cursors (curr,
// prev) and parent back-tracking instead of a heap-allocated stack.
package traverse

import "github.com/samridh-dev/kdtree/internal/bitops"

// Visitor is invoked once per node, the first time it is reached from
// its parent. rmax is a pointer to the caller's pruning bound
// (squared distance); the visitor may tighten it.
type Visitor func(node int, rmax *float64)

// SplitAxis returns the split axis for node, typically
// bsr(node+1) mod dim. Exposed so callers that want a non-default
// axis function (e.g. tests) can supply one; Axis below is the
// standard one.
type SplitAxis func(node int) int

// Axis returns the default split axis bsr(node+1) mod dim used by
// NN/KNN; it is the same axis (depth mod dim) that Build splits on.
func Axis(dim int) SplitAxis {
	return func(node int) int {
		return bitops.Bsr(uint64(node)+1) % dim
	}
}

// Walk descends the implicit tree of n nodes rooted at P, calling
// visit on each reached node and pruning subtrees whose split-axis
// separation from the query exceeds *rmax. axis(node) returns the
// split axis of node; at(node, axis) returns P[node]'s coordinate
// along that axis; q is the query point (indexed by axis).
//
// The one-dimensional separation is squared before comparison against
// rmax, since rmax itself is a squared distance; comparing it against
// an unsquared separation would be dimensionally inconsistent.
func Walk(n int, axis SplitAxis, at func(node, axis int) float64, q []float64, rmax *float64, visit Visitor) {
	curr := 0
	prev := -1

	for {
		fromParent := prev < curr
		parent := (curr+1)/2 - 1

		if curr >= n {
			prev = curr
			curr = parent
			if curr == -1 {
				return
			}
			continue
		}

		if fromParent {
			visit(curr, rmax)
		}

		sDim := axis(curr)
		sPos := at(curr, sDim)
		qPos := q[sDim]
		signDist := qPos - sPos
		closeSide := 0
		if signDist > 0 {
			closeSide = 1
		}
		closeChild := 2*curr + 1 + closeSide
		farChild := 2*curr + 2 - closeSide
		farInRange := signDist*signDist <= *rmax

		var next int
		switch {
		case fromParent:
			next = closeChild
		case prev == closeChild:
			if farInRange {
				next = farChild
			} else {
				next = parent
			}
		default:
			next = parent
		}

		if next == -1 {
			return
		}

		prev = curr
		curr = next
	}
}
