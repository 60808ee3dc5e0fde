// Copyright (c) 2025 The kdtree Authors
// SPDX-License-Identifier: MIT

// Package construct implements the level-by-level in-place build:
// one tag array, one sort per level keyed by (tag, split-axis value),
// then a parallel tag rewrite for the next level.
//
// Build is written against float64 axis values rather than the
// generic Number constraint so it stays free of type parameters;
// kdtree.Build supplies closures that convert each point's scalar
// type to float64 for comparison while swapping the original rows.
package construct

import (
	"github.com/samridh-dev/kdtree/internal/parallel"
	"github.com/samridh-dev/kdtree/internal/sortutil"
	"github.com/samridh-dev/kdtree/internal/treemath"
)

// payload adapts a point container and its tag array to
// sortutil.Payload, ordering by (tag, axis-value) lexicographically
// and co-permuting tags with rows on every swap so each node's tag
// still names its owning subtree going into the next level.
type payload struct {
	at   func(i, j int) float64
	swap func(i, j int)
	tag  []int
	axis int
}

func (p *payload) Less(i, j int) bool {
	if p.tag[i] != p.tag[j] {
		return p.tag[i] < p.tag[j]
	}
	return p.at(i, p.axis) < p.at(j, p.axis)
}

func (p *payload) Swap(i, j int) {
	p.tag[i], p.tag[j] = p.tag[j], p.tag[i]
	p.swap(i, j)
}

// Build runs the level-by-level construction: n points, accessed
// through at (read scalar component as float64) and swapRow (swap
// two full rows in the caller's original container), are permuted in
// place into an implicit left-balanced k-d tree of dimension dim.
// hint is the execution context's parallelism hint, threaded down
// into both the per-level sort and the per-level tag update.
func Build(hint, n, dim int, at func(i, j int) float64, swapRow func(i, j int)) {
	if n <= 1 {
		return
	}

	tag := make([]int, n)
	L := treemath.Levels(n)

	for l := 0; l < L; l++ {
		axis := l % dim

		p := &payload{at: at, swap: swapRow, tag: tag, axis: axis}
		sortutil.Sort(hint, p, 0, n)

		updateTags(hint, tag, n, l, L)
	}
}

// updateTags rewrites tag[i] for i in [F(l), n) to the BFS id of
// node i's child for the next level. The loop is embarrassingly
// parallel over i (each iteration only reads/writes its own tag[i]
// and reads the immutable n, L), so it is partitioned across hint
// chunks via internal/parallel.Partition.
func updateTags(hint int, tag []int, n, l, L int) {
	lo := treemath.F(l)
	if lo >= n {
		return
	}

	parallel.Partition(lo, n, hint, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			c := tag[i]
			pivot := treemath.SubtreeBase(c, n, L) + treemath.SubtreeSize(treemath.LChild(c), n, L)
			switch {
			case i < pivot:
				tag[i] = treemath.LChild(c)
			case i > pivot:
				tag[i] = treemath.RChild(c)
			}
		}
	})
}
