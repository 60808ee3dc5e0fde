// Copyright (c) 2025 The kdtree Authors
// SPDX-License-Identifier: MIT

// Package sortutil implements the comparator-based sort primitive
// construct uses to order each build level's range by (tag,
// split-axis value). Payload exposes less/swap over positions so the
// sort stays agnostic of the underlying point/tag storage.
package sortutil

import (
	"fmt"
	"math/bits"

	"github.com/samridh-dev/kdtree/internal/parallel"
)

// Payload is the comparator/swap capability a sortable range must
// expose. Less must be a strict weak order consistent with a total
// preorder; Swap exchanges the full row state (point plus tag) at two
// positions.
type Payload interface {
	Less(i, j int) bool
	Swap(i, j int)
}

// Sort orders positions [n0, n1) of p. It always dispatches to
// Bitonic regardless of whether n1-n0 is a power of two; OddEven
// remains available directly as a sequential fallback and as a
// reference to check Bitonic's output against.
//
// Panics if n1 < n0 (invalid-range, a programmer error). No-op if
// n1 == n0.
func Sort(hint int, p Payload, n0, n1 int) {
	if n1 < n0 {
		panic(fmt.Sprintf("sortutil: invalid range [%d, %d)", n0, n1))
	}
	if n1 == n0 {
		return
	}
	Bitonic(hint, p, n0, n1)
}

// Bitonic sorts [n0, n1) with a bitonic network, recursing bsort/
// bmerge and tolerating non-power-of-two ranges via pow2LE in the
// merge step. Forking is bounded by maxDepth = log2(hint), beyond
// which bsort/bmerge run sequentially on the caller, per
// internal/parallel.ForkJoin's contract.
func Bitonic(hint int, p Payload, n0, n1 int) {
	if n1 < n0 {
		panic(fmt.Sprintf("sortutil: invalid range [%d, %d)", n0, n1))
	}
	if n1 == n0 {
		return
	}

	n := n1 - n0

	maxDepth := 0
	if hint > 1 {
		maxDepth = bits.Len(uint(hint)) - 1
	}

	var bsort func(lo, hi int, dir bool, depth int)
	var bmerge func(lo, hi int, dir bool, depth int)

	bmerge = func(lo, hi int, dir bool, depth int) {
		if hi <= 1 {
			return
		}
		m := pow2LE(hi)
		for i := lo; i < lo+hi-m; i++ {
			if dir == p.Less(i+m, i) {
				p.Swap(i+m, i)
			}
		}
		parallel.ForkJoin(depth, maxDepth,
			func() { bmerge(lo, m, dir, depth+1) },
			func() { bmerge(lo+m, hi-m, dir, depth+1) },
		)
	}

	bsort = func(lo, hi int, dir bool, depth int) {
		if hi <= 1 {
			return
		}
		m := hi / 2
		parallel.ForkJoin(depth, maxDepth,
			func() { bsort(lo, m, !dir, depth+1) },
			func() { bsort(lo+m, hi-m, dir, depth+1) },
		)
		bmerge(lo, hi, dir, depth)
	}

	bsort(n0, n, true, 0)
}

// OddEven sorts [n0, n1) with odd-even transposition: two interleaved
// passes per round until a round makes no swap. Sequential by nature;
// kept as a fallback and used directly by sortutil's own tests to
// check Bitonic's output.
func OddEven(p Payload, n0, n1 int) {
	if n1 < n0 {
		panic(fmt.Sprintf("sortutil: invalid range [%d, %d)", n0, n1))
	}
	if n1 == n0 {
		return
	}

	for {
		sorted := true

		for i := n0 + 1; i < n1-1; i += 2 {
			if p.Less(i+1, i) {
				p.Swap(i, i+1)
				sorted = false
			}
		}
		for i := n0; i < n1-1; i += 2 {
			if p.Less(i+1, i) {
				p.Swap(i, i+1)
				sorted = false
			}
		}

		if sorted {
			return
		}
	}
}

// pow2LE returns the largest power of two strictly less than n
// (pow2LE(4) == 2, pow2LE(5) == 4), and 0 for n <= 1.
func pow2LE(n int) int {
	k := 1
	for k > 0 && k < n {
		k <<= 1
	}
	return k >> 1
}
