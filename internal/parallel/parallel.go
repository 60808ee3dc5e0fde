// Copyright (c) 2025 The kdtree Authors
// SPDX-License-Identifier: MIT

// Package parallel provides the two fork/join shapes the build
// pipeline needs: a depth-bounded binary fork/join for the bitonic
// sort recursion, and a partition-and-join over a contiguous index
// range for the per-level tag update.
//
// Both are built on errgroup.Group rather than raw sync.WaitGroup
// plus manual panic recovery.
package parallel

import "golang.org/x/sync/errgroup"

// ForkJoin runs left and right. Below maxDepth, left is forked onto a
// fresh goroutine via errgroup.Group while right runs on the caller;
// the call blocks until both finish. At or beyond maxDepth, both run
// sequentially on the caller to cap fork overhead.
func ForkJoin(depth, maxDepth int, left, right func()) {
	if depth >= maxDepth {
		left()
		right()
		return
	}

	var g errgroup.Group
	g.Go(func() error {
		left()
		return nil
	})
	right()
	_ = g.Wait()
}

// Partition splits [lo, hi) into at most workers contiguous,
// equal-sized chunks and runs fn over each chunk concurrently,
// joining before returning. workers <= 1 runs fn sequentially over
// the whole range.
func Partition(lo, hi, workers int, fn func(lo, hi int)) {
	n := hi - lo
	if n <= 0 {
		return
	}
	if workers < 1 {
		workers = 1
	}
	if workers == 1 || n == 1 {
		fn(lo, hi)
		return
	}
	if workers > n {
		workers = n
	}

	chunk := (n + workers - 1) / workers

	var g errgroup.Group
	for start := lo; start < hi; start += chunk {
		end := start + chunk
		if end > hi {
			end = hi
		}
		s, e := start, end
		g.Go(func() error {
			fn(s, e)
			return nil
		})
	}
	_ = g.Wait()
}
