// Copyright (c) 2025 The kdtree Authors
// SPDX-License-Identifier: MIT

package kdtree

import "runtime"

// Context is an opaque execution-context value carrying a
// parallelism hint for Build's internal fork/join work (bitonic sort
// recursion and the per-level tag-update pass). It has no other
// state: there is no hidden thread pool, no accelerator queue, and no
// component of this package spawns goroutines outside the scope of a
// single Build call.
//
// The zero value is not meaningful; use Sequential or Parallel.
//
// Context carries only the hint: there is no separate thread-pool or
// queue object to configure. internal/sortutil and internal/construct
// each build their own errgroup.Group per call, bounded by Hint().
type Context struct {
	hint int
}

// Sequential returns a Context that runs Build entirely on the
// calling goroutine.
func Sequential() Context {
	return Context{hint: 1}
}

// Parallel returns a Context with the given parallelism hint (typical
// a thread/goroutine count). A hint <= 1 behaves like Sequential.
func Parallel(hint int) Context {
	if hint < 1 {
		hint = 1
	}
	return Context{hint: hint}
}

// DefaultContext returns a Context hinting runtime.NumCPU() goroutines.
func DefaultContext() Context {
	return Parallel(runtime.NumCPU())
}

// Hint returns the configured parallelism hint; always >= 1.
func (c Context) Hint() int {
	if c.hint < 1 {
		return 1
	}
	return c.hint
}
