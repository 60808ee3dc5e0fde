// Copyright (c) 2025 The kdtree Authors
// SPDX-License-Identifier: MIT

package kdtree

import "errors"

// Errors returned at the public boundary for caller-reachable invalid
// arguments. Panic is reserved for internal logic errors that
// indicate a broken invariant (see internal/sortutil); input that a
// caller could plausibly pass is reported through a normal error
// return instead.
var (
	// ErrInvalidArgument is returned when dim <= 0, dim does not match
	// the point set's Dim(), KNN's k <= 0, or a query vector's length
	// does not match the tree's dimension.
	ErrInvalidArgument = errors.New("kdtree: invalid argument")
)
