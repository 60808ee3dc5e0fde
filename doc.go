// Copyright (c) 2025 The kdtree Authors
// SPDX-License-Identifier: MIT

// Package kdtree implements a spatial index for k-dimensional points,
// represented as an implicit left-balanced k-d tree packed into a
// single flat array of points.
//
// The tree is built in place by permuting the caller's point array:
// no auxiliary tree structure is allocated beyond one transient tag
// array. Once built, the array supports nearest-neighbor (NN) and
// k-nearest-neighbor (KNN) queries under the squared Euclidean
// metric.
//
// Build proceeds level by level: at each depth, the subrange of the
// array holding that depth's nodes is sorted so each node ends up
// holding the median point of its own subtree along that depth's
// split axis. The position of each node's median within the sort is
// computed in O(log n) via closed-form arithmetic (internal/treemath)
// rather than by descending the tree.
//
// Deletion and incremental insertion are not supported; mutate the
// backing point set and call Build again.
package kdtree
