// Copyright (c) 2025 The kdtree Authors
// SPDX-License-Identifier: MIT

// Package treemath implements the closed-form arithmetic over a
// left-balanced binary tree embedded in a BFS array layout: given a
// node index, it computes the node's subtree size and the node's
// rank within its own depth-level, without descending the tree.
package treemath

import "github.com/samridh-dev/kdtree/internal/bitops"

// F returns the BFS index of the first node at depth l: F(l) = 2^l - 1.
func F(l int) int {
	return (1 << uint(l)) - 1
}

// LChild returns the BFS index of the left child of node s.
func LChild(s int) int {
	return 2*s + 1
}

// RChild returns the BFS index of the right child of node s.
func RChild(s int) int {
	return 2*s + 2
}

// Parent returns the BFS index of the parent of node s. Parent(0) is
// -1 (root has no parent).
func Parent(s int) int {
	return (s+1)/2 - 1
}

// Depth returns the depth of node s, i.e. floor(log2(s+1)).
func Depth(s int) int {
	return bitops.Bsr(uint64(s) + 1)
}

// Levels returns L = floor(log2(n)) + 1, the number of depth-levels in
// a left-balanced tree of n nodes (n >= 1).
func Levels(n int) int {
	return bitops.Bsr(uint64(n)) + 1
}

// SubtreeSize returns ss(s, n, L): the number of nodes in the subtree
// rooted at node s within a left-balanced tree of n nodes spanning L
// levels. SubtreeSize(s, n, L) is 0 when s >= n.
//
// Let l = depth(s) and fllc be the BFS index of s's first
// leaf-level left child, computed via a bitwise NOT/shift trick; the
// subtree size is then the size of a full subtree at that depth minus
// the leaves that don't exist in a tree of only n nodes.
func SubtreeSize(s, n, l int) int {
	if s >= n {
		return 0
	}
	depth := Depth(s)
	shift := uint(l - depth - 1)
	fllc := ^((^s) << shift)
	nnFllc := n - fllc
	if nnFllc < 0 {
		nnFllc = 0
	}
	if full := 1 << shift; nnFllc > full {
		nnFllc = full
	}
	return (1<<shift - 1) + nnFllc
}

// SubtreeSizeRecursive is the reference recursive definition of
// SubtreeSize, used only by tests to check the closed form (P1).
func SubtreeSizeRecursive(s, n, l int) int {
	if s >= n {
		return 0
	}
	return 1 + SubtreeSizeRecursive(LChild(s), n, l) + SubtreeSizeRecursive(RChild(s), n, l)
}

// SubtreeBase returns sb(s, n, L): the number of array positions in
// s's depth-level that lie strictly to the left of s's subtree, i.e.
// the rank of s's subtree among its siblings laid out contiguously.
func SubtreeBase(s, n, l int) int {
	depth := Depth(s)
	nls := s - F(depth)
	shift := uint(l - depth - 1)
	full := 1 << shift
	base := F(depth) + nls*(full-1)
	rem := n - (1<<uint(l-1) - 1)
	nlsFull := nls * full
	if nlsFull < rem {
		base += nlsFull
	} else {
		base += rem
	}
	return base
}

// SubtreeBaseScan is the reference scan-based definition of
// SubtreeBase, used only by tests to check the closed form (P2).
func SubtreeBaseScan(s, n, l int) int {
	depth := Depth(s)
	base := F(depth)
	for i := F(depth); i < s; i++ {
		base += SubtreeSize(i, n, l)
	}
	return base
}
