// Copyright (c) 2025 The kdtree Authors
// SPDX-License-Identifier: MIT

package treemath

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestSeedScenarioSS/SB reproduces spec.md's literal seed scenario 6.
func TestSeedScenarioSS(t *testing.T) {
	require.Equal(t, 1, SubtreeSize(1, 2, Levels(2)))
	require.Equal(t, 3, SubtreeSize(0, 3, Levels(3)))
	require.Equal(t, 1, SubtreeSize(1, 3, Levels(3)))
	require.Equal(t, 10, SubtreeSize(0, 10, Levels(10)))
	require.Equal(t, 2, SubtreeSize(4, 10, Levels(10)))
}

func TestSeedScenarioSB(t *testing.T) {
	require.Equal(t, 1, SubtreeBase(1, 2, Levels(2)))
	require.Equal(t, 2, SubtreeBase(2, 3, Levels(3)))
	require.Equal(t, 3, SubtreeBase(3, 4, Levels(4)))
}

// TestSubtreeSizeClosedFormMatchesRecursive verifies P1 for a range of
// tree sizes and every node index within range.
func TestSubtreeSizeClosedFormMatchesRecursive(t *testing.T) {
	for n := 1; n <= 200; n++ {
		l := Levels(n)
		for s := 0; s < n; s++ {
			got := SubtreeSize(s, n, l)
			want := SubtreeSizeRecursive(s, n, l)
			require.Equalf(t, want, got, "ss(%d,%d,%d)", s, n, l)
		}
	}
}

// TestSubtreeBaseClosedFormMatchesScan verifies P2.
func TestSubtreeBaseClosedFormMatchesScan(t *testing.T) {
	for n := 1; n <= 200; n++ {
		l := Levels(n)
		for s := 0; s < n; s++ {
			got := SubtreeBase(s, n, l)
			want := SubtreeBaseScan(s, n, l)
			require.Equalf(t, want, got, "sb(%d,%d,%d)", s, n, l)
		}
	}
}

func TestFLChildRChildParent(t *testing.T) {
	require.Equal(t, 0, F(0))
	require.Equal(t, 1, F(1))
	require.Equal(t, 3, F(2))
	require.Equal(t, 7, F(3))

	for s := 0; s < 100; s++ {
		l := LChild(s)
		r := RChild(s)
		require.Equal(t, s, Parent(l))
		require.Equal(t, s, Parent(r))
	}
}
