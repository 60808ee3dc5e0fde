// Copyright (c) 2025 The kdtree Authors
// SPDX-License-Identifier: MIT

package kdtree_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/samridh-dev/kdtree"
)

func TestNestedPointSet(t *testing.T) {
	rows := [][]int{{1, 2}, {3, 4}, {5, 6}}
	p := kdtree.NewNested(rows)

	require.Equal(t, 3, p.Len())
	require.Equal(t, 2, p.Dim())
	require.Equal(t, 3, p.At(1, 0))

	p.SwapRows(0, 2)
	require.Equal(t, 5, p.At(0, 0))
	require.Equal(t, 1, p.At(2, 0))
}

func TestFlatColMajorRoundTrip(t *testing.T) {
	// n=2 points, dim=3, column-major.
	data := []float64{
		1, 2, // axis 0
		10, 20, // axis 1
		100, 200, // axis 2
	}
	p := kdtree.NewFlatColMajor(data, 2, 3)

	require.Equal(t, 2, p.Len())
	require.Equal(t, 3, p.Dim())
	require.Equal(t, 1.0, p.At(0, 0))
	require.Equal(t, 20.0, p.At(1, 1))
	require.Equal(t, 200.0, p.At(1, 2))

	p.SwapRows(0, 1)
	require.Equal(t, 2.0, p.At(0, 0))
	require.Equal(t, 20.0, p.At(0, 1))
	require.Equal(t, 200.0, p.At(0, 2))
}

func TestBuildWithNestedContainer(t *testing.T) {
	rows := [][]float64{
		{10, 15}, {46, 63}, {68, 21}, {40, 33}, {25, 54},
		{15, 43}, {44, 58}, {45, 40}, {62, 69}, {53, 67},
	}
	p := kdtree.NewNested(rows)
	require.NoError(t, kdtree.Build(kdtree.Sequential(), p, 2))

	idx, ok, err := kdtree.NN(kdtree.Sequential(), []float64{50, 50}, p, 2)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 4, idx)
}
