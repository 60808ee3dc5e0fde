// Copyright (c) 2025 The kdtree Authors
// SPDX-License-Identifier: MIT

package maxheap

import (
	"math/rand/v2"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

func isMaxHeap(dst []float64, k int) bool {
	for i := 0; i < k; i++ {
		l, r := 2*i+1, 2*i+2
		if l < k && dst[l] > dst[i] {
			return false
		}
		if r < k && dst[r] > dst[i] {
			return false
		}
	}
	return true
}

func TestHeapifyProducesValidHeap(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 1))
	for _, k := range []int{1, 2, 5, 16, 33} {
		dst := make([]float64, k)
		idx := make([]int, k)
		for i := range dst {
			dst[i] = r.Float64() * 100
			idx[i] = i
		}
		for i := k / 2; i > 0; {
			i--
			Heapify(idx, dst, k, i)
		}
		require.True(t, isMaxHeap(dst, k), "k=%d", k)
	}
}

func TestHeapSortAscending(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 4))
	for _, k := range []int{1, 2, 5, 16, 33, 100} {
		dst := make([]float64, k)
		idx := make([]int, k)
		for i := range dst {
			dst[i] = r.Float64() * 1000
			idx[i] = i
		}
		wantIdx := append([]int(nil), idx...)
		sort.Slice(wantIdx, func(a, b int) bool { return dst[wantIdx[a]] < dst[wantIdx[b]] })

		for i := k / 2; i > 0; {
			i--
			Heapify(idx, dst, k, i)
		}
		HeapSort(idx, dst, k)

		require.True(t, sort.Float64sAreSorted(dst), "k=%d", k)
		require.Equal(t, wantIdx, idx, "k=%d", k)
	}
}
