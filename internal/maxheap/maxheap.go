// Copyright (c) 2025 The kdtree Authors
// SPDX-License-Identifier: MIT

// Package maxheap implements the bounded max-heap keyed by squared
// distance that knn uses to maintain its k best candidates.
package maxheap

// Heapify restores the max-heap property over idx/dst[0..k) starting
// from position i, sifting down by the standard child-selection rule
// (compare against both children, descend into the larger). idx and
// dst are co-permuted on every swap.
func Heapify(idx []int, dst []float64, k, i int) {
	j := i
	for {
		best := j
		l := 2*j + 1
		r := 2*j + 2
		if l < k && dst[l] > dst[best] {
			best = l
		}
		if r < k && dst[r] > dst[best] {
			best = r
		}
		if best == j {
			return
		}
		idx[j], idx[best] = idx[best], idx[j]
		dst[j], dst[best] = dst[best], dst[j]
		j = best
	}
}

// HeapSort turns the max-heap over idx/dst[0..k) into ascending
// distance order in place, via standard in-place heapsort: heapify
// from the last parent down to the root, then repeatedly swap the
// root (current max) to the end of the shrinking prefix and
// re-heapify.
func HeapSort(idx []int, dst []float64, k int) {
	for i := k / 2; i > 0; {
		i--
		Heapify(idx, dst, k, i)
	}
	for i := k - 1; i > 0; i-- {
		idx[0], idx[i] = idx[i], idx[0]
		dst[0], dst[i] = dst[i], dst[0]
		Heapify(idx, dst, i, 0)
	}
}
