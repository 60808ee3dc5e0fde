// Copyright (c) 2025 The kdtree Authors
// SPDX-License-Identifier: MIT

package golden

import "sort"

// BruteTable is a simple and slow point table, a plain slice of
// points, as a golden reference for NN/KNN. It implements the same
// queries as the package's tree by brute-force distance computation
// over every point, with none of the tree's pruning.
type BruteTable struct {
	Points [][]float64
}

// NewBruteTable wraps pts as a BruteTable. pts is not copied.
func NewBruteTable(pts [][]float64) *BruteTable {
	return &BruteTable{Points: pts}
}

func (t *BruteTable) squaredDist(i int, q []float64) float64 {
	d := 0.0
	for j, qv := range q {
		diff := qv - t.Points[i][j]
		d += diff * diff
	}
	return d
}

// NN returns the index of the nearest point to q, and its squared
// distance. Ties are broken by lowest index.
func (t *BruteTable) NN(q []float64) (idx int, dst float64) {
	dst = -1
	for i := range t.Points {
		d := t.squaredDist(i, q)
		if dst < 0 || d < dst {
			dst = d
			idx = i
		}
	}
	return idx, dst
}

// KNN returns up to k indices nearest to q, sorted by ascending
// squared distance, computed by sorting every point's distance (no
// pruning).
func (t *BruteTable) KNN(q []float64, k int) []int {
	n := len(t.Points)
	if k > n {
		k = n
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return t.squaredDist(order[a], q) < t.squaredDist(order[b], q)
	})

	return order[:k]
}
