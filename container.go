// Copyright (c) 2025 The kdtree Authors
// SPDX-License-Identifier: MIT

package kdtree

import "golang.org/x/exp/constraints"

// Number is the scalar element type a point set may hold: any
// integer or floating-point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// PointSet is the capability interface every point container must
// satisfy, selected once by the caller to pick a row-major, column-
// major, or nested storage layout.
//
// Implementations must make At and SwapRows safe for concurrent calls
// with disjoint (i, j) pairs — Build partitions work across
// goroutines by row index and never calls SwapRows with overlapping
// rows from two goroutines at once.
type PointSet[V Number] interface {
	// Len returns the number of points, n.
	Len() int

	// Dim returns the number of scalar components per point, d.
	Dim() int

	// At returns the j-th scalar component of the i-th point.
	At(i, j int) V

	// SwapRows exchanges all Dim() scalars of points i and j.
	SwapRows(i, j int)
}

// FlatRowMajor adapts a flat buffer of length n*d, laid out
// row-major (element (i, j) at d*i+j), to PointSet.
type FlatRowMajor[V Number] struct {
	Data []V
	Dims int
}

// NewFlatRowMajor wraps data as an n-by-dim row-major point set.
// len(data) must equal n*dim.
func NewFlatRowMajor[V Number](data []V, dim int) FlatRowMajor[V] {
	return FlatRowMajor[V]{Data: data, Dims: dim}
}

func (p FlatRowMajor[V]) Len() int { return len(p.Data) / p.Dims }
func (p FlatRowMajor[V]) Dim() int { return p.Dims }

func (p FlatRowMajor[V]) At(i, j int) V {
	return p.Data[p.Dims*i+j]
}

func (p FlatRowMajor[V]) SwapRows(i, j int) {
	if i == j {
		return
	}
	base0 := p.Dims * i
	base1 := p.Dims * j
	for d := 0; d < p.Dims; d++ {
		p.Data[base0+d], p.Data[base1+d] = p.Data[base1+d], p.Data[base0+d]
	}
}

// FlatColMajor adapts a flat buffer of length n*d, laid out
// column-major (element (i, j) at n*j+i), to PointSet.
type FlatColMajor[V Number] struct {
	Data []V
	N    int
	Dims int
}

// NewFlatColMajor wraps data as an n-by-dim column-major point set.
// len(data) must equal n*dim.
func NewFlatColMajor[V Number](data []V, n, dim int) FlatColMajor[V] {
	return FlatColMajor[V]{Data: data, N: n, Dims: dim}
}

func (p FlatColMajor[V]) Len() int { return p.N }
func (p FlatColMajor[V]) Dim() int { return p.Dims }

func (p FlatColMajor[V]) At(i, j int) V {
	return p.Data[p.N*j+i]
}

func (p FlatColMajor[V]) SwapRows(i, j int) {
	if i == j {
		return
	}
	for d := 0; d < p.Dims; d++ {
		off := p.N * d
		p.Data[off+i], p.Data[off+j] = p.Data[off+j], p.Data[off+i]
	}
}

// Nested adapts a [][]V container (one slice per point) to PointSet.
type Nested[V Number] struct {
	Rows [][]V
}

// NewNested wraps rows, one per point, as a PointSet. All rows must
// have equal length.
func NewNested[V Number](rows [][]V) Nested[V] {
	return Nested[V]{Rows: rows}
}

func (p Nested[V]) Len() int { return len(p.Rows) }
func (p Nested[V]) Dim() int {
	if len(p.Rows) == 0 {
		return 0
	}
	return len(p.Rows[0])
}

func (p Nested[V]) At(i, j int) V { return p.Rows[i][j] }

func (p Nested[V]) SwapRows(i, j int) {
	p.Rows[i], p.Rows[j] = p.Rows[j], p.Rows[i]
}
