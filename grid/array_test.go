// SPDX-License-Identifier: MIT
// Package grid_test contains unit tests for Array2 storage and access.
package grid_test

import (
	"testing"

	"github.com/katalvlaran/brandgrid/grid"
	"github.com/katalvlaran/brandgrid/span"
	"github.com/stretchr/testify/require"
)

// TestNewZeroIsAllZero verifies a fresh array holds only zeros.
func TestNewZeroIsAllZero(t *testing.T) {
	type rows struct{}
	type cols struct{}
	a := grid.NewZero(span.New(uint32(3), rows{}), span.New(uint32(5), cols{}))

	require.Equal(t, uint32(3), a.Rows())
	require.Equal(t, uint32(5), a.Cols())
	require.Equal(t, 15, a.Len())
	for i := range a.RowRange.All() {
		for j := range a.ColRange.All() {
			require.Zero(t, a.At(i, j))
		}
	}
}

// TestNewMatchesNewZero checks both constructors build the same array.
func TestNewMatchesNewZero(t *testing.T) {
	type rows struct{}
	type cols struct{}
	r, c := span.New(uint32(2), rows{}), span.New(uint32(4), cols{})

	require.Equal(t, grid.NewZero(r, c), grid.New(r, c))
}

// TestRoundTrip writes a distinct value to every cell then reads all back.
func TestRoundTrip(t *testing.T) {
	type rows struct{}
	type cols struct{}
	a := grid.New(span.New(uint32(6), rows{}), span.New(uint32(7), cols{}))

	for i := range a.RowRange.All() {
		for j := range a.ColRange.All() {
			a.Set(i, j, float32(i.Get()*100+j.Get()))
		}
	}

	seen := make(map[float32]struct{}, a.Len())
	for i := range a.RowRange.All() {
		for j := range a.ColRange.All() {
			v := a.At(i, j)
			require.Equal(t, float32(i.Get()*100+j.Get()), v, "cell (%d,%d)", i, j)
			seen[v] = struct{}{}
		}
	}
	require.Len(t, seen, 6*7) // every (i, j) addresses its own cell
}

// TestPtrUpdatesInPlace checks Ptr aliases the stored cell.
func TestPtrUpdatesInPlace(t *testing.T) {
	type rows struct{}
	type cols struct{}
	a := grid.New(span.New(uint32(2), rows{}), span.New(uint32(2), cols{}))

	for i := range a.RowRange.All() {
		for j := range a.ColRange.All() {
			p := a.Ptr(i, j)
			*p += 1.5
			*p *= 2
			require.Equal(t, float32(3), a.At(i, j))
		}
	}
}

// TestFillVisitsRowMajor ensures Fill covers every cell in row-major order.
func TestFillVisitsRowMajor(t *testing.T) {
	type rows struct{}
	type cols struct{}
	a := grid.New(span.New(uint32(3), rows{}), span.New(uint32(2), cols{}))

	var n float32
	a.Fill(func(r span.Index[uint32, rows], c span.Index[uint32, cols]) float32 {
		n++
		return n
	})
	require.Equal(t, "[[1.00, 2.00],\n [3.00, 4.00],\n [5.00, 6.00]]\n", a.String())
}

// TestCloneIndependence ensures Clone returns storage that is not shared.
func TestCloneIndependence(t *testing.T) {
	type rows struct{}
	type cols struct{}
	a := grid.New(span.New(uint32(1), rows{}), span.New(uint32(1), cols{}))

	var (
		i0 span.Index[uint32, rows]
		j0 span.Index[uint32, cols]
	)
	a.Set(i0, j0, 1)
	b := a.Clone()
	b.Set(i0, j0, 3)

	require.Equal(t, float32(1), a.At(i0, j0))
	require.Equal(t, float32(3), b.At(i0, j0))
	require.Equal(t, a.RowRange, b.RowRange)
	require.Equal(t, a.ColRange, b.ColRange)
}

// TestSharedMarkerAcrossArrays builds two arrays that share a dimension and
// indexes both with the same index value.
func TestSharedMarkerAcrossArrays(t *testing.T) {
	type batch struct{}
	type width struct{}
	type height struct{}
	n := span.New(uint32(4), width{})

	x := grid.New(span.New(uint32(2), batch{}), n)  // width as columns
	w := grid.New(n, span.New(uint32(3), height{})) // width as rows

	for k := range n.All() {
		for b := range x.RowRange.All() {
			x.Set(b, k, float32(k.Get()))
		}
		for h := range w.ColRange.All() {
			w.Set(k, h, float32(k.Get()))
		}
	}
	for k := range x.ColRange.All() {
		for h := range w.ColRange.All() {
			require.Equal(t, float32(k.Get()), w.At(k, h))
		}
	}
}

// TestEmptyDimensions covers arrays with no cells.
func TestEmptyDimensions(t *testing.T) {
	type rows struct{}
	type cols struct{}
	a := grid.New(span.New(uint32(0), rows{}), span.New(uint32(9), cols{}))

	require.Zero(t, a.Len())
	require.Zero(t, a.Rows())
	require.Equal(t, uint32(9), a.Cols())
}

// TestZeroRangeOfBoundBrandPanics: storage cannot be sized from a range
// that contradicts its brand.
func TestZeroRangeOfBoundBrandPanics(t *testing.T) {
	type rows struct{}
	type cols struct{}
	span.New(uint32(5), rows{})
	c := span.New(uint32(5), cols{})

	require.Panics(t, func() {
		grid.New(span.Range[uint32, rows]{}, c)
	})
}
