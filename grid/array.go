// SPDX-License-Identifier: MIT

package grid

import (
	"fmt"

	"github.com/katalvlaran/brandgrid/span"
)

// Array2 is a dense row-major array of float32 cells.
//   - RowRange/ColRange are the ranges the array was built from; iterate
//     them to obtain indices that type-check against this array.
//   - stride is a private copy of ColRange.Max(); offsets never depend on
//     the exported fields, so reassigning them cannot move an access out of
//     storage.
//   - data has exactly Rows()*Cols() cells and is owned by the array.
//
// The zero Array2 has no storage; build arrays with NewZero or New.
type Array2[R, C any] struct {
	RowRange span.Range[uint32, R] // row dimension
	ColRange span.Range[uint32, C] // column dimension

	stride uint32    // cells per row
	data   []float32 // len == rows*cols
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Array2[struct{}, struct{}])(nil)

// NewZero allocates a zero-filled rows×cols array.
// MAIN DESCRIPTION:
//   - Size storage from the two ranges and keep them for later iteration.
//
// Implementation:
//   - Stage 1: re-check both ranges against the brand registry (Bound), so a
//     zero Range of an already bound brand cannot shrink storage.
//   - Stage 2: allocate rows*cols cells (padded to at least one row and one
//     column, see alloc); make() zero-fills them.
//
// Behavior highlights:
//   - Empty dimensions are legal and produce an array with no cells.
//   - rows*cols overflowing int is not guarded.
//
// Panics:
//   - span.ErrMarkerRebound (via Bound) on a range that contradicts its brand.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewZero[R, C any](rows span.Range[uint32, R], cols span.Range[uint32, C]) *Array2[R, C] {
	rows, cols = rows.Bound(), cols.Bound()

	return &Array2[R, C]{
		RowRange: rows,
		ColRange: cols,
		stride:   cols.Max(),
		data:     alloc(rows.Max(), cols.Max()),
	}
}

// alloc returns zeroed storage of length rows*cols whose backing array holds
// at least max(rows,1)*max(cols,1) cells. A zero Index can be declared
// without iterating a range; the padding keeps the offset of any pair built
// from a zero Index and a real one inside the allocation even when the
// zero Index's dimension is empty.
func alloc(rows, cols uint32) []float32 {
	n := int(rows) * int(cols)

	return make([]float32, max(int(rows), 1)*max(int(cols), 1))[:n]
}

// New allocates a zero-filled rows×cols array. It is equivalent to NewZero.
func New[R, C any](rows span.Range[uint32, R], cols span.Range[uint32, C]) *Array2[R, C] {
	return NewZero(rows, cols)
}

// Rows returns the number of rows.
// Complexity: O(1).
func (a *Array2[R, C]) Rows() uint32 { return a.RowRange.Max() }

// Cols returns the number of columns.
// Complexity: O(1).
func (a *Array2[R, C]) Cols() uint32 { return a.stride }

// Len returns the number of cells, Rows()*Cols().
func (a *Array2[R, C]) Len() int { return len(a.data) }

// At returns the cell at (r, c).
func (a *Array2[R, C]) At(r span.Index[uint32, R], c span.Index[uint32, C]) float32 {
	return *a.cell(r, c)
}

// Set stores v at (r, c).
func (a *Array2[R, C]) Set(r span.Index[uint32, R], c span.Index[uint32, C], v float32) {
	*a.cell(r, c) = v
}

// Ptr returns a pointer to the cell at (r, c) for in-place updates such
// as *p += x. The pointer stays valid for the lifetime of the array.
func (a *Array2[R, C]) Ptr(r span.Index[uint32, R], c span.Index[uint32, C]) *float32 {
	return a.cell(r, c)
}

// Fill assigns fn(r, c) to every cell, visiting rows then columns in
// increasing order.
// Complexity: O(r*c) calls to fn.
func (a *Array2[R, C]) Fill(fn func(r span.Index[uint32, R], c span.Index[uint32, C]) float32) {
	for i := range a.RowRange.All() {
		for j := range a.ColRange.All() {
			*a.cell(i, j) = fn(i, j)
		}
	}
}

// Clone returns a deep copy with the same ranges.
// Complexity: O(r*c) time and memory.
func (a *Array2[R, C]) Clone() *Array2[R, C] {
	cp := make([]float32, cap(a.data))[:len(a.data)] // keep alloc's padding
	copy(cp, a.data)

	return &Array2[R, C]{
		RowRange: a.RowRange,
		ColRange: a.ColRange,
		stride:   a.stride,
		data:     cp,
	}
}
