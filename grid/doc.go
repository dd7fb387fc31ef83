// SPDX-License-Identifier: MIT

// Package grid provides Array2, a dense row-major float32 array whose row
// and column positions can only be addressed with branded indices from the
// array's own ranges.
//
// What & Why:
//
//	An Array2[R, C] is built from a span.Range[uint32, R] and a
//	span.Range[uint32, C]. At, Set and Ptr accept only
//	span.Index[uint32, R] and span.Index[uint32, C], so a row index of one
//	array cannot be passed where a column index (or another array's row
//	index) is expected. Because span guarantees every Index of a brand is
//	below that brand's bound, the array computes the flat offset
//	row*cols + col and reads storage without validating it.
//
//	Two arrays that share a marker for one dimension are statically known
//	to agree on its size. Multiply relies on this: its signature only
//	type-checks when the inner dimensions share a brand.
//
// Trust boundary:
//
//	All offset arithmetic lives in access.go. The default build keeps Go's
//	own slice check (it cannot be removed without unsafe). Building with
//	-tags brandgrid_unchecked swaps in access_unchecked.go, which reads and
//	writes through unsafe pointer arithmetic and performs no check at all.
//
// Complexity:
//
//	NewZero/New/Clone: O(r*c). At/Set/Ptr: O(1). String: O(r*min(c,21)).
//	Multiply: O(r*k*c).
package grid
