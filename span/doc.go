// SPDX-License-Identifier: MIT

// Package span provides bounded counting ranges tagged with a compile-time
// brand, and the branded indices they produce.
//
// A Range[T, G] is the half-open interval [0, max) over an integer type T.
// G is a marker type chosen by the caller, normally declared right where
// the range is created:
//
//	type rows struct{}
//	type cols struct{}
//	r := span.New(uint32(8), rows{})
//	c := span.New(uint32(16), cols{})
//
// Iterating r yields Index[uint32, rows] values, which the compiler refuses
// to accept where an Index[uint32, cols] is expected even though both wrap
// a uint32. Index has no exported constructor, so every Index value a
// program holds was produced by iterating a range of the same brand.
//
// The first New for a (T, G) pair binds that pair to its bound for the rest
// of the process. Constructing a second range of the same brand with a
// different bound panics with ErrMarkerRebound. Together these two rules
// give the invariant consumers rely on: for any Index[T, G] i and any
// Range[T, G] r obtained from New, 0 <= i.Get() < r.Max().
//
// Complexity:
//   - New: O(1) amortized (one registry lookup per call).
//   - Iteration: O(1) per step, no allocation for Iter.Next.
package span
