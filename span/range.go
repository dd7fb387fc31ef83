// SPDX-License-Identifier: MIT

package span

import (
	"fmt"
	"iter"

	"golang.org/x/exp/constraints"
)

// Range is the half-open counting range [0, max) branded with marker type G.
//   - max is fixed at construction and never mutated.
//   - brand is zero-sized; it exists only so Range[T, A] and Range[T, B]
//     are distinct types.
type Range[T constraints.Integer, G any] struct {
	brand [0]G // compile-time identity only
	max   T    // exclusive upper bound
}

// New returns the range [0, max) branded with the type of marker.
// The marker value itself is ignored.
//
// Panics with an error wrapping ErrNegativeMax when max < 0, and with one
// wrapping ErrMarkerRebound when (T, G) is already bound to a different max.
func New[T constraints.Integer, G any](max T, marker G) Range[T, G] {
	_ = marker
	if max < 0 {
		panic(fmt.Errorf("span.New(%v): %w", max, ErrNegativeMax))
	}
	r := Range[T, G]{max: max}
	bind(r)

	return r
}

// Max returns the exclusive upper bound.
func (r Range[T, G]) Max() T { return r.max }

// Len returns the number of indices the range yields.
func (r Range[T, G]) Len() int { return int(r.max) }

// IsLast reports whether i is the final index yielded by r.
func (r Range[T, G]) IsLast(i Index[T, G]) bool {
	return i.val+1 == r.max
}

// Bound checks r against the brand registry and returns it unchanged.
// A zero Range of an unbound brand binds the brand to 0; a zero Range of a
// brand bound elsewhere panics with ErrMarkerRebound. Constructors that
// size storage from a range call Bound first.
func (r Range[T, G]) Bound() Range[T, G] {
	bind(r)

	return r
}

// Iter returns a fresh cursor positioned at the zero value of T.
func (r Range[T, G]) Iter() *Iter[T, G] {
	return &Iter[T, G]{r: r}
}

// All returns the indices of r in increasing order.
// Every call walks its own copy of r, so the sequence may be ranged over
// any number of times.
func (r Range[T, G]) All() iter.Seq[Index[T, G]] {
	return func(yield func(Index[T, G]) bool) {
		var cur T
		for cur != r.max {
			if !yield(Index[T, G]{val: cur}) {
				return
			}
			cur++
		}
	}
}
