// SPDX-License-Identifier: MIT

package span

import (
	"fmt"
	"strconv"

	"golang.org/x/exp/constraints"
)

// Index is a position produced by iterating a Range[T, G].
// There is no exported constructor: the only way to hold a non-zero Index
// is to receive it from Iter.Next or Range.All.
//
// The zero Index has value 0 and is therefore only a valid position for
// brands bound to a non-empty range.
type Index[T constraints.Integer, G any] struct {
	brand [0]G
	val   T
}

// Get returns the underlying value.
func (i Index[T, G]) Get() T { return i.val }

// Equal reports whether i and o denote the same position.
func (i Index[T, G]) Equal(o Index[T, G]) bool { return i.val == o.val }

// String renders the value in base 10.
func (i Index[T, G]) String() string {
	if isSigned[T]() {
		return strconv.FormatInt(int64(i.val), 10)
	}

	return strconv.FormatUint(uint64(i.val), 10)
}

// Format formats the underlying value with the caller's verb and flags,
// so %d, %x, %5v behave exactly as for a bare T.
func (i Index[T, G]) Format(f fmt.State, verb rune) {
	fmt.Fprintf(f, fmt.FormatString(f, verb), i.val)
}

// isSigned reports whether T can hold negative values.
func isSigned[T constraints.Integer]() bool {
	var zero T

	return zero-1 < zero
}

var (
	_ fmt.Formatter = Index[int, struct{}]{}
	_ fmt.Stringer  = Index[int, struct{}]{}
)
