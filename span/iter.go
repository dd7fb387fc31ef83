// SPDX-License-Identifier: MIT

package span

import "golang.org/x/exp/constraints"

// Iter is a forward, one-shot cursor over a copy of a Range.
// Once exhausted it stays exhausted.
type Iter[T constraints.Integer, G any] struct {
	r   Range[T, G]
	cur T
}

// Next yields the index at the cursor and advances it by one.
// ok is false once the cursor has reached the range's max.
// The increment is not checked for overflow.
func (it *Iter[T, G]) Next() (i Index[T, G], ok bool) {
	if it.cur == it.r.max {
		return i, false
	}
	i.val = it.cur
	it.cur++

	return i, true
}

// Remaining returns how many indices Next will still yield.
func (it *Iter[T, G]) Remaining() int {
	return int(it.r.max - it.cur)
}
