// SPDX-License-Identifier: MIT

package grid

import "github.com/katalvlaran/brandgrid/span"

// offset maps a branded (row, col) pair to its flat position.
// r < Rows() and c < Cols() hold by construction of span.Index, so the
// result is always < len(a.data).
func (a *Array2[R, C]) offset(r span.Index[uint32, R], c span.Index[uint32, C]) uint {
	return uint(r.Get())*uint(a.stride) + uint(c.Get())
}
