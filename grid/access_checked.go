// SPDX-License-Identifier: MIT

//go:build !brandgrid_unchecked

package grid

import "github.com/katalvlaran/brandgrid/span"

// cell returns the address of (r, c) through ordinary slice indexing.
func (a *Array2[R, C]) cell(r span.Index[uint32, R], c span.Index[uint32, C]) *float32 {
	return &a.data[a.offset(r, c)]
}
