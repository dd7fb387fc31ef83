// SPDX-License-Identifier: MIT

//go:build brandgrid_unchecked

package grid

import (
	"unsafe"

	"github.com/katalvlaran/brandgrid/span"
)

// cellSize is the byte width of one cell.
const cellSize = unsafe.Sizeof(float32(0))

// cell returns the address of (r, c) without any bounds check.
// Soundness rests entirely on offset being < len(a.data); see offset.
func (a *Array2[R, C]) cell(r span.Index[uint32, R], c span.Index[uint32, C]) *float32 {
	base := unsafe.Pointer(unsafe.SliceData(a.data))

	return (*float32)(unsafe.Add(base, uintptr(a.offset(r, c))*cellSize))
}
