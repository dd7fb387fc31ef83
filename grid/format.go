// SPDX-License-Identifier: MIT

package grid

import (
	"strconv"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_fmtOpen     = "["
	_fmtClose    = "]"
	_fmtSep      = ", "
	_fmtEllipsis = ", ..."
	_fmtRowSep   = ",\n "
	_fmtEnd      = "]\n"

	// maxShownCol is the last column index printed in a row.
	maxShownCol = 20
	// cellPrecision is the number of decimals per cell.
	cellPrecision = 2
)

// String renders the array as nested bracketed rows.
// MAIN DESCRIPTION:
//   - "[[a, b],\n [c, d]]\n" with every cell printed to two decimals.
//
// Implementation:
//   - Stage 1: for each row, open it on column 0 and separate later cells
//     with ", ".
//   - Stage 2: past column 20 append ", ..." and skip the rest of the row.
//   - Stage 3: close the row; rows other than the last (RowRange.IsLast)
//     are followed by ",\n ".
//   - Stage 4: close the outer bracket and end with a newline.
//
// Behavior highlights:
//   - A row opens only when it has a column 0, so arrays without columns
//     print their row closers alone ("[],\n ]]\n" for 2×0), and an array
//     without rows prints "[]\n".
//
// Complexity:
//   - Time O(r*min(c,21)).
func (a *Array2[R, C]) String() string {
	var (
		b   strings.Builder
		num []byte
	)
	b.WriteString(_fmtOpen)
	for i := range a.RowRange.All() {
		for j := range a.ColRange.All() {
			if j.Get() > maxShownCol {
				b.WriteString(_fmtEllipsis)
				break
			}
			if j.Get() == 0 {
				b.WriteString(_fmtOpen)
			} else {
				b.WriteString(_fmtSep)
			}
			num = strconv.AppendFloat(num[:0], float64(a.At(i, j)), 'f', cellPrecision, 32)
			b.Write(num)
		}
		b.WriteString(_fmtClose)
		if !a.RowRange.IsLast(i) {
			b.WriteString(_fmtRowSep)
		}
	}
	b.WriteString(_fmtEnd)

	return b.String()
}
