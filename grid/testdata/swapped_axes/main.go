// Package main must not compile: a square array's row and column indices
// are still different types.
package main

import (
	"github.com/katalvlaran/brandgrid/grid"
	"github.com/katalvlaran/brandgrid/span"
)

func main() {
	type rows struct{}
	type cols struct{}
	a := grid.New(span.New(uint32(4), rows{}), span.New(uint32(4), cols{}))

	for i := range a.RowRange.All() {
		for j := range a.ColRange.All() {
			_ = a.At(j, i)
		}
	}
}
