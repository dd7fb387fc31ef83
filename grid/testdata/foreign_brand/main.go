// Package main must not compile: b's ranges have the same bounds as a's but
// different brands.
package main

import (
	"github.com/katalvlaran/brandgrid/grid"
	"github.com/katalvlaran/brandgrid/span"
)

func main() {
	type rowsA struct{}
	type colsA struct{}
	type rowsB struct{}
	type colsB struct{}
	a := grid.New(span.New(uint32(3), rowsA{}), span.New(uint32(3), colsA{}))
	b := grid.New(span.New(uint32(3), rowsB{}), span.New(uint32(3), colsB{}))

	for i := range b.RowRange.All() {
		for j := range b.ColRange.All() {
			a.Set(i, j, 1)
		}
	}
}
