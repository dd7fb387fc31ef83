// Package main must not compile: Multiply requires the inner dimensions to
// share a brand.
package main

import (
	"github.com/katalvlaran/brandgrid/grid"
	"github.com/katalvlaran/brandgrid/span"
)

func main() {
	type batch struct{}
	type in struct{}
	type other struct{}
	type out struct{}
	x := grid.New(span.New(uint32(2), batch{}), span.New(uint32(5), in{}))
	w := grid.New(span.New(uint32(5), other{}), span.New(uint32(2), out{}))

	_ = grid.Multiply(x, w)
}
