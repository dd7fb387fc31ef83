// Package main compiles: every index comes from the array's own ranges or a
// range sharing their brand.
package main

import (
	"fmt"

	"github.com/katalvlaran/brandgrid/grid"
	"github.com/katalvlaran/brandgrid/span"
)

func main() {
	type rows struct{}
	type cols struct{}
	r, c := span.New(uint32(3), rows{}), span.New(uint32(3), cols{})
	a := grid.New(r, c)

	for i := range r.All() {
		for j := range a.ColRange.All() {
			a.Set(i, j, 1)
		}
	}
	fmt.Print(a)
}
