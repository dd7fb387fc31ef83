// Package brandgrid is a small library for indexing fixed-size ranges and
// dense two-dimensional arrays with compile-time branded indices.
//
// An index produced by iterating one range cannot be passed where an index
// of an unrelated range is expected, even when both wrap the same integer
// type and the same bound. Arrays accept only indices of their own row and
// column brands, so every access that type-checks is in bounds.
//
// Under the hood, everything is organized under two packages:
//
//	span/ — Range (bounded, branded counting range) and Index
//	grid/ — Array2 (dense row-major float32 storage), String, Multiply
//
// Quick example:
//
//	type rows struct{}
//	type cols struct{}
//	a := grid.New(span.New(uint32(2), rows{}), span.New(uint32(3), cols{}))
//	for i := range a.RowRange.All() {
//		for j := range a.ColRange.All() {
//			a.Set(i, j, 1)
//		}
//	}
//
// The cmd/brandgrid command runs a small demo pipeline (fill, multiply,
// print) on top of both packages.
//
//	go get github.com/katalvlaran/brandgrid
package brandgrid
