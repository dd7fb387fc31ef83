// SPDX-License-Identifier: MIT

package grid

// Multiply returns the B×O product of in (B×I) and w (I×O).
// MAIN DESCRIPTION:
//   - The inner dimension is shared by brand I, so mismatched operands do
//     not compile; no runtime shape check exists or is needed.
//
// Implementation:
//   - Stage 1: allocate the output over in.RowRange × w.ColRange.
//   - Stage 2: for every (b, o), walk i over in.ColRange and combine
//     w[i, o] * in[b, i] into out[b, o] per Options.
//
// Behavior highlights:
//   - Default (WithAccumulate): out[b, o] = Σ_i in[b, i] * w[i, o].
//   - WithOverwrite: out[b, o] = in[b, last] * w[last, o]; zero when the
//     inner dimension is empty.
//   - Operands are not modified.
//
// Complexity:
//   - Time O(B*I*O), Space O(B*O).
func Multiply[B, I, O any](in *Array2[B, I], w *Array2[I, O], opts ...Option) *Array2[B, O] {
	o := gatherOptions(opts...)
	out := NewZero(in.RowRange, w.ColRange)

	for b := range out.RowRange.All() {
		for c := range out.ColRange.All() {
			cell := out.Ptr(b, c)
			for k := range in.ColRange.All() {
				if o.accumulate {
					*cell += w.At(k, c) * in.At(b, k)
				} else {
					*cell = w.At(k, c) * in.At(b, k)
				}
			}
		}
	}

	return out
}
