// SPDX-License-Identifier: MIT

// Package fill produces cell values for demo arrays.
package fill

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/katalvlaran/brandgrid/grid"
	"github.com/katalvlaran/brandgrid/span"
)

// Mode selects how cells are generated.
type Mode string

const (
	// Zero leaves every cell at 0, the placeholder the demo started with.
	Zero Mode = "zero"
	// Sequence writes 1, 2, 3, ... in row-major order.
	Sequence Mode = "sequence"
	// Random draws uniformly from [-1, 1) with a seeded PCG source.
	Random Mode = "random"
)

// ErrUnknownMode is returned by Parse for names outside Zero/Sequence/Random.
var ErrUnknownMode = errors.New("fill: unknown mode")

// Parse maps a config name to a Mode.
func Parse(s string) (Mode, error) {
	switch m := Mode(s); m {
	case Zero, Sequence, Random:
		return m, nil
	}

	return "", fmt.Errorf("fill: %q: %w", s, ErrUnknownMode)
}

// Source yields successive cell values.
type Source func() float32

// NewSource returns the generator for m. seed only affects Random; equal
// seeds give equal streams.
func NewSource(m Mode, seed uint64) Source {
	switch m {
	case Sequence:
		var n float32
		return func() float32 {
			n++
			return n
		}
	case Random:
		rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
		return func() float32 {
			return rng.Float32()*2 - 1
		}
	default:
		return func() float32 { return 0 }
	}
}

// Into writes src into every cell of a in row-major order.
func Into[R, C any](a *grid.Array2[R, C], src Source) {
	a.Fill(func(span.Index[uint32, R], span.Index[uint32, C]) float32 {
		return src()
	})
}
