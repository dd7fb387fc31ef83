// SPDX-License-Identifier: MIT

// Package grid: functional configuration for Multiply.
//   - Option / Options (functional options with unexported state),
//   - documented defaults (constants),
//   - gatherOptions helper that applies setters in order.
package grid

// ---------- Defaults (single source of truth) ----------

// DefaultAccumulate makes Multiply sum the products over the inner
// dimension (a true matrix product).
const DefaultAccumulate = true

// Option mutates Options; public entry points accept ...Option.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	accumulate bool // DefaultAccumulate
}

// WithAccumulate selects the summed dot product (default).
func WithAccumulate() Option {
	return func(o *Options) { o.accumulate = true }
}

// WithOverwrite makes each inner step replace the output cell instead of
// adding to it, so every cell ends up holding only the product for the last
// inner index. It exists to reproduce results of code that multiplied this
// way.
func WithOverwrite() Option {
	return func(o *Options) { o.accumulate = false }
}

// gatherOptions applies user setters over the defaults; last writer wins.
// nil setters are skipped.
func gatherOptions(user ...Option) Options {
	o := Options{
		accumulate: DefaultAccumulate,
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
