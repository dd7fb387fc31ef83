// SPDX-License-Identifier: MIT

package main

import (
	"io"
	"log/slog"

	"github.com/katalvlaran/brandgrid/grid"
	"github.com/katalvlaran/brandgrid/internal/config"
	"github.com/katalvlaran/brandgrid/internal/fill"
	"github.com/katalvlaran/brandgrid/internal/render"
	"github.com/katalvlaran/brandgrid/span"
)

// Brands for the demo dimensions. Each is bound to one size per process.
type (
	batchDim  struct{}
	inputDim  struct{}
	outputDim struct{}
	showRow   struct{}
	showCol   struct{}
)

// runPipeline fills input (batch×inputs) and weights (inputs×outputs) from
// one source, multiplies them and prints the product.
func runPipeline(w io.Writer, cfg *config.Config, log *slog.Logger) error {
	mode, err := fill.Parse(cfg.Fill.Mode)
	if err != nil {
		return err
	}

	nb := span.New(cfg.Batch, batchDim{})
	ni := span.New(cfg.Inputs, inputDim{})
	no := span.New(cfg.Outputs, outputDim{})

	input := grid.New(nb, ni)
	weights := grid.New(ni, no)

	src := fill.NewSource(mode, cfg.Fill.Seed)
	fill.Into(input, src)
	fill.Into(weights, src)
	log.Debug("operands filled", "mode", mode, "input_cells", input.Len(), "weight_cells", weights.Len())

	opt := grid.WithAccumulate()
	if cfg.Multiply == "overwrite" {
		opt = grid.WithOverwrite()
		log.Warn("overwrite mode: each output cell keeps only the last inner product")
	}
	out := grid.Multiply(input, weights, opt)
	log.Info("multiplied", "rows", out.Rows(), "cols", out.Cols(), "inner", ni.Max())

	emit(w, cfg, "output", out)

	return nil
}

// showArray fills and prints one rows×cols array.
func showArray(w io.Writer, cfg *config.Config, rows, cols uint32, log *slog.Logger) error {
	mode, err := fill.Parse(cfg.Fill.Mode)
	if err != nil {
		return err
	}

	a := grid.New(span.New(rows, showRow{}), span.New(cols, showCol{}))
	fill.Into(a, fill.NewSource(mode, cfg.Fill.Seed))
	log.Info("array built", "rows", a.Rows(), "cols", a.Cols(), "fill", mode)

	emit(w, cfg, "array", a)

	return nil
}

// emit prints a plain or boxed rendering and, when asked, a plot of row 0.
func emit[R, C any](w io.Writer, cfg *config.Config, title string, a *grid.Array2[R, C]) {
	if cfg.Output.Plain {
		printf(w, "%s", a)
	} else {
		printf(w, "%s\n", render.Box(title, a))
	}
	if cfg.Output.Plot {
		if p := render.FirstRow(title+" row 0", a); p != "" {
			printf(w, "%s\n", p)
		}
	}
}
