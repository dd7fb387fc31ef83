// SPDX-License-Identifier: MIT

// Command brandgrid runs the branded-array demo: it multiplies a batch of
// inputs by a weight matrix whose row range is the input's column range,
// and prints the result.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/brandgrid/internal/config"
)

var (
	configFile string
	logLevel   string

	batch     uint32
	inputs    uint32
	outputs   uint32
	fillMode  string
	seed      uint64
	overwrite bool
	plain     bool
	plot      bool

	showRows uint32
	showCols uint32
)

// main registers commands and flags and executes the root command.
// It exits with status 1 if the command returns an error.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "brandgrid",
		Short:        "branded 2-D arrays demo",
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&fillMode, "fill", config.DefaultFill, "fill mode (zero, sequence, random)")
	rootCmd.PersistentFlags().Uint64Var(&seed, "seed", 0, "random fill seed")
	rootCmd.PersistentFlags().BoolVar(&plain, "plain", false, "print the bare array rendering")
	rootCmd.PersistentFlags().BoolVar(&plot, "plot", false, "plot the first row")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "multiply batch×inputs by inputs×outputs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := setup(cmd)
			if err != nil {
				return err
			}

			return runPipeline(cmd.OutOrStdout(), cfg, log)
		},
	}
	runCmd.Flags().Uint32Var(&batch, "batch", config.DefaultBatch, "batch size (rows of input)")
	runCmd.Flags().Uint32Var(&inputs, "inputs", config.DefaultInputs, "input width (shared dimension)")
	runCmd.Flags().Uint32Var(&outputs, "outputs", config.DefaultOutputs, "output width")
	runCmd.Flags().BoolVar(&overwrite, "overwrite", false, "overwrite instead of accumulate over the inner dimension")

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "fill and print a single rows×cols array",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := setup(cmd)
			if err != nil {
				return err
			}

			return showArray(cmd.OutOrStdout(), cfg, showRows, showCols, log)
		},
	}
	showCmd.Flags().Uint32Var(&showRows, "rows", 4, "rows")
	showCmd.Flags().Uint32Var(&showCols, "cols", 24, "columns")

	rootCmd.AddCommand(runCmd, showCmd)

	return rootCmd
}

// setup resolves the effective config (defaults, then file, then changed
// flags) and builds the logger.
func setup(cmd *cobra.Command) (*config.Config, *slog.Logger, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, nil, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if flags.Changed("fill") {
		cfg.Fill.Mode = fillMode
	}
	if flags.Changed("seed") {
		cfg.Fill.Seed = seed
	}
	if flags.Changed("plain") {
		cfg.Output.Plain = plain
	}
	if flags.Changed("plot") {
		cfg.Output.Plot = plot
	}
	if flags.Changed("batch") {
		cfg.Batch = batch
	}
	if flags.Changed("inputs") {
		cfg.Inputs = inputs
	}
	if flags.Changed("outputs") {
		cfg.Outputs = outputs
	}
	if flags.Changed("overwrite") {
		cfg.Multiply = "accumulate"
		if overwrite {
			cfg.Multiply = "overwrite"
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	lvl, err := cfg.Level()
	if err != nil {
		return nil, nil, err
	}
	log := newLogger(cmd.ErrOrStderr(), lvl)
	log.Debug("config resolved", "file", configFile, "batch", cfg.Batch, "inputs", cfg.Inputs,
		"outputs", cfg.Outputs, "fill", cfg.Fill.Mode, "multiply", cfg.Multiply)

	return cfg, log, nil
}

// newLogger returns a tint-backed slog logger writing to w.
func newLogger(w io.Writer, lvl slog.Level) *slog.Logger {
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      lvl,
		TimeFormat: "15:04:05",
	}))
}

// printf writes to w, ignoring short writes the way fmt.Print callers do.
func printf(w io.Writer, format string, args ...any) {
	_, _ = fmt.Fprintf(w, format, args...)
}
