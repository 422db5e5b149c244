// SPDX-License-Identifier: MIT

// Package cmd wires the rowreduce subcommands.
package cmd

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/rowreduce/internal/config"
	"github.com/katalvlaran/rowreduce/internal/input"
	"github.com/katalvlaran/rowreduce/internal/logging"
	"github.com/katalvlaran/rowreduce/internal/render"
	"github.com/katalvlaran/rowreduce/solver"
)

// app is the state shared by one command invocation.
type app struct {
	file     string
	format   string
	verify   bool
	noColor  bool
	logLevel string

	cfg   *config.Config
	log   *zap.Logger
	runID string
}

// NewRootCmd builds a fresh command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "rowreduce",
		Short: "Step-by-step Gaussian elimination, Gauss-Jordan and inversion",
		Long: `rowreduce solves linear systems and inverts matrices, printing every
row operation it performs.

Input is read from --file or stdin. Files ending in .json, .yaml/.yml or
.toml are decoded as such; everything else is text with one row per line
and cells separated by spaces, tabs or commas.

Commands:
  gauss   - row echelon form and back-substitution
  jordan  - reduced row echelon form
  invert  - inverse of an n x n matrix`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}

	f := root.PersistentFlags()
	f.StringVarP(&a.file, "file", "f", "", "matrix file (default: stdin)")
	f.StringVar(&a.format, "format", "", "output format: text, json or yaml (env ROWREDUCE_FORMAT)")
	f.BoolVar(&a.verify, "verify", false, "report the residual of the result (env ROWREDUCE_VERIFY)")
	f.BoolVar(&a.noColor, "no-color", false, "disable styled output (env ROWREDUCE_NO_COLOR)")
	f.StringVar(&a.logLevel, "log-level", "", "debug, info, warn or error (env ROWREDUCE_LOG_LEVEL)")

	root.AddCommand(newGaussCmd(a), newJordanCmd(a), newInvertCmd(a), newVersionCmd())
	return root
}

// Execute runs the root command against os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

// setup merges environment configuration with explicitly set flags, then
// builds the logger and run id.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("format") {
		cfg.Output.Format = a.format
	}
	if flags.Changed("verify") {
		cfg.Output.Verify = a.verify
	}
	if flags.Changed("no-color") {
		cfg.Output.NoColor = a.noColor
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level = a.logLevel
	}
	if err = cfg.Validate(); err != nil {
		return err
	}

	lcfg := logging.DefaultConfig()
	lcfg.Level = cfg.Logging.Level
	lcfg.Development = cfg.Logging.Development
	log, err := logging.New(lcfg)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}

	a.cfg = cfg
	a.runID = uuid.NewString()
	a.log = log.With(zap.String("run_id", a.runID), zap.String("command", cmd.Name()))
	return nil
}

// readMatrix loads the input matrix from --file or stdin.
func (a *app) readMatrix(cmd *cobra.Command) ([][]float64, error) {
	if a.file == "" || a.file == "-" {
		return input.Parse(cmd.InOrStdin(), input.Text)
	}
	return input.ParseFile(a.file)
}

func (a *app) solverOptions() []solver.Option {
	return []solver.Option{solver.WithLogger(a.log)}
}

// print writes rep to the command's stdout in the configured format.
func (a *app) print(cmd *cobra.Command, rep *render.Report) error {
	rep.RunID = a.runID
	p := render.NewPrinter(cmd.OutOrStdout(), !a.cfg.Output.NoColor)
	return p.Print(rep, a.cfg.Output.Format)
}
