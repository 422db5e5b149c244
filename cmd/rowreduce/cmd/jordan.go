// SPDX-License-Identifier: MIT

package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/rowreduce/internal/render"
	"github.com/katalvlaran/rowreduce/solver"
)

func newJordanCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "jordan",
		Aliases: []string{"gauss-jordan", "rref"},
		Short:   "Reduce to reduced row echelon form and read off the solution",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rows, err := a.readMatrix(cmd)
			if err != nil {
				return err
			}
			res, err := solver.SolveGaussJordan(rows, a.solverOptions()...)
			if err != nil {
				return err
			}

			rep := render.GaussJordanReport(res)
			if err = a.systemResidual(rep, rows, res); err != nil {
				return err
			}
			a.log.Info("solved", zap.Int("steps", len(res.Steps)), zap.Bool("singular", res.Singular))
			return a.print(cmd, rep)
		},
	}
}
