// SPDX-License-Identifier: MIT

package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/rowreduce/internal/render"
	"github.com/katalvlaran/rowreduce/solver"
)

func newGaussCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "gauss",
		Short: "Forward elimination to row echelon form, then back-substitution",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rows, err := a.readMatrix(cmd)
			if err != nil {
				return err
			}
			res, err := solver.SolveGaussian(rows, a.solverOptions()...)
			if err != nil {
				return err
			}

			var values []string
			if !res.Singular {
				if values, err = solver.BackSubstitute(res.Echelon); err != nil {
					return err
				}
			}
			rep := render.GaussianReport(res, values)
			if err = a.systemResidual(rep, rows, res); err != nil {
				return err
			}
			a.log.Info("solved", zap.Int("steps", len(res.Steps)), zap.Bool("singular", res.Singular))
			return a.print(cmd, rep)
		},
	}
}

// systemResidual fills rep.Residual for a consistent system when --verify
// is on, using back-substitution on the final echelon form.
func (a *app) systemResidual(rep *render.Report, rows [][]float64, res *solver.SolveResult) error {
	if !a.cfg.Output.Verify || res.Singular {
		return nil
	}
	coeffs, rhs, err := solver.SplitAugmented(rows)
	if err != nil {
		return err
	}
	x, err := solver.BackSubstituteValues(res.Echelon)
	if err != nil {
		return err
	}
	r, err := solver.Residual(coeffs, rhs, x)
	if err != nil {
		return err
	}
	a.log.Debug("residual", zap.Float64("max_abs", r))
	rep.Residual = &r
	return nil
}
