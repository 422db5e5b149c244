// SPDX-License-Identifier: MIT

package cmd

import (
	"errors"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/rowreduce/internal/render"
	"github.com/katalvlaran/rowreduce/solver"
)

var errNotSquare = errors.New(render.NoteNotSquare)

func newInvertCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "invert",
		Aliases: []string{"inverse"},
		Short:   "Invert an n x n matrix by reducing [A | I]",
		Long: `Invert an n x n matrix by reducing [A | I].

An n x (n+1) augmented matrix is accepted too; its last column is dropped.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rows, err := a.readMatrix(cmd)
			if err != nil {
				return err
			}
			square, err := squarePart(rows)
			if err != nil {
				return err
			}
			res, err := solver.Invert(square, a.solverOptions()...)
			if err != nil {
				return err
			}

			rep := render.InverseReport(res, len(square))
			if a.cfg.Output.Verify && !res.Singular {
				r, err := solver.InverseResidual(square, res.Inverse)
				if err != nil {
					return err
				}
				rep.Residual = &r
			}
			a.log.Info("inverted", zap.Int("n", len(square)), zap.Int("steps", len(res.Steps)), zap.Bool("singular", res.Singular))
			return a.print(cmd, rep)
		},
	}
}

// squarePart returns A from an n×n or n×(n+1) matrix.
func squarePart(rows [][]float64) ([][]float64, error) {
	n := len(rows)
	switch len(rows[0]) {
	case n:
		return rows, nil
	case n + 1:
		out := make([][]float64, n)
		for i, row := range rows {
			out[i] = row[:n]
		}
		return out, nil
	default:
		return nil, errNotSquare
	}
}
