// SPDX-License-Identifier: MIT

package cmd

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvmat/matrix"
)

func newEvalCmd(opts *rootOptions) *cobra.Command {
	var (
		file string
		expr string
	)

	cmd := &cobra.Command{
		Use:   "eval [NAME...]",
		Short: "Evaluate workspace expressions or an ad-hoc --expr",
		Long: `Evaluate named expressions (or matrices) of a workspace and print the results.

Without NAME arguments every expression of the workspace is evaluated in name
order. With --expr the given expression is evaluated over the workspace
matrices instead.`,
		Example: `  lvmat eval -f ws.yaml sum
  lvmat eval -f ws.toml --expr "(a - b) * 0.5"
  lvmat --unchecked eval -f ws.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if file == "" && expr == "" {
				return errors.New("either --file or --expr is required")
			}
			if expr != "" && len(args) > 0 {
				return errors.New("NAME arguments and --expr are mutually exclusive")
			}
			ws, err := opts.openWorkspace(file)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if expr != "" {
				start := time.Now()
				m, err := guarded(func() (*matrix.Dense[float64], error) { return ws.EvaluateString(expr) })
				if err != nil {
					return err
				}
				opts.log.Debug().Str("expr", expr).Dur("elapsed", time.Since(start)).Msg("evaluated")
				_, err = io.WriteString(out, m.String())

				return err
			}

			names := args
			if len(names) == 0 {
				names = ws.ExpressionNames()
			}
			for _, name := range names {
				start := time.Now()
				m, err := guarded(func() (*matrix.Dense[float64], error) { return ws.Evaluate(name) })
				if err != nil {
					return err
				}
				opts.log.Debug().Str("name", name).Dur("elapsed", time.Since(start)).Msg("evaluated")
				if err = printNamed(out, name, m); err != nil {
					return err
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "workspace file (.yaml, .yml or .toml)")
	cmd.Flags().StringVar(&expr, "expr", "", "ad-hoc expression over the workspace matrices")

	return cmd
}

// errEvalAborted reports an unchecked evaluation that read past a smaller operand.
var errEvalAborted = errors.New("evaluation aborted")

// guarded runs eval and turns a runtime panic into errEvalAborted.
func guarded(eval func() (*matrix.Dense[float64], error)) (m *matrix.Dense[float64], err error) {
	defer func() {
		if r := recover(); r != nil {
			m, err = nil, fmt.Errorf("%w: %v", errEvalAborted, r)
		}
	}()

	return eval()
}

func printNamed(w io.Writer, name string, m *matrix.Dense[float64]) error {
	_, err := fmt.Fprintf(w, "%s (%dx%d):\n%s", name, m.Rows(), m.Cols(), m.String())

	return err
}
