// SPDX-License-Identifier: MIT

package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvmat/exprlang"
	"github.com/katalvlaran/lvmat/matrix"
	"github.com/katalvlaran/lvmat/workspace"
)

func newInspectCmd(opts *rootOptions) *cobra.Command {
	var (
		file string
		expr string
	)

	cmd := &cobra.Command{
		Use:   "inspect [NAME...]",
		Short: "Show the parsed and compiled form of expressions without evaluating them",
		Long: `Inspect prints, for each expression, its parenthesized form and the
identifiers it uses. When a workspace file is given the expression is also
compiled, and the lazy tree, its depth, its result shape and the engine
policy are printed. Nothing is evaluated.`,
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
			compile := file != ""

			if expr != "" {
				n, err := exprlang.Parse(expr)
				if err != nil {
					return err
				}

				return describe(out, ws, "expr", n, compile)
			}

			names := args
			if len(names) == 0 {
				names = ws.ExpressionNames()
			}
			for i, name := range names {
				_, n, ok := ws.Expression(name)
				if !ok {
					return fmt.Errorf("%w %q", workspace.ErrNotFound, name)
				}
				if i > 0 {
					fmt.Fprintln(out)
				}
				if err = describe(out, ws, name, n, compile); err != nil {
					return err
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "workspace file (.yaml, .yml or .toml)")
	cmd.Flags().StringVar(&expr, "expr", "", "ad-hoc expression to inspect")

	return cmd
}

// describe writes one report block for n.
func describe(w io.Writer, ws *workspace.Workspace, label string, n exprlang.Node, compile bool) error {
	fmt.Fprintf(w, "%s:\n", label)
	fmt.Fprintf(w, "  parsed: %s\n", n)
	fmt.Fprintf(w, "  idents: %s\n", strings.Join(exprlang.Idents(n), ", "))
	if !compile {
		return nil
	}

	op, err := exprlang.Compile(n, ws.Env(), ws.Lazy())
	if err != nil {
		return err
	}
	depth, tree := 0, ""
	switch v := op.(type) {
	case *matrix.Expr[float64]:
		depth, tree = v.Depth(), v.String()
	case matrix.Matrix[float64]:
		tree = fmt.Sprintf("[%dx%d]", v.Rows(), v.Cols())
	default:
		tree = fmt.Sprint(v)
	}
	shape := "none"
	if r, c, ok := op.Shape(); ok {
		shape = fmt.Sprintf("%dx%d", r, c)
	}
	fmt.Fprintf(w, "  tree:   %s\n", tree)
	fmt.Fprintf(w, "  depth:  %d\n", depth)
	fmt.Fprintf(w, "  shape:  %s\n", shape)
	_, err = fmt.Fprintf(w, "  policy: %s\n", ws.Policy())

	return err
}
