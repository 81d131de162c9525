// SPDX-License-Identifier: MIT

// Package cmd implements the lvmat command tree.
package cmd

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvmat/matrix"
	"github.com/katalvlaran/lvmat/workspace"
)

// rootOptions carries persistent flags and the logger built from them.
type rootOptions struct {
	unchecked bool
	logLevel  string
	logFormat string

	log zerolog.Logger
}

// NewRootCmd builds a fresh command tree. Each call has its own flag state.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{log: zerolog.Nop()}

	root := &cobra.Command{
		Use:   "lvmat",
		Short: "Lazy elementwise matrix expressions",
		Long: `lvmat evaluates elementwise matrix expressions over a workspace file.

A workspace (YAML or TOML) declares named matrices and named expressions:

  matrices:
    a: {rows: 2, cols: 2, data: [1, 2, 3, 4]}
    b: {rows: 2, cols: 2, fill: 10}
  expressions:
    sum: "a + b"

Expressions use + - * / (all elementwise), unary minus, parentheses and
numeric literals. Every expression is evaluated into one freshly allocated
matrix without intermediate temporaries.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			l, err := newLogger(cmd.ErrOrStderr(), opts.logLevel, opts.logFormat)
			if err != nil {
				return err
			}
			opts.log = l

			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.BoolVar(&opts.unchecked, "unchecked", false, "skip shape validation (mismatched shapes then abort evaluation)")
	pf.StringVar(&opts.logLevel, "log-level", "warn", "log level (trace, debug, info, warn, error)")
	pf.StringVar(&opts.logFormat, "log-format", logFormatConsole, "log format (console or json)")

	root.AddCommand(newEvalCmd(opts), newInspectCmd(opts), newVersionCmd())

	return root
}

// Execute runs the command tree with os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

func (o *rootOptions) matrixOptions() []matrix.Option {
	if o.unchecked {
		return []matrix.Option{matrix.WithUnchecked()}
	}

	return nil
}

// openWorkspace loads path, or returns an empty workspace when path is "".
func (o *rootOptions) openWorkspace(path string) (*workspace.Workspace, error) {
	if path == "" {
		return workspace.New(nil, o.matrixOptions()...)
	}
	ws, err := workspace.Load(path, o.matrixOptions()...)
	if err != nil {
		return nil, err
	}
	o.log.Debug().
		Str("file", path).
		Stringer("policy", ws.Policy()).
		Int("matrices", len(ws.MatrixNames())).
		Int("expressions", len(ws.ExpressionNames())).
		Msg("workspace loaded")

	return ws, nil
}
