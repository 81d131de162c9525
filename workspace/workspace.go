// SPDX-License-Identifier: MIT

package workspace

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/katalvlaran/lvmat/exprlang"
	"github.com/katalvlaran/lvmat/matrix"
)

// File is the decoded form of a workspace file.
type File struct {
	Policy      string                `yaml:"policy" toml:"policy"`
	Matrices    map[string]MatrixSpec `yaml:"matrices" toml:"matrices"`
	Expressions map[string]string     `yaml:"expressions" toml:"expressions"`
}

// MatrixSpec describes one named matrix. At most one of Data, Fill, Identity
// and Random may be set; none of them means zeros.
type MatrixSpec struct {
	Rows     int         `yaml:"rows" toml:"rows"`
	Cols     int         `yaml:"cols" toml:"cols"`
	Data     []float64   `yaml:"data,omitempty" toml:"data,omitempty"` // row-major, Rows*Cols values
	Fill     *float64    `yaml:"fill,omitempty" toml:"fill,omitempty"`
	Identity bool        `yaml:"identity,omitempty" toml:"identity,omitempty"`
	Random   *RandomSpec `yaml:"random,omitempty" toml:"random,omitempty"`
}

// RandomSpec draws every element from U[Low, High). A nil Seed uses the
// global source.
type RandomSpec struct {
	Low  float64 `yaml:"low" toml:"low"`
	High float64 `yaml:"high" toml:"high"`
	Seed *uint64 `yaml:"seed,omitempty" toml:"seed,omitempty"`
}

// Workspace holds materialized matrices and parsed expressions over them.
// It is not safe for concurrent mutation of its matrices.
type Workspace struct {
	lazy     matrix.Lazy[float64]
	matrices map[string]*matrix.Dense[float64]
	exprs    map[string]expression
}

type expression struct {
	src  string
	node exprlang.Node
}

// Load reads the workspace file at path, choosing the format by extension.
// opts are applied after the file's policy, so matrix.WithUnchecked() on the
// command line overrides "policy: strict" in the file.
func Load(path string, opts ...matrix.Option) (*Workspace, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("workspace: load %q: %w", path, err)
	}
	ws, err := Parse(content, format, opts...)
	if err != nil {
		return nil, fmt.Errorf("workspace: load %q: %w", path, err)
	}

	return ws, nil
}

// Parse decodes content in the given format (FormatYAML or FormatTOML) and builds the workspace.
func Parse(content []byte, format Format, opts ...matrix.Option) (*Workspace, error) {
	var f File
	if err := decode(content, format, &f); err != nil {
		return nil, err
	}

	return New(&f, opts...)
}

// New builds a workspace from an already decoded File.
// MAIN DESCRIPTION:
//   - Materializes every matrix and parses every expression up front.
//
// Implementation:
//   - Stage 1: resolve the policy (file value, then opts).
//   - Stage 2: materialize matrices in name order.
//   - Stage 3: parse expressions in name order and resolve their identifiers.
//
// Errors:
//   - ErrInvalidPolicy, ErrInvalidName, ErrDuplicateName, ErrInvalidMatrix,
//     ErrInvalidExpression; the first failing entry (by name) is reported.
func New(f *File, opts ...matrix.Option) (*Workspace, error) {
	if f == nil {
		f = &File{}
	}
	p, ok := matrix.ParsePolicy(f.Policy)
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrInvalidPolicy, f.Policy)
	}
	ws := &Workspace{
		lazy:     matrix.NewLazy[float64](append([]matrix.Option{matrix.WithPolicy(p)}, opts...)...),
		matrices: make(map[string]*matrix.Dense[float64], len(f.Matrices)),
		exprs:    make(map[string]expression, len(f.Expressions)),
	}

	for _, name := range sortedKeys(f.Matrices) {
		if !isIdent(name) {
			return nil, entryErrorf(ErrInvalidName, name, nil)
		}
		m, err := f.Matrices[name].build()
		if err != nil {
			return nil, entryErrorf(ErrInvalidMatrix, name, err)
		}
		ws.matrices[name] = m
	}

	for _, name := range sortedKeys(f.Expressions) {
		if !isIdent(name) {
			return nil, entryErrorf(ErrInvalidName, name, nil)
		}
		if _, clash := ws.matrices[name]; clash {
			return nil, entryErrorf(ErrDuplicateName, name, nil)
		}
		src := f.Expressions[name]
		n, err := exprlang.Parse(src)
		if err != nil {
			return nil, entryErrorf(ErrInvalidExpression, name, err)
		}
		for _, id := range exprlang.Idents(n) {
			if _, ok := ws.matrices[id]; !ok {
				return nil, entryErrorf(ErrInvalidExpression, name,
					fmt.Errorf("%w %q", exprlang.ErrUnknownIdent, id))
			}
		}
		ws.exprs[name] = expression{src: src, node: n}
	}

	return ws, nil
}

// build materializes the matrix described by s.
func (s MatrixSpec) build() (*matrix.Dense[float64], error) {
	kinds := 0
	if s.Data != nil {
		kinds++
	}
	if s.Fill != nil {
		kinds++
	}
	if s.Identity {
		kinds++
	}
	if s.Random != nil {
		kinds++
	}
	if kinds > 1 {
		return nil, errors.New("at most one of data/fill/identity/random may be set")
	}

	switch {
	case s.Data != nil:
		return matrix.FromRows(s.Rows, s.Cols, s.Data)
	case s.Fill != nil:
		return matrix.Filled(s.Rows, s.Cols, *s.Fill)
	case s.Identity:
		return matrix.Identity[float64](s.Rows, s.Cols)
	case s.Random != nil:
		var opts []matrix.Option
		if s.Random.Seed != nil {
			opts = append(opts, matrix.WithSeed(*s.Random.Seed))
		}

		return matrix.RandomUniform(s.Rows, s.Cols, s.Random.Low, s.Random.High, opts...)
	default:
		return matrix.Zeros[float64](s.Rows, s.Cols)
	}
}

// Policy returns the effective policy of the workspace engine.
func (w *Workspace) Policy() matrix.Policy { return w.lazy.Policy() }

// Lazy returns the engine expressions are compiled with.
func (w *Workspace) Lazy() matrix.Lazy[float64] { return w.lazy }

// Env returns a fresh name → matrix map suitable for exprlang.Compile.
// The matrices are shared with the workspace, not copied.
func (w *Workspace) Env() exprlang.Env {
	env := make(exprlang.Env, len(w.matrices))
	for name, m := range w.matrices {
		env[name] = m
	}

	return env
}

// Matrix returns the named matrix.
func (w *Workspace) Matrix(name string) (*matrix.Dense[float64], bool) {
	m, ok := w.matrices[name]

	return m, ok
}

// MatrixNames returns the matrix names, sorted.
func (w *Workspace) MatrixNames() []string { return sortedKeys(w.matrices) }

// ExpressionNames returns the expression names, sorted.
func (w *Workspace) ExpressionNames() []string { return sortedKeys(w.exprs) }

// Expression returns the source text and AST of the named expression.
func (w *Workspace) Expression(name string) (string, exprlang.Node, bool) {
	e, ok := w.exprs[name]

	return e.src, e.node, ok
}

// Compile builds a fresh lazy tree for the named expression without evaluating it.
func (w *Workspace) Compile(name string) (matrix.Operand[float64], error) {
	e, ok := w.exprs[name]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrNotFound, name)
	}
	op, err := exprlang.Compile(e.node, w.Env(), w.lazy)
	if err != nil {
		return nil, entryErrorf(ErrInvalidExpression, name, err)
	}

	return op, nil
}

// Evaluate materializes the named expression. A matrix name yields a copy of that matrix.
func (w *Workspace) Evaluate(name string) (*matrix.Dense[float64], error) {
	if m, ok := w.matrices[name]; ok {
		return w.lazy.Eval(m)
	}
	op, err := w.Compile(name)
	if err != nil {
		return nil, err
	}

	return w.lazy.Eval(op)
}

// EvaluateString parses, compiles and materializes an ad-hoc expression over the workspace matrices.
func (w *Workspace) EvaluateString(src string) (*matrix.Dense[float64], error) {
	return exprlang.Eval(src, w.Env(), w.lazy)
}

// isIdent reports whether name lexes as exactly one identifier.
func isIdent(name string) bool {
	n, err := exprlang.Parse(name)
	if err != nil {
		return false
	}
	id, ok := n.(*exprlang.Ident)

	return ok && id.Name == name
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}
