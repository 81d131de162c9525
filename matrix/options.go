// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for random fills and the
// shape-checking policy of expression engines. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior when asked for: WithSeed pins every random draw.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import "math/rand/v2"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the absolute tolerance used by AllClose helpers when callers pass 0.
	DefaultEpsilon = 1e-9
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicPolicyInvalid = "matrix: WithPolicy: unknown policy"
	panicSourceNil     = "matrix: WithSource: source must be non-nil"
)

// Option mutates internal options. Safe to apply repeatedly (last writer wins).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	policy Policy      // DefaultPolicy (build-tag controlled)
	src    rand.Source // nil ⇒ math/rand/v2 global source
}

// WithPolicy selects the shape-checking policy of an engine built by NewLazy.
// Panics on values other than Strict and Unchecked.
func WithPolicy(p Policy) Option {
	if p != Strict && p != Unchecked {
		panic(panicPolicyInvalid)
	}

	return func(o *Options) { o.policy = p }
}

// WithStrict is shorthand for WithPolicy(Strict).
func WithStrict() Option { return WithPolicy(Strict) }

// WithUnchecked is shorthand for WithPolicy(Unchecked).
//
// AI-Hints:
//   - Only for hot paths whose shapes are already known to agree; a mismatch
//     then surfaces as a runtime index panic during evaluation.
func WithUnchecked() Option { return WithPolicy(Unchecked) }

// WithSeed makes random fills reproducible by drawing from a PCG source
// seeded with (seed, seed).
func WithSeed(seed uint64) Option {
	return func(o *Options) { o.src = rand.NewPCG(seed, seed) }
}

// WithSource draws random fills from src. Panics on nil.
func WithSource(src rand.Source) Option {
	if src == nil {
		panic(panicSourceNil)
	}

	return func(o *Options) { o.src = src }
}

// gatherOptions applies user setters on top of documented defaults.
func gatherOptions(user ...Option) Options {
	o := Options{policy: DefaultPolicy}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}
