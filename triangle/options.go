// SPDX-License-Identifier: MIT

// Package triangle: functional configuration for triangle builds.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors,
//   - gatherOptions helper (internal) that resolves defaults.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each knob impacts behavior and is covered by tests.
//   - Reusability: Options fields are unexported; public APIs consume ...Option.
//
// Notes:
//   - Unlike panicking numeric-policy constructors elsewhere, WithMultiplier
//     is a pure setter: the multiplier reaches Build through the positional
//     Clark(n, multiplier) path too, so validation happens once, at build
//     time, and surfaces as ErrNegativeMultiplier rather than a panic.
package triangle

// ---------- Defaults (single source of truth) ----------

// DefaultMultiplier is the Clark diagonal multiplier applied when no
// WithMultiplier option is given. Clark's triangle places r·multiplier on
// the diagonal of row r; 6 reproduces the classic published variant.
const DefaultMultiplier int64 = 6

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// It is intentionally opaque to prevent external mutation; public entry
// points accept `...Option` and internally resolve them via gatherOptions.
type Options struct {
	// multiplier scales the Clark diagonal; DefaultMultiplier.
	// Ignored by every other family (no dead switches: Clark tests cover it).
	multiplier int64
}

// ---------- Constructors (WithX) ----------

// WithMultiplier sets the Clark diagonal multiplier.
// Implementation:
//   - Stage 1: return a setter that writes the multiplier into Options.
//
// Behavior highlights:
//   - Pure setter; Build validates the resolved value and returns
//     ErrNegativeMultiplier when it is below zero. Zero is legal and yields
//     a zero diagonal.
//
// Inputs:
//   - multiplier: non-negative diagonal scale factor.
//
// Returns:
//   - Option: functional setter.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// Notes:
//   - Only FamilyClark consumes this knob; other families ignore it.
func WithMultiplier(multiplier int64) Option {
	return func(o *Options) { o.multiplier = multiplier }
}

// --------------------------- Option Resolution ---------------------------

// defaultOptions returns the documented defaults (single source of truth).
// Complexity: O(1).
func defaultOptions() Options {
	return Options{
		multiplier: DefaultMultiplier,
	}
}

// gatherOptions applies user-provided Option setters on top of defaults.
// Implementation:
//   - Stage 1: start from defaultOptions().
//   - Stage 2: apply setters in order (last-writer-wins).
//
// Behavior highlights:
//   - Pure function; validation of the resolved state belongs to Build.
//
// Complexity:
//   - Time O(k) for k=len(user), Space O(1).
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}
