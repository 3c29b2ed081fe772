// SPDX-License-Identifier: MIT
// Package: trigon/triangle
//
// errors.go — sentinel errors for the triangle package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Sentinels are NEVER wrapped with formatted strings at definition site.
//   • Implementations attach context via `%w` (fmt.Errorf("Method: ...: %w", ErrX)).
//   • Builders MUST NOT panic at runtime; invalid input surfaces as a sentinel.
//
// AI-Hints (practical guidance for implementers and LLMs):
//   • Wrap with the method context: fmt.Errorf("%s: n=%d: %w", methodBuild, n, ErrNegativeOrder).
//   • Return ONLY these sentinels for validation classes (order/family/option/index).
//   • Check with errors.Is in tests and production code; avoid string comparisons.

package triangle

import (
	"errors"
	"fmt"
)

// ErrNegativeOrder indicates that a requested build order n is below zero.
// Classification: Validation error (parameters).
// Typical origins: Build, any per-family constructor.
// Usage: if errors.Is(err, ErrNegativeOrder) { /* reject the order */ }.
var ErrNegativeOrder = errors.New("triangle: order must be non-negative")

// ErrUnknownFamily indicates that the Family value does not name any
// registered triangle variant (e.g. a stale or corrupted enum value).
// Usage: if errors.Is(err, ErrUnknownFamily) { /* check Family constant */ }.
var ErrUnknownFamily = errors.New("triangle: unknown family")

// ErrNotBuildable indicates that the Family exists but has no triangular
// form. FamilyBernoulli tags scalar Bernoulli-number advisories and is the
// only member of this class; use the bernoulli package to compute values.
// Usage: if errors.Is(err, ErrNotBuildable) { /* use bernoulli.Number */ }.
var ErrNotBuildable = errors.New("triangle: family has no triangular form")

// ErrNegativeMultiplier indicates that the Clark diagonal multiplier
// resolved to a negative value. Zero is allowed (degenerate diagonal).
// Usage: if errors.Is(err, ErrNegativeMultiplier) { /* fix WithMultiplier */ }.
var ErrNegativeMultiplier = errors.New("triangle: multiplier must be non-negative")

// ErrOutOfRange indicates that a row or column index lies outside the
// allocated buffer. Accessors return this instead of panicking.
// Usage: if errors.Is(err, ErrOutOfRange) { /* clamp indices */ }.
var ErrOutOfRange = errors.New("triangle: index out of range")

// ErrNilTriangle indicates that a nil *Triangle was passed where a built
// buffer is required.
// Usage: if errors.Is(err, ErrNilTriangle) { /* build the buffer first */ }.
var ErrNilTriangle = errors.New("triangle: nil triangle")

// triangleErrorf attaches method context to a sentinel while preserving
// errors.Is matching.
//
// Parameters:
//   - method: canonical entry-point name, e.g. methodBuild.
//   - err:    the sentinel (or an already wrapped error) to propagate.
//
// Complexity: O(1).
func triangleErrorf(method string, err error) error {
	// Prefix with the method name; %w keeps the sentinel reachable for errors.Is.
	return fmt.Errorf("%s: %w", method, err)
}
