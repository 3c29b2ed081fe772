// SPDX-License-Identifier: MIT

// Package triangle: small validation helpers shared by Build and the
// per-family constructors. Each validator returns a wrapped sentinel so the
// caller's method name lands in the message while errors.Is keeps matching.
package triangle

import "fmt"

// validateOrder rejects negative build orders.
// Stage 1 (Validate): n ≥ 0.
// Complexity: O(1).
func validateOrder(method string, n int) error {
	if n < 0 {
		return fmt.Errorf("%s: n=%d: %w", method, n, ErrNegativeOrder)
	}

	return nil
}

// validateBuildable rejects families without a triangular form.
// Stage 1 (Validate): family must not be the scalar Bernoulli pipeline.
// Complexity: O(1).
func validateBuildable(method string, f Family) error {
	if f == FamilyBernoulli {
		return fmt.Errorf("%s: %s: %w", method, f, ErrNotBuildable)
	}

	return nil
}

// validateMultiplier rejects a negative resolved Clark multiplier.
// Stage 1 (Validate): multiplier ≥ 0 (zero is a legal degenerate diagonal).
// Complexity: O(1).
func validateMultiplier(method string, multiplier int64) error {
	if multiplier < 0 {
		return fmt.Errorf("%s: multiplier=%d: %w", method, multiplier, ErrNegativeMultiplier)
	}

	return nil
}

// validateNotNil rejects nil buffers passed to accessor-level helpers.
// Complexity: O(1).
func validateNotNil(method string, t *Triangle) error {
	if t == nil {
		return triangleErrorf(method, ErrNilTriangle)
	}

	return nil
}
