// SPDX-License-Identifier: MIT
// Package: trigon/bernoulli
//
// errors.go — sentinel errors for the bernoulli package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • The order is validated here, not by the internal Pascal build: n = −1
//     would otherwise degrade into a harmless-looking Pascal(0) request.

package bernoulli

import (
	"errors"
	"fmt"
)

// ErrNegativeOrder indicates that a requested order n is below zero.
// Classification: Validation error (parameters).
// Usage: if errors.Is(err, ErrNegativeOrder) { /* reject the order */ }.
var ErrNegativeOrder = errors.New("bernoulli: order must be non-negative")

// bernoulliErrorf attaches method context to a sentinel while preserving
// errors.Is matching.
// Complexity: O(1).
func bernoulliErrorf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}
