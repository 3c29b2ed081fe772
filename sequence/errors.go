// SPDX-License-Identifier: MIT
// Package: trigon/sequence
//
// errors.go — sentinel errors for the sequence package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Build failures propagate the triangle package sentinels unchanged:
//     errors.Is(err, triangle.ErrNegativeOrder) matches through the wrap.
//   • Extractors MUST NOT panic at runtime; invalid input surfaces as a
//     sentinel.

package sequence

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange indicates that a requested position k lies outside the
// valid [0, n] range of the addressed sequence or triangle row.
// Classification: Validation error (parameters).
// Typical origins: Binomial, EulerianNumber, EntringerNumber.
// Usage: if errors.Is(err, ErrIndexOutOfRange) { /* clamp k */ }.
var ErrIndexOutOfRange = errors.New("sequence: index out of range")

// sequenceErrorf attaches method context to a sentinel (or an already
// wrapped error) while preserving errors.Is matching.
// Complexity: O(1).
func sequenceErrorf(method string, err error) error {
	// Prefix with the method name; %w keeps the sentinel reachable for errors.Is.
	return fmt.Errorf("%s: %w", method, err)
}
