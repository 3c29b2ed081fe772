// SPDX-License-Identifier: MIT
// Package: trigon/sequence
//
// extract.go - positional (n,k) reads over single triangle builds.
//
// Design contract (strict):
//   - Position k is validated against [0, n] before any O(n²) build;
//     violations return ErrIndexOutOfRange.
//   - A negative n is left to the build so triangle.ErrNegativeOrder stays
//     the single authority on order validation.
//   - Entringer reads undo the boustrophedon storage via triangle.SEAReversed.

package sequence

import "github.com/katalvlaran/trigon/triangle"

// File-local constants for method tagging (no magic strings).
const (
	methodBinomial        = "Binomial"
	methodEulerianNumber  = "EulerianNumber"
	methodEntringerNumber = "EntringerNumber"
)

// validateIndex rejects positions outside [0, n]. Negative orders are not
// judged here; the subsequent build reports triangle.ErrNegativeOrder.
// Complexity: O(1).
func validateIndex(method string, n, k int) error {
	if n >= 0 && (k < 0 || k > n) {
		return sequenceErrorf(method, ErrIndexOutOfRange)
	}

	return nil
}

// Binomial returns the binomial coefficient C(n,k) read from a Pascal build
// (OEIS A007318): the number of k-element subsets of n elements.
//
// Errors:
//   - ErrIndexOutOfRange for k outside [0, n].
//   - triangle.ErrNegativeOrder for n < 0.
//
// Advisory: AdvisoryExactness for n > triangle.ExactLimitPascal.
// Complexity: O(n²) time and memory (one Pascal build).
func Binomial(n, k int) (int64, []triangle.Advisory, error) {
	if err := validateIndex(methodBinomial, n, k); err != nil {
		return 0, nil, err
	}

	pas, err := triangle.Pascal(n)
	if err != nil {
		return 0, nil, sequenceErrorf(methodBinomial, err)
	}

	v, _ := pas.At(n, k) // in range by construction

	return v, pas.Advisories(), nil
}

// EulerianNumber returns A(n,k): permutations of n elements with exactly k
// descents (OEIS A008292). Row n carries n populated entries for n ≥ 1, so
// k = n legitimately reads the padding zero.
//
// Errors:
//   - ErrIndexOutOfRange for k outside [0, n].
//   - triangle.ErrNegativeOrder for n < 0.
//
// Advisory: AdvisoryExactness for n > triangle.ExactLimitEulerian.
// Complexity: O(n²) time and memory (one Eulerian build).
func EulerianNumber(n, k int) (int64, []triangle.Advisory, error) {
	if err := validateIndex(methodEulerianNumber, n, k); err != nil {
		return 0, nil, err
	}

	eu, err := triangle.Eulerian(n)
	if err != nil {
		return 0, nil, sequenceErrorf(methodEulerianNumber, err)
	}

	v, _ := eu.At(n, k) // in range by construction

	return v, eu.Advisories(), nil
}

// EntringerNumber returns E(n,k): the number of down-up permutations of
// n+1 elements starting with k+1 (OEIS A008281). The value is read in
// NATURAL orientation; reversed storage rows are undone transparently, so
// E(n,n) is always the n-th zigzag number.
//
// Errors:
//   - ErrIndexOutOfRange for k outside [0, n].
//   - triangle.ErrNegativeOrder for n < 0.
//
// Advisory: AdvisoryExactness for n > triangle.ExactLimitSEA.
// Complexity: O(n²) time and memory (one SEA build).
func EntringerNumber(n, k int) (int64, []triangle.Advisory, error) {
	if err := validateIndex(methodEntringerNumber, n, k); err != nil {
		return 0, nil, err
	}

	tr, err := triangle.SEA(n)
	if err != nil {
		return 0, nil, sequenceErrorf(methodEntringerNumber, err)
	}

	c := k
	if triangle.SEAReversed(n) {
		c = n - k // reversed storage: natural column k lands at n−k
	}
	v, _ := tr.At(n, c) // in range by construction

	return v, tr.Advisories(), nil
}

// binomialAt reads C(r,c) from a built Pascal buffer, extending the
// triangle with zeros outside 0 ≤ c ≤ r (the convention the Moser formula
// relies on for small r).
func binomialAt(pas *triangle.Triangle, r, c int) int64 {
	if c < 0 || c > r {
		return 0
	}
	v, _ := pas.At(r, c) // in range by construction

	return v
}
