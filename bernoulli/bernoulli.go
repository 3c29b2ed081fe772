// SPDX-License-Identifier: MIT
// Package: trigon/bernoulli
//
// bernoulli.go - public entry points of the determinant pipeline.
//
// Design contract (strict):
//   - Stage 1 (Validate): n ≥ 0, rejected locally (see errors.go).
//   - Stage 2 (Shortcut): B0, B1 and odd orders return closed-form values
//     before any allocation.
//   - Stage 3 (Execute): build Pascal(n+1); take the exact integral
//     determinant while it fits float64, the pivoted log-space elimination
//     beyond; divide by (n+1)!.
//   - Stage 4 (Finalize): attach advisories (build exactness plus the
//     stability note past StableLimit) to the returned values.
//
// AI-Hints (practical):
//   - Use Numbers(n) when more than one order is needed: it shares a single
//     Pascal build across every k ≤ n.
//   - Odd orders are exact zeros with no advisory; only the even
//     determinant path degrades past StableLimit.

package bernoulli

import (
	"math"

	"github.com/katalvlaran/trigon/triangle"
)

// File-local constants for method tagging (no magic strings).
const (
	methodNumber  = "Number"
	methodNumbers = "Numbers"
)

// StableLimit is the largest order whose determinant pipeline stays exact
// in float64. Past it the division by (n+1)! loses low-order digits and
// every result carries a triangle.AdvisoryStability note.
const StableLimit = 20

// Number returns the n-th Bernoulli number under the B⁺ convention
// (B1 = +1/2).
//
// Behavior highlights:
//   - B0 = 1, B1 = 1/2 and odd orders ≥ 3 (exactly zero) short-circuit.
//   - Even orders ≤ 16 take the integral determinant path: det(H) and
//     (n+1)! are both exact in float64, so the result is correctly
//     rounded. Larger even orders reduce the n×n binomial Hessenberg
//     minor by pivoted elimination and divide by (n+1)! via math.Lgamma,
//     so no intermediate value overflows.
//   - Past StableLimit the value is still returned, accompanied by an
//     AdvisoryStability note; callers decide whether to trust it.
//
// Errors: ErrNegativeOrder for n < 0.
// Complexity: O(n³) time, O(n²) memory.
func Number(n int) (float64, []triangle.Advisory, error) {
	// Stage 1: validate the order locally.
	if n < 0 {
		return 0, nil, bernoulliErrorf(methodNumber, ErrNegativeOrder)
	}

	// Stage 2: closed-form shortcuts need no build at all.
	if v, done := shortcut(n); done {
		return v, nil, nil
	}

	// Stage 3: one Pascal build feeds the Hessenberg assembly.
	pas, err := triangle.Pascal(n + 1)
	if err != nil {
		return 0, nil, bernoulliErrorf(methodNumber, err)
	}

	// Stage 4: reduce, divide, annotate.
	return numberFrom(pas, n), advisories(pas, n), nil
}

// Numbers returns Bernoulli numbers 0..n from a single Pascal build.
// See Number for conventions, precision and the advisory contract; the
// advisories returned here describe the shared order-(n+1) build and the
// requested top order n.
//
// Errors: ErrNegativeOrder for n < 0.
// Complexity: dominated by the largest eliminations, O(n⁴) time worst case.
func Numbers(n int) ([]float64, []triangle.Advisory, error) {
	if n < 0 {
		return nil, nil, bernoulliErrorf(methodNumbers, ErrNegativeOrder)
	}

	pas, err := triangle.Pascal(n + 1)
	if err != nil {
		return nil, nil, bernoulliErrorf(methodNumbers, err)
	}

	out := make([]float64, n+1)
	for k := 0; k <= n; k++ {
		if v, done := shortcut(k); done {
			out[k] = v
			continue
		}
		out[k] = numberFrom(pas, k)
	}

	return out, advisories(pas, n), nil
}

// shortcut returns the closed-form value for orders that never touch the
// determinant: B0, B1 and the vanishing odd orders.
func shortcut(n int) (float64, bool) {
	switch {
	case n == 0:
		return 1, true
	case n == 1:
		return 0.5, true // B⁺ convention
	case n%2 == 1:
		return 0, true // B3, B5, ... are exactly zero
	}

	return 0, false
}

// numberFrom computes the even-order B_k from an already built Pascal
// buffer of order ≥ k+1: det(H) / (k+1)!.
//
// Orders whose determinant is exactly representable in float64 take the
// integral path: the exact determinant and the exact (k+1)! leave the
// final division as the only floating-point rounding in the result. The
// rest go through pivoted elimination in log space.
func numberFrom(pas *triangle.Triangle, k int) float64 {
	if k <= exactDetMaxOrder {
		return float64(exactDeterminant(pas, k)) / float64(factorial(k+1))
	}

	h := buildHessenberg(pas, k)
	sign, logAbs := logDeterminant(h)
	if sign == 0 {
		return 0
	}
	lg, _ := math.Lgamma(float64(k + 2)) // log((k+1)!)

	return sign * math.Exp(logAbs-lg)
}

// advisories merges the build advisories with the stability note owed past
// StableLimit. The slice from Advisories() is already a private copy, so
// appending to it is safe.
func advisories(pas *triangle.Triangle, n int) []triangle.Advisory {
	advs := pas.Advisories()
	if n > StableLimit {
		advs = append(advs, triangle.Advisory{
			Kind:      triangle.AdvisoryStability,
			Family:    triangle.FamilyBernoulli,
			Order:     n,
			Threshold: StableLimit,
		})
	}

	return advs
}
