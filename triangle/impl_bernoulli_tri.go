// SPDX-License-Identifier: MIT
// Package: trigon/triangle
//
// impl_bernoulli_tri.go — implementation of the BernoulliTriangle family.
//
// Contract:
//   • cell(r,c) = Σ_{j≤c} C(r,j): each row is the running prefix sum of the
//     matching Pascal row, ending in 2^r on the diagonal.
//   • Not mirror-symmetric, so every cell is computed directly from one
//     auxiliary Pascal buffer of the same order.
//   • Exactness: cells stay ≤ 2ⁿ, exact for n ≤ ExactLimitBernoulliTriangle.
//
// Complexity:
//   • Time O(n²); space O(n²) for the auxiliary Pascal buffer.

package triangle

// fillBernoulliTriangle accumulates prefix sums over a fresh Pascal buffer.
func fillBernoulliTriangle(t *Triangle, cfg Options) error {
	// Build the auxiliary Pascal buffer of the same order.
	pas := newTriangle(FamilyPascal, t.order)
	if err := fillPascal(pas, cfg); err != nil {
		return err
	}

	// Accumulate each row left to right; the running sum restarts per row.
	for r := 0; r <= t.order; r++ {
		var run int64
		for c := 0; c <= r; c++ {
			run += pas.get(r, c)
			t.set(r, c, run)
		}
	}

	return nil
}

// BernoulliTriangle builds the order-n running-sum triangle over Pascal.
func BernoulliTriangle(n int) (*Triangle, error) {
	return Build(FamilyBernoulliTriangle, n)
}
