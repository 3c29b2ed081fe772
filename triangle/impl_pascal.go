// SPDX-License-Identifier: MIT
// Package: trigon/triangle
//
// impl_pascal.go — implementation of the Pascal family.
//
// Contract:
//   • Seed: cell(0,0) = 1.
//   • Rule: cell(r,c) = cell(r−1,c−1) + cell(r−1,c); the virtual zero
//     border supplies both out-of-band parents.
//   • Rows mirror around their center, so only the left half of each row is
//     computed; the right half is copied by fillRowSymmetric.
//   • Exactness: int64 cells are exact for n ≤ ExactLimitPascal.
//
// Complexity:
//   • Time O(n²) with ~n²/4 rule evaluations; space O(1) beyond the buffer.
//
// Determinism:
//   • Fixed row/column fill order; no randomness.

package triangle

// pascalRule adds the two parents above cell (r, c).
func pascalRule(t *Triangle, r, c int) int64 {
	return t.get(r-1, c-1) + t.get(r-1, c)
}

// fillPascal seeds the apex and completes rows 1..n symmetrically. It is
// also the auxiliary filler for Lozanić, Leibniz and BernoulliTriangle.
func fillPascal(t *Triangle, _ Options) error {
	// Seed the apex; row 0 has a single populated cell.
	t.set(0, 0, 1)
	// Complete each row from its predecessor, mirroring the right half.
	for r := 1; r <= t.order; r++ {
		fillRowSymmetric(t, r, 0, r+1, pascalRule)
	}

	return nil
}

// Pascal builds the binomial triangle of order n: cell (r,c) = C(r,c).
func Pascal(n int) (*Triangle, error) {
	return Build(FamilyPascal, n)
}
