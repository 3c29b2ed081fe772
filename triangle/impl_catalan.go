// SPDX-License-Identifier: MIT
// Package: trigon/triangle
//
// impl_catalan.go — implementation of the Catalan family.
//
// Contract:
//   • Seed: cell(0,0) = 1; column 0 is 1 for every row.
//   • Rule: cell(r,c) = Σ_{j≤c} cell(r−1,j), maintained as a running
//     accumulator across the row (one addition per cell). The previous
//     row's diagonal neighbor is zero beyond column r−1, so the diagonal
//     cell(r,r) ends up equal to its left neighbor without a special case.
//   • cell(n,n) is the n-th Catalan number; cell(r,1) = r.
//   • Not mirror-symmetric; exact for n ≤ ExactLimitCatalan.
//
// Complexity:
//   • Time O(n²); space O(1) beyond the buffer.

package triangle

// fillCatalan accumulates ballot counts row by row.
func fillCatalan(t *Triangle, _ Options) error {
	t.set(0, 0, 1)
	for r := 1; r <= t.order; r++ {
		t.set(r, 0, 1)
		// run carries the prefix sum of the previous row, seeded by its
		// column 0.
		run := t.get(r-1, 0)
		for c := 1; c <= r; c++ {
			run += t.get(r-1, c)
			t.set(r, c, run)
		}
	}

	return nil
}

// Catalan builds the order-n ballot triangle.
func Catalan(n int) (*Triangle, error) {
	return Build(FamilyCatalan, n)
}
