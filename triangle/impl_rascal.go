// SPDX-License-Identifier: MIT
// Package: trigon/triangle
//
// impl_rascal.go — implementation of the Rascal family.
//
// Contract:
//   • Seeds: rows 0 and 1 are [1] and [1,1].
//   • Rule (diamond): South = (West·East + 1) / North, i.e.
//     cell(r,c) = (cell(r−1,c−1)·cell(r−1,c) + 1) / cell(r−2,c−1).
//     Column 0 has no North neighbor and is the constant 1 edge.
//   • The int64 division is exact by construction: cells reachable from the
//     seeds satisfy the closed form cell(r,c) = c(r−c)+1, which makes every
//     North divide West·East+1 evenly. No runtime integrality assertion.
//   • Rows mirror around their center; exact for n ≤ ExactLimitRascal.
//
// Complexity:
//   • Time O(n²); space O(1) beyond the buffer.

package triangle

// rascalRule applies the diamond recurrence with a constant-1 edge column.
func rascalRule(t *Triangle, r, c int) int64 {
	// Edge column: no North neighbor exists, the boundary stays 1.
	if c == 0 {
		return 1
	}

	// Interior: North is a populated cell ≥ 1 for every reachable (r, c).
	return (t.get(r-1, c-1)*t.get(r-1, c) + 1) / t.get(r-2, c-1)
}

// fillRascal seeds two rows and completes the rest symmetrically; the
// diamond rule needs two finished predecessor rows.
func fillRascal(t *Triangle, _ Options) error {
	t.set(0, 0, 1)
	if t.order >= 1 {
		t.set(1, 0, 1)
		t.set(1, 1, 1)
	}
	for r := 2; r <= t.order; r++ {
		fillRowSymmetric(t, r, 0, r+1, rascalRule)
	}

	return nil
}

// Rascal builds the order-n diamond-rule triangle, cell (r,c) = c(r−c)+1.
func Rascal(n int) (*Triangle, error) {
	return Build(FamilyRascal, n)
}
