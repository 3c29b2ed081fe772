// SPDX-License-Identifier: MIT
// Package: trigon/triangle
//
// impl_trinomial.go — implementation of the Trinomial family.
//
// Contract:
//   • Geometry: (n+1)×(2n+1) grid; row r occupies the centered band of
//     width 2r+1 starting at column n−r. Cells outside the band stay zero.
//   • Seed: cell(0, n) = 1 (the apex sits on the central column).
//   • Rule: cell(r,c) = cell(r−1,c−1) + cell(r−1,c) + cell(r−1,c+1), the
//     coefficients of (1 + x + x²)^r.
//   • Row sums are 3^r; the central column holds the central trinomial
//     coefficients; bands mirror around column n.
//   • Exactness: int64 cells are exact for n ≤ ExactLimitTrinomial.
//
// Complexity:
//   • Time O(n²); space O(1) beyond the (wider) buffer.

package triangle

// trinomialRule adds the three parents above cell (r, c); the virtual zero
// border supplies parents outside the previous row's band.
func trinomialRule(t *Triangle, r, c int) int64 {
	return t.get(r-1, c-1) + t.get(r-1, c) + t.get(r-1, c+1)
}

// fillTrinomial seeds the central apex and widens the band by one cell per
// side each row, mirroring the right half of every band.
func fillTrinomial(t *Triangle, _ Options) error {
	center := t.order
	t.set(0, center, 1)
	for r := 1; r <= t.order; r++ {
		fillRowSymmetric(t, r, center-r, 2*r+1, trinomialRule)
	}

	return nil
}

// Trinomial builds the order-n centered trinomial coefficient grid.
func Trinomial(n int) (*Triangle, error) {
	return Build(FamilyTrinomial, n)
}
