// SPDX-License-Identifier: MIT
// Package: trigon/triangle
//
// impl_clark.go — implementation of the Clark family.
//
// Contract:
//   • Seed: cell(0,0) = 0 (the vertex), per the published triangle.
//   • Column 0 is 1 for every row r ≥ 1.
//   • Diagonal: cell(r,r) = r·multiplier (DefaultMultiplier = 6 reproduces
//     the classic variant; Build rejects negative multipliers).
//   • Interior: Pascal's parent sum over the previous row.
//   • Not mirror-symmetric: every row is written directly edge-to-diagonal.
//   • Exactness: int64 cells are exact for n ≤ ExactLimitClark.
//
// Complexity:
//   • Time O(n²); space O(1) beyond the buffer.

package triangle

// fillClark writes the fixed edge, Pascal interior and multiplied diagonal
// of each row in one left-to-right pass.
func fillClark(t *Triangle, cfg Options) error {
	// Vertex cell: the published triangle starts at 0, not 1.
	t.set(0, 0, 0)
	for r := 1; r <= t.order; r++ {
		t.set(r, 0, 1)
		for c := 1; c < r; c++ {
			t.set(r, c, t.get(r-1, c-1)+t.get(r-1, c))
		}
		t.set(r, r, int64(r)*cfg.multiplier)
	}

	return nil
}

// Clark builds the order-n multiplied-diagonal triangle. The positional
// multiplier mirrors WithMultiplier; negative values surface as
// ErrNegativeMultiplier from Build.
func Clark(n int, multiplier int64) (*Triangle, error) {
	return Build(FamilyClark, n, WithMultiplier(multiplier))
}
