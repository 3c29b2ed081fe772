// SPDX-License-Identifier: MIT
// Package: trigon/triangle
//
// impl_sea.go — implementation of the SEA (Seidel–Entringer–Arnold) family.
//
// Contract:
//   • Pass 1 (natural orientation): cell(0,0) = 1; column 0 is 0 for r ≥ 1;
//     cell(r,c) = cell(r,c−1) + cell(r−1,r−c). Cell (r,c) counts the
//     down-up permutations of r+1 with first element ≤ c (Entringer's E).
//   • Pass 2 (boustrophedon presentation): every 0-based even row r ≥ 2 is
//     reversed in place, reproducing Seidel's ox-plough reading order.
//     Whole rows are computed straight and then flipped; a reversed row is
//     never produced by half-mirroring.
//   • The natural diagonal cell(n,n) — column 0 of reversed storage rows —
//     is the zigzag sequence 1, 1, 1, 2, 5, 16, 61, 272, ….
//   • Exactness: int64 cells are exact for n ≤ ExactLimitSEA.
//
// Complexity:
//   • Time O(n²) for the fill plus O(n²) for the reversal pass.

package triangle

// SEAReversed reports whether storage row r of the boustrophedon
// presentation holds its natural cells in reverse order. Extractors undo
// the presentation on read: natural cell (r,c) lives at storage column
// r−c when SEAReversed(r), at column c otherwise.
func SEAReversed(r int) bool {
	return r >= 2 && r%2 == 0
}

// fillSEA computes the natural Entringer fill, then reverses the
// ox-plough rows in place.
func fillSEA(t *Triangle, _ Options) error {
	// Pass 1: natural orientation, each cell from its left neighbor plus a
	// mirrored read of the previous row.
	t.set(0, 0, 1)
	for r := 1; r <= t.order; r++ {
		t.set(r, 0, 0)
		for c := 1; c <= r; c++ {
			t.set(r, c, t.get(r, c-1)+t.get(r-1, r-c))
		}
	}

	// Pass 2: boustrophedon presentation.
	for r := 2; r <= t.order; r += 2 {
		reverseRow(t, r, r+1)
	}

	return nil
}

// SEA builds the order-n Seidel–Entringer–Arnold triangle in boustrophedon
// presentation.
func SEA(n int) (*Triangle, error) {
	return Build(FamilySEA, n)
}
