// SPDX-License-Identifier: MIT
// Package: trigon/triangle
//
// impl_bell.go — implementation of the Bell family (Aitken's array).
//
// Contract:
//   • Seed: cell(0,0) = 1.
//   • Wrap-around: cell(r,0) = cell(r−1,r−1), the previous row's last cell.
//   • Rule: cell(r,c) = cell(r,c−1) + cell(r−1,c−1); each cell reads its
//     left neighbor in the same row, so rows fill strictly left to right.
//   • cell(n,0) is the n-th Bell number (and so is cell(n−1,n−1)).
//   • Not mirror-symmetric. Column 0 is exact for n ≤ ExactLimitBell, the
//     true int64 frontier of the Bell numbers themselves: Bell(26)
//     overflows. The diagonal holds cell(n,n) = Bell(n+1), one number
//     ahead, so it is outside the guarantee at the limit.
//
// Complexity:
//   • Time O(n²); space O(1) beyond the buffer.

package triangle

// fillBell wraps each finished row around to seed the next.
func fillBell(t *Triangle, _ Options) error {
	t.set(0, 0, 1)
	for r := 1; r <= t.order; r++ {
		t.set(r, 0, t.get(r-1, r-1))
		for c := 1; c <= r; c++ {
			t.set(r, c, t.get(r, c-1)+t.get(r-1, c-1))
		}
	}

	return nil
}

// Bell builds the order-n Aitken array.
func Bell(n int) (*Triangle, error) {
	return Build(FamilyBell, n)
}
