// SPDX-License-Identifier: MIT
// Package: trigon/triangle
//
// impl_floyd.go — implementation of the Floyd family.
//
// Contract:
//   • Cells hold the consecutive integers 1, 2, 3, … written row by row, a
//     single running counter rather than a recurrence.
//   • Column 0 is the lazy-caterer sequence 1, 2, 4, 7, 11, …; the diagonal
//     holds the triangular numbers 1, 3, 6, 10, ….
//   • Never inexact at buildable orders, so the family carries no limit.
//
// Complexity:
//   • Time O(n²); space O(1) beyond the buffer.

package triangle

// fillFloyd writes the running counter across the triangle.
func fillFloyd(t *Triangle, _ Options) error {
	v := int64(1)
	for r := 0; r <= t.order; r++ {
		for c := 0; c <= r; c++ {
			t.set(r, c, v)
			v++
		}
	}

	return nil
}

// Floyd builds the order-n consecutive-integer triangle.
func Floyd(n int) (*Triangle, error) {
	return Build(FamilyFloyd, n)
}
