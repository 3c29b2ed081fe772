// SPDX-License-Identifier: MIT
// Package: trigon/triangle
//
// impl_eulerian.go — implementation of the Eulerian family.
//
// Contract:
//   • Seed: cell(0,0) = 1.
//   • Rule: cell(r,c) = (c+1)·cell(r−1,c) + (r−c)·cell(r−1,c−1), the count
//     of r-permutations with exactly c descents.
//   • Row r ≥ 1 has exactly r populated entries; storage keeps trailing
//     zeros above that prefix. The mirror symmetry ⟨r,c⟩ = ⟨r,r−1−c⟩ holds
//     on the populated prefix, so fillRowSymmetric runs with length r.
//   • Row sums are r!; exactness holds for n ≤ ExactLimitEulerian.
//
// Complexity:
//   • Time O(n²); space O(1) beyond the buffer.

package triangle

// eulerianRule weights the two parents by descent multiplicities.
func eulerianRule(t *Triangle, r, c int) int64 {
	return int64(c+1)*t.get(r-1, c) + int64(r-c)*t.get(r-1, c-1)
}

// fillEulerian seeds the apex and completes each populated prefix
// symmetrically. Row 1 degenerates to the single cell ⟨1,0⟩ = 1.
func fillEulerian(t *Triangle, _ Options) error {
	t.set(0, 0, 1)
	for r := 1; r <= t.order; r++ {
		fillRowSymmetric(t, r, 0, r, eulerianRule)
	}

	return nil
}

// Eulerian builds the order-n descent-count triangle ⟨r,c⟩.
func Eulerian(n int) (*Triangle, error) {
	return Build(FamilyEulerian, n)
}
