// SPDX-License-Identifier: MIT
// Package: trigon/triangle
//
// impl_sierpinski.go — implementation of the Sierpinski family.
//
// Contract:
//   • Seed: cell(0,0) = 1.
//   • Rule: Pascal's rule reduced modulo 2, i.e. the XOR of the parents.
//     Cells are always 0 or 1; the triangle never overflows and carries no
//     exactness limit.
//   • Rows mirror around their center exactly like Pascal's.
//
// Complexity:
//   • Time O(n²); space O(1) beyond the buffer.

package triangle

// sierpinskiRule is the parent sum modulo 2. Parents are 0/1, so addition
// followed by the reduction equals XOR.
func sierpinskiRule(t *Triangle, r, c int) int64 {
	return (t.get(r-1, c-1) + t.get(r-1, c)) % 2
}

// fillSierpinski mirrors fillPascal with the mod-2 rule.
func fillSierpinski(t *Triangle, _ Options) error {
	t.set(0, 0, 1)
	for r := 1; r <= t.order; r++ {
		fillRowSymmetric(t, r, 0, r+1, sierpinskiRule)
	}

	return nil
}

// Sierpinski builds the order-n Pascal-mod-2 gasket.
func Sierpinski(n int) (*Triangle, error) {
	return Build(FamilySierpinski, n)
}
