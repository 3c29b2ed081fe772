// SPDX-License-Identifier: MIT
// Package: trigon/triangle
//
// impl_lozanic.go — implementation of the Lozanic family.
//
// Contract:
//   • Seed: cell(0,0) = 1.
//   • Rule: Pascal's parent sum, corrected on even rows at odd columns by
//     subtracting C(r/2−1, (c−1)/2). The correction halves Pascal across
//     the triangle's mirror symmetry (Lozanić's paraffin counts).
//   • Corrections are read from one auxiliary Pascal buffer of order
//     max(n/2−1, 0); every consulted index stays inside that buffer.
//   • Rows mirror around their center; exact for n ≤ ExactLimitLozanic.
//
// Complexity:
//   • Time O(n²); space O(n²/4) for the auxiliary Pascal buffer.

package triangle

// lozanicRule returns Pascal's sum minus the even-row/odd-column correction
// captured from the auxiliary binomial buffer.
func lozanicRule(aux *Triangle) ruleFunc {
	return func(t *Triangle, r, c int) int64 {
		base := t.get(r-1, c-1) + t.get(r-1, c)
		if r%2 == 0 && c%2 == 1 {
			base -= aux.get(r/2-1, (c-1)/2)
		}

		return base
	}
}

// fillLozanic builds the correction buffer once, then completes rows
// symmetrically with the corrected rule.
func fillLozanic(t *Triangle, cfg Options) error {
	// Auxiliary order n/2−1 covers every correction row consulted below;
	// max(...,0) keeps the tiny orders allocatable (the rule never reads it
	// before row 2).
	auxOrder := t.order/2 - 1
	if auxOrder < 0 {
		auxOrder = 0
	}
	aux := newTriangle(FamilyPascal, auxOrder)
	if err := fillPascal(aux, cfg); err != nil {
		return err
	}

	t.set(0, 0, 1)
	rule := lozanicRule(aux)
	for r := 1; r <= t.order; r++ {
		fillRowSymmetric(t, r, 0, r+1, rule)
	}

	return nil
}

// Lozanic builds the order-n paraffin triangle.
func Lozanic(n int) (*Triangle, error) {
	return Build(FamilyLozanic, n)
}
