// SPDX-License-Identifier: MIT
// Package: trigon/triangle
//
// impl_leibniz.go — implementation of the Leibniz family (harmonic triangle).
//
// Contract:
//   • Denominator(r,c) = (r+1)·C(r,c), computed from one auxiliary Pascal
//     buffer; the harmonic entries themselves are 1/Denominator(r,c).
//   • Build(FamilyLeibniz, n) yields the integer denominator buffer alone;
//     Leibniz(n) pairs it with the float64 unit fractions so both views
//     share a single build.
//   • Fraction cells outside the triangle are 0 (a unit fraction is never
//     zero, so the filler marker is unambiguous).
//   • Exactness: denominators are exact for n ≤ ExactLimitLeibniz; the
//     fractions inherit float64 rounding and satisfy the round-trip law
//     Fraction(r,c)·Denominator(r,c) ≈ 1 within tolerance.
//
// Complexity:
//   • Time O(n²); space O(n²) for the auxiliary Pascal buffer.

package triangle

// LeibnizTriangle pairs the harmonic triangle's integer denominators with
// the unit fractions they define. Both views have the same geometry; the
// Fraction grid is row-major with rows of Denominator.Cols() entries.
type LeibnizTriangle struct {
	// Denominator holds (r+1)·C(r,c) as a regular Triangle buffer.
	Denominator *Triangle

	// Fraction holds 1/Denominator(r,c) inside the triangle, 0 outside.
	Fraction [][]float64
}

// fillLeibniz scales each Pascal row by its harmonic factor r+1.
func fillLeibniz(t *Triangle, cfg Options) error {
	pas := newTriangle(FamilyPascal, t.order)
	if err := fillPascal(pas, cfg); err != nil {
		return err
	}

	for r := 0; r <= t.order; r++ {
		factor := int64(r + 1)
		for c := 0; c <= r; c++ {
			t.set(r, c, factor*pas.get(r, c))
		}
	}

	return nil
}

// Leibniz builds the order-n harmonic triangle: the integer denominator
// buffer paired with its float64 unit fractions.
//
// Stage 1 (Build): construct the denominator buffer via Build (validation,
// advisories and errors follow Build's contract).
// Stage 2 (Derive): invert each populated denominator into the Fraction
// grid, leaving cells outside the triangle at 0.
//
// Complexity: O(n²) time and memory.
func Leibniz(n int) (*LeibnizTriangle, error) {
	den, err := Build(FamilyLeibniz, n)
	if err != nil {
		return nil, err
	}

	frac := make([][]float64, den.Rows())
	for r := range frac {
		frac[r] = make([]float64, den.Cols())
		for c := 0; c <= r; c++ {
			frac[r][c] = 1 / float64(den.get(r, c))
		}
	}

	return &LeibnizTriangle{Denominator: den, Fraction: frac}, nil
}
