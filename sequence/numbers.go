// SPDX-License-Identifier: MIT
// Package: trigon/sequence
//
// numbers.go - named scalar sequences read from freshly built triangles.
//
// Design contract (strict):
//   - Singular extractors (BellNumber, ...) build one order-n buffer and
//     read exactly one cell or one row aggregate.
//   - Plural extractors (BellNumbers, ...) build ONE order-n buffer and walk
//     indices 0..n; they never rebuild per index.
//   - Advisories from the underlying build are returned verbatim; they
//     describe the order-n build and never abort the extraction.
//   - A negative n is rejected by the build itself, so
//     triangle.ErrNegativeOrder stays the single authority on orders.

package sequence

import "github.com/katalvlaran/trigon/triangle"

// File-local constants for method tagging (no magic strings).
const (
	methodBellNumber         = "BellNumber"
	methodBellNumbers        = "BellNumbers"
	methodCatalanNumber      = "CatalanNumber"
	methodCatalanNumbers     = "CatalanNumbers"
	methodCakeNumber         = "CakeNumber"
	methodCakeNumbers        = "CakeNumbers"
	methodLazyCatererNumber  = "LazyCatererNumber"
	methodLazyCatererNumbers = "LazyCatererNumbers"
	methodMoserNumber        = "MoserNumber"
	methodMoserNumbers       = "MoserNumbers"
	methodZigzagNumber       = "ZigzagNumber"
	methodZigzagNumbers      = "ZigzagNumbers"
)

// BellNumber returns the n-th Bell number: the number of ways to partition
// a set of n elements (OEIS A000110). It is read from column 0 of Aitken's
// array, where row r starts with the value the previous row ended on.
//
// Values: 1, 1, 2, 5, 15, 52, 203, 877, ...
//
// Errors: triangle.ErrNegativeOrder for n < 0.
// Advisory: AdvisoryExactness for n > triangle.ExactLimitBell.
// Complexity: O(n²) time and memory (one Bell build).
func BellNumber(n int) (int64, []triangle.Advisory, error) {
	tr, err := triangle.Bell(n)
	if err != nil {
		return 0, nil, sequenceErrorf(methodBellNumber, err)
	}

	v, _ := tr.At(n, 0) // in range by construction

	return v, tr.Advisories(), nil
}

// BellNumbers returns Bell numbers 0..n from a single order-n build.
// See BellNumber for the sequence itself.
func BellNumbers(n int) ([]int64, []triangle.Advisory, error) {
	tr, err := triangle.Bell(n)
	if err != nil {
		return nil, nil, sequenceErrorf(methodBellNumbers, err)
	}

	out := make([]int64, n+1)
	for k := 0; k <= n; k++ {
		out[k], _ = tr.At(k, 0) // in range by construction
	}

	return out, tr.Advisories(), nil
}

// CatalanNumber returns the n-th Catalan number: balanced bracketings,
// monotone lattice paths, rooted binary trees (OEIS A000108). It is read
// from the main diagonal of the ballot-count triangle.
//
// Values: 1, 1, 2, 5, 14, 42, 132, 429, ...
//
// Errors: triangle.ErrNegativeOrder for n < 0.
// Advisory: AdvisoryExactness for n > triangle.ExactLimitCatalan.
// Complexity: O(n²) time and memory (one Catalan build).
func CatalanNumber(n int) (int64, []triangle.Advisory, error) {
	tr, err := triangle.Catalan(n)
	if err != nil {
		return 0, nil, sequenceErrorf(methodCatalanNumber, err)
	}

	v, _ := tr.At(n, n) // in range by construction

	return v, tr.Advisories(), nil
}

// CatalanNumbers returns Catalan numbers 0..n from a single order-n build.
// See CatalanNumber for the sequence itself.
func CatalanNumbers(n int) ([]int64, []triangle.Advisory, error) {
	tr, err := triangle.Catalan(n)
	if err != nil {
		return nil, nil, sequenceErrorf(methodCatalanNumbers, err)
	}

	out := make([]int64, n+1)
	for k := 0; k <= n; k++ {
		out[k], _ = tr.At(k, k) // in range by construction
	}

	return out, tr.Advisories(), nil
}

// CakeNumber returns the maximum number of pieces a cake can be cut into
// with n planar cuts (OEIS A000125). It equals the sum of Rascal row n,
// whose cells follow the closed form c(n−c)+1.
//
// Values: 1, 2, 4, 8, 15, 26, 42, 64, ...
//
// Errors: triangle.ErrNegativeOrder for n < 0.
// Advisory: AdvisoryExactness for n > triangle.ExactLimitRascal.
// Complexity: O(n²) time and memory (one Rascal build).
func CakeNumber(n int) (int64, []triangle.Advisory, error) {
	tr, err := triangle.Rascal(n)
	if err != nil {
		return 0, nil, sequenceErrorf(methodCakeNumber, err)
	}

	v, _ := tr.RowSum(n) // in range by construction

	return v, tr.Advisories(), nil
}

// CakeNumbers returns cake numbers 0..n from a single order-n build.
// See CakeNumber for the sequence itself.
func CakeNumbers(n int) ([]int64, []triangle.Advisory, error) {
	tr, err := triangle.Rascal(n)
	if err != nil {
		return nil, nil, sequenceErrorf(methodCakeNumbers, err)
	}

	out := make([]int64, n+1)
	for k := 0; k <= n; k++ {
		out[k], _ = tr.RowSum(k) // in range by construction
	}

	return out, tr.Advisories(), nil
}

// LazyCatererNumber returns the maximum number of pieces a pancake can be
// cut into with n straight cuts (OEIS A000124). It is read from column 0 of
// Floyd's triangle, where each row of consecutive integers begins exactly
// one past the previous count.
//
// Values: 1, 2, 4, 7, 11, 16, 22, 29, ...
//
// Errors: triangle.ErrNegativeOrder for n < 0.
// Advisory: none (Floyd is always exact).
// Complexity: O(n²) time and memory (one Floyd build).
func LazyCatererNumber(n int) (int64, []triangle.Advisory, error) {
	tr, err := triangle.Floyd(n)
	if err != nil {
		return 0, nil, sequenceErrorf(methodLazyCatererNumber, err)
	}

	v, _ := tr.At(n, 0) // in range by construction

	return v, tr.Advisories(), nil
}

// LazyCatererNumbers returns lazy-caterer numbers 0..n from a single
// order-n build. See LazyCatererNumber for the sequence itself.
func LazyCatererNumbers(n int) ([]int64, []triangle.Advisory, error) {
	tr, err := triangle.Floyd(n)
	if err != nil {
		return nil, nil, sequenceErrorf(methodLazyCatererNumbers, err)
	}

	out := make([]int64, n+1)
	for k := 0; k <= n; k++ {
		out[k], _ = tr.At(k, 0) // in range by construction
	}

	return out, tr.Advisories(), nil
}

// MoserNumber returns the number of regions n points on a circle cut it
// into when all chords are drawn, 1 + C(n,2) + C(n,4), famous for matching
// powers of two up to n = 5 and then breaking the pattern at 31
// (OEIS A000127 for n ≥ 1).
//
// Values: 1, 1, 2, 4, 8, 16, 31, 57, ...
//
// Errors: triangle.ErrNegativeOrder for n < 0.
// Advisory: AdvisoryExactness for n > triangle.ExactLimitPascal.
// Complexity: O(n²) time and memory (one Pascal build).
func MoserNumber(n int) (int64, []triangle.Advisory, error) {
	pas, err := triangle.Pascal(n)
	if err != nil {
		return 0, nil, sequenceErrorf(methodMoserNumber, err)
	}

	v := 1 + binomialAt(pas, n, 2) + binomialAt(pas, n, 4)

	return v, pas.Advisories(), nil
}

// MoserNumbers returns Moser circle counts 0..n from a single Pascal build.
// See MoserNumber for the sequence itself.
func MoserNumbers(n int) ([]int64, []triangle.Advisory, error) {
	pas, err := triangle.Pascal(n)
	if err != nil {
		return nil, nil, sequenceErrorf(methodMoserNumbers, err)
	}

	out := make([]int64, n+1)
	for k := 0; k <= n; k++ {
		out[k] = 1 + binomialAt(pas, k, 2) + binomialAt(pas, k, 4)
	}

	return out, pas.Advisories(), nil
}

// ZigzagNumber returns the n-th zigzag (up/down) number: alternating
// permutations of n elements, with tangent and secant numbers interleaved
// (OEIS A000111). Row n of the boustrophedon triangle ends on it.
//
// Values: 1, 1, 1, 2, 5, 16, 61, 272, ...
//
// Errors: triangle.ErrNegativeOrder for n < 0.
// Advisory: AdvisoryExactness for n > triangle.ExactLimitSEA.
// Complexity: O(n²) time and memory (one SEA build).
func ZigzagNumber(n int) (int64, []triangle.Advisory, error) {
	tr, err := triangle.SEA(n)
	if err != nil {
		return 0, nil, sequenceErrorf(methodZigzagNumber, err)
	}

	return naturalEnd(tr, n), tr.Advisories(), nil
}

// ZigzagNumbers returns zigzag numbers 0..n from a single order-n build.
// See ZigzagNumber for the sequence itself.
func ZigzagNumbers(n int) ([]int64, []triangle.Advisory, error) {
	tr, err := triangle.SEA(n)
	if err != nil {
		return nil, nil, sequenceErrorf(methodZigzagNumbers, err)
	}

	out := make([]int64, n+1)
	for k := 0; k <= n; k++ {
		out[k] = naturalEnd(tr, k)
	}

	return out, tr.Advisories(), nil
}

// naturalEnd reads the natural last cell E(r,r) of a boustrophedon row: the
// zigzag number the row produced. Reversed rows store it at column 0.
func naturalEnd(tr *triangle.Triangle, r int) int64 {
	c := r
	if triangle.SEAReversed(r) {
		c = 0
	}
	v, _ := tr.At(r, c) // in range by construction

	return v
}
