// SPDX-License-Identifier: MIT
// Package: trigon/bernoulli
//
// hessenberg.go - binomial Hessenberg determinants, exact and log-space.
//
// Design contract (strict):
//   - The determinant is integral by construction. While it is exactly
//     representable in float64 (|det| < 2⁵³, orders ≤ exactDetMaxOrder) it
//     is materialized in exact int64 arithmetic through the Hessenberg
//     minor recurrence; no elimination round-off reaches those orders.
//   - Past that range the matrix is assembled from the Pascal buffer and
//     reduced by Gaussian elimination with partial pivoting: zero pivots
//     occur legitimately (odd-order leading minors vanish) and must
//     trigger a row swap, not a division.
//   - The eliminated determinant is carried as (sign, log|det|);
//     magnitudes around n! stay representable where the raw product would
//     overflow.

package bernoulli

import (
	"math"

	"github.com/katalvlaran/trigon/triangle"
)

// exactDetMaxOrder is the largest order whose Hessenberg determinant is
// exactly representable in float64: |det| for order 16 is ≈ 2.5e15 < 2⁵³,
// while order 18 reaches ≈ 6.7e18. The minor recurrence below also stays
// inside int64 through this order (largest intermediate term ≈ 3.3e16).
const exactDetMaxOrder = 16

// exactDeterminant computes det(H_n) in exact integer arithmetic through
// the lower-Hessenberg minor expansion along the last row. With d₀ = 1 and
// d_k the leading k×k minor,
//
//	d_k = Σ_{j<k} (−1)^{k−1+j} · C(k+1,j) · k!/(j+1)! · d_j,
//
// where C(k+1,j) is read from the Pascal buffer and k!/(j+1)! is the
// product of the superdiagonal entries bridging minor j to row k−1.
// Valid only for n ≤ exactDetMaxOrder; larger orders overflow int64.
//
// The Pascal buffer must have order ≥ n+1. Complexity: O(n²).
func exactDeterminant(pas *triangle.Triangle, n int) int64 {
	d := make([]int64, n+1)
	d[0] = 1
	for k := 1; k <= n; k++ {
		var sum int64
		bridge := int64(1) // k!/(j+1)!, grown as j walks down from k−1
		for j := k - 1; j >= 0; j-- {
			c, _ := pas.At(k+1, j) // in range: the buffer holds rows 0..n+1
			term := c * bridge * d[j]
			if (k-1+j)%2 == 1 {
				term = -term
			}
			sum += term
			bridge *= int64(j + 1) // extend the superdiagonal product
		}
		d[k] = sum
	}

	return d[n]
}

// factorial returns m! in int64. Callers stay at m ≤ exactDetMaxOrder+1,
// far below the 20! overflow edge.
func factorial(m int) int64 {
	f := int64(1)
	for i := int64(2); i <= int64(m); i++ {
		f *= i
	}

	return f
}

// buildHessenberg assembles the n×n lower-Hessenberg minor encoding B_n:
// H[i][j] = C(i+2, j) for j ≤ i+1, zeros above the superdiagonal.
//
// The Pascal buffer must have order ≥ n+1 (rows 2..n+1 are read).
// Complexity: O(n²) time and memory.
func buildHessenberg(pas *triangle.Triangle, n int) [][]float64 {
	h := make([][]float64, n)
	for i := 0; i < n; i++ {
		h[i] = make([]float64, n)
		limit := i + 1
		if limit > n-1 {
			limit = n - 1 // the last rows are fully populated
		}
		for j := 0; j <= limit; j++ {
			v, _ := pas.At(i+2, j) // in range: the buffer holds rows 0..n+1
			h[i][j] = float64(v)
		}
	}

	return h
}

// logDeterminant reduces h in place by Gaussian elimination with partial
// pivoting and returns the determinant as a sign (−1, 0 or +1) and the log
// of its absolute value. A zero sign means the matrix is singular; logAbs
// is meaningless in that case.
//
// Complexity: O(n³) time, O(1) extra memory.
func logDeterminant(h [][]float64) (sign, logAbs float64) {
	n := len(h)
	sign = 1
	for col := 0; col < n; col++ {
		// Select the largest-magnitude pivot at or below the diagonal.
		pivot := col
		for r := col + 1; r < n; r++ {
			if math.Abs(h[r][col]) > math.Abs(h[pivot][col]) {
				pivot = r
			}
		}
		if h[pivot][col] == 0 {
			return 0, 0 // whole column empty: determinant is exactly zero
		}
		if pivot != col {
			h[pivot], h[col] = h[col], h[pivot]
			sign = -sign // a row swap flips the determinant sign
		}

		p := h[col][col]
		if p < 0 {
			sign = -sign
		}
		logAbs += math.Log(math.Abs(p))

		// Eliminate the column below the pivot row.
		for r := col + 1; r < n; r++ {
			factor := h[r][col] / p
			if factor == 0 {
				continue
			}
			for c := col; c < n; c++ {
				h[r][c] -= factor * h[col][c]
			}
		}
	}

	return sign, logAbs
}
