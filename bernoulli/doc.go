// Package bernoulli computes Bernoulli numbers through the determinant of
// a binomial lower-Hessenberg matrix, entirely from a Pascal build.
//
// 🚀 What does bernoulli provide?
//
//	Two entry points over one shared pipeline:
//		• Number(n):  the n-th Bernoulli number as float64
//		• Numbers(n): all values 0..n from ONE Pascal build
//
// ✨ Why this design?
//
//   - The classic recurrence Σ C(n+1,j)·B_j = 0 packs into an n×n
//     lower-Hessenberg matrix H with H[i][j] = C(i+2,j); its determinant
//     divided by (n+1)! is exactly B_n.
//   - The determinant is integral by construction. While it is exactly
//     representable in float64 (orders ≤ 16) it is computed in exact
//     integer arithmetic through the Hessenberg minor recurrence, so the
//     final division is the only rounding in the result.
//   - Past that range the determinant is tracked as a sign plus a log
//     magnitude, and the factorial enters through math.Lgamma, so neither
//     side overflows float64 even though both grow super-exponentially.
//   - Partial pivoting is not optional: the elimination hits exact zero
//     pivots (the odd-order minors vanish identically), which a pivot-free
//     sweep would turn into NaN.
//
// Conventions: B1 = +1/2 (the B⁺ convention); odd orders from 3 on are
// exactly zero and short-circuit before any floating-point work.
//
// Precision: orders on the integral path (≤ 16) are correctly rounded;
// the elimination path stays numerically trustworthy up to StableLimit
// (order 20); past it Number and Numbers attach a
// triangle.AdvisoryStability note and keep returning the best available
// approximation.
//
// Errors: ErrNegativeOrder for n < 0. Branch with errors.Is.
//
// Complexity: Number is O(n³) time (elimination) over an O(n²) build;
// Numbers shares one build across all orders, so its cost is the sum of
// the per-order eliminations.
package bernoulli
