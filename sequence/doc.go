// Package sequence extracts well-known integer sequences from the number
// triangles built by trigon/triangle: Bell, Catalan, cake, lazy-caterer,
// Moser and zigzag numbers, plus positional reads such as binomial,
// Eulerian and Entringer numbers.
//
// 🚀 What does sequence provide?
//
//	Scalar and prefix extractors over one freshly built buffer:
//		• BellNumber, CatalanNumber, ...:    single value at index n
//		• BellNumbers, CatalanNumbers, ...:  all values 0..n from ONE build
//		• Binomial, EulerianNumber, EntringerNumber: positional (n,k) reads
//
// ✨ Why this design?
//
//   - Each extractor names its source cell: Bell numbers live in column 0
//     of Aitken's array, Catalan numbers on the ballot-triangle diagonal,
//     cake numbers are Rascal row sums, lazy-caterer numbers sit in Floyd's
//     first column, zigzag numbers terminate the boustrophedon rows.
//   - Prefix (plural) extractors build one order-n buffer and walk it, so
//     requesting every value up to n costs the same build as requesting
//     the last one alone.
//   - Advisories propagate: ask past a family's exactness limit and the
//     values arrive together with the triangle.Advisory notes describing
//     the build.
//
// Errors: ErrIndexOutOfRange for a position k outside [0, n]; order and
// build failures propagate the triangle package sentinels (errors.Is keeps
// matching through the wrapping).
//
// Complexity: every extractor is dominated by one O(n²) triangle build.
package sequence
