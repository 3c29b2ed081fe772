// Package triangle builds classic number triangles — Pascal, Sierpiński,
// Eulerian, Rascal, Lozanić, trinomial, Clark, Catalan, Bell, Floyd,
// Leibniz and the Seidel–Entringer–Arnold zigzag triangle — as immutable
// row-major buffers ready for inspection or sequence extraction.
//
// 🚀 What does triangle provide?
//
//	A deterministic, allocation-per-call construction engine:
//		• Triangle:        flat int64 buffer with safe accessors (At, Row, RowSum)
//		• Build:           one orchestrator dispatching on Family
//		• Pascal…Leibniz:  thin per-family constructors declared in api.go
//		• Advisory:        non-fatal precision notes attached to results
//
// ✨ Why this design?
//
//   - Row-by-row recurrences: every cell derives from already-final rows,
//     so each family is a small ruleFunc plus seed values.
//   - Symmetric completion: mirror-image families compute only the left
//     half of each row; the right half is copied, never recomputed.
//   - Two-tier error model: invalid arguments return sentinel errors and
//     no buffer; exactness past a documented order returns the buffer plus
//     an Advisory value. Advisories are data, not log output.
//
// Families and their exactness contracts (int64 cells):
//
//	Pascal, Rascal, Lozanic, Clark, Leibniz, BernoulliTriangle  exact to n ≤ 50
//	Eulerian, SEA, Trinomial                                    exact to n ≤ 20
//	Bell                                                        exact to n ≤ 25
//	Catalan                                                     exact to n ≤ 30
//	Floyd, Sierpinski                                           always exact
//
// Geometry: every family allocates (n+1)×(n+1) cells with zeros above the
// diagonal, except Trinomial which allocates (n+1)×(2n+1) and centers each
// row band on column n.
//
// Errors: ErrNegativeOrder, ErrUnknownFamily, ErrNotBuildable,
// ErrNegativeMultiplier, ErrOutOfRange, ErrNilTriangle. Branch with
// errors.Is; messages are stable.
//
// Complexity: Build is O(n²) time and memory for all families (Lozanić,
// Leibniz and BernoulliTriangle allocate one auxiliary Pascal buffer).
//
// See sequence/ for scalar extraction (Bell, Catalan, Entringer numbers…)
// and bernoulli/ for the determinant-based Bernoulli number pipeline.
package triangle
