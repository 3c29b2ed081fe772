// Package trigon is your in-memory workbench for classic number triangles —
// from Pascal and its fractal, halved and multiplied relatives to the
// boustrophedon zigzag triangle and determinant-grade Bernoulli numbers.
//
// 🚀 What is trigon?
//
//	A deterministic, dependency-light library that brings together:
//		• Triangle builders: Pascal, Sierpiński, Bernoulli, Eulerian, Rascal,
//		  Lozanić, trinomial, Clark, Catalan, Bell, Floyd, SEA, Leibniz
//		• Sequence extraction: Bell, Catalan, cake, lazy-caterer, Moser,
//		  zigzag numbers, plus binomial, Eulerian and Entringer reads
//		• Bernoulli numbers: a log-space Hessenberg determinant pipeline
//
// ✨ Why choose trigon?
//
//   - Exact by contract – int64 cells with documented per-family limits
//   - Advisories as values – precision caveats travel with results, never
//     through logs
//   - Pure Go – no cgo, the only external dependency is the test stack
//   - Uniform shape – one Build orchestrator, one filler per family
//
// Under the hood, everything is organized under three subpackages:
//
//	triangle/  — buffers, families, fillers, advisories & sentinel errors
//	sequence/  — scalar and prefix extractors over single builds
//	bernoulli/ — the determinant pipeline for Bernoulli numbers
//
// Quick ASCII example:
//
//	    1
//	   1 1
//	  1 2 1
//	 1 3 3 1
//
//	four rows of Pascal; every other family reshapes this same walk.
//
// Dive into the examples/ directory for end-to-end scenarios: partition
// counting, circle slicing and alternating permutations.
//
//	go get github.com/katalvlaran/trigon
package trigon
