// SPDX-License-Identifier: MIT
// Package: trigon/triangle
//
// engine.go — the shared row-completion engine behind every family filler.
//
// Contract:
//   • Rows are filled strictly in increasing order; a ruleFunc may read any
//     cell of rows < r, and reads outside the buffer yield zero through
//     get's virtual border.
//   • Symmetric families compute just the left half of each row band; the
//     right half is copied from the left, never recomputed. The ⌈length/2⌉
//     split leaves the center column of odd bands computed exactly once and
//     mirrors even bands cleanly, which encodes the parity offset between
//     odd and even row lengths.
//   • Boustrophedon families compute whole rows in natural orientation and
//     reverse selected rows in place afterwards (two distinct passes; a
//     reversed row is never produced by half-mirroring).
//
// Determinism:
//   • Fixed c-ascending loop order inside each row, fixed r-ascending order
//     across rows. Same family, order and options ⇒ identical buffers.

package triangle

// ruleFunc computes the value of cell (r, c) from already-final state.
// Implementations read earlier rows through t.get, which returns zero for
// any position outside the buffer, so edge columns need no special casing.
// Closures may capture auxiliary buffers (see Lozanić and Leibniz).
type ruleFunc func(t *Triangle, r, c int) int64

// fillRowSymmetric populates one mirror-symmetric row band.
// Stage 1 (Compute): evaluate rule for the first ⌈length/2⌉ band columns.
// Stage 2 (Mirror): copy cell(r, offset+length−1−c) into cell(r, offset+c)
// for the remaining columns.
//
// Inputs:
//   - r:      row being filled (rows < r must already be final).
//   - offset: first storage column of the band (0 for all families except
//     Trinomial, which centers row r at offset n−r).
//   - length: band width (r+1 for Pascal-shaped rows, 2r+1 for Trinomial,
//     max(r,1) for Eulerian's populated prefix).
//   - rule:   the family recurrence.
//
// Complexity: O(length); exactly ⌈length/2⌉ rule evaluations.
func fillRowSymmetric(t *Triangle, r, offset, length int, rule ruleFunc) {
	// Stage 1: compute the left half, center column included for odd lengths.
	half := (length + 1) / 2
	for c := 0; c < half; c++ {
		t.set(r, offset+c, rule(t, r, offset+c))
	}
	// Stage 2: mirror the computed half onto the right half.
	for c := half; c < length; c++ {
		t.set(r, offset+c, t.get(r, offset+length-1-c))
	}
}

// reverseRow flips the first length cells of row r in place. Used by the
// boustrophedon pass after a whole row has been computed in natural order.
// Complexity: O(length).
func reverseRow(t *Triangle, r, length int) {
	base := r * t.cols
	for i, j := 0, length-1; i < j; i, j = i+1, j-1 {
		t.cells[base+i], t.cells[base+j] = t.cells[base+j], t.cells[base+i]
	}
}
