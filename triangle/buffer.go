// SPDX-License-Identifier: MIT

// Package triangle: Triangle is the concrete triangular buffer. It stores
// cells in a flat row-major int64 slice for cache friendliness, carries the
// family and order it was built for, and accumulates Advisory values during
// the build. Buffers are read-only after Build returns.
package triangle

import (
	"fmt"
	"strings"
)

// Method-name constants used to prefix accessor errors (no magic strings).
const (
	methodAt     = "Triangle.At"
	methodRow    = "Triangle.Row"
	methodRowSum = "Triangle.RowSum"
)

// Triangle is a row-major triangular buffer of int64 cells.
// rows×cols cells are allocated up front and zeroed; fillers write only the
// populated band of each row, so cells above the diagonal (outside the band
// for Trinomial) stay zero by construction.
type Triangle struct {
	family     Family     // variant this buffer was built for
	order      int        // requested build order n
	rows, cols int        // geometry; cols = 2n+1 for Trinomial, n+1 otherwise
	cells      []int64    // flat backing storage, length == rows*cols
	advisories []Advisory // precision notes collected during the build
}

// newTriangle allocates a zeroed buffer with family-specific geometry.
// Stage 1 (Prepare): derive rows/cols from the family.
// Stage 2 (Allocate): make the flat backing slice.
// Complexity: O(n²) time and memory.
func newTriangle(f Family, n int) *Triangle {
	rows := n + 1
	cols := n + 1
	// Trinomial rows form a centered band of width 2r+1 inside a 2n+1 grid.
	if f == FamilyTrinomial {
		cols = 2*n + 1
	}

	return &Triangle{
		family: f,
		order:  n,
		rows:   rows,
		cols:   cols,
		cells:  make([]int64, rows*cols),
	}
}

// Family returns the variant this buffer was built for. Complexity: O(1).
func (t *Triangle) Family() Family {
	return t.family
}

// Order returns the build order n. Complexity: O(1).
func (t *Triangle) Order() int {
	return t.order
}

// Rows returns the number of allocated rows (n+1). Complexity: O(1).
func (t *Triangle) Rows() int {
	return t.rows
}

// Cols returns the number of allocated columns per row. Complexity: O(1).
func (t *Triangle) Cols() int {
	return t.cols
}

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
// Stage 1 (Validate): check 0 ≤ row < rows and 0 ≤ col < cols.
// Stage 2 (Execute): compute and return linear index.
// Complexity: O(1).
func (t *Triangle) indexOf(method string, row, col int) (int, error) {
	// Validate row index.
	if row < 0 || row >= t.rows {
		return 0, fmt.Errorf("%s(%d,%d): %w", method, row, col, ErrOutOfRange)
	}
	// Validate column index.
	if col < 0 || col >= t.cols {
		return 0, fmt.Errorf("%s(%d,%d): %w", method, row, col, ErrOutOfRange)
	}

	// Compute flat offset.
	return row*t.cols + col, nil
}

// At retrieves the cell at (row, col).
// Stage 1 (Validate): nil receiver, then bounds via indexOf.
// Stage 2 (Execute): read from the flat slice.
// Complexity: O(1).
func (t *Triangle) At(row, col int) (int64, error) {
	if err := validateNotNil(methodAt, t); err != nil {
		return 0, err
	}
	idx, err := t.indexOf(methodAt, row, col)
	if err != nil {
		return 0, err
	}

	return t.cells[idx], nil
}

// Row returns a copy of storage row r, Cols() entries wide. Trailing zeros
// beyond the populated band are included, so callers can compare whole rows
// against literal expectations without re-deriving band widths.
// Stage 1 (Validate): nil receiver and row bounds.
// Stage 2 (Execute): copy the row slice.
// Complexity: O(Cols()).
func (t *Triangle) Row(r int) ([]int64, error) {
	if err := validateNotNil(methodRow, t); err != nil {
		return nil, err
	}
	if r < 0 || r >= t.rows {
		return nil, fmt.Errorf("%s(%d): %w", methodRow, r, ErrOutOfRange)
	}

	// Copy so the buffer stays immutable from the caller's point of view.
	row := make([]int64, t.cols)
	copy(row, t.cells[r*t.cols:(r+1)*t.cols])

	return row, nil
}

// RowSum returns the sum of storage row r. Cells outside the populated band
// are zero, so this equals the sum of the meaningful band.
// Complexity: O(Cols()).
func (t *Triangle) RowSum(r int) (int64, error) {
	if err := validateNotNil(methodRowSum, t); err != nil {
		return 0, err
	}
	if r < 0 || r >= t.rows {
		return 0, fmt.Errorf("%s(%d): %w", methodRowSum, r, ErrOutOfRange)
	}

	var sum int64
	for c := 0; c < t.cols; c++ {
		sum += t.cells[r*t.cols+c]
	}

	return sum, nil
}

// Advisories returns a copy of the precision notes attached during Build.
// An empty result means every cell honors the family's exactness contract.
// Complexity: O(len(advisories)).
func (t *Triangle) Advisories() []Advisory {
	if t == nil || len(t.advisories) == 0 {
		return nil
	}
	out := make([]Advisory, len(t.advisories))
	copy(out, t.advisories)

	return out
}

// Clone returns a deep copy of the buffer, advisories included. A nil
// receiver yields nil, matching the never-panic accessor contract.
// Complexity: O(rows*cols) time and memory.
func (t *Triangle) Clone() *Triangle {
	if t == nil {
		return nil
	}
	// Copy flat storage into a fresh slice.
	cells := make([]int64, len(t.cells))
	copy(cells, t.cells)

	return &Triangle{
		family:     t.family,
		order:      t.order,
		rows:       t.rows,
		cols:       t.cols,
		cells:      cells,
		advisories: t.Advisories(),
	}
}

// String implements fmt.Stringer for easy debugging: one bracketed line per
// storage row, trailing zeros included. A nil receiver renders "<nil>" so
// fmt verbs never panic on one.
// Complexity: O(rows*cols) for string construction.
func (t *Triangle) String() string {
	if t == nil {
		return "<nil>"
	}
	var b strings.Builder
	for r := 0; r < t.rows; r++ { // iterate over rows
		b.WriteByte('[')
		for c := 0; c < t.cols; c++ { // iterate over columns
			if c > 0 {
				b.WriteString(", ")
			}
			// compute flat index directly for performance
			fmt.Fprintf(&b, "%d", t.cells[r*t.cols+c])
		}
		b.WriteString("]\n")
	}

	return b.String()
}

// get reads (row, col) treating every out-of-range position as zero. Family
// rules lean on this virtual zero border so boundary columns need no special
// casing. Internal use only; public reads go through At.
// Complexity: O(1).
func (t *Triangle) get(row, col int) int64 {
	if row < 0 || row >= t.rows || col < 0 || col >= t.cols {
		return 0
	}

	return t.cells[row*t.cols+col]
}

// set writes (row, col) without bounds indirection. Fillers must stay
// inside the populated band of the current row; that invariant is what keeps
// cells outside the band zero.
// Complexity: O(1).
func (t *Triangle) set(row, col int, v int64) {
	t.cells[row*t.cols+col] = v
}
