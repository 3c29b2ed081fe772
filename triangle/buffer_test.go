// Package triangle_test: Triangle accessor tests — bounds discipline, copy
// semantics and the Stringer format.
package triangle_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/trigon/triangle"
)

// TestAtOutOfRange ensures At rejects invalid indices with ErrOutOfRange
// instead of panicking.
func TestAtOutOfRange(t *testing.T) {
	tr := mustBuild(t, triangle.FamilyPascal, 3)

	_, err := tr.At(-1, 0) // negative row
	require.ErrorIs(t, err, triangle.ErrOutOfRange)

	_, err = tr.At(0, 4) // column beyond allocation
	require.ErrorIs(t, err, triangle.ErrOutOfRange)

	_, err = tr.At(4, 0) // row beyond allocation
	require.ErrorIs(t, err, triangle.ErrOutOfRange)

	_, err = tr.At(0, -2) // negative column
	require.ErrorIs(t, err, triangle.ErrOutOfRange)
}

// TestRowAndRowSumOutOfRange ensures the row-level accessors share the same
// bounds discipline.
func TestRowAndRowSumOutOfRange(t *testing.T) {
	tr := mustBuild(t, triangle.FamilyPascal, 3)

	_, err := tr.Row(-1)
	require.ErrorIs(t, err, triangle.ErrOutOfRange)
	_, err = tr.Row(4)
	require.ErrorIs(t, err, triangle.ErrOutOfRange)

	_, err = tr.RowSum(-1)
	require.ErrorIs(t, err, triangle.ErrOutOfRange)
	_, err = tr.RowSum(4)
	require.ErrorIs(t, err, triangle.ErrOutOfRange)
}

// TestNilTriangleAccess ensures accessors on a nil buffer surface
// ErrNilTriangle rather than dereferencing.
func TestNilTriangleAccess(t *testing.T) {
	var tr *triangle.Triangle

	_, err := tr.At(0, 0)
	require.ErrorIs(t, err, triangle.ErrNilTriangle)

	_, err = tr.Row(0)
	require.ErrorIs(t, err, triangle.ErrNilTriangle)

	_, err = tr.RowSum(0)
	require.ErrorIs(t, err, triangle.ErrNilTriangle)

	require.Nil(t, tr.Advisories())
	require.Nil(t, tr.Clone())
	require.Equal(t, "<nil>", tr.String())
}

// TestRowReturnsCopy ensures mutating a fetched row cannot corrupt the
// buffer.
func TestRowReturnsCopy(t *testing.T) {
	tr := mustBuild(t, triangle.FamilyPascal, 2)

	row := mustRow(t, tr, 2)
	row[0] = 42 // mutate the copy

	require.Equal(t, []int64{1, 2, 1}, mustRow(t, tr, 2), "buffer must be unaffected")
}

// TestAdvisoriesReturnsCopy ensures the advisory slice is detached from the
// buffer's internal state.
func TestAdvisoriesReturnsCopy(t *testing.T) {
	tr := mustBuild(t, triangle.FamilyPascal, triangle.ExactLimitPascal+1)
	require.Len(t, tr.Advisories(), 1)

	adv := tr.Advisories()
	adv[0].Order = 999 // mutate the copy

	require.Equal(t, triangle.ExactLimitPascal+1, tr.Advisories()[0].Order,
		"buffer advisory must be unaffected")
}

// TestCloneDeepCopy ensures Clone carries every field, advisories included,
// into an equal but distinct buffer.
func TestCloneDeepCopy(t *testing.T) {
	tr := mustBuild(t, triangle.FamilyBell, triangle.ExactLimitBell+1)
	clone := tr.Clone()

	require.NotSame(t, tr, clone)
	require.Equal(t, tr.Family(), clone.Family())
	require.Equal(t, tr.Order(), clone.Order())
	require.Equal(t, tr.Rows(), clone.Rows())
	require.Equal(t, tr.Cols(), clone.Cols())
	require.Equal(t, tr.String(), clone.String())
	require.Equal(t, tr.Advisories(), clone.Advisories())
}

// TestStringOutput checks the bracketed per-row format, zeros included.
func TestStringOutput(t *testing.T) {
	tr := mustBuild(t, triangle.FamilyPascal, 2)

	expected := "[1, 0, 0]\n[1, 1, 0]\n[1, 2, 1]\n"
	require.Equal(t, expected, tr.String())
}
