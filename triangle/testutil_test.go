// Package triangle_test contains unit tests for the triangle package.
// Shared helpers live here; scenario tests import them across files.
package triangle_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/trigon/triangle"
)

// mustBuild builds family f at order n and fails the test on any error.
func mustBuild(t *testing.T, f triangle.Family, n int, opts ...triangle.Option) *triangle.Triangle {
	t.Helper()
	tr, err := triangle.Build(f, n, opts...)
	require.NoError(t, err, "Build(%s, %d)", f, n)

	return tr
}

// mustRow fetches storage row r (trailing zeros included) or fails the test.
func mustRow(t *testing.T, tr *triangle.Triangle, r int) []int64 {
	t.Helper()
	row, err := tr.Row(r)
	require.NoError(t, err, "Row(%d)", r)

	return row
}

// mustAt fetches one cell or fails the test.
func mustAt(t *testing.T, tr *triangle.Triangle, r, c int) int64 {
	t.Helper()
	v, err := tr.At(r, c)
	require.NoError(t, err, "At(%d,%d)", r, c)

	return v
}
