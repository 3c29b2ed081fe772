// Package sequence_test: positional (n,k) extractors — binomial, Eulerian
// and Entringer reads, index validation and orientation handling.
package sequence_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/trigon/sequence"
	"github.com/katalvlaran/trigon/triangle"
)

// TestBinomial pins classic binomial coefficients.
func TestBinomial(t *testing.T) {
	cases := []struct {
		n, k int
		want int64
	}{
		{0, 0, 1},
		{6, 0, 1},
		{6, 6, 1},
		{6, 3, 20},
		{10, 5, 252},
		{12, 4, 495},
	}
	for _, tc := range cases {
		v, advs, err := sequence.Binomial(tc.n, tc.k)
		require.NoError(t, err, "C(%d,%d)", tc.n, tc.k)
		require.Empty(t, advs)
		assert.Equal(t, tc.want, v, "C(%d,%d)", tc.n, tc.k)
	}
}

// TestBinomialSymmetry checks C(n,k) = C(n,n−k) across a full row.
func TestBinomialSymmetry(t *testing.T) {
	const n = 12
	for k := 0; k <= n; k++ {
		left, _, err := sequence.Binomial(n, k)
		require.NoError(t, err)
		right, _, err := sequence.Binomial(n, n-k)
		require.NoError(t, err)
		assert.Equal(t, left, right, "k=%d", k)
	}
}

// TestEulerianNumber pins descent counts, including the padding zero at
// k = n.
func TestEulerianNumber(t *testing.T) {
	// Row 4 of the descent triangle is 1, 11, 11, 1 followed by padding.
	expect := []int64{1, 11, 11, 1, 0}
	for k, want := range expect {
		v, _, err := sequence.EulerianNumber(4, k)
		require.NoError(t, err)
		assert.Equal(t, want, v, "A(4,%d)", k)
	}

	// The single most-quoted entry: 66 permutations of 5 with 2 descents.
	v, _, err := sequence.EulerianNumber(5, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(66), v)

	v, _, err = sequence.EulerianNumber(0, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), v)
}

// TestEntringerNumber pins natural-orientation Entringer values on both
// storage parities (row 3 is stored as computed, row 4 reversed).
func TestEntringerNumber(t *testing.T) {
	row3 := []int64{0, 1, 2, 2}
	for k, want := range row3 {
		v, _, err := sequence.EntringerNumber(3, k)
		require.NoError(t, err)
		assert.Equal(t, want, v, "E(3,%d)", k)
	}

	row4 := []int64{0, 2, 4, 5, 5}
	for k, want := range row4 {
		v, _, err := sequence.EntringerNumber(4, k)
		require.NoError(t, err)
		assert.Equal(t, want, v, "E(4,%d)", k)
	}

	// Apex and first rows.
	v, _, err := sequence.EntringerNumber(0, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), v)
	v, _, err = sequence.EntringerNumber(1, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), v)
}

// TestEntringerMatchesZigzag checks the defining relation: the natural row
// end E(n,n) is the n-th zigzag number.
func TestEntringerMatchesZigzag(t *testing.T) {
	for n := 0; n <= 9; n++ {
		e, _, err := sequence.EntringerNumber(n, n)
		require.NoError(t, err)
		z, _, err := sequence.ZigzagNumber(n)
		require.NoError(t, err)
		assert.Equal(t, z, e, "n=%d", n)
	}
}

// TestIndexValidation checks the k-range sentinel and its precedence: a
// negative order is the build's verdict, not an index violation.
func TestIndexValidation(t *testing.T) {
	_, _, err := sequence.Binomial(5, 6)
	require.ErrorIs(t, err, sequence.ErrIndexOutOfRange)

	_, _, err = sequence.Binomial(5, -1)
	require.ErrorIs(t, err, sequence.ErrIndexOutOfRange)

	_, _, err = sequence.EulerianNumber(3, 4)
	require.ErrorIs(t, err, sequence.ErrIndexOutOfRange)

	_, _, err = sequence.EntringerNumber(2, 3)
	require.ErrorIs(t, err, sequence.ErrIndexOutOfRange)

	// Negative order wins over any k complaint.
	_, _, err = sequence.Binomial(-1, 0)
	require.ErrorIs(t, err, triangle.ErrNegativeOrder)
	require.NotErrorIs(t, err, sequence.ErrIndexOutOfRange)

	_, _, err = sequence.EntringerNumber(-4, 2)
	require.ErrorIs(t, err, triangle.ErrNegativeOrder)
}

// TestExtractAdvisories checks that a past-limit positional read returns
// both the (still exact, low-column) value and the advisory.
func TestExtractAdvisories(t *testing.T) {
	v, advs, err := sequence.Binomial(triangle.ExactLimitPascal+1, 2)
	require.NoError(t, err)
	require.Len(t, advs, 1)
	assert.Equal(t, triangle.FamilyPascal, advs[0].Family)
	assert.Equal(t, int64(1275), v) // C(51,2) is far below the int64 edge

	v, advs, err = sequence.EulerianNumber(triangle.ExactLimitEulerian+1, 1)
	require.NoError(t, err)
	require.Len(t, advs, 1)
	assert.Equal(t, triangle.FamilyEulerian, advs[0].Family)
	assert.Equal(t, int64(2097130), v) // A(21,1) = 2²¹ − 22
}
