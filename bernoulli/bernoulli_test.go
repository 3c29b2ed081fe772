// Package bernoulli_test: the determinant pipeline pinned against the
// published Bernoulli numbers, plus the shortcut, error and advisory
// contracts.
package bernoulli_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/trigon/bernoulli"
	"github.com/katalvlaran/trigon/triangle"
)

// TestNumberKnownValues pins every even order up to the stable limit
// against its exact rational value.
func TestNumberKnownValues(t *testing.T) {
	cases := []struct {
		n     int
		want  float64
		delta float64
	}{
		{0, 1, 0},
		{1, 0.5, 0},
		{2, 1.0 / 6.0, 1e-12},
		{4, -1.0 / 30.0, 1e-12},
		{6, 1.0 / 42.0, 1e-12},
		{8, -1.0 / 30.0, 1e-12},
		{10, 5.0 / 66.0, 1e-12},
		{12, -691.0 / 2730.0, 1e-9},
		{14, 7.0 / 6.0, 1e-9},
		{16, -3617.0 / 510.0, 1e-6},
		{18, 43867.0 / 798.0, 1e-6},
		{20, -174611.0 / 330.0, 1e-6},
	}
	for _, tc := range cases {
		v, advs, err := bernoulli.Number(tc.n)
		require.NoError(t, err, "B%d", tc.n)
		require.Empty(t, advs, "B%d carries no advisory inside the stable range", tc.n)
		if tc.delta == 0 {
			assert.Equal(t, tc.want, v, "B%d", tc.n)
		} else {
			assert.InDelta(t, tc.want, v, tc.delta, "B%d", tc.n)
		}
	}
}

// TestNumberExactDeterminantRange pins the orders whose determinant fits
// float64 exactly (even n ≤ 16): the integral determinant and the exact
// factorial leave one rounding, the final division, so every value matches
// its exact rational to machine precision.
func TestNumberExactDeterminantRange(t *testing.T) {
	cases := []struct {
		n    int
		want float64
	}{
		{2, 1.0 / 6.0},
		{4, -1.0 / 30.0},
		{6, 1.0 / 42.0},
		{8, -1.0 / 30.0},
		{10, 5.0 / 66.0},
		{12, -691.0 / 2730.0},
		{14, 7.0 / 6.0},
		{16, -3617.0 / 510.0},
	}
	for _, tc := range cases {
		v, _, err := bernoulli.Number(tc.n)
		require.NoError(t, err, "B%d", tc.n)
		assert.InEpsilon(t, tc.want, v, 1e-15, "B%d", tc.n)
	}
}

// TestNumberOddOrdersExactlyZero checks the short-circuit: odd orders from
// 3 on are literal zeros, no float work, no advisory.
func TestNumberOddOrdersExactlyZero(t *testing.T) {
	for _, n := range []int{3, 5, 7, 9, 11, 13, 15, 25, 99} {
		v, advs, err := bernoulli.Number(n)
		require.NoError(t, err, "B%d", n)
		assert.Zero(t, v, "B%d", n)
		assert.Empty(t, advs, "B%d", n)
	}
}

// TestNumberNegativeOrder checks the local order sentinel on both entry
// points.
func TestNumberNegativeOrder(t *testing.T) {
	v, advs, err := bernoulli.Number(-1)
	require.ErrorIs(t, err, bernoulli.ErrNegativeOrder)
	assert.Zero(t, v)
	assert.Nil(t, advs)

	vals, _, err := bernoulli.Numbers(-5)
	require.ErrorIs(t, err, bernoulli.ErrNegativeOrder)
	assert.Nil(t, vals)
}

// TestNumberStabilityAdvisory checks the boundary of the stable range: at
// the limit no advisory, one even order past it exactly one, odd orders
// past it none at all.
func TestNumberStabilityAdvisory(t *testing.T) {
	_, advs, err := bernoulli.Number(bernoulli.StableLimit)
	require.NoError(t, err)
	require.Empty(t, advs)

	v, advs, err := bernoulli.Number(bernoulli.StableLimit + 2)
	require.NoError(t, err)
	require.Len(t, advs, 1)
	assert.Equal(t, triangle.AdvisoryStability, advs[0].Kind)
	assert.Equal(t, triangle.FamilyBernoulli, advs[0].Family)
	assert.Equal(t, bernoulli.StableLimit+2, advs[0].Order)
	assert.Equal(t, bernoulli.StableLimit, advs[0].Threshold)
	// B22 = 854513/138; the pipeline still lands within a loose bound.
	assert.InDelta(t, 854513.0/138.0, v, 1e-3)

	v, advs, err = bernoulli.Number(bernoulli.StableLimit + 3)
	require.NoError(t, err)
	assert.Zero(t, v)
	assert.Empty(t, advs)
}

// TestNumbersSharedBuild cross-checks the batch path against the one-shot
// path: one shared Pascal build must reproduce every individual value.
func TestNumbersSharedBuild(t *testing.T) {
	const order = 12
	vals, advs, err := bernoulli.Numbers(order)
	require.NoError(t, err)
	require.Empty(t, advs)
	require.Len(t, vals, order+1)

	for k := 0; k <= order; k++ {
		one, _, kerr := bernoulli.Number(k)
		require.NoError(t, kerr)
		assert.InDelta(t, one, vals[k], 1e-12, "B%d", k)
	}
}

// TestNumbersAdvisories checks advisory composition on the batch path: the
// stability note alone first, then stacked with the exactness note once
// the shared Pascal build itself runs past its documented limit.
func TestNumbersAdvisories(t *testing.T) {
	_, advs, err := bernoulli.Numbers(22)
	require.NoError(t, err)
	require.Len(t, advs, 1)
	assert.Equal(t, triangle.AdvisoryStability, advs[0].Kind)

	// Numbers(50) builds Pascal(51): exactness fires for the build and
	// stability for the requested order, in that order.
	_, advs, err = bernoulli.Numbers(50)
	require.NoError(t, err)
	require.Len(t, advs, 2)
	assert.Equal(t, triangle.AdvisoryExactness, advs[0].Kind)
	assert.Equal(t, triangle.FamilyPascal, advs[0].Family)
	assert.Equal(t, 51, advs[0].Order)
	assert.Equal(t, triangle.AdvisoryStability, advs[1].Kind)
	assert.Equal(t, triangle.FamilyBernoulli, advs[1].Family)
	assert.Equal(t, 50, advs[1].Order)
}
