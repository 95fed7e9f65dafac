package plumelib

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAffineNorthUp(t *testing.T) {
	gt := GeoTransform{-118.5, 0.0005, 0, 34.2, 0, -0.0005}
	x, y := gt.ToGeo(10, 4)
	assert.InDelta(t, -118.495, x, 1e-12)
	assert.InDelta(t, 34.198, y, 1e-12)

	col, row, err := ToPixel(x, y, gt)
	require.NoError(t, err)
	assert.InDelta(t, 10, col, 1e-9)
	assert.InDelta(t, 4, row, 1e-9)
}

func TestAffineRotated(t *testing.T) {
	gt := GeoTransform{500000, 29.5, 5.2, 4100000, 3.1, -30.4}
	for _, p := range [][2]float64{{0, 0}, {12.25, 3.5}, {-4, 100}, {1023.75, 511.5}} {
		x, y := ToGeo(p[0], p[1], gt)
		col, row, err := ToPixel(x, y, gt)
		require.NoError(t, err)
		assert.InDelta(t, p[0], col, 1e-7)
		assert.InDelta(t, p[1], row, 1e-7)
	}
}

func TestAffineSingular(t *testing.T) {
	gt := GeoTransform{0, 1, 2, 0, 2, 4}
	_, _, err := gt.ToPixel(1, 1)
	assert.True(t, errors.Is(err, ErrSingularTransform))
	_, err = RingToPixel(Ring{{0, 0}, {1, 0}, {1, 1}}, GeoTransform{})
	assert.True(t, errors.Is(err, ErrSingularTransform))
}

func TestShift(t *testing.T) {
	gt := GeoTransform{100, 2, 0.5, 200, 0.25, -3}
	s := gt.Shift(3, 7)
	x, y := gt.ToGeo(3, 7)
	assert.Equal(t, GeoTransform{x, 2, 0.5, y, 0.25, -3}, s)
	assert.Equal(t, gt, gt.Shift(0, 0))
}

func TestRingToPixel(t *testing.T) {
	gt := GeoTransform{-118.5, 0.001, 0, 34.2, 0, -0.001}
	ring := Ring{{-118.497, 34.198}, {-118.492, 34.194}, {-118.497, 34.194}, {-118.497, 34.198}}
	pix, err := RingToPixel(ring, gt)
	require.NoError(t, err)
	want := []orb.Point{{3, 2}, {8, 6}, {3, 6}, {3, 2}}
	require.Len(t, pix, len(want))
	for i := range want {
		assert.InDelta(t, want[i][0], pix[i][0], 1e-6)
		assert.InDelta(t, want[i][1], pix[i][1], 1e-6)
	}
}
