package plumelib

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractPlumeTriangle(t *testing.T) {
	gt := GeoTransform{-118.5, 0.001, 0, 34.2, 0, -0.001}
	r := seqRaster(10, 10, gt)
	// 像素空间(3,2)-(8,6)-(3,6)
	geoRing := Ring{{-118.497, 34.198}, {-118.492, 34.194}, {-118.497, 34.194}, {-118.497, 34.198}}

	cr, cm, err := ExtractPlume(r, geoRing)
	require.NoError(t, err)
	assert.LessOrEqual(t, cr.Rows, 4)
	assert.LessOrEqual(t, cr.Cols, 5)
	assert.Equal(t, 4, cr.Rows)
	assert.Equal(t, 4, cr.Cols)
	assert.Equal(t, []string{
		"#...",
		"##..",
		"###.",
		"####",
	}, maskRows(cm))
	for i, v := range cm.Data {
		row, col := i/cm.Cols, i%cm.Cols
		if v == 0 {
			assert.Equal(t, float32(NODATA), cr.Data[i])
		} else {
			assert.Equal(t, r.At(row+2, col+3), cr.Data[i])
		}
	}
	x, y := gt.ToGeo(3, 2)
	assert.InDelta(t, x, cr.GeoTransform[0], 1e-12)
	assert.InDelta(t, y, cr.GeoTransform[3], 1e-12)
}

func TestExtractPlumeOutside(t *testing.T) {
	r := seqRaster(10, 10, GeoTransform{-118.5, 0.001, 0, 34.2, 0, -0.001})
	_, _, err := ExtractPlume(r, Ring{{-100, 10}, {-99, 10}, {-99, 11}, {-100, 10}})
	assert.True(t, errors.Is(err, ErrEmptyMask))
}
