package plumelib

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 像素空间三角形，覆盖第2-5行、第3-6列
var triangle = Ring{{3, 2}, {8, 6}, {3, 6}, {3, 2}}

func maskRows(m *Mask) (rows []string) {
	for r := 0; r < m.Rows; r++ {
		line := make([]byte, m.Cols)
		for c := 0; c < m.Cols; c++ {
			line[c] = '.'
			if m.At(r, c) != 0 {
				line[c] = '#'
			}
		}
		rows = append(rows, string(line))
	}
	return
}

func TestRasterizeTriangle(t *testing.T) {
	m, err := RasterizeRing(triangle, 10, 10)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"..........",
		"..........",
		"...#......",
		"...##.....",
		"...###....",
		"...####...",
		"..........",
		"..........",
		"..........",
		"..........",
	}, maskRows(m))
	assert.Equal(t, 10, m.Count())
}

func TestRasterizeOrientationIndependent(t *testing.T) {
	cw, err := RasterizeRing(triangle, 10, 10)
	require.NoError(t, err)
	rev := make(Ring, len(triangle))
	for i, p := range triangle {
		rev[len(triangle)-1-i] = p
	}
	ccw, err := RasterizeRing(rev, 10, 10)
	require.NoError(t, err)
	assert.Equal(t, cw.Data, ccw.Data)
}

func TestRasterizeFullExtent(t *testing.T) {
	m, err := RasterizeRing(Ring{{0, 0}, {7, 0}, {7, 5}, {0, 5}, {0, 0}}, 5, 7)
	require.NoError(t, err)
	assert.Equal(t, 35, m.Count())
}

func TestRasterizeOpenRing(t *testing.T) {
	closed, err := RasterizeRing(triangle, 10, 10)
	require.NoError(t, err)
	open, err := RasterizeRing(triangle[:3], 10, 10)
	require.NoError(t, err)
	assert.Equal(t, closed.Data, open.Data)
}

func TestRasterizeBoundaryInclusive(t *testing.T) {
	// 第2列像元中心x=2.5恰在右边界上
	m, err := RasterizeRing(Ring{{0, 0}, {2.5, 0}, {2.5, 2}, {0, 2}, {0, 0}}, 3, 4)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"###.",
		"###.",
		"....",
	}, maskRows(m))
}

func TestRasterizeOutside(t *testing.T) {
	m, err := RasterizeRing(Ring{{20, 20}, {30, 20}, {30, 30}, {20, 20}}, 10, 10)
	require.NoError(t, err)
	assert.Zero(t, m.Count())

	m, err = RasterizeRing(Ring{{-9, -9}, {-1, -9}, {-1, -1}, {-9, -9}}, 10, 10)
	require.NoError(t, err)
	assert.Zero(t, m.Count())
}

func TestRasterizePartiallyOutside(t *testing.T) {
	m, err := RasterizeRing(Ring{{-5, -5}, {2, -5}, {2, 2}, {-5, 2}, {-5, -5}}, 4, 4)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"##..",
		"##..",
		"....",
		"....",
	}, maskRows(m))
}

func TestRasterizeTooFewVertices(t *testing.T) {
	_, err := RasterizeRing(Ring{{0, 0}, {4, 4}, {0, 0}}, 5, 5)
	assert.True(t, errors.Is(err, ErrTooFewVertices))
	_, err = RasterizeRing(nil, 5, 5)
	assert.True(t, errors.Is(err, ErrTooFewVertices))
}

// 五角星中心区域环绕数为2，奇偶规则下不填充；星角环绕数为1，填充
func TestRasterizeEvenOdd(t *testing.T) {
	var star Ring
	for k := 0; k < 5; k++ {
		a := (-90 + 144*float64(k)) * math.Pi / 180
		star = append(star, orb.Point{10.5 + 10*math.Cos(a), 10.5 + 10*math.Sin(a)})
	}
	star = append(star, star[0])
	m, err := RasterizeRing(star, 21, 21)
	require.NoError(t, err)
	assert.Equal(t, uint8(0), m.At(10, 10), "center covered twice")
	assert.Equal(t, uint8(1), m.At(2, 10), "top point covered once")
	assert.Equal(t, uint8(0), m.At(0, 0))
}
