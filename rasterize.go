package plumelib

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// 按奇偶规则将像素空间的单环栅格化为rows*cols的掩膜
// 像元中心(col+0.5,row+0.5)落在环内或环上即置1；自相交环中被覆盖偶数次的区域不填充
// 环完全位于栅格外时返回全零掩膜
func RasterizeRing(ring Ring, rows, cols int) (mask *Mask, err error) {
	if rows <= 0 || cols <= 0 {
		err = ErrInvalidRaster
		return
	}
	if distinctVertices(ring) < 3 {
		err = ErrTooFewVertices
		return
	}
	mask = NewMask(rows, cols)
	b := ring.Bound()
	if b.Max[1] < 0.5 || b.Max[0] < 0.5 || b.Min[1] > float64(rows)-0.5 || b.Min[0] > float64(cols)-0.5 {
		return
	}
	r0 := clampIdx(int(math.Ceil(b.Min[1]-0.5)), rows)
	r1 := clampIdx(int(math.Floor(b.Max[1]-0.5)), rows)
	c0 := clampIdx(int(math.Ceil(b.Min[0]-0.5)), cols)
	c1 := clampIdx(int(math.Floor(b.Max[0]-0.5)), cols)
	for r := r0; r <= r1; r++ {
		y := float64(r) + 0.5
		off := r * cols
		for c := c0; c <= c1; c++ {
			if planar.RingContains(ring, orb.Point{float64(c) + 0.5, y}) {
				mask.Data[off+c] = 1
			}
		}
	}
	return
}

func distinctVertices(ring Ring) (n int) {
	seen := make(map[orb.Point]struct{}, len(ring))
	for _, p := range ring {
		if _, ok := seen[p]; !ok {
			seen[p] = struct{}{}
			n++
		}
	}
	return
}

func clampIdx(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
