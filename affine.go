package plumelib

import (
	"fmt"

	"github.com/paulmach/orb"
)

// GDAL次序的仿射变换参数 {x0, a, b, y0, d, e}：
//
//	X = x0 + col*a + row*b
//	Y = y0 + col*d + row*e
type GeoTransform [6]float64

func (gt GeoTransform) Det() float64 {
	return gt[1]*gt[5] - gt[2]*gt[4]
}

// 逆变换，将地理坐标映射回（列,行）
func (gt GeoTransform) Invert() (inv GeoTransform, err error) {
	det := gt.Det()
	if det == 0 {
		err = ErrSingularTransform
		return
	}
	inv[1] = gt[5] / det
	inv[2] = -gt[2] / det
	inv[4] = -gt[4] / det
	inv[5] = gt[1] / det
	inv[0] = -(inv[1]*gt[0] + inv[2]*gt[3])
	inv[3] = -(inv[4]*gt[0] + inv[5]*gt[3])
	return
}

// 像素坐标（可为小数）转地理坐标
func (gt GeoTransform) ToGeo(col, row float64) (x, y float64) {
	x = gt[0] + col*gt[1] + row*gt[2]
	y = gt[3] + col*gt[4] + row*gt[5]
	return
}

// 地理坐标转像素坐标（连续值，不取整）
func (gt GeoTransform) ToPixel(x, y float64) (col, row float64, err error) {
	inv, err := gt.Invert()
	if err != nil {
		return
	}
	col, row = inv.ToGeo(x, y)
	return
}

// 以像素(col,row)为新原点，像元大小及旋转参数不变
func (gt GeoTransform) Shift(col, row int) GeoTransform {
	out := gt
	out[0], out[3] = gt.ToGeo(float64(col), float64(row))
	return out
}

func (gt GeoTransform) String() string {
	return fmt.Sprintf("[%g, %g, %g, %g, %g, %g]", gt[0], gt[1], gt[2], gt[3], gt[4], gt[5])
}

func ToPixel(x, y float64, gt GeoTransform) (col, row float64, err error) {
	return gt.ToPixel(x, y)
}

func ToGeo(col, row float64, gt GeoTransform) (x, y float64) {
	return gt.ToGeo(col, row)
}

// 地理坐标环转像素空间环，供栅格化直接使用
func RingToPixel(ring Ring, gt GeoTransform) (ret Ring, err error) {
	inv, err := gt.Invert()
	if err != nil {
		return
	}
	ret = make(Ring, len(ring))
	for i, p := range ring {
		col, row := inv.ToGeo(p[0], p[1])
		ret[i] = orb.Point{col, row}
	}
	return
}
