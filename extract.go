package plumelib

// 按地理坐标环从栅格中提取羽流子栅格：转像素空间、栅格化、面外置NODATA、按掩膜外包裁剪
func ExtractPlume(r *Raster, geoRing Ring) (cr *Raster, cm *Mask, err error) {
	if err = r.Validate(); err != nil {
		return
	}
	pixRing, err := RingToPixel(geoRing, r.GeoTransform)
	if err != nil {
		return
	}
	mask, err := RasterizeRing(pixRing, r.Rows, r.Cols)
	if err != nil {
		return
	}
	masked, err := ApplySentinel(r, mask, NODATA)
	if err != nil {
		return
	}
	return CropToMask(masked, mask)
}
