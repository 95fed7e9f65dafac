package gdalio

import (
	"github.com/wgdzlh/plumelib"
	"github.com/wgdzlh/plumelib/log"

	gdal "github.com/airbusgeo/godal"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// 读取单波段影像（多波段时取第一波段）及其仿射参数、投影
func (g *GdalToolbox) ReadRaster(tif string) (r *plumelib.Raster, err error) {
	sds, err := gdal.Open(tif, gdal.RasterOnly())
	if err != nil {
		log.Error(g.logTag+"open tif failed", zap.String("tif", tif), zap.Error(err))
		err = errors.Wrapf(ErrInvalidTif, "open %s: %v", tif, err)
		return
	}
	defer sds.Close()
	bands := sds.Bands()
	if len(bands) == 0 {
		err = errors.Wrap(ErrWrongTif, tif)
		return
	}
	st := sds.Structure()
	gt, err := sds.GeoTransform()
	if err != nil {
		log.Error(g.logTag+"tif has no geotransform", zap.String("tif", tif), zap.Error(err))
		err = errors.Wrapf(ErrInvalidTif, "geotransform of %s: %v", tif, err)
		return
	}
	r = &plumelib.Raster{
		Rows:         st.SizeY,
		Cols:         st.SizeX,
		Data:         make([]float32, st.SizeX*st.SizeY),
		GeoTransform: plumelib.GeoTransform(gt),
		Projection:   sds.Projection(),
	}
	log.Info(g.logTag+"read tif band", zap.String("tif", tif), zap.Int("bands", len(bands)),
		zap.String("dt", st.DataType.String()), zap.Int("width", st.SizeX), zap.Int("height", st.SizeY),
		zap.String("srs", g.getSrsCode(r.Projection)))
	if err = bands[0].Read(0, 0, r.Data, st.SizeX, st.SizeY); err != nil {
		log.Error(g.logTag+"read tif band failed", zap.String("tif", tif), zap.Error(err))
		err = errors.Wrapf(ErrTifReadFailed, "%s: %v", tif, err)
		r = nil
	}
	return
}

// 读取影像默认域的元数据标签
func (g *GdalToolbox) ReadTags(tif string) (tags map[string]string, err error) {
	sds, err := gdal.Open(tif, gdal.RasterOnly())
	if err != nil {
		err = errors.Wrapf(ErrInvalidTif, "open %s: %v", tif, err)
		return
	}
	defer sds.Close()
	tags = sds.Metadatas()
	return
}

// 读取各波段无效值，未设置的波段ok为false
func (g *GdalToolbox) ReadNoData(tif string) (nodata []float64, ok []bool, err error) {
	sds, err := gdal.Open(tif, gdal.RasterOnly())
	if err != nil {
		err = errors.Wrapf(ErrInvalidTif, "open %s: %v", tif, err)
		return
	}
	defer sds.Close()
	for _, b := range sds.Bands() {
		nd, has := b.NoData()
		nodata = append(nodata, nd)
		ok = append(ok, has)
	}
	return
}
