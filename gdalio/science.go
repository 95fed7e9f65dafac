package gdalio

import (
	"context"

	"github.com/wgdzlh/plumelib"
	"github.com/wgdzlh/plumelib/log"
	"github.com/wgdzlh/plumelib/utils"

	gdal "github.com/airbusgeo/godal"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var scienceCreateOpts = []string{"COMPRESS=LZW"}

// 输出科学产品：先写未优化的临时GTiff，再交由压缩协作方生成最终文件
// 压缩成功后删除临时文件；失败时保留临时文件以供排查，并删除可能残留的不完整最终文件
func (g *GdalToolbox) WriteScience(ctx context.Context, r *plumelib.Raster, tags []plumelib.Tag, out string) (err error) {
	if err = r.Validate(); err != nil {
		return
	}
	if g.compressor == nil {
		err = plumelib.ErrNoCompressor
		return
	}
	tmp := utils.TmpPath(out)
	if err = g.writeScienceTmp(r, tags, tmp); err != nil {
		utils.RemoveIfExists(tmp)
		return
	}
	log.Info(g.logTag+"compress science tif", zap.String("tmp", tmp), zap.String("out", out))
	if err = g.compressor.Compress(ctx, tmp, out); err != nil {
		log.Error(g.logTag+"compress science tif failed, keep tmp", zap.String("tmp", tmp), zap.Error(err))
		utils.RemoveIfExists(out)
		err = errors.Wrapf(plumelib.ErrCompressFailed, "%s -> %s: %v", tmp, out, err)
		return
	}
	if e := utils.RemoveIfExists(tmp); e != nil {
		log.Warn(g.logTag+"remove tmp tif failed", zap.String("tmp", tmp), zap.Error(e))
	}
	return
}

func (g *GdalToolbox) writeScienceTmp(r *plumelib.Raster, tags []plumelib.Tag, tmp string) (err error) {
	ds, err := gdal.Create(gdal.GTiff, tmp, 1, gdal.Float32, r.Cols, r.Rows, gdal.CreationOption(scienceCreateOpts...))
	if err != nil {
		log.Error(g.logTag+"create tmp tif failed", zap.String("tmp", tmp), zap.Error(err))
		err = errors.Wrapf(ErrTifWrite, "create %s: %v", tmp, err)
		return
	}
	closed := false
	defer func() {
		if !closed {
			ds.Close()
		}
	}()
	for _, t := range tags {
		if err = ds.SetMetadata(t.Key, t.Value); err != nil {
			err = errors.Wrapf(ErrTifWrite, "set tag %s: %v", t.Key, err)
			return
		}
	}
	band := ds.Bands()[0]
	if err = band.SetNoData(plumelib.NODATA); err != nil {
		err = errors.Wrapf(ErrTifWrite, "set nodata: %v", err)
		return
	}
	if r.Projection != "" {
		if err = ds.SetProjection(r.Projection); err != nil {
			err = errors.Wrapf(ErrTifWrite, "set projection: %v", err)
			return
		}
	}
	if err = ds.SetGeoTransform([6]float64(r.GeoTransform)); err != nil {
		err = errors.Wrapf(ErrTifWrite, "set geotransform: %v", err)
		return
	}
	if err = band.Write(0, 0, r.Data, r.Cols, r.Rows); err != nil {
		err = errors.Wrapf(ErrTifWrite, "write band: %v", err)
		return
	}
	closed = true
	if err = ds.Close(); err != nil {
		err = errors.Wrapf(ErrTifWrite, "flush %s: %v", tmp, err)
		return
	}
	log.Info(g.logTag+"wrote tmp tif", zap.String("tmp", tmp), zap.Int("width", r.Cols), zap.Int("height", r.Rows),
		zap.Int("tags", len(tags)), zap.Stringer("gt", r.GeoTransform))
	return
}
