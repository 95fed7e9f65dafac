package gdalio

import (
	"github.com/wgdzlh/plumelib"
	"github.com/wgdzlh/plumelib/log"
	"github.com/wgdzlh/plumelib/utils"

	gdal "github.com/airbusgeo/godal"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const PNG_DRIVER = gdal.DriverName("PNG")

// 快视图先写入内存数据集（各波段无效值0），再转存为PNG
func (g *GdalToolbox) WriteQuicklook(q *plumelib.Quicklook, out string) (err error) {
	mem, err := gdal.Create(gdal.Memory, "", plumelib.QUICKLOOK_BANDS, gdal.Byte, q.Cols, q.Rows)
	if err != nil {
		err = errors.Wrapf(ErrPngWrite, "create mem dataset: %v", err)
		return
	}
	defer mem.Close()
	for i, band := range mem.Bands() {
		if err = band.Write(0, 0, q.Bands[i], q.Cols, q.Rows); err != nil {
			err = errors.Wrapf(ErrPngWrite, "write band %d: %v", i+1, err)
			return
		}
		if err = band.SetNoData(plumelib.QUICKLOOK_NODATA); err != nil {
			err = errors.Wrapf(ErrPngWrite, "set nodata of band %d: %v", i+1, err)
			return
		}
	}
	png, err := mem.Translate(out, nil, PNG_DRIVER)
	if err != nil {
		log.Error(g.logTag+"translate png failed", zap.String("out", out), zap.Error(err))
		utils.RemoveIfExists(out)
		err = errors.Wrapf(ErrPngWrite, "%s: %v", out, err)
		return
	}
	if err = png.Close(); err != nil {
		utils.RemoveIfExists(out)
		err = errors.Wrapf(ErrPngWrite, "flush %s: %v", out, err)
		return
	}
	log.Info(g.logTag+"wrote quicklook", zap.String("out", out), zap.Int("width", q.Cols), zap.Int("height", q.Rows))
	return
}

// 读取三波段快视图
func (g *GdalToolbox) ReadQuicklook(png string) (q *plumelib.Quicklook, err error) {
	sds, err := gdal.Open(png, gdal.RasterOnly())
	if err != nil {
		err = errors.Wrapf(ErrInvalidTif, "open %s: %v", png, err)
		return
	}
	defer sds.Close()
	bands := sds.Bands()
	if len(bands) != plumelib.QUICKLOOK_BANDS {
		err = errors.Wrapf(ErrWrongTif, "%s has %d bands", png, len(bands))
		return
	}
	st := sds.Structure()
	q = &plumelib.Quicklook{Rows: st.SizeY, Cols: st.SizeX}
	for i, band := range bands {
		q.Bands[i] = make([]uint8, st.SizeX*st.SizeY)
		if err = band.Read(0, 0, q.Bands[i], st.SizeX, st.SizeY); err != nil {
			err = errors.Wrapf(ErrTifReadFailed, "%s band %d: %v", png, i+1, err)
			q = nil
			return
		}
	}
	return
}
