package gdalio

import (
	"context"

	"github.com/wgdzlh/plumelib/log"

	gdal "github.com/airbusgeo/godal"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const COG_DRIVER = gdal.DriverName("COG")

var defaultCogOpts = []string{"COMPRESS=LZW", "BLOCKSIZE=256", "OVERVIEWS=AUTO"}

// 进程内的COG转换，替代外部压缩脚本
type TranslateCompressor struct {
	CreationOpts []string
	logTag       string
}

func NewTranslateCompressor(creationOpts ...string) *TranslateCompressor {
	registerOnce.Do(gdal.RegisterAll)
	if len(creationOpts) == 0 {
		creationOpts = defaultCogOpts
	}
	return &TranslateCompressor{CreationOpts: creationOpts, logTag: "TranslateCompressor:"}
}

func (c *TranslateCompressor) Compress(ctx context.Context, src, dst string) (err error) {
	if err = ctx.Err(); err != nil {
		return
	}
	sds, err := gdal.Open(src, gdal.RasterOnly())
	if err != nil {
		err = errors.Wrapf(ErrInvalidTif, "open %s: %v", src, err)
		return
	}
	defer sds.Close()
	ods, err := sds.Translate(dst, nil, gdal.CreationOption(c.CreationOpts...), COG_DRIVER)
	if err != nil {
		log.Error(c.logTag+"translate to cog failed", zap.String("src", src), zap.Error(err))
		err = errors.Wrapf(ErrTifWrite, "cog %s: %v", dst, err)
		return
	}
	if err = ods.Close(); err != nil {
		err = errors.Wrapf(ErrTifWrite, "flush %s: %v", dst, err)
	}
	return
}
