package gdalio

import "github.com/pkg/errors"

var (
	ErrInvalidTif    = errors.New("invalid tif")
	ErrWrongTif      = errors.New("tif has no raster band")
	ErrTifReadFailed = errors.New("tif read failed")
	ErrTifWrite      = errors.New("tif write failed")
	ErrPngWrite      = errors.New("png write failed")
)
