package plumelib

import "github.com/pkg/errors"

var (
	ErrSingularTransform = errors.New("singular geotransform")
	ErrTooFewVertices    = errors.New("ring has fewer than 3 vertices")
	ErrEmptyMask         = errors.New("mask is empty")
	ErrShapeMismatch     = errors.New("raster and mask shapes differ")
	ErrInvalidRaster     = errors.New("invalid raster")
	ErrCompressFailed    = errors.New("compress step failed")
	ErrNoCompressor      = errors.New("no compressor configured")
	ErrInvalidSceneFID   = errors.New("invalid scene fid")
	ErrSceneCountDiffers = errors.New("scene fids and scene numbers differ in length")
	ErrNoProductVersion  = errors.New("product version not set")
)
