package catalog

import "github.com/pkg/errors"

var (
	ErrMissingProperty     = errors.New("missing catalog property")
	ErrMalformedProperty   = errors.New("malformed catalog property")
	ErrUnsupportedGeometry = errors.New("unsupported plume geometry")
	ErrEmptyCatalog        = errors.New("catalog has no features")
	ErrPlumeNotFound       = errors.New("plume not in catalog")
)
