package catalog

import (
	"os"

	"github.com/wgdzlh/plumelib"

	"github.com/paulmach/orb/geojson"
	"github.com/pkg/errors"
)

const (
	CRS84          = "urn:ogc:def:crs:OGC:1.3:CRS84"
	COLLECTION_TAG = "methane_metadata"
)

// 单要素FeatureCollection，属性经数值归一后输出
func SingleFeatureCollection(f *geojson.Feature) *geojson.FeatureCollection {
	nf := *f
	if props, ok := plumelib.NormalizeValue(map[string]any(f.Properties)).(map[string]any); ok {
		nf.Properties = geojson.Properties(props)
	}
	fc := geojson.NewFeatureCollection()
	fc.Append(&nf)
	fc.ExtraMembers = geojson.Properties{
		"crs": map[string]any{
			"type":       "name",
			"properties": map[string]any{"name": CRS84},
		},
		"name": COLLECTION_TAG,
	}
	return fc
}

// 输出羽流要素的GeoJSON附属文件
func WritePlumeJSON(f *geojson.Feature, path string) (err error) {
	data, err := SingleFeatureCollection(f).MarshalJSON()
	if err != nil {
		err = errors.Wrap(err, "marshal plume feature")
		return
	}
	if err = os.WriteFile(path, data, 0o644); err != nil {
		err = errors.Wrapf(err, "write %s", path)
	}
	return
}
