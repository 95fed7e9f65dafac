// Package catalog reads the plume catalog, a GeoJSON FeatureCollection whose
// polygon features are plume complexes and whose remaining features only
// contribute scene identifiers.
package catalog

import (
	"os"
	"sort"

	"github.com/wgdzlh/plumelib"
	"github.com/wgdzlh/plumelib/log"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	PROP_PLUME_ID          = "Plume ID"
	PROP_DCID              = "DCID"
	PROP_SCENE_FIDS        = "Scene FIDs"
	PROP_SCENE_NUMBERS     = "DAAC Scene Numbers"
	PROP_ORBIT             = "Orbit"
	PROP_UTC_OBSERVED      = "UTC Time Observed"
	PROP_UNCERTAINTY       = "Concentration Uncertainty (ppm m)"
	PROP_MAX_CONCENTRATION = "Max Plume Concentration (ppm m)"
	PROP_MAX_LAT           = "Latitude of max concentration"
	PROP_MAX_LON           = "Longitude of max concentration"

	logTag = "Catalog:"
)

type Catalog struct {
	Collection *geojson.FeatureCollection
}

// 单个羽流要素
type Plume struct {
	Index            int
	ID               string
	DCID             string
	SceneFIDs        []plumelib.SceneFID
	SceneNumbers     []string
	Orbit            string
	UTCTimeObserved  string
	Uncertainty      *float64
	MaxConcentration *float64
	MaxLatitude      *float64
	MaxLongitude     *float64
	Ring             plumelib.Ring // 地理坐标外环，非面要素为nil
	Feature          *geojson.Feature
}

func Load(path string) (c *Catalog, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		err = errors.Wrapf(err, "read catalog %s", path)
		return
	}
	if c, err = Parse(data); err != nil {
		err = errors.Wrapf(err, "catalog %s", path)
		return
	}
	log.Info(logTag+"loaded catalog", zap.String("path", path), zap.Int("features", len(c.Collection.Features)))
	return
}

func Parse(data []byte) (c *Catalog, err error) {
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return
	}
	if len(fc.Features) == 0 {
		err = ErrEmptyCatalog
		return
	}
	c = &Catalog{Collection: fc}
	return
}

func (c *Catalog) Len() int {
	return len(c.Collection.Features)
}

func (c *Catalog) Feature(i int) *geojson.Feature {
	return c.Collection.Features[i]
}

// 按Plume ID查找要素序号
func (c *Catalog) IndexOf(plumeID string) (int, error) {
	for i, f := range c.Collection.Features {
		if id, _ := propString(f.Properties, PROP_PLUME_ID); id == plumeID {
			return i, nil
		}
	}
	return -1, errors.Wrapf(ErrPlumeNotFound, "%q", plumeID)
}

// 要素是否为羽流面
func IsPlume(f *geojson.Feature) bool {
	_, ok := f.Geometry.(orb.Polygon)
	return ok
}

// 解析第i个要素的属性及几何
func (c *Catalog) Plume(i int) (p Plume, err error) {
	p, err = ParsePlume(c.Feature(i))
	p.Index = i
	return
}

func ParsePlume(f *geojson.Feature) (p Plume, err error) {
	props := f.Properties
	p.Feature = f
	if p.ID, err = propString(props, PROP_PLUME_ID); err != nil {
		return
	}
	if p.DCID, err = propString(props, PROP_DCID); err != nil {
		return
	}
	if p.Orbit, err = propString(props, PROP_ORBIT); err != nil {
		return
	}
	fids, err := propStrings(props, PROP_SCENE_FIDS)
	if err != nil {
		return
	}
	if len(fids) == 0 {
		err = errors.Wrap(ErrMissingProperty, PROP_SCENE_FIDS)
		return
	}
	p.SceneFIDs = make([]plumelib.SceneFID, len(fids))
	for i, s := range fids {
		p.SceneFIDs[i] = plumelib.SceneFID(s)
		if err = p.SceneFIDs[i].Validate(); err != nil {
			return
		}
	}
	if _, ok := props[PROP_SCENE_NUMBERS]; ok {
		if p.SceneNumbers, err = propStrings(props, PROP_SCENE_NUMBERS); err != nil {
			return
		}
	}
	if _, ok := props[PROP_UTC_OBSERVED]; ok {
		if p.UTCTimeObserved, err = propString(props, PROP_UTC_OBSERVED); err != nil {
			return
		}
	}
	for _, pf := range []struct {
		key string
		dst **float64
	}{
		{PROP_UNCERTAINTY, &p.Uncertainty},
		{PROP_MAX_CONCENTRATION, &p.MaxConcentration},
		{PROP_MAX_LAT, &p.MaxLatitude},
		{PROP_MAX_LON, &p.MaxLongitude},
	} {
		if *pf.dst, err = propFloat(props, pf.key); err != nil {
			return
		}
	}
	switch g := f.Geometry.(type) {
	case orb.Polygon:
		if len(g) == 0 {
			err = errors.Wrap(ErrUnsupportedGeometry, "empty polygon")
			return
		}
		if len(g) > 1 {
			log.Warn(logTag+"polygon holes ignored", zap.String("plume", p.ID), zap.Int("holes", len(g)-1))
		}
		p.Ring = g[0]
	case orb.MultiPolygon:
		err = errors.Wrapf(ErrUnsupportedGeometry, "%s is a %s", p.ID, g.GeoJSONType())
		return
	}
	return
}

// 目录中所有景标识（去重、排序），解析失败的要素跳过
func (c *Catalog) UniqueSceneFIDs() (fids []plumelib.SceneFID) {
	seen := map[string]struct{}{}
	for i, f := range c.Collection.Features {
		ss, err := propStrings(f.Properties, PROP_SCENE_FIDS)
		if err != nil {
			log.Error(logTag+"skip feature scene fids", zap.Int("idx", i), zap.Error(err))
			continue
		}
		for _, s := range ss {
			seen[s] = struct{}{}
		}
	}
	for s := range seen {
		fids = append(fids, plumelib.SceneFID(s))
	}
	sort.Slice(fids, func(i, j int) bool { return fids[i] < fids[j] })
	return
}

func (p Plume) IsPlume() bool {
	return p.Ring != nil
}

// 羽流产品元数据
func (p Plume) ProductMeta(productVersion string) (m plumelib.ProductMeta, err error) {
	scenes, err := plumelib.SourceSceneNames(productVersion, p.SceneFIDs, p.Orbit, p.SceneNumbers)
	if err != nil {
		return
	}
	m = plumelib.ProductMeta{
		PlumeID:          p.ID,
		Orbit:            p.Orbit,
		DCID:             p.DCID,
		UncertaintyPPMM:  p.Uncertainty,
		UTCTimeObserved:  p.UTCTimeObserved,
		SourceScenes:     scenes,
		MaxLatitude:      p.MaxLatitude,
		MaxLongitude:     p.MaxLongitude,
		MaxConcentration: p.MaxConcentration,
	}
	return
}
