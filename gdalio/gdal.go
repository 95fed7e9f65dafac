package gdalio

import (
	"strings"
	"sync"

	"github.com/wgdzlh/plumelib"
	"github.com/wgdzlh/plumelib/log"

	gdal "github.com/airbusgeo/godal"
	"go.uber.org/zap"
)

type GdalToolbox struct {
	compressor plumelib.Compressor
	srsMap     map[string]string // 投影WKT -> EPSG代码
	rLock      sync.Mutex
	logTag     string
}

var registerOnce sync.Once

// 初始化GDAL工具箱，compressor为科学产品的压缩/重切片协作方
func NewGdalToolbox(compressor plumelib.Compressor) *GdalToolbox {
	registerOnce.Do(gdal.RegisterAll)
	return &GdalToolbox{
		compressor: compressor,
		srsMap:     map[string]string{},
		logTag:     "GdalToolbox:",
	}
}

// 获取投影对应的EPSG代码（可复用，故缓存），无法识别时返回空串
func (g *GdalToolbox) getSrsCode(wkt string) (code string) {
	if wkt == "" {
		return
	}
	g.rLock.Lock()
	defer g.rLock.Unlock()
	code, ok := g.srsMap[wkt]
	if ok {
		return
	}
	sr, err := gdal.NewSpatialRefFromWKT(wkt)
	if err != nil {
		log.Error(g.logTag+"parse projection failed", zap.Error(err))
		g.srsMap[wkt] = ""
		return
	}
	defer sr.Close()
	if code = sr.AuthorityCode(""); code == "" {
		if err = sr.AutoIdentifyEPSG(); err == nil {
			code = sr.AuthorityCode("")
		}
	}
	if name := sr.AuthorityName(""); code != "" && name != "" {
		code = strings.ToUpper(name) + ":" + code
	}
	g.srsMap[wkt] = code
	return
}
