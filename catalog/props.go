package catalog

import (
	"github.com/wgdzlh/plumelib"

	"github.com/paulmach/orb/geojson"
	"github.com/pkg/errors"
)

// 字符串属性，数值属性按序列化边界转为字符串
func propString(props geojson.Properties, key string) (s string, err error) {
	v, ok := props[key]
	if !ok || v == nil {
		err = errors.Wrap(ErrMissingProperty, key)
		return
	}
	switch t := plumelib.NormalizeValue(v).(type) {
	case string, int64, uint64, float64:
		s = plumelib.FormatTagValue(t)
	default:
		err = errors.Wrapf(ErrMalformedProperty, "%s: %T", key, v)
		return
	}
	if s == "" {
		err = errors.Wrap(ErrMissingProperty, key)
	}
	return
}

func propStrings(props geojson.Properties, key string) (ss []string, err error) {
	v, ok := props[key]
	if !ok || v == nil {
		err = errors.Wrap(ErrMissingProperty, key)
		return
	}
	list, ok := plumelib.NormalizeValue(v).([]any)
	if !ok {
		err = errors.Wrapf(ErrMalformedProperty, "%s: %T", key, v)
		return
	}
	ss = make([]string, len(list))
	for i, e := range list {
		switch e.(type) {
		case string, int64, uint64, float64:
			ss[i] = plumelib.FormatTagValue(e)
		default:
			err = errors.Wrapf(ErrMalformedProperty, "%s[%d]: %T", key, i, e)
			return
		}
	}
	return
}

// 可选数值属性，缺失或为null时返回nil
func propFloat(props geojson.Properties, key string) (f *float64, err error) {
	v, ok := props[key]
	if !ok || v == nil {
		return
	}
	var x float64
	switch t := plumelib.NormalizeValue(v).(type) {
	case int64:
		x = float64(t)
	case uint64:
		x = float64(t)
	case float64:
		x = t
	default:
		err = errors.Wrapf(ErrMalformedProperty, "%s: %T", key, v)
		return
	}
	f = &x
	return
}
