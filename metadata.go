package plumelib

import (
	"encoding/json"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// 栅格元数据标签
type Tag struct {
	Key   string
	Value string
}

// 单个羽流产品的元数据，字段为空表示不输出该标签
type ProductMeta struct {
	PlumeID          string
	Orbit            string
	DCID             string
	UncertaintyPPMM  *float64
	UTCTimeObserved  string
	SourceScenes     []string
	MaxLatitude      *float64
	MaxLongitude     *float64
	MaxConcentration *float64
}

// 发布相关元数据，批次内构造一次后只读
type PublicationMeta struct {
	SoftwareBuildVersion string
	ProductVersion       string
	DateCreated          time.Time

	Keywords                      string
	Sensor                        string
	Instrument                    string
	Platform                      string
	Conventions                   string
	Institution                   string
	License                       string
	NamingAuthority               string
	KeywordsVocabulary            string
	StdnameVocabulary             string
	CreatorName                   string
	CreatorURL                    string
	Project                       string
	ProjectURL                    string
	PublisherName                 string
	PublisherURL                  string
	PublisherEmail                string
	IdentifierProductDOIAuthority string
	Title                         string
}

func DefaultPublication(softwareVersion, productVersion string, created time.Time) PublicationMeta {
	return PublicationMeta{
		SoftwareBuildVersion:          softwareVersion,
		ProductVersion:                productVersion,
		DateCreated:                   created,
		Keywords:                      "Imaging Spectroscopy, minerals, EMIT, dust, radiative forcing",
		Sensor:                        "EMIT (Earth Surface Mineral Dust Source Investigation)",
		Instrument:                    "EMIT",
		Platform:                      "ISS",
		Conventions:                   "CF-1.63",
		Institution:                   "NASA Jet Propulsion Laboratory/California Institute of Technology",
		License:                       "https://science.nasa.gov/earth-science/earth-science-data/data-information-policy/",
		NamingAuthority:               "LPDAAC",
		KeywordsVocabulary:            "NASA Global Change Master Directory (GCMD) Science Keywords",
		StdnameVocabulary:             "NetCDF Climate and Forecast (CF) Metadata Convention",
		CreatorName:                   "Jet Propulsion Laboratory/California Institute of Technology",
		CreatorURL:                    "https://earth.jpl.nasa.gov/emit/",
		Project:                       "Earth Surface Mineral Dust Source Investigation",
		ProjectURL:                    "https://earth.jpl.nasa.gov/emit/",
		PublisherName:                 "NASA LPDAAC",
		PublisherURL:                  "https://lpdaac.usgs.gov",
		PublisherEmail:                "lpdaac@usgs.gov",
		IdentifierProductDOIAuthority: "https://doi.org",
		Title:                         "EMIT",
	}
}

type tagList []Tag

func (tl *tagList) add(key string, v any) {
	if v = NormalizeValue(v); v == nil {
		return
	}
	if s, ok := v.(string); ok && s == "" {
		return
	}
	*tl = append(*tl, Tag{Key: key, Value: FormatTagValue(v)})
}

func (m ProductMeta) Tags() []Tag {
	var tl tagList
	tl.add("Plume_Complex", m.PlumeID)
	tl.add("Orbit", m.Orbit)
	tl.add("dcid", m.DCID)
	tl.add("Estimated_Uncertainty_ppmm", m.UncertaintyPPMM)
	tl.add("UTC_Time_Observed", m.UTCTimeObserved)
	tl.add("Source_Scenes", strings.Join(m.SourceScenes, ","))
	tl.add("Units", UNITS_PPMM)
	tl.add("Latitude of max concentration", m.MaxLatitude)
	tl.add("Longitude of max concentration", m.MaxLongitude)
	tl.add("Max Plume Concentration (ppm m)", m.MaxConcentration)
	return tl
}

func (p PublicationMeta) Tags() []Tag {
	var tl tagList
	tl.add("software_build_version", p.SoftwareBuildVersion)
	tl.add("product_version", p.ProductVersion)
	tl.add("keywords", p.Keywords)
	tl.add("sensor", p.Sensor)
	tl.add("instrument", p.Instrument)
	tl.add("platform", p.Platform)
	tl.add("Conventions", p.Conventions)
	tl.add("institution", p.Institution)
	tl.add("license", p.License)
	tl.add("naming_authority", p.NamingAuthority)
	if !p.DateCreated.IsZero() {
		tl.add("date_created", p.DateCreated)
	}
	tl.add("keywords_vocabulary", p.KeywordsVocabulary)
	tl.add("stdname_vocabulary", p.StdnameVocabulary)
	tl.add("creator_name", p.CreatorName)
	tl.add("creator_url", p.CreatorURL)
	tl.add("project", p.Project)
	tl.add("project_url", p.ProjectURL)
	tl.add("publisher_name", p.PublisherName)
	tl.add("publisher_url", p.PublisherURL)
	tl.add("publisher_email", p.PublisherEmail)
	tl.add("identifier_product_doi_authority", p.IdentifierProductDOIAuthority)
	tl.add("title", p.Title)
	return tl
}

// 羽流产品标签：产品字段在前，发布字段在后，同名时后者覆盖前者
func MergeTags(groups ...[]Tag) (ret []Tag) {
	idx := map[string]int{}
	for _, g := range groups {
		for _, t := range g {
			if i, ok := idx[t.Key]; ok {
				ret[i].Value = t.Value
				continue
			}
			idx[t.Key] = len(ret)
			ret = append(ret, t)
		}
	}
	return
}

// 序列化边界：将具名数值类型、json.Number及指针统一为int64/uint64/float64等基础类型
// 其余类型原样返回，nil指针返回nil
func NormalizeValue(v any) any {
	switch t := v.(type) {
	case nil:
		return nil
	case string, bool, int64, uint64, float64:
		return t
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return i
		}
		if f, err := t.Float64(); err == nil {
			return f
		}
		return t.String()
	case time.Time:
		return t.UTC().Format(DATE_CREATED_TF)
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return nil
		}
		return NormalizeValue(rv.Elem().Interface())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint()
	case reflect.Float32:
		// 经十进制字符串转换，避免float32扩展出多余尾数
		f, _ := strconv.ParseFloat(strconv.FormatFloat(rv.Float(), 'g', -1, 32), 64)
		return f
	case reflect.Float64:
		return rv.Float()
	case reflect.String:
		return rv.String()
	case reflect.Bool:
		return rv.Bool()
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return nil
		}
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = NormalizeValue(rv.Index(i).Interface())
		}
		return out
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return v
		}
		out := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out[iter.Key().String()] = NormalizeValue(iter.Value().Interface())
		}
		return out
	}
	return v
}

// 标签值格式化，先经NormalizeValue归一
func FormatTagValue(v any) string {
	switch t := NormalizeValue(v).(type) {
	case nil:
		return ""
	case string:
		return t
	case int64:
		return strconv.FormatInt(t, 10)
	case uint64:
		return strconv.FormatUint(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	case []any:
		parts := make([]string, len(t))
		for i, e := range t {
			parts[i] = FormatTagValue(e)
		}
		return strings.Join(parts, ",")
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return ""
		}
		return string(b)
	}
}
