package plumelib

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

type Colormap interface {
	At(t float64) colorful.Color
}

// 离散色表，按matplotlib ListedColormap方式取色：下标为floor(t*N)，t=1取末项，越界取两端
type ListedColormap []colorful.Color

func (cm ListedColormap) At(t float64) colorful.Color {
	n := len(cm)
	if t < 0 || math.IsNaN(t) {
		return cm[0]
	}
	i := int(t * float64(n))
	if i >= n {
		i = n - 1
	}
	return cm[i]
}

// 色带锚点，Pos取值[0,1]且递增
type ColorStop struct {
	Pos   float64
	Color colorful.Color
}

// 分段线性插值色带
type Gradient []ColorStop

func (g Gradient) At(t float64) colorful.Color {
	n := len(g)
	if t <= g[0].Pos {
		return g[0].Color
	}
	if t >= g[n-1].Pos {
		return g[n-1].Color
	}
	for i := 1; i < n; i++ {
		if t <= g[i].Pos {
			lo, hi := g[i-1], g[i]
			return lo.Color.BlendRgb(hi.Color, (t-lo.Pos)/(hi.Pos-lo.Pos))
		}
	}
	return g[n-1].Color
}

// 三波段字节快视图，各波段按行优先存储
type Quicklook struct {
	Rows  int
	Cols  int
	Bands [QUICKLOOK_BANDS][]uint8
}

type Colorizer struct {
	Colormap Colormap
	Max      float64 // 显示范围上限，下限固定为0
	Nodata   float32
}

// 同一批次所有快视图共用的色带与显示范围
var DefaultColorizer = Colorizer{
	Colormap: Plasma,
	Max:      QUICKLOOK_MAX,
	Nodata:   NODATA,
}

func Colorize(r *Raster) (*Quicklook, error) {
	return DefaultColorizer.Colorize(r)
}

// 有效值[0,Max]归一化后查色带，nodata像元三波段均为0；有效像元各通道至少为1
func (cz Colorizer) Colorize(r *Raster) (q *Quicklook, err error) {
	if err = r.Validate(); err != nil {
		return
	}
	q = &Quicklook{Rows: r.Rows, Cols: r.Cols}
	for b := range q.Bands {
		q.Bands[b] = make([]uint8, len(r.Data))
	}
	for i, v := range r.Data {
		rgb, ok := cz.Pixel(v)
		if !ok {
			continue
		}
		q.Bands[0][i], q.Bands[1][i], q.Bands[2][i] = rgb[0], rgb[1], rgb[2]
	}
	return
}

// 单像元着色，ok为false表示无效像元
func (cz Colorizer) Pixel(v float32) (rgb [3]uint8, ok bool) {
	if v == cz.Nodata || math.IsNaN(float64(v)) {
		return
	}
	ok = true
	x := math.Min(math.Max(float64(v), 0), cz.Max) / cz.Max
	rgb[0], rgb[1], rgb[2] = cz.Colormap.At(x).RGB255()
	for i := range rgb {
		if rgb[i] == QUICKLOOK_NODATA {
			rgb[i] = QUICKLOOK_NODATA + 1
		}
	}
	return
}
