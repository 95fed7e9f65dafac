package plumelib

import "github.com/paulmach/orb"

// 单波段栅格，Data按行优先存储
type Raster struct {
	Rows         int
	Cols         int
	Data         []float32
	GeoTransform GeoTransform
	Projection   string // WKT，核心流程不解析
}

// 与栅格同尺寸的二值掩膜，1为面内，0为面外
type Mask struct {
	Rows int
	Cols int
	Data []uint8
}

// 掩膜非零区的外包行列范围（首尾均包含）
type Window struct {
	MinRow int
	MaxRow int
	MinCol int
	MaxCol int
}

// 单环多边形，X为列（或地理x），Y为行（或地理y）
type Ring = orb.Ring

func NewMask(rows, cols int) *Mask {
	return &Mask{Rows: rows, Cols: cols, Data: make([]uint8, rows*cols)}
}

func (r *Raster) Validate() (err error) {
	if r == nil || r.Rows <= 0 || r.Cols <= 0 || len(r.Data) != r.Rows*r.Cols {
		err = ErrInvalidRaster
	}
	return
}

func (r *Raster) At(row, col int) float32 {
	return r.Data[row*r.Cols+col]
}

func (m *Mask) At(row, col int) uint8 {
	return m.Data[row*m.Cols+col]
}

func (m *Mask) Count() (n int) {
	for _, v := range m.Data {
		if v != 0 {
			n++
		}
	}
	return
}

func (w Window) Rows() int {
	return w.MaxRow - w.MinRow + 1
}

func (w Window) Cols() int {
	return w.MaxCol - w.MinCol + 1
}

func (w Window) Contains(row, col int) bool {
	return row >= w.MinRow && row <= w.MaxRow && col >= w.MinCol && col <= w.MaxCol
}
