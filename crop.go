package plumelib

// 求掩膜非零像元的最小外包行列范围
func MaskBounds(m *Mask) (w Window, err error) {
	if m == nil || len(m.Data) != m.Rows*m.Cols {
		err = ErrShapeMismatch
		return
	}
	w = Window{MinRow: -1, MaxRow: -1, MinCol: m.Cols, MaxCol: -1}
	for r := 0; r < m.Rows; r++ {
		row := m.Data[r*m.Cols : (r+1)*m.Cols]
		for c, v := range row {
			if v == 0 {
				continue
			}
			if w.MinRow < 0 {
				w.MinRow = r
			}
			w.MaxRow = r
			if c < w.MinCol {
				w.MinCol = c
			}
			if c > w.MaxCol {
				w.MaxCol = c
			}
		}
	}
	if w.MaxRow < 0 {
		w = Window{}
		err = ErrEmptyMask
	}
	return
}

// 按掩膜外包范围（首尾包含）裁剪栅格与掩膜，并将仿射原点平移至窗口左上角像元
func CropToMask(r *Raster, m *Mask) (cr *Raster, cm *Mask, err error) {
	if err = r.Validate(); err != nil {
		return
	}
	if m == nil || m.Rows != r.Rows || m.Cols != r.Cols || len(m.Data) != len(r.Data) {
		err = ErrShapeMismatch
		return
	}
	w, err := MaskBounds(m)
	if err != nil {
		return
	}
	rows, cols := w.Rows(), w.Cols()
	cr = &Raster{
		Rows:         rows,
		Cols:         cols,
		Data:         make([]float32, rows*cols),
		GeoTransform: r.GeoTransform.Shift(w.MinCol, w.MinRow),
		Projection:   r.Projection,
	}
	cm = NewMask(rows, cols)
	for i := 0; i < rows; i++ {
		src := (w.MinRow+i)*r.Cols + w.MinCol
		copy(cr.Data[i*cols:(i+1)*cols], r.Data[src:src+cols])
		copy(cm.Data[i*cols:(i+1)*cols], m.Data[src:src+cols])
	}
	return
}
