package plumelib

// 将掩膜外像元置为sentinel，返回新栅格，输入不变
func ApplySentinel(r *Raster, m *Mask, sentinel float32) (out *Raster, err error) {
	if err = r.Validate(); err != nil {
		return
	}
	if m == nil || m.Rows != r.Rows || m.Cols != r.Cols || len(m.Data) != len(r.Data) {
		err = ErrShapeMismatch
		return
	}
	out = &Raster{
		Rows:         r.Rows,
		Cols:         r.Cols,
		Data:         make([]float32, len(r.Data)),
		GeoTransform: r.GeoTransform,
		Projection:   r.Projection,
	}
	for i, v := range r.Data {
		if m.Data[i] == 0 {
			v = sentinel
		}
		out.Data[i] = v
	}
	return
}
