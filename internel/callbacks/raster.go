package callbacks

import "CRTRaster/pkg/convert"

// Source produces the next len(out) samples.
type Source interface {
	Fill(out []float32) int
}

// Raster streams a Source into a device output buffer.
type Raster struct {
	Source Source

	buf []float32
}

func (r *Raster) Update(in, out []int32) {
	if cap(r.buf) < len(out) {
		r.buf = make([]float32, len(out))
	}
	buf := r.buf[:len(out)]
	r.Source.Fill(buf)
	convert.Float32ToInt32(out, buf)
}
