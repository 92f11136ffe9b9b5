package convert

const fullScale = 0x7fffffff

// Float32ToInt32 converts in into out, which must be at least as long as in.
func Float32ToInt32(out []int32, in []float32) {
	for i, v := range in {
		out[i] = toInt32(float64(v))
	}
}

func Int32ToFloat32(out []float32, in []int32) {
	for i, v := range in {
		out[i] = float32(float64(v) / fullScale)
	}
}

func toInt32(v float64) int32 {
	v = max(min(v, 1), -1)
	return int32(v * fullScale)
}
