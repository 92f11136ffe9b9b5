package convert

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFloat32ToInt32Clamps(t *testing.T) {
	in := []float32{0, 1, -1, 0.5, 2, -3}
	out := make([]int32, len(in))
	Float32ToInt32(out, in)

	assert.Equal(t, int32(0), out[0])
	assert.Equal(t, int32(0x7fffffff), out[1])
	assert.Equal(t, int32(-0x7fffffff), out[2])
	assert.Equal(t, int32(0x3fffffff), out[3])
	assert.Equal(t, int32(0x7fffffff), out[4])
	assert.Equal(t, int32(-0x7fffffff), out[5])
}

func TestInt32ToFloat32(t *testing.T) {
	in := []int32{0, 0x7fffffff, -0x7fffffff, 0x40000000}
	out := make([]float32, len(in))
	Int32ToFloat32(out, in)
	assert.Equal(t, []float32{0, 1, -1, 0.5}, out)
}

func TestRoundTripLevels(t *testing.T) {
	levels := []float32{-0.6, 0.05, 0, 1, -1}
	ints := make([]int32, len(levels))
	Float32ToInt32(ints, levels)

	back := make([]float32, len(levels))
	Int32ToFloat32(back, ints)
	for i := range levels {
		assert.InDelta(t, levels[i], back[i], 1e-7, "level %d", i)
	}
}
