package raster

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateShape(t *testing.T) {
	const AMPLITUDE = 0.8

	config := DefaultConfig()
	config.ActiveAmp = AMPLITUDE
	config.Gamma = 2.2

	templates, err := config.NewTemplates()
	require.NoError(t, err)

	n := config.NumActive()
	for _, p := range []Pattern{ChirpBlend, Bars, Gradient} {
		assert.Len(t, templates.Active(p, 0), n, "pattern %v", p)
	}

	for i, v := range templates.Bars {
		if v != AMPLITUDE && v != -AMPLITUDE && v != 0 {
			t.Errorf("bars[%d] = %v, want one of {-%v, 0, %v}", i, v, AMPLITUDE, AMPLITUDE)
		}
	}

	grad := templates.Gradient
	assert.Equal(t, float32(0), grad[0])
	assert.Equal(t, float32(AMPLITUDE), grad[n-1])
	for i := 1; i < n; i++ {
		if grad[i] < grad[i-1] {
			t.Fatalf("gradient decreases at %d: %v < %v", i, grad[i], grad[i-1])
		}
	}
}

func TestBarsTemplate(t *testing.T) {
	config := DefaultConfig()
	config.SamplesPerLine = 10
	config.SyncLen = 2
	config.BlankLen = 3

	templates, err := config.NewTemplates()
	require.NoError(t, err)

	assert.Equal(t, []float32{0, -1, 1, -1, 1}, templates.Bars)
}

func TestBarsCycles(t *testing.T) {
	config := DefaultConfig()
	config.SamplesPerLine = 1024 + 16
	config.SyncLen = 8
	config.BlankLen = 8

	templates, err := config.NewTemplates()
	require.NoError(t, err)

	// 1024 samples of 8 cycles: every half cycle is 64 samples wide
	bars := templates.Bars
	assert.Equal(t, float32(1), bars[1])
	assert.Equal(t, float32(1), bars[63])
	assert.Equal(t, float32(-1), bars[65])
	assert.Equal(t, float32(-1), bars[127])
	assert.Equal(t, float32(1), bars[129])
}

func TestChirpBlendTemplate(t *testing.T) {
	config := DefaultConfig()
	templates, err := config.NewTemplates()
	require.NoError(t, err)

	n := config.NumActive()
	duration := float64(n) / config.SampleRate
	k := (config.ChirpEndFreq - config.ChirpStartFreq) / duration

	for _, i := range []int{0, 1, 17, n / 2, n - 1} {
		ti := float64(i) / config.SampleRate
		phase := 2 * math.Pi * (config.ChirpStartFreq*ti + 0.5*k*ti*ti)
		ramp := float64(i) / float64(n-1)
		want := config.ActiveAmp * (0.5*math.Sin(phase) + 0.5*ramp)
		assert.InDelta(t, want, templates.ChirpBlend[i], 1e-6, "sample %d", i)
	}

	assert.Equal(t, float32(0), templates.ChirpBlend[0])
}

func TestSingleSampleActiveRegion(t *testing.T) {
	config := DefaultConfig()
	config.SamplesPerLine = 3
	config.SyncLen = 1
	config.BlankLen = 1

	templates, err := config.NewTemplates()
	require.NoError(t, err)

	assert.Equal(t, []float32{0}, templates.Gradient)
	assert.Equal(t, []float32{0}, templates.Bars)
	assert.Equal(t, []float32{0}, templates.ChirpBlend)
}

func TestTemplatesRejectInvalidConfig(t *testing.T) {
	config := DefaultConfig()
	config.SyncLen = config.SamplesPerLine

	_, err := config.NewTemplates()
	assert.ErrorIs(t, err, ErrNoActiveRegion)
}
