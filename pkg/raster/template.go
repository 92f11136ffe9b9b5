package raster

import "math"

// Templates holds the active-region waveforms of every pattern.
// Each slice has exactly Config.NumActive samples and is never written after NewTemplates returns.
type Templates struct {
	ChirpBlend []float32
	Bars       []float32
	Gradient   []float32
}

// NewTemplates precomputes the active-region templates of the configuration.
func (c Config) NewTemplates() (Templates, error) {
	if err := c.Validate(); err != nil {
		return Templates{}, err
	}

	n := c.NumActive()
	ramp := c.ramp(n)
	chirp := chirpConfig{
		StartFreq:  c.ChirpStartFreq,
		EndFreq:    c.ChirpEndFreq,
		Length:     n,
		SampleRate: c.SampleRate,
	}.New()

	t := Templates{
		ChirpBlend: make([]float32, n),
		Bars:       make([]float32, n),
		Gradient:   make([]float32, n),
	}
	for i := 0; i < n; i++ {
		t.ChirpBlend[i] = float32(c.ActiveAmp * (0.5*chirp[i] + 0.5*ramp[i]))
		t.Bars[i] = float32(c.ActiveAmp * sign(math.Sin(2*math.Pi*8*float64(i)/float64(n))))
		t.Gradient[i] = float32(c.ActiveAmp * ramp[i])
	}
	return t, nil
}

// Active returns the template of pattern p.
// The line index is accepted for per-line patterns; none of the current patterns vary by line.
func (t Templates) Active(p Pattern, line int) []float32 {
	switch p {
	case ChirpBlend:
		return t.ChirpBlend
	case Bars:
		return t.Bars
	default:
		return t.Gradient
	}
}

// ramp returns n samples rising linearly from 0 to 1, raised to the gradient exponent.
func (c Config) ramp(n int) []float64 {
	ramp := make([]float64, n)
	if n == 1 {
		ramp[0] = math.Pow(0, c.Gamma)
		return ramp
	}
	for i := range ramp {
		ramp[i] = math.Pow(float64(i)/float64(n-1), c.Gamma)
	}
	return ramp
}

// chirpConfig describes a linear frequency sweep from StartFreq to EndFreq over Length samples.
type chirpConfig struct {
	StartFreq  float64
	EndFreq    float64
	Length     int
	SampleRate float64
}

func (p chirpConfig) New() []float64 {
	signal := make([]float64, p.Length)
	k := (p.EndFreq - p.StartFreq) / (float64(p.Length) / p.SampleRate)
	for i := range signal {
		t := float64(i) / p.SampleRate
		signal[i] = math.Sin(2 * math.Pi * (p.StartFreq*t + 0.5*k*t*t))
	}
	return signal
}

func sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}
