package raster

import (
	"fmt"
	"math"
)

type Pattern int

const (
	ChirpBlend Pattern = iota
	Bars
	Gradient
)

// ParsePattern maps a pattern name to a Pattern.
// Unrecognised names select Gradient.
func ParsePattern(name string) Pattern {
	switch name {
	case "lfm", "chirp":
		return ChirpBlend
	case "bars":
		return Bars
	case "grad", "gradient":
		return Gradient
	default:
		return Gradient
	}
}

func (p Pattern) String() string {
	switch p {
	case ChirpBlend:
		return "lfm"
	case Bars:
		return "bars"
	default:
		return "grad"
	}
}

type Config struct {
	SampleRate     float64
	SamplesPerLine int // total line length
	SyncLen        int // leading sync region
	BlankLen       int // blank region following the sync
	LinesPerFrame  int

	Pattern    Pattern
	ActiveAmp  float64
	SyncLevel  float64
	BlankLevel float64

	ChirpStartFreq float64
	ChirpEndFreq   float64
	Gamma          float64 // exponent shaping the ramp of the chirp-blend and gradient patterns
}

func DefaultConfig() Config {
	return Config{
		SampleRate:     2_500_000,
		SamplesPerLine: 4096,
		SyncLen:        128,
		BlankLen:       128,
		LinesPerFrame:  256,
		Pattern:        ChirpBlend,
		ActiveAmp:      1.0,
		SyncLevel:      -0.6,
		BlankLevel:     0.05,
		ChirpStartFreq: 50_000,
		ChirpEndFreq:   500_000,
		Gamma:          1.0,
	}
}

// NumActive returns the number of samples in the active region of a line.
func (c Config) NumActive() int {
	return c.SamplesPerLine - c.SyncLen - c.BlankLen
}

func (c Config) Timing() Timing {
	return Timing{
		SamplesPerLine: c.SamplesPerLine,
		SyncLen:        c.SyncLen,
		BlankLen:       c.BlankLen,
		LinesPerFrame:  c.LinesPerFrame,
	}
}

func (c Config) Validate() error {
	if c.SyncLen < 0 {
		return fmt.Errorf("%w: sync length %d", ErrInvalidLength, c.SyncLen)
	}
	if c.BlankLen < 0 {
		return fmt.Errorf("%w: blank length %d", ErrInvalidLength, c.BlankLen)
	}
	if c.LinesPerFrame <= 0 {
		return fmt.Errorf("%w: lines per frame %d", ErrInvalidLength, c.LinesPerFrame)
	}
	if n := c.NumActive(); n <= 0 {
		return fmt.Errorf("%w: %d samples per line, %d sync, %d blank", ErrNoActiveRegion, c.SamplesPerLine, c.SyncLen, c.BlankLen)
	}
	if !(c.SampleRate > 0) {
		return fmt.Errorf("%w: %v", ErrInvalidSampleRate, c.SampleRate)
	}
	if math.IsNaN(c.Gamma) || c.Gamma < 0 {
		return fmt.Errorf("%w: %v", ErrInvalidGamma, c.Gamma)
	}
	return nil
}
