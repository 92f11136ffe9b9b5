package raster

import (
	"slices"
	"sync"
)

// Generator synthesises the raster waveform sample by sample.
type Generator struct {
	config    Config
	templates Templates
	cursor    Cursor
}

func New(config Config) (*Generator, error) {
	templates, err := config.NewTemplates()
	if err != nil {
		return nil, err
	}
	return &Generator{
		config:    config,
		templates: templates,
		cursor:    NewCursor(config.Timing()),
	}, nil
}

func (g *Generator) Config() Config {
	return g.config
}

// Templates returns a copy of the precomputed templates.
func (g *Generator) Templates() Templates {
	return Templates{
		ChirpBlend: slices.Clone(g.templates.ChirpBlend),
		Bars:       slices.Clone(g.templates.Bars),
		Gradient:   slices.Clone(g.templates.Gradient),
	}
}

// Active returns a copy of the active-region template used for the given line.
func (g *Generator) Active(line int) []float32 {
	return slices.Clone(g.templates.Active(g.config.Pattern, line))
}

func (g *Generator) Position() (sample, line int) {
	return g.cursor.Position()
}

// Reset rewinds the generator to the first sample of the first line.
func (g *Generator) Reset() {
	g.cursor.Reset()
}

// Fill writes the next len(out) samples of the waveform into out and returns len(out).
func (g *Generator) Fill(out []float32) int {
	filled := 0
	for filled < len(out) {
		n := min(len(out)-filled, g.cursor.Remaining())
		s, line := g.cursor.Position()
		g.fillRun(out[filled:filled+n], s, line)
		filled += n
		g.cursor.Advance(n)
	}
	return filled
}

// fillRun writes the samples [s, s+len(out)) of one line.
// The run may start in any segment and end in any later one.
func (g *Generator) fillRun(out []float32, s, line int) {
	t := g.cursor.Timing
	e := s + len(out)
	i := 0

	// sync
	for ; s+i < min(e, t.SyncLen); i++ {
		out[i] = float32(g.config.SyncLevel)
	}

	// blank
	for ; s+i < min(e, t.ActiveStart()); i++ {
		out[i] = float32(g.config.BlankLevel)
	}

	if i < len(out) {
		_, offset := t.Classify(s + i)
		copy(out[i:], g.templates.Active(g.config.Pattern, line)[offset:])
	}
}

// Frame returns one full frame of samples starting at the current position.
func (g *Generator) Frame() []float32 {
	out := make([]float32, g.config.SamplesPerLine*g.config.LinesPerFrame)
	g.Fill(out)
	return out
}

// Locked serialises access to a Generator shared by several goroutines.
type Locked struct {
	mu sync.Mutex
	g  *Generator
}

func NewLocked(g *Generator) *Locked {
	return &Locked{g: g}
}

func (l *Locked) Fill(out []float32) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.g.Fill(out)
}

func (l *Locked) Position() (sample, line int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.g.Position()
}

func (l *Locked) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.g.Reset()
}
