package raster

type Segment int

const (
	Sync Segment = iota
	Blank
	Active
)

func (s Segment) String() string {
	switch s {
	case Sync:
		return "sync"
	case Blank:
		return "blank"
	default:
		return "active"
	}
}

// Timing holds the fixed segment boundaries of a line.
type Timing struct {
	SamplesPerLine int
	SyncLen        int
	BlankLen       int
	LinesPerFrame  int
}

// ActiveStart is the offset of the first active sample in a line.
func (t Timing) ActiveStart() int {
	return t.SyncLen + t.BlankLen
}

// Classify returns the segment containing the in-line offset.
// For Active the second result is the offset into the active region, otherwise it is 0.
func (t Timing) Classify(offset int) (Segment, int) {
	switch {
	case offset < t.SyncLen:
		return Sync, 0
	case offset < t.ActiveStart():
		return Blank, 0
	default:
		return Active, offset - t.ActiveStart()
	}
}

// Cursor tracks the scan position within a frame.
type Cursor struct {
	Timing

	sample int // [0, SamplesPerLine)
	line   int // [0, LinesPerFrame)
}

func NewCursor(t Timing) Cursor {
	return Cursor{Timing: t}
}

func (c *Cursor) Position() (sample, line int) {
	return c.sample, c.line
}

// Remaining returns the number of samples left in the current line.
func (c *Cursor) Remaining() int {
	return c.SamplesPerLine - c.sample
}

// Advance moves the cursor n samples forward, n must not exceed Remaining.
func (c *Cursor) Advance(n int) {
	c.sample += n
	if c.sample >= c.SamplesPerLine {
		c.sample %= c.SamplesPerLine
		c.line = (c.line + 1) % c.LinesPerFrame
	}
}

func (c *Cursor) Reset() {
	c.sample = 0
	c.line = 0
}
