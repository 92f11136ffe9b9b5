package callbacks

import "CRTRaster/pkg/convert"

// Player replays a recorded waveform, looping when Loop is set and padding with silence otherwise.
type Player struct {
	Track []float32
	Loop  bool

	idx int
}

func (p *Player) Update(in, out []int32) {
	i := 0
	for i < len(out) {
		if p.idx >= len(p.Track) {
			if !p.Loop || len(p.Track) == 0 {
				break
			}
			p.idx = 0
		}
		n := copy32(out[i:], p.Track[p.idx:])
		p.idx += n
		i += n
	}
	for ; i < len(out); i++ {
		out[i] = 0
	}
}

func (p *Player) Reset() {
	p.idx = 0
}

func copy32(out []int32, track []float32) int {
	n := min(len(out), len(track))
	convert.Float32ToInt32(out[:n], track[:n])
	return n
}
