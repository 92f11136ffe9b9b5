package callbacks

import "sync"

// Recorder keeps everything the device hands to the callback as input.
type Recorder struct {
	mu    sync.Mutex
	track []int32
}

func (r *Recorder) Update(in, out []int32) {
	r.mu.Lock()
	r.track = append(r.track, in...)
	r.mu.Unlock()
}

func (r *Recorder) Track() []int32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]int32(nil), r.track...)
}
