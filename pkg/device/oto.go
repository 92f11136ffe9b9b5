package device

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"sync"

	"CRTRaster/pkg/convert"

	"github.com/ebitengine/oto/v3"
)

// oto allows one context per process
var (
	otoOnce    sync.Once
	otoContext *oto.Context
	otoErr     error
)

// Oto plays the callback output on the default sound card as mono float32 PCM.
// There is no capture, the callback always sees a silent input.
type Oto struct {
	SampleRate int

	player *oto.Player
}

func openOto(sampleRate int) (*oto.Context, error) {
	otoOnce.Do(func() {
		var ready chan struct{}
		otoContext, ready, otoErr = oto.NewContext(&oto.NewContextOptions{
			SampleRate:   sampleRate,
			ChannelCount: 1,
			Format:       oto.FormatFloat32LE,
		})
		if otoErr == nil {
			<-ready
		}
	})
	return otoContext, otoErr
}

func (o *Oto) Start(callback func([]int32, []int32)) {
	ctx, err := openOto(o.SampleRate)
	if err != nil {
		fmt.Printf("[Device] oto: failed to open audio context: %v\n", err)
		return
	}
	o.player = ctx.NewPlayer(&callbackReader{callback: callback})
	o.player.Play()
}

func (o *Oto) Stop() {
	if o.player == nil {
		return
	}
	if err := o.player.Close(); err != nil {
		fmt.Printf("[Device] oto: %v\n", err)
	}
	o.player = nil
}

// callbackReader turns the pull callback into the io.Reader oto consumes.
type callbackReader struct {
	callback func([]int32, []int32)
	in, out  []int32
	samples  []float32
}

func (r *callbackReader) Read(p []byte) (int, error) {
	n := len(p) / 4
	if n == 0 {
		return 0, io.ErrShortBuffer
	}
	if len(r.out) < n {
		r.in = alloci32(n)
		r.out = alloci32(n)
		r.samples = make([]float32, n)
	}

	in, out, samples := r.in[:n], r.out[:n], r.samples[:n]
	cleari32(in)
	r.callback(in, out)
	convert.Int32ToFloat32(samples, out)

	for i, v := range samples {
		binary.LittleEndian.PutUint32(p[4*i:], math.Float32bits(v))
	}
	return 4 * n, nil
}
