package device

import (
	"sync"
	"time"
)

// Loopback is a software host: the buffer written by the callback comes back as the next input.
type Loopback struct {
	SampleRate float64 // the fake sample rate, 0 means no limit
	BufferSize int     // samples per callback, 0 means BufferSize
	Noise      bool    // the first input is white noise instead of silence

	done chan struct{}
	wg   sync.WaitGroup
}

func (d *Loopback) Start(callback func([]int32, []int32)) {
	size := d.BufferSize
	if size == 0 {
		size = BufferSize
	}

	d.done = make(chan struct{})
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()

		var buf = [2][]int32{alloci32(size), alloci32(size)}
		if d.Noise {
			randi32(buf[0])
		}

		swap := true
		update := func() {
			if swap {
				callback(buf[0], buf[1])
			} else {
				callback(buf[1], buf[0])
			}
			swap = !swap
		}

		if d.SampleRate == 0 {
			for {
				select {
				case <-d.done:
					return
				default:
					update()
				}
			}
		} else {
			period := time.Duration(float64(time.Second) * float64(size) / d.SampleRate)
			debugLog("[Device] loopback: %d samples every %v\n", size, period)
			ticker := time.NewTicker(max(period, time.Microsecond))
			defer ticker.Stop()
			for {
				select {
				case <-d.done:
					return
				case <-ticker.C:
					update()
				}
			}
		}
	}()
}

// Stop returns once the callback is no longer running.
func (d *Loopback) Stop() {
	close(d.done)
	d.wg.Wait()
}
