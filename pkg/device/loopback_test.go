package device

import (
	"reflect"
	"sync/atomic"
	"testing"
	"time"
)

func TestLoopback(t *testing.T) {

	const BUFFER_SIZE = 64

	lastOutput := alloci32(BUFFER_SIZE)
	var calls atomic.Int32

	var dev Device = &Loopback{
		SampleRate: 48000,
		BufferSize: BUFFER_SIZE,
	}

	dev.Start(func(in, out []int32) {
		calls.Add(1)
		if len(in) != BUFFER_SIZE || len(out) != BUFFER_SIZE {
			t.Errorf("Expected buffers of %d, but got %d and %d", BUFFER_SIZE, len(in), len(out))
		}
		if !reflect.DeepEqual(in, lastOutput) {
			t.Errorf("Expected %v, but got %v", lastOutput, in)
		}

		randi32(out)
		copy(lastOutput, out)
	})

	time.Sleep(10 * time.Millisecond)
	dev.Stop()

	n := calls.Load()
	t.Logf("callback called %d times", n)
	if n == 0 {
		t.Errorf("Expected the callback to be called")
	}

	time.Sleep(time.Millisecond)
	if calls.Load() != n {
		t.Errorf("callback called after Stop")
	}
}

func TestLoopbackUnlimited(t *testing.T) {

	var calls atomic.Int32

	dev := &Loopback{}
	dev.Start(func(in, out []int32) {
		if len(out) != BufferSize {
			t.Errorf("Expected default buffer size %d, but got %d", BufferSize, len(out))
		}
		calls.Add(1)
	})

	time.Sleep(time.Millisecond)
	dev.Stop()

	if calls.Load() == 0 {
		t.Errorf("Expected the callback to be called")
	}
}

func TestLoopbackNoise(t *testing.T) {

	const BUFFER_SIZE = 256

	var first []int32
	var calls atomic.Int32

	dev := &Loopback{BufferSize: BUFFER_SIZE, Noise: true}
	dev.Start(func(in, out []int32) {
		if calls.Add(1) == 1 {
			first = append([]int32(nil), in...)
		}
		cleari32(out)
	})

	time.Sleep(time.Millisecond)
	dev.Stop()

	if reflect.DeepEqual(first, alloci32(BUFFER_SIZE)) {
		t.Errorf("Expected a noisy first input, but got silence")
	}
	negative := false
	for _, v := range first {
		negative = negative || v < 0
	}
	if !negative {
		t.Errorf("Expected noise of both signs, but got %v", first)
	}
}
