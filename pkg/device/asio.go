package device

import "github.com/xsjk/go-asio"

// ASIOMono drives one output channel of an ASIO sound card.
type ASIOMono struct {
	DeviceName string
	SampleRate float64
	InChannel  int
	OutChannel int
	device     asio.Device
}

func (a *ASIOMono) Start(callback func([]int32, []int32)) {
	debugLog("[Device] asio: loading %q at %.0f Hz\n", a.DeviceName, a.SampleRate)
	a.device.Load(a.DeviceName)
	a.device.SetSampleRate(a.SampleRate)
	a.device.Open()
	a.device.Start(func(in, out [][]int32) {
		if a.OutChannel >= len(out) {
			return
		}
		var input []int32
		if a.InChannel < len(in) {
			input = in[a.InChannel]
		} else {
			input = alloci32(len(out[a.OutChannel]))
		}
		callback(input, out[a.OutChannel])
	})
}

func (a *ASIOMono) Stop() {
	a.device.Stop()
	a.device.Close()
	a.device.Unload()
}
