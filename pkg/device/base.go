package device

import "fmt"

// Device is a host that repeatedly asks the callback to fill out and hands it the captured in.
type Device interface {
	Start(callback func(in, out []int32))
	Stop()
}

const BufferSize = 512

// Debug enables the [Device] trace lines.
var Debug = false

func debugLog(format string, args ...any) {
	if Debug {
		fmt.Printf(format, args...)
	}
}
