package device

import "golang.org/x/exp/rand"

func cleari32(a []int32) {
	for i := range a {
		a[i] = 0
	}
}

// randi32 fills a with full-scale white noise.
func randi32(a []int32) {
	for i := range a {
		a[i] = int32(rand.Uint32())
	}
}

func alloci32(n int) []int32 {
	return make([]int32, n)
}
