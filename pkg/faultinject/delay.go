package faultinject

import (
	"math/bits"
	"runtime"
	"time"
)

// fallbackZeros is the trailing-zero count assumed when the timestamp
// source yields no entropy for a sample.
const fallbackZeros = 2

// timestamp16 samples the low 16 bits of a monotonic timestamp. Package
// variable so tests can pin the source.
var timestamp16 = func() uint16 {
	return uint16(time.Now().UnixNano())
}

// maybeYield perturbs goroutine scheduling when delay intensity is set:
// it yields the processor trailing-zeros(timestamp) * intensity times.
// The loop is bounded (at most 16 * intensity yields per evaluation) and
// never blocks; a timestamp of zero falls back to a small fixed count.
func (s *State) maybeYield() {
	intensity := s.delay.Load()
	if intensity == 0 {
		return
	}
	s.stats.delayed.Add(1)

	ts := timestamp16()
	zeros := fallbackZeros
	if ts != 0 {
		zeros = bits.TrailingZeros16(ts)
	}
	for i := 0; i < zeros*int(intensity); i++ {
		runtime.Gosched()
	}
}
