// Package parallel splits row ranges of pixel work across CPU cores.
//
// Byte-buffer conversions touch every pixel independently, so a surface
// splits into contiguous row bands with no coordination beyond a
// WaitGroup. Callers guarantee that fn touches only rows inside its
// band.
package parallel

import (
	"runtime"
	"sync"
)

// minBandRows keeps small surfaces on the calling goroutine, where
// spawning workers costs more than the conversion itself.
const minBandRows = 64

// Rows invokes fn over disjoint half-open row bands covering [0, height)
// and returns once every band is done. Surfaces shorter than two bands
// run inline on the calling goroutine.
func Rows(height int, fn func(y0, y1 int)) {
	if height <= 0 {
		return
	}
	workers := runtime.GOMAXPROCS(0)
	if limit := height / minBandRows; workers > limit {
		workers = limit
	}
	if workers < 2 {
		fn(0, height)
		return
	}

	band := (height + workers - 1) / workers
	var wg sync.WaitGroup
	for y0 := 0; y0 < height; y0 += band {
		y1 := min(y0+band, height)
		wg.Add(1)
		go func() {
			defer wg.Done()
			fn(y0, y1)
		}()
	}
	wg.Wait()
}
