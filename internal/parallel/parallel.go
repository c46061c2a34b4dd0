// Package parallel fans per-index work out over a bounded number of
// goroutines while keeping results in index order.
package parallel

import (
	"runtime"
	"sync"
)

// DefaultMinChunk is the smallest range handed to a goroutine when Config
// leaves MinChunk at zero. Nearest-centroid searches over a few features
// cost far less than spawning a goroutine.
const DefaultMinChunk = 256

// Config bounds the fan-out.
type Config struct {
	Workers  int // Goroutine limit; 1 or less runs inline
	MinChunk int // Minimum indices per goroutine (default: 256)
}

// DefaultConfig uses one worker per usable CPU.
func DefaultConfig() Config {
	return Config{Workers: runtime.GOMAXPROCS(0), MinChunk: DefaultMinChunk}
}

// Range is the half-open index interval [Start, End).
type Range struct {
	Start, End int
}

// Len returns the number of indices in r.
func (r Range) Len() int {
	return r.End - r.Start
}

// Chunks splits [0, n) into contiguous ranges, at most one per worker and
// none shorter than MinChunk except the last. A single range means the
// work runs inline.
func Chunks(n int, cfg Config) []Range {
	if n <= 0 {
		return nil
	}
	minChunk := cfg.MinChunk
	if minChunk <= 0 {
		minChunk = DefaultMinChunk
	}

	workers := max(cfg.Workers, 1)
	size := max((n+workers-1)/workers, minChunk)

	out := make([]Range, 0, (n+size-1)/size)
	for start := 0; start < n; start += size {
		out = append(out, Range{Start: start, End: min(start+size, n)})
	}
	return out
}

// Map returns fn(0), ..., fn(n-1) in index order, evaluating the ranges
// of Chunks on separate goroutines. fn must be safe to call concurrently
// for distinct indices.
//
// A panic inside fn is re-raised on the calling goroutine after every
// range has finished.
func Map[T any](n int, fn func(i int) T, cfg Config) []T {
	out := make([]T, max(n, 0))
	chunks := Chunks(n, cfg)
	if len(chunks) <= 1 {
		for i := range out {
			out[i] = fn(i)
		}
		return out
	}

	var (
		wg        sync.WaitGroup
		panicOnce sync.Once
		panicked  any
	)
	for _, r := range chunks {
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer func() {
				if p := recover(); p != nil {
					panicOnce.Do(func() { panicked = p })
				}
			}()
			for i := r.Start; i < r.End; i++ {
				out[i] = fn(i)
			}
		}()
	}
	wg.Wait()

	if panicked != nil {
		panic(panicked)
	}
	return out
}
