package debug

import "time"

// FPSCounter averages frame times over a sliding window.
type FPSCounter struct {
	samples []time.Duration
	next    int
	filled  bool
	total   time.Duration
}

// NewFPSCounter averages over the last window frames.
func NewFPSCounter(window int) *FPSCounter {
	return &FPSCounter{samples: make([]time.Duration, max(window, 1))}
}

// Frame records the duration of one frame.
func (f *FPSCounter) Frame(dt time.Duration) {
	f.total -= f.samples[f.next]
	f.samples[f.next] = dt
	f.total += dt
	f.next++
	if f.next == len(f.samples) {
		f.next = 0
		f.filled = true
	}
}

func (f *FPSCounter) count() int {
	if f.filled {
		return len(f.samples)
	}
	return f.next
}

// FrameTime returns the average frame duration.
func (f *FPSCounter) FrameTime() time.Duration {
	n := f.count()
	if n == 0 {
		return 0
	}
	return f.total / time.Duration(n)
}

// FPS returns the average frames per second, 0 before any frame.
func (f *FPSCounter) FPS() float64 {
	ft := f.FrameTime()
	if ft <= 0 {
		return 0
	}
	return float64(time.Second) / float64(ft)
}
