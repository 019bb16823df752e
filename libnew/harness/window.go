package harness

import (
	"time"

	"github.com/edwingeng/deque/v2"
)

// SampleWindow keeps the most recent sweep durations and their running sum.
type SampleWindow struct {
	limit int
	sum   time.Duration
	min   time.Duration
	max   time.Duration
	seen  int
	deque *deque.Deque[time.Duration]
}

func NewSampleWindow(limit int) *SampleWindow {
	if limit < 1 {
		limit = 1
	}
	return &SampleWindow{
		limit: limit,
		deque: deque.NewDeque[time.Duration](),
	}
}

func (w *SampleWindow) Add(d time.Duration) {
	w.deque.PushBack(d)
	w.sum += d
	if w.deque.Len() > w.limit {
		if old, ok := w.deque.TryDequeue(); ok {
			w.sum -= old
		}
	}
	if w.seen == 0 || d < w.min {
		w.min = d
	}
	if d > w.max {
		w.max = d
	}
	w.seen++
}

// Len is the number of samples currently in the window.
func (w *SampleWindow) Len() int {
	return w.deque.Len()
}

// Seen counts every sample ever added, including evicted ones.
func (w *SampleWindow) Seen() int {
	return w.seen
}

func (w *SampleWindow) Average() time.Duration {
	n := w.deque.Len()
	if n == 0 {
		return 0
	}
	return w.sum / time.Duration(n)
}

// Min and Max cover every sample seen, not just the window.
func (w *SampleWindow) Min() time.Duration {
	return w.min
}

func (w *SampleWindow) Max() time.Duration {
	return w.max
}
