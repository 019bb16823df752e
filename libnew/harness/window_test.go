package harness

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSampleWindowAverage(t *testing.T) {
	w := NewSampleWindow(4)
	assert.Equal(t, time.Duration(0), w.Average())

	w.Add(10 * time.Millisecond)
	w.Add(30 * time.Millisecond)
	assert.Equal(t, 20*time.Millisecond, w.Average())
	assert.Equal(t, 2, w.Len())
}

func TestSampleWindowEvictsOldest(t *testing.T) {
	w := NewSampleWindow(2)
	w.Add(100 * time.Millisecond)
	w.Add(10 * time.Millisecond)
	w.Add(30 * time.Millisecond)

	assert.Equal(t, 2, w.Len())
	assert.Equal(t, 3, w.Seen())
	assert.Equal(t, 20*time.Millisecond, w.Average())
	assert.Equal(t, 10*time.Millisecond, w.Min())
	assert.Equal(t, 100*time.Millisecond, w.Max())
}

func TestSampleWindowMinimumLimit(t *testing.T) {
	w := NewSampleWindow(0)
	w.Add(time.Second)
	w.Add(2 * time.Second)
	assert.Equal(t, 1, w.Len())
	assert.Equal(t, 2*time.Second, w.Average())
}
