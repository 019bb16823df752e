package harness

import (
	"fmt"
	"runtime"
	"strconv"

	"github.com/germanoeich/nirn-numbench/libnew/strategy"
	"golang.org/x/sync/errgroup"
)

// chunksPerWorker is how many contiguous chunks each worker is handed on average.
const chunksPerWorker = 4

// Sweep classifies prefix+decimal(v) for every v in [0, Size) across parallel workers.
// The zero value sweeps DefaultSweepSize values on GOMAXPROCS workers. Size must not exceed MaxSweepSize.
type Sweep struct {
	Size    int
	Workers int
}

// Operation is one measured benchmark body.
type Operation func(state *State, prefix string, sink Sink)

var defaultSweep = Sweep{}

func (sw Sweep) size() int {
	if sw.Size <= 0 {
		return DefaultSweepSize
	}
	return sw.Size
}

func (sw Sweep) validate() error {
	if int64(sw.size()) > MaxSweepSize {
		return fmt.Errorf("%w: %d > %d", ErrSweepTooLarge, sw.size(), MaxSweepSize)
	}
	return nil
}

func (sw Sweep) workers() int {
	if sw.Workers <= 0 {
		return runtime.GOMAXPROCS(0)
	}
	return sw.Workers
}

// each calls fn once for every value of the sweep. Order between workers is unspecified.
func (sw Sweep) each(fn func(v int)) {
	size, workers := sw.size(), sw.workers()
	chunks := workers * chunksPerWorker
	if chunks > size {
		chunks = size
	}
	if chunks < 1 {
		chunks = 1
	}
	step := (size + chunks - 1) / chunks

	var g errgroup.Group
	g.SetLimit(workers)
	for lo := 0; lo < size; lo += step {
		lo, hi := lo, min(lo+step, size)
		g.Go(func() error {
			for v := lo; v < hi; v++ {
				fn(v)
			}
			return nil
		})
	}
	// Workers never fail; Wait only joins them.
	_ = g.Wait()
}

func (sw Sweep) ParseIntWithErrCheck(state *State, prefix string, sink Sink) {
	sw.each(func(v int) {
		parsed, err := strategy.ParseNonNegative(prefix + strconv.Itoa(v))
		if err != nil {
			state.Negative.Add(int64(v))
			return
		}
		// The parsed value, not v: only equal when prefix is empty, which is the only case parsing succeeds.
		state.Positive.Add(parsed)
	})
	drain(state, sink)
}

func (sw Sweep) IsNumberWithRegex(state *State, prefix string, sink Sink) {
	sw.classify(state, prefix, strategy.IsNumberWithRegex)
	drain(state, sink)
}

func (sw Sweep) IsNumericWithDigitCheck(state *State, prefix string, sink Sink) {
	sw.classify(state, prefix, strategy.IsNumericWithDigitCheck)
	drain(state, sink)
}

func (sw Sweep) classify(state *State, prefix string, isNumeric strategy.Classifier) {
	sw.each(func(v int) {
		if isNumeric(prefix + strconv.Itoa(v)) {
			state.Positive.Add(int64(v))
		} else {
			state.Negative.Add(int64(v))
		}
	})
}

// Operation returns the measured operation for a strategy name.
func (sw Sweep) Operation(name string) (Operation, error) {
	switch name {
	case strategy.Parse:
		return sw.ParseIntWithErrCheck, nil
	case strategy.Regex:
		return sw.IsNumberWithRegex, nil
	case strategy.Digits:
		return sw.IsNumericWithDigitCheck, nil
	}
	return nil, fmt.Errorf("%w: %q", strategy.ErrUnknownStrategy, name)
}

func drain(state *State, sink Sink) {
	sink.Consume(state.Positive.Load())
	sink.Consume(state.Negative.Load())
}

func ParseIntWithErrCheck(state *State, prefix string, sink Sink) {
	defaultSweep.ParseIntWithErrCheck(state, prefix, sink)
}

func IsNumberWithRegex(state *State, prefix string, sink Sink) {
	defaultSweep.IsNumberWithRegex(state, prefix, sink)
}

func IsNumericWithDigitCheck(state *State, prefix string, sink Sink) {
	defaultSweep.IsNumericWithDigitCheck(state, prefix, sink)
}
