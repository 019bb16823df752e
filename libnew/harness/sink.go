package harness

import "sync/atomic"

// Sink receives every result a measured operation produces.
type Sink interface {
	Consume(v int64)
}

var blackholeState atomic.Int64

// Blackhole folds consumed values into package state so the sweep can never be proven dead.
type Blackhole struct{}

func (Blackhole) Consume(v int64) {
	blackholeState.Add(v ^ 0x5bd1e995)
}
