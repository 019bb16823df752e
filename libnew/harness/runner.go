package harness

import (
	"context"
	"time"

	"github.com/germanoeich/nirn-numbench/libnew/logging"
	"github.com/germanoeich/nirn-numbench/libnew/metrics"
	"github.com/sirupsen/logrus"
)

var logger = logging.GetLogger("harness")

type RunnerConfig struct {
	Strategies            []string
	Prefixes              []string
	WarmupIterations      int
	MeasurementIterations int
	SampleWindow          int
	Sweep                 Sweep
	// Sink defaults to Blackhole.
	Sink Sink
}

// Result is the outcome of one (strategy, prefix) trial.
type Result struct {
	Strategy   string
	Prefix     string
	Iterations int
	Average    time.Duration
	Min        time.Duration
	Max        time.Duration
	Positive   int64
	Negative   int64
}

type trial struct {
	strategy string
	prefix   string
	op       Operation
}

type Runner struct {
	cfg    RunnerConfig
	trials []trial
	now    func() time.Time
}

// NewRunner resolves every strategy and validates every prefix up front so a bad config fails before any timing starts.
func NewRunner(cfg RunnerConfig) (*Runner, error) {
	if cfg.Sink == nil {
		cfg.Sink = Blackhole{}
	}
	if cfg.MeasurementIterations < 1 {
		cfg.MeasurementIterations = 1
	}
	if cfg.WarmupIterations < 0 {
		cfg.WarmupIterations = 0
	}
	// The average must cover every measurement iteration it reports.
	cfg.SampleWindow = max(cfg.SampleWindow, cfg.MeasurementIterations)
	if err := cfg.Sweep.validate(); err != nil {
		return nil, err
	}

	r := &Runner{cfg: cfg, now: time.Now}
	for _, name := range cfg.Strategies {
		op, err := cfg.Sweep.Operation(name)
		if err != nil {
			return nil, err
		}
		for _, prefix := range cfg.Prefixes {
			if err := ValidatePrefix(prefix); err != nil {
				return nil, err
			}
			r.trials = append(r.trials, trial{strategy: name, prefix: prefix, op: op})
		}
	}
	return r, nil
}

// Run executes every trial in order. Cancellation is honoured between sweeps, never inside one.
func (r *Runner) Run(ctx context.Context) ([]Result, error) {
	results := make([]Result, 0, len(r.trials))
	for _, t := range r.trials {
		res, err := r.runTrial(ctx, t)
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}
	return results, nil
}

func (r *Runner) runTrial(ctx context.Context, t trial) (Result, error) {
	label := PrefixLabel(t.prefix)
	log := logger.WithFields(logrus.Fields{"strategy": t.strategy, "prefix": label})
	size := r.cfg.Sweep.size()

	for i := 0; i < r.cfg.WarmupIterations; i++ {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		elapsed, _, err := r.iterate(t, size)
		if err != nil {
			log.Error(err)
			return Result{}, err
		}
		log.WithField("iteration", i+1).Debugf("Warmup took %s", elapsed)
	}

	window := NewSampleWindow(r.cfg.SampleWindow)
	var last *State
	for i := 0; i < r.cfg.MeasurementIterations; i++ {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		elapsed, state, err := r.iterate(t, size)
		if err != nil {
			log.Error(err)
			return Result{}, err
		}
		window.Add(elapsed)
		metrics.ObserveSweep(t.strategy, label, elapsed.Seconds())
		log.WithField("iteration", i+1).Debugf("Measurement took %s", elapsed)
		last = state
	}

	res := Result{
		Strategy:   t.strategy,
		Prefix:     t.prefix,
		Iterations: window.Seen(),
		Average:    window.Average(),
		Min:        window.Min(),
		Max:        window.Max(),
		Positive:   last.Positive.Load(),
		Negative:   last.Negative.Load(),
	}
	metrics.ObserveTrial(t.strategy, label, res.Average.Seconds(), res.Positive, res.Negative)
	log.WithFields(logrus.Fields{
		"avg":      res.Average,
		"positive": res.Positive,
		"negative": res.Negative,
	}).Info("Trial finished")
	return res, nil
}

// iterate runs one sweep on fresh accumulators and checks the partition.
func (r *Runner) iterate(t trial, size int) (time.Duration, *State, error) {
	state := NewState()
	start := r.now()
	t.op(state, t.prefix, r.cfg.Sink)
	elapsed := r.now().Sub(start)
	if err := state.Verify(size); err != nil {
		return elapsed, state, err
	}
	return elapsed, state, nil
}
