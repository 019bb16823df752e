package config

import (
	"strconv"
	"strings"

	"github.com/germanoeich/nirn-numbench/libnew/harness"
	"github.com/germanoeich/nirn-numbench/libnew/strategy"
	"github.com/germanoeich/nirn-numbench/libnew/util"
)

var cfgSingleton BenchConfig

type BenchConfig struct {
	LogLevel              string
	Strategies            []string
	Prefixes              []string
	SweepSize             int
	Workers               int
	WarmupIterations      int
	MeasurementIterations int
	SampleWindow          int
	EnableMetrics         bool
	MetricsPort           string
	BindIP                string
	PushgatewayURL        string
	EnablePProf           bool
}

func Get() BenchConfig {
	return cfgSingleton
}

func Parse() BenchConfig {
	logLevel := util.EnvGet("LOG_LEVEL", "info")
	strategies := util.EnvGet("BENCH_STRATEGIES", strings.Join(strategy.Names(), ","))
	// Lookup so BENCH_PREFIXES="" can select only the empty prefix
	prefixes := util.EnvLookup("BENCH_PREFIXES", "X,")
	sweepSize := util.EnvGetInt("BENCH_SWEEP_SIZE", harness.DefaultSweepSize)
	workers := util.EnvGetInt("BENCH_WORKERS", 0)
	warmup := util.EnvGetInt("BENCH_WARMUP_ITERATIONS", 1)
	measurement := util.EnvGetInt("BENCH_MEASUREMENT_ITERATIONS", 1)
	sampleWindow := util.EnvGetInt("BENCH_SAMPLE_WINDOW", 16)
	enableMetrics := util.EnvGetBool("ENABLE_METRICS", false)
	metricsPort := util.EnvGet("METRICS_PORT", "9000")
	bindIp := util.EnvGet("BIND_IP", "0.0.0.0")
	pushgatewayUrl := util.EnvGet("PUSHGATEWAY_URL", "")
	enablePprof := util.EnvGetBool("ENABLE_PPROF", false)

	if sweepSize < 1 {
		panic("BENCH_SWEEP_SIZE must be positive")
	}
	if int64(sweepSize) > harness.MaxSweepSize {
		panic("BENCH_SWEEP_SIZE must not exceed " + strconv.FormatInt(harness.MaxSweepSize, 10))
	}
	if measurement < 1 {
		panic("BENCH_MEASUREMENT_ITERATIONS must be positive")
	}
	if warmup < 0 {
		panic("BENCH_WARMUP_ITERATIONS must not be negative")
	}

	cfgSingleton = BenchConfig{
		LogLevel:              logLevel,
		Strategies:            parseStrategies(strategies),
		Prefixes:              parsePrefixes(prefixes),
		SweepSize:             sweepSize,
		Workers:               workers,
		WarmupIterations:      warmup,
		MeasurementIterations: measurement,
		SampleWindow:          sampleWindow,
		EnableMetrics:         enableMetrics,
		MetricsPort:           metricsPort,
		BindIP:                bindIp,
		PushgatewayURL:        pushgatewayUrl,
		EnablePProf:           enablePprof,
	}

	return cfgSingleton
}

func parseStrategies(list string) []string {
	// Format: "parse,regex,digits"
	var ret []string
	for _, name := range strings.Split(list, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, err := strategy.Lookup(name); err != nil {
			panic("Invalid BENCH_STRATEGIES: " + err.Error())
		}
		ret = append(ret, name)
	}
	if len(ret) == 0 {
		panic("BENCH_STRATEGIES selects no strategy")
	}
	return ret
}

func parsePrefixes(list string) []string {
	// Format: "X," where an empty element is the empty prefix. Prefixes are not trimmed.
	ret := strings.Split(list, ",")
	seen := make(map[string]bool, len(ret))
	out := ret[:0]
	for _, prefix := range ret {
		if err := harness.ValidatePrefix(prefix); err != nil {
			panic("Invalid BENCH_PREFIXES: " + err.Error())
		}
		if seen[prefix] {
			continue
		}
		seen[prefix] = true
		out = append(out, prefix)
	}
	return out
}

// RunnerConfig maps the env config onto the harness.
func (c BenchConfig) RunnerConfig() harness.RunnerConfig {
	return harness.RunnerConfig{
		Strategies:            c.Strategies,
		Prefixes:              c.Prefixes,
		WarmupIterations:      c.WarmupIterations,
		MeasurementIterations: c.MeasurementIterations,
		SampleWindow:          c.SampleWindow,
		Sweep: harness.Sweep{
			Size:    c.SweepSize,
			Workers: c.Workers,
		},
	}
}
