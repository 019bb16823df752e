package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/germanoeich/nirn-numbench/libnew/config"
	"github.com/germanoeich/nirn-numbench/libnew/harness"
	"github.com/germanoeich/nirn-numbench/libnew/logging"
	"github.com/germanoeich/nirn-numbench/libnew/metrics"
	"github.com/germanoeich/nirn-numbench/libnew/util"
	_ "github.com/joho/godotenv/autoload"
	"github.com/sirupsen/logrus"
)

var logger = logging.GetLogger("main")

func main() {
	cfg := config.Parse()

	lvl, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		panic("Failed to parse log level")
	}
	logging.SetLevel(lvl)
	logging.AddHook(&logging.GlobalHook{OnError: metrics.ErrorCounter.Inc})

	if cfg.EnablePProf {
		go util.StartProfileServer(logging.GetLogger("profile"))
	}

	if cfg.EnableMetrics {
		go metrics.StartMetrics(cfg.BindIP + ":" + cfg.MetricsPort)
	}

	runner, err := harness.NewRunner(cfg.RunnerConfig())
	if err != nil {
		logger.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.WithFields(logrus.Fields{
		"strategies": cfg.Strategies,
		"prefixes":   len(cfg.Prefixes),
		"sweepSize":  cfg.SweepSize,
		"warmup":     cfg.WarmupIterations,
		"iterations": cfg.MeasurementIterations,
	}).Info("Starting benchmark")

	results, runErr := runner.Run(ctx)
	for _, res := range results {
		logger.WithFields(logrus.Fields{
			"strategy":   res.Strategy,
			"prefix":     harness.PrefixLabel(res.Prefix),
			"iterations": res.Iterations,
			"min":        res.Min,
			"max":        res.Max,
			"positive":   res.Positive,
			"negative":   res.Negative,
		}).Infof("avg %s/op", res.Average)
	}

	if cfg.PushgatewayURL != "" {
		if err := metrics.PushResults(cfg.PushgatewayURL); err != nil {
			logger.Error(err)
		}
	}

	if runErr != nil {
		stop()
		logger.Error(runErr)
		os.Exit(1)
	}
}
