package metrics

import (
	"net/http"

	"github.com/germanoeich/nirn-numbench/libnew/logging"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/prometheus/client_golang/prometheus/push"
)

var logger = logging.GetLogger("metrics")

const pushJobName = "numbench"

var (
	ErrorCounter = promauto.NewCounter(prometheus.CounterOpts{
		Name: "numbench_error",
		Help: "The total number of errors logged while running benchmarks",
	})

	SweepHistogram = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "numbench_sweep_seconds",
		Help:    "Duration of a single measured sweep",
		Buckets: []float64{.05, .1, .25, .5, 1, 2.5, 5, 10},
	}, []string{"strategy", "prefix"})

	SweepAverage = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "numbench_sweep_average_seconds",
		Help: "Average sweep duration over the measurement iterations of a trial",
	}, []string{"strategy", "prefix"})

	AccumulatorSum = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "numbench_accumulator_sum",
		Help: "Final accumulator totals of the last measured sweep",
	}, []string{"strategy", "prefix", "bucket"})
)

func StartMetrics(addr string) {
	http.Handle("/metrics", promhttp.Handler())
	logger.Info("Starting metrics server on " + addr)
	err := http.ListenAndServe(addr, nil)
	if err != nil {
		logger.Error(err)
		return
	}
}

func ObserveSweep(strategy string, prefix string, elapsed float64) {
	SweepHistogram.With(map[string]string{"strategy": strategy, "prefix": prefix}).Observe(elapsed)
}

func ObserveTrial(strategy string, prefix string, average float64, positive int64, negative int64) {
	SweepAverage.With(map[string]string{"strategy": strategy, "prefix": prefix}).Set(average)
	AccumulatorSum.With(map[string]string{"strategy": strategy, "prefix": prefix, "bucket": "positive"}).Set(float64(positive))
	AccumulatorSum.With(map[string]string{"strategy": strategy, "prefix": prefix, "bucket": "negative"}).Set(float64(negative))
}

// PushResults sends the trial collectors to a pushgateway, replacing any previous push for the job.
func PushResults(url string) error {
	return push.New(url, pushJobName).
		Collector(SweepHistogram).
		Collector(SweepAverage).
		Collector(AccumulatorSum).
		Collector(ErrorCounter).
		Push()
}
