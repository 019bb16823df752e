package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveTrialSetsGauges(t *testing.T) {
	ObserveTrial("regex", "X", 0.5, 0, 49999995000000)

	assert.Equal(t, 0.5, testutil.ToFloat64(SweepAverage.WithLabelValues("regex", "X")))
	assert.Equal(t, float64(0), testutil.ToFloat64(AccumulatorSum.WithLabelValues("regex", "X", "positive")))
	assert.Equal(t, float64(49999995000000), testutil.ToFloat64(AccumulatorSum.WithLabelValues("regex", "X", "negative")))
}

func TestObserveSweepRecordsSample(t *testing.T) {
	ObserveSweep("digits", "none", 0.2)
	ObserveSweep("digits", "none", 0.3)

	assert.GreaterOrEqual(t, testutil.CollectAndCount(SweepHistogram), 1)
}

func TestPushResultsSendsToGateway(t *testing.T) {
	var gotPath string
	var gotBody string
	gw := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		w.WriteHeader(http.StatusOK)
	}))
	defer gw.Close()

	ObserveTrial("parse", "none", 0.1, 49999995000000, 0)
	err := PushResults(gw.URL)

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(gotPath, "/metrics/job/numbench"), gotPath)
	assert.NotEmpty(t, gotBody)
}

func TestPushResultsFailsOnGatewayError(t *testing.T) {
	gw := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer gw.Close()

	err := PushResults(gw.URL)
	assert.Error(t, err)
}
