package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements repository.Metrics using Prometheus.
type Recorder struct {
	runs          *prometheus.CounterVec
	stageLatency  *prometheus.HistogramVec
	hotDeviation  *prometheus.GaugeVec
	corroboration *prometheus.CounterVec
	publishFails  prometheus.Counter
}

// New registers the analysis collectors on reg.
func New(reg prometheus.Registerer) *Recorder {
	f := promauto.With(reg)
	return &Recorder{
		runs: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fxpulse_analysis_runs_total",
				Help: "Analysis runs by outcome",
			},
			[]string{"outcome"},
		),
		stageLatency: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "fxpulse_stage_duration_seconds",
				Help:    "Duration of analysis stages in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"stage"},
		),
		hotDeviation: f.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "fxpulse_hot_pair_deviation_pips",
				Help: "Pip deviation of the latest hot pair",
			},
			[]string{"symbol"},
		),
		corroboration: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fxpulse_corroboration_attempts_total",
				Help: "Corroboration requests by result",
			},
			[]string{"result"},
		),
		publishFails: f.NewCounter(
			prometheus.CounterOpts{
				Name: "fxpulse_publish_failures_total",
				Help: "Analysis results that could not be published",
			},
		),
	}
}

func (r *Recorder) RecordRun(outcome string) {
	r.runs.WithLabelValues(outcome).Inc()
}

func (r *Recorder) RecordStage(stage string, d time.Duration) {
	r.stageLatency.WithLabelValues(stage).Observe(d.Seconds())
}

// RecordHotPair keeps a single series: the previous symbol is dropped.
func (r *Recorder) RecordHotPair(symbol string, pips float64) {
	r.hotDeviation.Reset()
	r.hotDeviation.WithLabelValues(symbol).Set(pips)
}

func (r *Recorder) RecordCorroboration(result string) {
	r.corroboration.WithLabelValues(result).Inc()
}

func (r *Recorder) RecordPublishFailure() {
	r.publishFails.Inc()
}
