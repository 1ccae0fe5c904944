package metrics

import (
	"sync"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

const namespace = "orgsite"

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	once          sync.Once
	stageDuration *prom.HistogramVec
	buildDuration prom.Histogram
	stageResults  *prom.CounterVec
	buildOutcome  *prom.CounterVec
	parseResults  *prom.CounterVec
	parseDuration prom.Histogram
	parseWorkers  prom.Gauge
	pagesWritten  *prom.CounterVec
}

// NewPrometheusRecorder constructs and registers Prometheus metrics (idempotent).
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{}
	pr.once.Do(func() {
		pr.stageDuration = prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "stage_duration_seconds",
			Help:      "Duration of individual build stages",
			Buckets:   prom.DefBuckets,
		}, []string{"stage"})
		pr.buildDuration = prom.NewHistogram(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "build_duration_seconds",
			Help:      "Total build duration",
			Buckets:   prom.DefBuckets,
		})
		pr.stageResults = prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "stage_results_total",
			Help:      "Stage result counts by outcome",
		}, []string{"stage", "result"})
		pr.buildOutcome = prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "build_outcomes_total",
			Help:      "Build outcomes by final status",
		}, []string{"outcome"})
		pr.parseResults = prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "parse_results_total",
			Help:      "Parsed documents by result (ok or failure kind)",
		}, []string{"result"})
		pr.parseDuration = prom.NewHistogram(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "parse_duration_seconds",
			Help:      "Duration of parsing a single document",
			Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		})
		pr.parseWorkers = prom.NewGauge(prom.GaugeOpts{
			Namespace: namespace,
			Name:      "parse_workers",
			Help:      "Parse pool size used by the last build",
		})
		pr.pagesWritten = prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "pages_written_total",
			Help:      "Files written by the materializer per logical page",
		}, []string{"page"})
		reg.MustRegister(pr.stageDuration, pr.buildDuration, pr.stageResults, pr.buildOutcome,
			pr.parseResults, pr.parseDuration, pr.parseWorkers, pr.pagesWritten)
	})
	return pr
}

func (p *PrometheusRecorder) ObserveStageDuration(stage string, d time.Duration) {
	if p == nil || p.stageDuration == nil {
		return
	}
	p.stageDuration.WithLabelValues(stage).Observe(d.Seconds())
}

func (p *PrometheusRecorder) ObserveBuildDuration(d time.Duration) {
	if p == nil || p.buildDuration == nil {
		return
	}
	p.buildDuration.Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncStageResult(stage string, result ResultLabel) {
	if p == nil || p.stageResults == nil {
		return
	}
	p.stageResults.WithLabelValues(stage, string(result)).Inc()
}

func (p *PrometheusRecorder) IncBuildOutcome(outcome BuildOutcomeLabel) {
	if p == nil || p.buildOutcome == nil {
		return
	}
	p.buildOutcome.WithLabelValues(string(outcome)).Inc()
}

func (p *PrometheusRecorder) IncParseResult(result string) {
	if p == nil || p.parseResults == nil {
		return
	}
	p.parseResults.WithLabelValues(result).Inc()
}

func (p *PrometheusRecorder) ObserveParseDuration(d time.Duration) {
	if p == nil || p.parseDuration == nil {
		return
	}
	p.parseDuration.Observe(d.Seconds())
}

func (p *PrometheusRecorder) SetParseWorkers(n int) {
	if p == nil || p.parseWorkers == nil {
		return
	}
	p.parseWorkers.Set(float64(n))
}

func (p *PrometheusRecorder) IncPageWritten(page string) {
	if p == nil || p.pagesWritten == nil {
		return
	}
	p.pagesWritten.WithLabelValues(page).Inc()
}
