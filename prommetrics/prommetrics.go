// Package prommetrics exports mining metrics to Prometheus.
//
//	reg := prometheus.NewRegistry()
//	mc, err := prommetrics.New(reg)
//	...
//	result, err := apriori.Mine(ctx, policy, seeds, basic, truth, 0.4,
//	    apriori.WithMetricsCollector(mc))
package prommetrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/hupe1980/pfe/apriori"
)

// Namespace prefixes every metric name.
const Namespace = "pfe"

// Collector implements apriori.MetricsCollector on Prometheus metrics.
type Collector struct {
	rounds        *prometheus.CounterVec
	roundDuration *prometheus.HistogramVec
	candidates    *prometheus.CounterVec
	frequent      *prometheus.CounterVec
	generated     *prometheus.CounterVec
	mines         *prometheus.CounterVec
	mineDuration  *prometheus.HistogramVec
	results       *prometheus.GaugeVec
}

var _ apriori.MetricsCollector = (*Collector)(nil)

// New creates a Collector and registers its metrics with reg.
// If reg is nil, prometheus.DefaultRegisterer is used.
func New(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	c := &Collector{
		rounds: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "rounds_total",
			Help:      "Total evaluation rounds completed",
		}, []string{"policy"}),
		roundDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "round_duration_seconds",
			Help:      "Duration of evaluation rounds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"policy"}),
		candidates: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "candidates_evaluated_total",
			Help:      "Total candidate conjunctions evaluated",
		}, []string{"policy"}),
		frequent: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "candidates_frequent_total",
			Help:      "Total candidate conjunctions accepted",
		}, []string{"policy"}),
		generated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "candidates_generated_total",
			Help:      "Total candidate conjunctions generated between rounds",
		}, []string{"policy"}),
		mines: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "mines_total",
			Help:      "Total mining runs",
		}, []string{"policy", "status"}),
		mineDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "mine_duration_seconds",
			Help:      "Duration of mining runs",
			Buckets:   prometheus.DefBuckets,
		}, []string{"policy"}),
		results: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "last_mine_results",
			Help:      "Number of conjunctions returned by the last successful run",
		}, []string{"policy"}),
	}

	for _, col := range []prometheus.Collector{
		c.rounds, c.roundDuration, c.candidates, c.frequent,
		c.generated, c.mines, c.mineDuration, c.results,
	} {
		if err := reg.Register(col); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// RecordRound implements apriori.MetricsCollector.
func (c *Collector) RecordRound(policy string, _, candidates, frequent int, duration time.Duration) {
	c.rounds.WithLabelValues(policy).Inc()
	c.roundDuration.WithLabelValues(policy).Observe(duration.Seconds())
	c.candidates.WithLabelValues(policy).Add(float64(candidates))
	c.frequent.WithLabelValues(policy).Add(float64(frequent))
}

// RecordGeneration implements apriori.MetricsCollector.
func (c *Collector) RecordGeneration(policy string, _, generated int) {
	c.generated.WithLabelValues(policy).Add(float64(generated))
}

// RecordMine implements apriori.MetricsCollector.
func (c *Collector) RecordMine(policy string, _, results int, duration time.Duration, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	c.mines.WithLabelValues(policy, status).Inc()
	c.mineDuration.WithLabelValues(policy).Observe(duration.Seconds())
	if err == nil {
		c.results.WithLabelValues(policy).Set(float64(results))
	}
}
