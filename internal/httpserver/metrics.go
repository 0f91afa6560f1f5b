// internal/httpserver/metrics.go
//
// Prometheus collectors for the scoring routes:
//   - bowling_score_requests_total{outcome}: one count per scored or rejected line.
//   - bowling_game_total_score: distribution of totals for lines that scored.

package httpserver

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/robalobadob/bowling/internal/scorecard"
)

const outcomeOK = "ok"

type metrics struct {
	requests *prometheus.CounterVec
	totals   prometheus.Histogram
}

func newMetrics(reg prometheus.Registerer) (*metrics, error) {
	m := &metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "bowling_score_requests_total",
			Help: "Scoring requests by outcome (ok, parse, range, scoring).",
		}, []string{"outcome"}),
		totals: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "bowling_game_total_score",
			Help:    "Final totals of successfully scored games.",
			Buckets: prometheus.LinearBuckets(0, 30, 11),
		}),
	}
	for _, c := range []prometheus.Collector{m.requests, m.totals} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *metrics) observeTotal(total int) {
	m.requests.WithLabelValues(outcomeOK).Inc()
	m.totals.Observe(float64(total))
}

func (m *metrics) observeError(err error) {
	kind := scorecard.Kind(err)
	if kind == "" {
		kind = "other"
	}
	m.requests.WithLabelValues(kind).Inc()
}
