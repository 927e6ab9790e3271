// Package metrics exports lifecycle counters for prometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/vovakirdan/pocket-arcade/internal/engine"
)

// Metrics counts committed lifecycle transitions per game. It is an
// engine.Observer and can be shared by every session of a process.
type Metrics struct {
	Started   *prometheus.CounterVec
	Finished  *prometheus.CounterVec
	Suspended *prometheus.CounterVec
	NewBest   *prometheus.CounterVec
	BestScore *prometheus.GaugeVec
	Sessions  prometheus.Gauge
}

// New creates the collectors and registers them with reg. A nil reg uses
// the default registry.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	m := &Metrics{
		Started: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "arcade_games_started_total",
				Help: "Games entering Playing, including restarts",
			},
			[]string{"game"},
		),
		Finished: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "arcade_games_finished_total",
				Help: "Games reaching GameOver",
			},
			[]string{"game"},
		),
		Suspended: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "arcade_games_suspended_total",
				Help: "Games paused because their host went inactive",
			},
			[]string{"game"},
		),
		NewBest: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "arcade_best_scores_total",
				Help: "Finished games that set a new best score",
			},
			[]string{"game"},
		),
		BestScore: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "arcade_best_score",
				Help: "Best score seen at the last GameOver",
			},
			[]string{"game"},
		),
		Sessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "arcade_ssh_sessions",
			Help: "Connected SSH sessions",
		}),
	}
	reg.MustRegister(m.Started, m.Finished, m.Suspended, m.NewBest, m.BestScore, m.Sessions)
	return m
}

// Observe updates the counters for e.
func (m *Metrics) Observe(e engine.Event) {
	switch e.To {
	case engine.Playing:
		m.Started.WithLabelValues(e.Game).Inc()
	case engine.Paused:
		m.Suspended.WithLabelValues(e.Game).Inc()
	case engine.GameOver:
		m.Finished.WithLabelValues(e.Game).Inc()
		m.BestScore.WithLabelValues(e.Game).Set(float64(e.Best))
		if e.NewBest {
			m.NewBest.WithLabelValues(e.Game).Inc()
		}
	}
}

var _ engine.Observer = (*Metrics)(nil)
