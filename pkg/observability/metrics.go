package observability

import (
	"errors"
	"fmt"
	"io"

	"github.com/aretw0/hanoi/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"
)

// Move results used as label values.
const (
	ResultApplied = "applied"
	ResultIllegal = "illegal"
	ResultEmpty   = "empty_source"
)

// Metrics groups the game counters.
type Metrics struct {
	gamesStarted   *prometheus.CounterVec
	gamesWon       *prometheus.CounterVec
	gamesAbandoned prometheus.Counter
	moves          *prometheus.CounterVec
	movesPerWin    prometheus.Histogram
}

// NewMetrics creates and registers the game metrics on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		gamesStarted: f.NewCounterVec(prometheus.CounterOpts{
			Name: "hanoi_games_started_total",
			Help: "Games initialized, by disk count.",
		}, []string{"disks"}),
		gamesWon: f.NewCounterVec(prometheus.CounterOpts{
			Name: "hanoi_games_won_total",
			Help: "Games won, by disk count.",
		}, []string{"disks"}),
		gamesAbandoned: f.NewCounter(prometheus.CounterOpts{
			Name: "hanoi_games_abandoned_total",
			Help: "Games abandoned before completion.",
		}),
		moves: f.NewCounterVec(prometheus.CounterOpts{
			Name: "hanoi_moves_total",
			Help: "Moves attempted, by result.",
		}, []string{"result"}),
		movesPerWin: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "hanoi_moves_per_win",
			Help:    "Moves used to win a game.",
			Buckets: prometheus.ExponentialBuckets(7, 2, 8),
		}),
	}
}

// Hooks returns lifecycle hooks that record into m.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnInitialize: func(e *domain.GameEvent) {
			m.gamesStarted.WithLabelValues(fmt.Sprint(e.Disks)).Inc()
		},
		OnMove: func(e *domain.MoveEvent) {
			m.moves.WithLabelValues(ResultApplied).Inc()
		},
		OnReject: func(e *domain.MoveEvent) {
			m.moves.WithLabelValues(rejectResult(e.Err)).Inc()
		},
		OnWin: func(e *domain.GameEvent) {
			m.gamesWon.WithLabelValues(fmt.Sprint(e.Disks)).Inc()
			m.movesPerWin.Observe(float64(e.Moves))
		},
		OnAbandon: func(e *domain.GameEvent) {
			m.gamesAbandoned.Inc()
		},
	}
}

func rejectResult(err error) string {
	if errors.Is(err, domain.ErrEmptySource) {
		return ResultEmpty
	}
	return ResultIllegal
}

// WriteText writes every metric family gathered from g in the Prometheus text format.
func WriteText(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
