package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the service counters, registered on one registry that the
// /metrics endpoint serves.
type Metrics struct {
	Registry *prometheus.Registry

	RatingsWritten prometheus.Counter
	RatingsRemoved prometheus.Counter
	GateRejections prometheus.Counter
	ContestEndings prometheus.Counter
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		Registry: reg,
		RatingsWritten: factory.NewCounter(prometheus.CounterOpts{
			Name: "gallery_ratings_written_total",
			Help: "Ratings upserted into the store.",
		}),
		RatingsRemoved: factory.NewCounter(prometheus.CounterOpts{
			Name: "gallery_ratings_removed_total",
			Help: "Ratings deleted by their owner.",
		}),
		GateRejections: factory.NewCounter(prometheus.CounterOpts{
			Name: "gallery_gate_rejections_total",
			Help: "Mutations rejected because the contest ended.",
		}),
		ContestEndings: factory.NewCounter(prometheus.CounterOpts{
			Name: "gallery_contest_endings_total",
			Help: "End-of-contest transitions observed.",
		}),
	}
}
