package board

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	positionShiftsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ideaboard_position_shifts_total",
			Help: "Number of ideas renumbered as a side effect of a board operation",
		},
		[]string{"operation"},
	)

	cacheLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ideaboard_list_cache_lookups_total",
			Help: "Idea list cache lookups by result; stale counts loads not cached because the board changed meanwhile",
		},
		[]string{"result"},
	)
)
