package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ecodrive_requests_total",
		Help: "HTTP requests served, by method and path.",
	}, []string{"method", "path"})

	tripsRecordedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ecodrive_trips_recorded_total",
		Help: "Trips recorded against the profile.",
	})

	badgesUnlockedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ecodrive_badges_unlocked_total",
		Help: "Badges unlocked across all trips.",
	})
)
