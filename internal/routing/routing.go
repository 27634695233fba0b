// Package routing defines the seams to external mapping and traffic
// backends. The default implementation is synthetic; a live provider slots
// in behind the same interfaces, and its failures must surface as
// ErrUpstreamUnavailable rather than fall back to synthetic data.
package routing

import (
	"context"
	"errors"
	"time"
)

// ErrUpstreamUnavailable is returned when a live provider cannot be reached.
var ErrUpstreamUnavailable = errors.New("upstream provider unavailable")

// Route is a single computed route between two points.
type Route struct {
	DistanceM     int          `json:"distance"`
	DurationS     int          `json:"duration"`
	Polyline      string       `json:"polyline"`
	FuelCost      float64      `json:"fuelCost"`
	CO2Kg         float64      `json:"co2Emissions"`
	TrafficStatus TrafficLevel `json:"trafficStatus"`
}

// RouteProvider computes a route between an origin and a destination.
// mode selects the optimization ("eco" or "fastest").
type RouteProvider interface {
	GetRoute(ctx context.Context, origin, destination, mode string) (*Route, error)
}

// TrafficLevel is the coarse congestion classification.
type TrafficLevel string

const (
	TrafficLight    TrafficLevel = "light"
	TrafficModerate TrafficLevel = "moderate"
	TrafficHeavy    TrafficLevel = "heavy"
)

// Incident is one reported traffic disruption.
type Incident struct {
	Location string `json:"location"`
	Type     string `json:"type"`
	Severity string `json:"severity"`
}

// Alternative describes a detour relative to the primary route.
type Alternative struct {
	Name            string `json:"name"`
	AddedTimeMin    int    `json:"addedTime"`
	FuelSavingPct   int    `json:"fuelSaving"`
	CO2ReductionPct int    `json:"co2Reduction"`
}

// TrafficStatus is a point-in-time traffic picture.
type TrafficStatus struct {
	Level        TrafficLevel  `json:"currentStatus"`
	Incidents    []Incident    `json:"incidents"`
	Alternatives []Alternative `json:"alternativeRoutes"`
	UpdatedAt    time.Time     `json:"lastUpdated"`
}

// TrafficProvider reports current traffic conditions.
type TrafficProvider interface {
	Status(ctx context.Context) (*TrafficStatus, error)
}

// SectionSummary is the length/duration block of one route section, in the
// HERE v8 wire shape.
type SectionSummary struct {
	LengthM   int `json:"length"`
	DurationS int `json:"duration"`
}

// RouteSection is one leg of an alternative route.
type RouteSection struct {
	Summary SectionSummary `json:"summary"`
}

// AlternativeRoute is a single route candidate from the alternatives
// provider.
type AlternativeRoute struct {
	Sections []RouteSection `json:"sections"`
}

// AlternativesResult is the alternatives provider's response: candidate
// routes plus an eco score and the count of further alternatives available.
type AlternativesResult struct {
	Routes            []AlternativeRoute `json:"routes"`
	EcoScore          int                `json:"ecoScore"`
	AlternativeRoutes int                `json:"alternativeRoutes"`
}

// AlternativesProvider computes alternative routes through a second mapping
// backend. Like RouteProvider, live implementations surface failures as
// ErrUpstreamUnavailable.
type AlternativesProvider interface {
	GetAlternatives(ctx context.Context, origin, destination string) (*AlternativesResult, error)
}
