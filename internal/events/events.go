package events

import "time"

type TripRecordedEvent struct {
	TripID           string    `json:"trip_id"`
	DistanceKm       float64   `json:"distance_km"`
	VehicleType      string    `json:"vehicle_type"`
	CarbonEmittedKg  float64   `json:"carbon_emitted_kg"`
	TotalFootprintKg float64   `json:"total_footprint_kg"`
	RecordedAt       time.Time `json:"recorded_at"`
}

type BadgeUnlockedEvent struct {
	Badge      string    `json:"badge"`
	TotalTrips int       `json:"total_trips"`
	UnlockedAt time.Time `json:"unlocked_at"`
}
