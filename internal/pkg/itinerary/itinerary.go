package itinerary

import (
	"context"
	"errors"
	"time"
)

// Leg is one flight between two airports, built from a provider offer and
// immutable afterwards. Times are UTC.
type Leg struct {
	Airline       string
	FlightNumber  string
	Origin        string
	Destination   string
	DepartureTime time.Time
	ArrivalTime   time.Time
	Duration      time.Duration
	Cost          float64
}

// ItineraryLeg is a Leg plus the layover that preceded it. LayoverIATA is the
// airport the layover happened at: the previous destination, or the start
// origin for the first leg.
type ItineraryLeg struct {
	Leg

	Layover     time.Duration
	LayoverIATA string
}

// Itinerary is a fully resolved chain of legs for one candidate sequence.
// TotalTravelTime = TotalFlightDuration + TotalLayoverDuration + the extra
// travel-time padding configured on the simulator.
type Itinerary struct {
	Legs                 []ItineraryLeg
	TotalFlightDuration  time.Duration
	TotalLayoverDuration time.Duration
	TotalTravelTime      time.Duration
	TotalCost            float64
}

// ErrNoFlightFound is returned by a FlightResolver when no qualifying flight
// exists for a leg. Any other resolver error indicates a provider failure;
// both make the containing sequence infeasible.
var ErrNoFlightFound = errors.New("no qualifying flight found")

// FlightResolver finds the earliest qualifying flight from origin to
// destination departing at or after notBefore.
type FlightResolver interface {
	EarliestFlight(ctx context.Context, origin, destination string, notBefore time.Time) (Leg, error)
}
