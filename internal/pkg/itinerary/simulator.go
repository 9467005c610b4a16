package itinerary

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// Simulator chains single-leg flight resolutions into a full itinerary.
// Resolver, Buffers and ExtraTravelTime are read-only shared state; one
// Simulator serves any number of concurrent Simulate calls.
type Simulator struct {
	Resolver        FlightResolver
	Buffers         ConnectionBuffers
	ExtraTravelTime time.Duration
}

func NewSimulator(resolver FlightResolver, buffers ConnectionBuffers,
	extraTravelTime time.Duration) *Simulator {
	return &Simulator{
		Resolver:        resolver,
		Buffers:         buffers,
		ExtraTravelTime: extraTravelTime,
	}
}

// Simulate resolves the sequence leg by leg starting from startOrigin at
// startTime. Each leg must depart no earlier than the previous arrival plus
// the connection buffer of the airport it departs from. The first resolver
// miss or failure aborts the whole sequence; remaining legs are never
// resolved. Legs are strictly sequential because each floor depends on the
// previous arrival.
func (s *Simulator) Simulate(ctx context.Context, startOrigin string,
	sequence []string, startTime time.Time) (Itinerary, error) {
	var (
		legs                 []ItineraryLeg
		totalFlightDuration  time.Duration
		totalLayoverDuration time.Duration
		totalCost            float64
	)

	origin := startOrigin
	previousArrivalTime := startTime
	previousDestination := startOrigin

	for _, destination := range sequence {
		floor := previousArrivalTime.Add(s.Buffers.Buffer(origin))

		leg, err := s.Resolver.EarliestFlight(ctx, origin, destination, floor)
		if err != nil {
			if !errors.Is(err, ErrNoFlightFound) {
				slog.WarnContext(ctx, "flight provider failed",
					slog.String("origin", origin),
					slog.String("destination", destination),
					slog.Any("error", err))
			}

			return Itinerary{}, fmt.Errorf("leg %s-%s infeasible: %w", origin, destination, err)
		}

		layover := leg.DepartureTime.Sub(previousArrivalTime)

		legs = append(legs, ItineraryLeg{
			Leg:         leg,
			Layover:     layover,
			LayoverIATA: previousDestination,
		})

		totalFlightDuration += leg.Duration
		totalLayoverDuration += layover
		totalCost += leg.Cost

		previousArrivalTime = leg.ArrivalTime
		origin = destination
		previousDestination = destination
	}

	return Itinerary{
		Legs:                 legs,
		TotalFlightDuration:  totalFlightDuration,
		TotalLayoverDuration: totalLayoverDuration,
		TotalTravelTime:      totalFlightDuration + totalLayoverDuration + s.ExtraTravelTime,
		TotalCost:            totalCost,
	}, nil
}
