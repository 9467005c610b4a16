//go:build unit

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cnwoye/itinerary-planner-service/internal/app/dto"
	"github.com/cnwoye/itinerary-planner-service/internal/pkg/flightprovider"
	"github.com/cnwoye/itinerary-planner-service/internal/pkg/itinerary"
	"github.com/cnwoye/itinerary-planner-service/internal/pkg/mailer"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// start time matching departure_date=2025-03-15 departure_time=10:00
var startTime = time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC)

var testBuffers = itinerary.NewConnectionBuffers(map[string]time.Duration{
	"PUQ": 90 * time.Minute,
	"SCL": 30 * time.Minute,
	"MIA": 2 * time.Hour,
}, 2*time.Hour)

func testRequest() dto.PlanItineraryRequest {
	return dto.PlanItineraryRequest{
		StartOrigin:   "PUQ",
		DepartureDate: "2025-03-15",
		DepartureTime: "10:00",
		FlightType:    "direct",
	}
}

func newTestService(resolver itinerary.FlightResolver, sender mailer.Sender,
	regions [][]string) *PlannerService {
	factory := flightprovider.NewResolverFactory()
	factory.AddResolver("direct", resolver)

	return NewPlannerService(factory, sender, regions, testBuffers, 150*time.Minute)
}

func leg(origin, destination string, depart time.Time, flightDuration time.Duration, cost float64) itinerary.Leg {
	return itinerary.Leg{
		Airline:       "LA",
		FlightNumber:  "LA100",
		Origin:        origin,
		Destination:   destination,
		DepartureTime: depart,
		ArrivalTime:   depart.Add(flightDuration),
		Duration:      flightDuration,
		Cost:          cost,
	}
}

func TestPlannerService_PlanItinerary(t *testing.T) {
	t.Run("single_sequence_end_to_end", func(t *testing.T) {
		// PUQ buffer 1.5h: first leg departs at the floor
		legPUQSCL := leg("PUQ", "SCL", startTime.Add(90*time.Minute), 3*time.Hour, 79.1)
		// SCL buffer 0.5h after arrival
		legSCLMIA := leg("SCL", "MIA", legPUQSCL.ArrivalTime.Add(30*time.Minute), 8*time.Hour, 420.5)

		resolver := itinerary.NewMockFlightResolver(t)
		resolver.On("EarliestFlight", mock.Anything, "PUQ", "SCL",
			startTime.Add(90*time.Minute)).Return(legPUQSCL, nil)
		resolver.On("EarliestFlight", mock.Anything, "SCL", "MIA",
			legPUQSCL.ArrivalTime.Add(30*time.Minute)).Return(legSCLMIA, nil)

		s := newTestService(resolver, nil, [][]string{{"SCL"}, {"MIA"}})

		got, err := s.PlanItinerary(context.Background(), testRequest())
		assert.NoError(t, err)

		assert.Equal(t, dto.StatusSuccess, got.Status)
		assert.Equal(t, []string{"SCL", "MIA"}, got.Data.BestSequence)
		assert.Equal(t, 79.1+420.5, got.Data.BestItinerary.TotalCost)

		// layovers are exactly the buffer-driven gaps
		assert.Equal(t, 90, got.Data.BestItinerary.Flights[0].Layover.TotalMinutes)
		assert.Equal(t, 30, got.Data.BestItinerary.Flights[1].Layover.TotalMinutes)

		// flight + layover + extra buffer
		wantTravel := (11*time.Hour + 2*time.Hour + 150*time.Minute) / time.Minute
		assert.Equal(t, int(wantTravel), got.Data.BestItinerary.TotalTravelTime.TotalMinutes)
	})

	t.Run("picks_minimum_total_travel_time", func(t *testing.T) {
		fastLeg := leg("PUQ", "SCL", startTime.Add(2*time.Hour), 3*time.Hour, 100)
		slowLeg := leg("PUQ", "MIA", startTime.Add(2*time.Hour), 9*time.Hour, 50)

		resolver := itinerary.NewMockFlightResolver(t)
		resolver.On("EarliestFlight", mock.Anything, "PUQ", "SCL", mock.Anything).Return(fastLeg, nil)
		resolver.On("EarliestFlight", mock.Anything, "PUQ", "MIA", mock.Anything).Return(slowLeg, nil)

		s := newTestService(resolver, nil, [][]string{{"SCL", "MIA"}})

		got, err := s.PlanItinerary(context.Background(), testRequest())
		assert.NoError(t, err)
		assert.Equal(t, []string{"SCL"}, got.Data.BestSequence)
	})

	t.Run("infeasible_sequences_are_dropped_not_fatal", func(t *testing.T) {
		feasible := leg("PUQ", "MIA", startTime.Add(2*time.Hour), 9*time.Hour, 300)

		resolver := itinerary.NewMockFlightResolver(t)
		resolver.On("EarliestFlight", mock.Anything, "PUQ", "SCL",
			mock.Anything).Return(itinerary.Leg{}, itinerary.ErrNoFlightFound)
		resolver.On("EarliestFlight", mock.Anything, "PUQ", "MIA",
			mock.Anything).Return(feasible, nil)

		s := newTestService(resolver, nil, [][]string{{"SCL", "MIA"}})

		got, err := s.PlanItinerary(context.Background(), testRequest())
		assert.NoError(t, err)
		assert.Equal(t, []string{"MIA"}, got.Data.BestSequence)
	})

	t.Run("provider_failure_counts_as_infeasible", func(t *testing.T) {
		feasible := leg("PUQ", "MIA", startTime.Add(2*time.Hour), 9*time.Hour, 300)

		resolver := itinerary.NewMockFlightResolver(t)
		resolver.On("EarliestFlight", mock.Anything, "PUQ", "SCL",
			mock.Anything).Return(itinerary.Leg{}, errors.New("connection refused"))
		resolver.On("EarliestFlight", mock.Anything, "PUQ", "MIA",
			mock.Anything).Return(feasible, nil)

		s := newTestService(resolver, nil, [][]string{{"SCL", "MIA"}})

		got, err := s.PlanItinerary(context.Background(), testRequest())
		assert.NoError(t, err)
		assert.Equal(t, []string{"MIA"}, got.Data.BestSequence)
	})

	t.Run("ties_resolved_by_enumeration_order", func(t *testing.T) {
		// identical flights for both candidate destinations
		legSCL := leg("PUQ", "SCL", startTime.Add(2*time.Hour), 3*time.Hour, 100)
		legMIA := leg("PUQ", "MIA", startTime.Add(2*time.Hour), 3*time.Hour, 100)

		resolver := itinerary.NewMockFlightResolver(t)
		resolver.On("EarliestFlight", mock.Anything, "PUQ", "SCL", mock.Anything).Return(legSCL, nil)
		resolver.On("EarliestFlight", mock.Anything, "PUQ", "MIA", mock.Anything).Return(legMIA, nil)

		s := newTestService(resolver, nil, [][]string{{"SCL", "MIA"}})

		for range 10 {
			got, err := s.PlanItinerary(context.Background(), testRequest())
			assert.NoError(t, err)
			assert.Equal(t, []string{"SCL"}, got.Data.BestSequence)
		}
	})

	t.Run("idempotent_under_fixed_responses", func(t *testing.T) {
		fastLeg := leg("PUQ", "SCL", startTime.Add(2*time.Hour), 3*time.Hour, 100)
		slowLeg := leg("PUQ", "MIA", startTime.Add(2*time.Hour), 9*time.Hour, 50)

		resolver := itinerary.NewMockFlightResolver(t)
		resolver.On("EarliestFlight", mock.Anything, "PUQ", "SCL", mock.Anything).Return(fastLeg, nil)
		resolver.On("EarliestFlight", mock.Anything, "PUQ", "MIA", mock.Anything).Return(slowLeg, nil)

		s := newTestService(resolver, nil, [][]string{{"SCL", "MIA"}})

		first, err := s.PlanItinerary(context.Background(), testRequest())
		assert.NoError(t, err)
		second, err := s.PlanItinerary(context.Background(), testRequest())
		assert.NoError(t, err)

		diff := cmp.Diff(first, second)
		if diff != "" {
			t.Fatalf("PlanItinerary() not idempotent (-first +second):\n%s", diff)
		}
	})

	t.Run("no_feasible_sequence", func(t *testing.T) {
		resolver := itinerary.NewMockFlightResolver(t)
		resolver.On("EarliestFlight", mock.Anything, mock.Anything, mock.Anything,
			mock.Anything).Return(itinerary.Leg{}, itinerary.ErrNoFlightFound)

		s := newTestService(resolver, nil, [][]string{{"SCL"}, {"MIA"}})

		_, err := s.PlanItinerary(context.Background(), testRequest())
		assert.ErrorIs(t, err, ErrNoItineraryFound)
	})

	t.Run("unknown_flight_type", func(t *testing.T) {
		s := newTestService(itinerary.NewMockFlightResolver(t), nil, [][]string{{"SCL"}})

		req := testRequest()
		req.FlightType = "charter"

		_, err := s.PlanItinerary(context.Background(), req)
		assert.ErrorIs(t, err, ErrUnknownFlightType)
	})

	t.Run("email_triggers_notification", func(t *testing.T) {
		legPUQSCL := leg("PUQ", "SCL", startTime.Add(2*time.Hour), 3*time.Hour, 79.1)

		resolver := itinerary.NewMockFlightResolver(t)
		resolver.On("EarliestFlight", mock.Anything, "PUQ", "SCL", mock.Anything).Return(legPUQSCL, nil)

		sender := mailer.NewMockSender(t)
		sender.On("Send", mock.Anything, "traveler@example.com", "Flight Itinerary",
			mock.Anything).Return(nil)

		s := newTestService(resolver, sender, [][]string{{"SCL"}})

		req := testRequest()
		req.Email = "traveler@example.com"

		_, err := s.PlanItinerary(context.Background(), req)
		assert.NoError(t, err)
	})

	t.Run("notification_failure_does_not_fail_request", func(t *testing.T) {
		legPUQSCL := leg("PUQ", "SCL", startTime.Add(2*time.Hour), 3*time.Hour, 79.1)

		resolver := itinerary.NewMockFlightResolver(t)
		resolver.On("EarliestFlight", mock.Anything, "PUQ", "SCL", mock.Anything).Return(legPUQSCL, nil)

		sender := mailer.NewMockSender(t)
		sender.On("Send", mock.Anything, "traveler@example.com", "Flight Itinerary",
			mock.Anything).Return(errors.New("smtp unavailable"))

		s := newTestService(resolver, sender, [][]string{{"SCL"}})

		req := testRequest()
		req.Email = "traveler@example.com"

		got, err := s.PlanItinerary(context.Background(), req)
		assert.NoError(t, err)
		assert.Equal(t, dto.StatusSuccess, got.Status)
	})
}
