package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/cnwoye/itinerary-planner-service/internal/app/dto"
	"github.com/cnwoye/itinerary-planner-service/internal/pkg/flightprovider"
	"github.com/cnwoye/itinerary-planner-service/internal/pkg/itinerary"
	"github.com/cnwoye/itinerary-planner-service/internal/pkg/mailer"
)

const notificationSubject = "Flight Itinerary"

// simulationResult is one candidate sequence's outcome. Index is the
// sequence's enumeration position, used as the deterministic tie-break.
type simulationResult struct {
	Index     int
	Sequence  []string
	Itinerary itinerary.Itinerary
	Error     error
}

// PlannerService evaluates every candidate destination ordering and picks
// the itinerary with the lowest total travel time. Regions, Buffers and
// ExtraTravelTime are read-only after construction.
type PlannerService struct {
	ResolverFactory *flightprovider.ResolverFactory
	Mailer          mailer.Sender
	Regions         [][]string
	Buffers         itinerary.ConnectionBuffers
	ExtraTravelTime time.Duration
}

func NewPlannerService(resolverFactory *flightprovider.ResolverFactory,
	sender mailer.Sender, regions [][]string, buffers itinerary.ConnectionBuffers,
	extraTravelTime time.Duration) *PlannerService {
	return &PlannerService{
		ResolverFactory: resolverFactory,
		Mailer:          sender,
		Regions:         regions,
		Buffers:         buffers,
		ExtraTravelTime: extraTravelTime,
	}
}

// PlanItinerary enumerates every one-destination-per-region sequence,
// simulates each concurrently, and returns the feasible itinerary with the
// minimum total travel time. Infeasible sequences and provider failures are
// dropped, never fatal; only the total absence of feasible sequences is an
// error.
func (s *PlannerService) PlanItinerary(
	ctx context.Context,
	req dto.PlanItineraryRequest,
) (dto.PlanItineraryResponse, error) {
	startTime, err := req.DepartureInstant()
	if err != nil {
		return dto.PlanItineraryResponse{}, fmt.Errorf("invalid departure instant: %w", err)
	}

	resolver := s.ResolverFactory.GetResolver(req.FlightType)
	if resolver == nil {
		return dto.PlanItineraryResponse{}, ErrUnknownFlightType
	}

	simulator := itinerary.NewSimulator(resolver, s.Buffers, s.ExtraTravelTime)
	sequences := itinerary.Sequences(s.Regions)

	best, found := s.selectBest(ctx, simulator, req.StartOrigin, sequences, startTime)
	if !found {
		return dto.PlanItineraryResponse{}, ErrNoItineraryFound
	}

	slog.InfoContext(ctx, "best itinerary selected",
		slog.Any("sequence", best.Sequence),
		slog.Duration("total_travel_time", best.Itinerary.TotalTravelTime),
		slog.Float64("total_cost", best.Itinerary.TotalCost))

	if req.Email != "" {
		s.notify(ctx, req.Email, best)
	}

	return dto.PlanItineraryResponse{
		Status: dto.StatusSuccess,
		Data: dto.PlanItineraryData{
			BestSequence:  best.Sequence,
			BestItinerary: dto.NewItinerary(best.Itinerary),
		},
	}, nil
}

// selectBest fans one goroutine out per sequence and reduces the feasible
// results to the minimal total travel time. Each simulation is internally
// sequential; there is no shared mutable state across them, so the reduction
// happens lock-free at the collection point. Ties go to the lower
// enumeration index so repeated runs pick the same winner regardless of
// completion order.
func (s *PlannerService) selectBest(ctx context.Context, simulator *itinerary.Simulator,
	startOrigin string, sequences [][]string, startTime time.Time,
) (simulationResult, bool) {
	results := make(chan simulationResult, len(sequences))

	var wg sync.WaitGroup

	wg.Add(len(sequences))
	for i, sequence := range sequences {
		go func(index int, sequence []string) {
			defer wg.Done()

			itin, err := simulator.Simulate(ctx, startOrigin, sequence, startTime)
			results <- simulationResult{
				Index:     index,
				Sequence:  sequence,
				Itinerary: itin,
				Error:     err,
			}
		}(i, sequence)
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	var (
		best  simulationResult
		found bool
	)

	for result := range results {
		if result.Error != nil {
			slog.DebugContext(ctx, "sequence infeasible",
				slog.Any("sequence", result.Sequence),
				slog.Any("error", result.Error))

			continue
		}

		if !found ||
			result.Itinerary.TotalTravelTime < best.Itinerary.TotalTravelTime ||
			(result.Itinerary.TotalTravelTime == best.Itinerary.TotalTravelTime &&
				result.Index < best.Index) {
			best = result
			found = true
		}
	}

	return best, found
}

// notify sends the formatted report best-effort; a failed send never affects
// the response.
func (s *PlannerService) notify(ctx context.Context, recipient string, best simulationResult) {
	report := mailer.FormatReport(best.Sequence, best.Itinerary)

	if err := s.Mailer.Send(ctx, recipient, notificationSubject, report); err != nil {
		slog.WarnContext(ctx, "failed to send itinerary notification",
			slog.String("recipient", recipient),
			slog.Any("error", err))

		return
	}

	slog.InfoContext(ctx, "itinerary notification sent", slog.String("recipient", recipient))
}
