package amadeus

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/cnwoye/itinerary-planner-service/internal/pkg/elapsed"
	"github.com/cnwoye/itinerary-planner-service/internal/pkg/itinerary"
)

const (
	TypeDirect     = "direct"
	TypeConnecting = "connecting"
)

// DirectResolver resolves a leg to the earliest non-stop flight departing at
// or after the floor time. Offers with more than one segment, or any stops
// within the segment, never qualify.
type DirectResolver struct {
	client *Client
}

func NewDirectResolver(client *Client) *DirectResolver {
	return &DirectResolver{client: client}
}

func (r *DirectResolver) EarliestFlight(ctx context.Context, origin, destination string,
	notBefore time.Time) (itinerary.Leg, error) {
	offers, err := r.client.SearchOffers(ctx, origin, destination, notBefore)
	if err != nil {
		return itinerary.Leg{}, fmt.Errorf("search offers: %w", err)
	}

	var (
		best          Offer
		bestDeparture time.Time
		found         bool
	)

	for _, offer := range offers {
		if len(offer.Itineraries) == 0 {
			continue
		}

		segments := offer.Itineraries[0].Segments
		if len(segments) != 1 || segments[0].NumberOfStops > 0 {
			continue
		}

		departureTime, err := parseOfferTime(segments[0].Departure.At)
		if err != nil {
			continue
		}

		if departureTime.Before(notBefore) {
			continue
		}

		// stable: on equal departure times the first-encountered offer wins
		if !found || departureTime.Before(bestDeparture) {
			best = offer
			bestDeparture = departureTime
			found = true
		}
	}

	if !found {
		return itinerary.Leg{}, itinerary.ErrNoFlightFound
	}

	return offerToLeg(best, origin, destination)
}

// offerToLeg maps a qualifying single-segment offer onto a Leg.
func offerToLeg(offer Offer, origin, destination string) (itinerary.Leg, error) {
	segment := offer.Itineraries[0].Segments[0]

	departureTime, err := parseOfferTime(segment.Departure.At)
	if err != nil {
		return itinerary.Leg{}, err
	}

	arrivalTime, err := parseOfferTime(segment.Arrival.At)
	if err != nil {
		return itinerary.Leg{}, err
	}

	duration, err := elapsed.Parse(segment.Duration)
	if err != nil {
		return itinerary.Leg{}, fmt.Errorf("offer %s: %w", offer.ID, err)
	}

	cost, err := strconv.ParseFloat(offer.Price.Total, 64)
	if err != nil {
		return itinerary.Leg{}, fmt.Errorf("offer %s: malformed price %q", offer.ID, offer.Price.Total)
	}

	airline := segment.CarrierCode
	if len(offer.ValidatingAirlineCodes) > 0 {
		airline = offer.ValidatingAirlineCodes[0]
	}

	return itinerary.Leg{
		Airline:       airline,
		FlightNumber:  segment.CarrierCode + segment.Number,
		Origin:        origin,
		Destination:   destination,
		DepartureTime: departureTime,
		ArrivalTime:   arrivalTime,
		Duration:      duration,
		Cost:          cost,
	}, nil
}

func parseOfferTime(at string) (time.Time, error) {
	t, err := time.Parse(searchTimeLayout, at)
	if err != nil {
		return time.Time{}, fmt.Errorf("malformed offer timestamp %q: %w", at, err)
	}

	return t, nil
}
