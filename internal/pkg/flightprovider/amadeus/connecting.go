package amadeus

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/cnwoye/itinerary-planner-service/internal/pkg/elapsed"
	"github.com/cnwoye/itinerary-planner-service/internal/pkg/itinerary"
)

// ConnectingResolver admits offers with intermediate stops: the leg spans the
// first segment's departure to the last segment's arrival, and its duration
// is the offer's whole elapsed time including connections. The first
// departure still honors the floor time; selection is earliest departure,
// stable on ties.
type ConnectingResolver struct {
	client *Client
}

func NewConnectingResolver(client *Client) *ConnectingResolver {
	return &ConnectingResolver{client: client}
}

func (r *ConnectingResolver) EarliestFlight(ctx context.Context, origin, destination string,
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
		if len(offer.Itineraries) == 0 || len(offer.Itineraries[0].Segments) == 0 {
			continue
		}

		departureTime, err := parseOfferTime(offer.Itineraries[0].Segments[0].Departure.At)
		if err != nil {
			continue
		}

		if departureTime.Before(notBefore) {
			continue
		}

		if !found || departureTime.Before(bestDeparture) {
			best = offer
			bestDeparture = departureTime
			found = true
		}
	}

	if !found {
		return itinerary.Leg{}, itinerary.ErrNoFlightFound
	}

	return connectingOfferToLeg(best, origin, destination)
}

func connectingOfferToLeg(offer Offer, origin, destination string) (itinerary.Leg, error) {
	offerItinerary := offer.Itineraries[0]
	first := offerItinerary.Segments[0]
	last := offerItinerary.Segments[len(offerItinerary.Segments)-1]

	departureTime, err := parseOfferTime(first.Departure.At)
	if err != nil {
		return itinerary.Leg{}, err
	}

	arrivalTime, err := parseOfferTime(last.Arrival.At)
	if err != nil {
		return itinerary.Leg{}, err
	}

	duration, err := elapsed.Parse(offerItinerary.Duration)
	if err != nil {
		return itinerary.Leg{}, fmt.Errorf("offer %s: %w", offer.ID, err)
	}

	cost, err := strconv.ParseFloat(offer.Price.Total, 64)
	if err != nil {
		return itinerary.Leg{}, fmt.Errorf("offer %s: malformed price %q", offer.ID, offer.Price.Total)
	}

	airline := first.CarrierCode
	if len(offer.ValidatingAirlineCodes) > 0 {
		airline = offer.ValidatingAirlineCodes[0]
	}

	return itinerary.Leg{
		Airline:       airline,
		FlightNumber:  first.CarrierCode + first.Number,
		Origin:        origin,
		Destination:   destination,
		DepartureTime: departureTime,
		ArrivalTime:   arrivalTime,
		Duration:      duration,
		Cost:          cost,
	}, nil
}
