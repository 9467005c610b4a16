package dto

import (
	"fmt"
	"net/http"
	"time"

	"github.com/cnwoye/itinerary-planner-service/internal/pkg/elapsed"
	"github.com/cnwoye/itinerary-planner-service/internal/pkg/exception"
	"github.com/cnwoye/itinerary-planner-service/internal/pkg/itinerary"
)

// departureLayout is the combined departure_date + departure_time format,
// interpreted as UTC.
const departureLayout = "2006-01-02 15:04"

// PlanItineraryRequest is the query-parameter surface of the planner
// endpoint. flight_type defaults to "direct" when absent.
type PlanItineraryRequest struct {
	StartOrigin   string `json:"start_origin" validate:"required,len=3,alpha"`
	DepartureDate string `json:"departure_date" validate:"required,datetime=2006-01-02"`
	DepartureTime string `json:"departure_time" validate:"required,datetime=15:04"`
	FlightType    string `json:"flight_type" validate:"required,oneof=direct connecting"`
	Email         string `json:"email" validate:"omitempty,email"`
}

// BindQuery populates the request from query parameters and validates it.
func (p *PlanItineraryRequest) BindQuery(r *http.Request) error {
	query := r.URL.Query()

	p.StartOrigin = query.Get("start_origin")
	p.DepartureDate = query.Get("departure_date")
	p.DepartureTime = query.Get("departure_time")
	p.FlightType = query.Get("flight_type")
	p.Email = query.Get("email")

	if p.FlightType == "" {
		p.FlightType = "direct"
	}

	if err := ValidateSingleError(p); err != nil {
		return exception.ApplicationError{
			StatusCode: http.StatusBadRequest,
			Message:    err.Error(),
		}
	}

	return nil
}

// DepartureInstant combines departure_date and departure_time into one UTC
// instant.
func (p *PlanItineraryRequest) DepartureInstant() (time.Time, error) {
	instant, err := time.Parse(departureLayout, p.DepartureDate+" "+p.DepartureTime)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse departure instant: %w", err)
	}

	return instant, nil
}

type Duration struct {
	TotalMinutes int    `json:"total_minutes"`
	Formatted    string `json:"formatted"`
}

func NewDuration(d time.Duration) Duration {
	return Duration{
		TotalMinutes: int(d / time.Minute),
		Formatted:    elapsed.Format(d),
	}
}

type ItineraryLeg struct {
	Airline       string    `json:"airline"`
	FlightNumber  string    `json:"flight_number"`
	Origin        string    `json:"origin"`
	Destination   string    `json:"destination"`
	DepartureTime time.Time `json:"departure_time"`
	ArrivalTime   time.Time `json:"arrival_time"`
	Duration      Duration  `json:"duration"`
	Cost          float64   `json:"cost"`
	Layover       Duration  `json:"layover"`
	LayoverIATA   string    `json:"layover_iata"`
}

type Itinerary struct {
	Flights              []ItineraryLeg `json:"flights"`
	TotalFlightDuration  Duration       `json:"total_flight_duration"`
	TotalLayoverDuration Duration       `json:"total_layover_duration"`
	TotalTravelTime      Duration       `json:"total_travel_time"`
	TotalCost            float64        `json:"total_cost"`
}

// NewItinerary maps the domain itinerary onto the response shape.
func NewItinerary(best itinerary.Itinerary) Itinerary {
	flights := make([]ItineraryLeg, len(best.Legs))
	for i, leg := range best.Legs {
		flights[i] = ItineraryLeg{
			Airline:       leg.Airline,
			FlightNumber:  leg.FlightNumber,
			Origin:        leg.Origin,
			Destination:   leg.Destination,
			DepartureTime: leg.DepartureTime,
			ArrivalTime:   leg.ArrivalTime,
			Duration:      NewDuration(leg.Duration),
			Cost:          leg.Cost,
			Layover:       NewDuration(leg.Layover),
			LayoverIATA:   leg.LayoverIATA,
		}
	}

	return Itinerary{
		Flights:              flights,
		TotalFlightDuration:  NewDuration(best.TotalFlightDuration),
		TotalLayoverDuration: NewDuration(best.TotalLayoverDuration),
		TotalTravelTime:      NewDuration(best.TotalTravelTime),
		TotalCost:            best.TotalCost,
	}
}

type PlanItineraryData struct {
	BestSequence  []string  `json:"best_sequence"`
	BestItinerary Itinerary `json:"best_itinerary"`
}

// PlanItineraryResponse is the success envelope of the planner endpoint.
type PlanItineraryResponse struct {
	Status string            `json:"status"`
	Data   PlanItineraryData `json:"data"`
}
