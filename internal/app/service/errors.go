package service

import (
	"net/http"

	"github.com/cnwoye/itinerary-planner-service/internal/pkg/exception"
)

var ErrNoItineraryFound = exception.ApplicationError{
	Message:    "No valid itineraries were found across all sequences.",
	StatusCode: http.StatusBadRequest,
}

var ErrUnknownFlightType = exception.ApplicationError{
	Message:    "unknown flight type",
	StatusCode: http.StatusBadRequest,
}
