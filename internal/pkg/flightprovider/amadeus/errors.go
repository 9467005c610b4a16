package amadeus

import (
	"net/http"

	"github.com/cnwoye/itinerary-planner-service/internal/pkg/exception"
)

var ErrRateLimitExceeded = exception.ApplicationError{
	StatusCode: http.StatusTooManyRequests,
	Message:    "flight provider rate limit exceeded",
}
