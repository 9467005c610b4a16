//go:build unit

package mailer

import (
	"testing"
	"time"

	"github.com/cnwoye/itinerary-planner-service/internal/pkg/itinerary"
	"github.com/stretchr/testify/assert"
)

func TestFormatReport(t *testing.T) {
	best := itinerary.Itinerary{
		Legs: []itinerary.ItineraryLeg{
			{
				Leg: itinerary.Leg{
					Airline:       "LA",
					FlightNumber:  "LA896",
					Origin:        "PUQ",
					Destination:   "SCL",
					DepartureTime: time.Date(2025, 3, 15, 20, 20, 0, 0, time.UTC),
					ArrivalTime:   time.Date(2025, 3, 15, 23, 45, 0, 0, time.UTC),
					Duration:      3*time.Hour + 25*time.Minute,
					Cost:          79.1,
				},
				Layover:     2*time.Hour + 50*time.Minute,
				LayoverIATA: "PUQ",
			},
		},
		TotalFlightDuration:  3*time.Hour + 25*time.Minute,
		TotalLayoverDuration: 2*time.Hour + 50*time.Minute,
		TotalTravelTime:      8*time.Hour + 45*time.Minute,
		TotalCost:            79.1,
	}

	got := FormatReport([]string{"SCL", "MIA"}, best)

	assert.Contains(t, got, "SCL → MIA")
	assert.Contains(t, got, "LA LA896")
	assert.Contains(t, got, "(PUQ)")
	assert.Contains(t, got, "(SCL)")
	assert.Contains(t, got, "3h 25m")
	assert.Contains(t, got, "$79.10")
	assert.Contains(t, got, "2h 50m at PUQ")
	assert.Contains(t, got, "<strong>Total Travel Time:</strong> 8h 45m")
	assert.Contains(t, got, "<strong>Total Cost:</strong> $79.10")
}
