package mailer

import (
	"fmt"
	"strings"

	"github.com/cnwoye/itinerary-planner-service/internal/pkg/elapsed"
	"github.com/cnwoye/itinerary-planner-service/internal/pkg/itinerary"
)

const reportTimeLayout = "Mon, 02 Jan 2006 15:04 MST"

// FormatReport renders the winning itinerary as an HTML email body: the
// destination sequence, one block per leg, and a totals summary.
func FormatReport(sequence []string, best itinerary.Itinerary) string {
	var details strings.Builder
	for _, leg := range best.Legs {
		fmt.Fprintf(&details, `
        <li>
          <strong>%s %s</strong><br>
          <strong>Departure:</strong> %s (%s)<br>
          <strong>Arrival:</strong> %s (%s)<br>
          <strong>Duration:</strong> %s<br>
          <strong>Cost:</strong> $%.2f<br>
          <strong>Layover:</strong> %s at %s<br>
        </li>`,
			leg.Airline, leg.FlightNumber,
			leg.DepartureTime.Format(reportTimeLayout), leg.Origin,
			leg.ArrivalTime.Format(reportTimeLayout), leg.Destination,
			elapsed.Format(leg.Duration),
			leg.Cost,
			elapsed.Format(leg.Layover), leg.LayoverIATA)
	}

	summary := fmt.Sprintf(`
      <ul>
        <li><strong>Total Flight Duration:</strong> %s</li>
        <li><strong>Total Layover Duration:</strong> %s</li>
        <li><strong>Total Travel Time:</strong> %s</li>
        <li><strong>Total Cost:</strong> $%.2f</li>
      </ul>`,
		elapsed.Format(best.TotalFlightDuration),
		elapsed.Format(best.TotalLayoverDuration),
		elapsed.Format(best.TotalTravelTime),
		best.TotalCost)

	return fmt.Sprintf(`
      <h1>Flight Itinerary</h1>
      <h2>Flight Sequence</h2>
      <p>%s</p>

      <h2>Flight Details</h2>
      <ul>%s</ul>

      <h2>Summary</h2>
      %s`,
		strings.Join(sequence, " → "), details.String(), summary)
}
