package elapsed

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// iso8601Pattern matches the subset of ISO-8601 durations the flight-offers
// API emits, e.g. "PT11H35M", "PT45M", "PT2H".
var iso8601Pattern = regexp.MustCompile(`^PT(?:(\d+)H)?(?:(\d+)M)?$`)

// ParseError reports a duration string that does not match the PT#H#M grammar.
type ParseError struct {
	Input string
}

func (e ParseError) Error() string {
	return fmt.Sprintf("malformed ISO-8601 duration %q", e.Input)
}

// Parse converts an ISO-8601 elapsed-time string into a time.Duration.
// Malformed input returns a ParseError rather than a silent zero.
func Parse(durationStr string) (time.Duration, error) {
	match := iso8601Pattern.FindStringSubmatch(durationStr)
	if match == nil || (match[1] == "" && match[2] == "") {
		return 0, ParseError{Input: durationStr}
	}

	var hours, minutes int64
	if match[1] != "" {
		hours, _ = strconv.ParseInt(match[1], 10, 64)
	}
	if match[2] != "" {
		minutes, _ = strconv.ParseInt(match[2], 10, 64)
	}

	return time.Duration(hours)*time.Hour + time.Duration(minutes)*time.Minute, nil
}

// FromHours converts fractional hours to a duration.
// Example: 2.5 -> 2h30m
func FromHours(hours float64) time.Duration {
	return time.Duration(hours * float64(time.Hour))
}

// Format renders a duration as a compact human string.
// Example: 125 minutes -> "2h 5m"
func Format(d time.Duration) string {
	totalMinutes := int64(d / time.Minute)

	h := totalMinutes / 60
	m := totalMinutes % 60

	if m == 0 {
		return fmt.Sprintf("%dh", h)
	}

	if h == 0 {
		return fmt.Sprintf("%dm", m)
	}

	return fmt.Sprintf("%dh %dm", h, m)
}
