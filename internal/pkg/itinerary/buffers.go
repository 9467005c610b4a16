package itinerary

import "time"

// ConnectionBuffers maps IATA airport codes to the minimum layover required
// before a departure from that airport. Codes absent from the table fall back
// to a configured default rather than a zero buffer. Read-only after
// construction.
type ConnectionBuffers struct {
	table    map[string]time.Duration
	fallback time.Duration
}

func NewConnectionBuffers(table map[string]time.Duration, fallback time.Duration) ConnectionBuffers {
	return ConnectionBuffers{
		table:    table,
		fallback: fallback,
	}
}

// Buffer returns the minimum connection time at the given airport.
func (b ConnectionBuffers) Buffer(iata string) time.Duration {
	if buffer, ok := b.table[iata]; ok {
		return buffer
	}

	return b.fallback
}
