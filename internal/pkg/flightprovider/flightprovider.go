package flightprovider

import (
	"time"

	"github.com/cnwoye/itinerary-planner-service/internal/pkg/itinerary"
	"github.com/go-redis/redis_rate/v10"
)

// FlightProviderConfig carries the settings shared by every resolver talking
// to the flight-offers API.
type FlightProviderConfig struct {
	APIURL       string
	APIKey       string
	APISecret    string
	Timeout      time.Duration
	MaxRetries   int
	RateLimitRPS int
	Limiter      *redis_rate.Limiter
}

// ResolverFactory hands out a FlightResolver per flight type. A flight type
// names a leg-resolution strategy ("direct", "connecting"), not an airline.
type ResolverFactory struct {
	Resolver map[string]itinerary.FlightResolver
}

func NewResolverFactory() *ResolverFactory {
	return &ResolverFactory{
		Resolver: make(map[string]itinerary.FlightResolver),
	}
}

func (f *ResolverFactory) AddResolver(flightType string, resolver itinerary.FlightResolver) {
	f.Resolver[flightType] = resolver
}

func (f *ResolverFactory) GetResolver(flightType string) itinerary.FlightResolver {
	return f.Resolver[flightType]
}
