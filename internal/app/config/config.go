package config

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/cnwoye/itinerary-planner-service/internal/pkg/elapsed"
	"github.com/spf13/cast"
)

type LogLeveler string

func (l LogLeveler) Level() slog.Level {
	var level slog.Level

	_ = level.UnmarshalText([]byte(l))

	return level
}

// Config holds the server configuration.
type Config struct {
	LogLevel LogLeveler      `mapstructure:"LOG_LEVEL"`
	HTTP     HTTP            `mapstructure:",squash"`
	Redis    Redis           `mapstructure:",squash"`
	Provider AmadeusProvider `mapstructure:",squash"`
	SMTP     SMTP            `mapstructure:",squash"`
	Planner  Planner         `mapstructure:",squash"`
}

type HTTP struct {
	Port    int           `mapstructure:"HTTP_PORT"`
	Timeout time.Duration `mapstructure:"HTTP_TIMEOUT"`
}

type Redis struct {
	Addr     string `mapstructure:"REDIS_ADDR"`
	Password string `mapstructure:"REDIS_PASSWORD"`
	DB       int    `mapstructure:"REDIS_DB"`
}

// AmadeusProvider holds the flight-offers provider configuration.
type AmadeusProvider struct {
	APIURL       string        `mapstructure:"AMADEUS_API_URL"`
	APIKey       string        `mapstructure:"AMADEUS_API_KEY"`
	APISecret    string        `mapstructure:"AMADEUS_API_SECRET"`
	Timeout      time.Duration `mapstructure:"AMADEUS_PROVIDER_TIMEOUT"`
	MaxRetries   int           `mapstructure:"AMADEUS_PROVIDER_MAX_RETRIES"`
	RateLimitRPS int           `mapstructure:"AMADEUS_PROVIDER_RATE_LIMIT"`
}

type SMTP struct {
	Host     string `mapstructure:"SMTP_HOST"`
	Port     int    `mapstructure:"SMTP_PORT"`
	Address  string `mapstructure:"EMAIL_ADDRESS"`
	Password string `mapstructure:"EMAIL_PASSWORD"`
}

// Planner holds the itinerary-search configuration. The region lists arrive
// as a JSON env value; the buffer table stays a JSON string until Buffers()
// so airport codes keep their case (viper lowercases nested map keys).
type Planner struct {
	ConnectionBufferHours        string     `mapstructure:"CONNECTION_BUFFER_HOURS"`
	DefaultConnectionBufferHours float64    `mapstructure:"DEFAULT_CONNECTION_BUFFER_HOURS"`
	ExtraTravelTimeHours         float64    `mapstructure:"EXTRA_TRAVEL_TIME_HOURS"`
	RegionDestinations           [][]string `mapstructure:"REGION_DESTINATIONS"`
}

// Buffers decodes the configured buffer table to durations. Values may be
// JSON numbers or numeric strings; anything else rejects the configuration.
func (p Planner) Buffers() (map[string]time.Duration, error) {
	if p.ConnectionBufferHours == "" {
		return map[string]time.Duration{}, nil
	}

	var table map[string]any
	if err := json.Unmarshal([]byte(p.ConnectionBufferHours), &table); err != nil {
		return nil, fmt.Errorf("connection buffer table: %w", err)
	}

	buffers := make(map[string]time.Duration, len(table))

	for iata, value := range table {
		hours, err := cast.ToFloat64E(value)
		if err != nil {
			return nil, fmt.Errorf("connection buffer for %s: %w", iata, err)
		}

		buffers[iata] = elapsed.FromHours(hours)
	}

	return buffers, nil
}

func (p Planner) DefaultBuffer() time.Duration {
	return elapsed.FromHours(p.DefaultConnectionBufferHours)
}

func (p Planner) ExtraTravelTime() time.Duration {
	return elapsed.FromHours(p.ExtraTravelTimeHours)
}

// Built-in defaults, overridable per deployment.
const defaultConnectionBufferHours = `{
	"SAN": 2, "TIJ": 2, "BCN": 2, "ORY": 2, "KUL": 2,
	"SCL": 0.5, "PUQ": 1.5, "PTY": 2, "LIS": 2, "SFO": 2,
	"MIA": 2, "JFK": 2, "LAX": 2, "YYZ": 2.8, "DFW": 1.7,
	"MAD": 2, "LHR": 2.1, "CDG": 1.8, "FRA": 2.5, "AMS": 2.0,
	"CMN": 2, "JNB": 2.7, "LOS": 1.9, "CAI": 2, "ADD": 1.5,
	"DOH": 1.5, "DXB": 2, "DEL": 1.6, "SIN": 2.3, "HND": 2.0,
	"PER": 2, "SYD": 2.8, "MEL": 1.9, "BNE": 2.5, "ADL": 1.7
}`

// One destination list per geographic region, in evaluation order: South
// America, North America, Europe, Africa, Asia, Australia.
var defaultRegionDestinations = [][]string{
	{"SCL"},
	{"MIA", "PTY", "LAX", "SFO", "SAN", "TIJ"},
	{"MAD", "LIS", "BCN", "ORY", "CMN"},
	{"CMN", "CAI"},
	{"DOH", "DXB", "KUL"},
	{"PER"},
}
