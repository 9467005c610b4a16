//go:build unit

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPlanner_Buffers(t *testing.T) {
	buffersRequest := func(planner Planner, want map[string]time.Duration, wantErr bool) func(t *testing.T) {
		return func(t *testing.T) {
			got, err := planner.Buffers()

			if wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, want, got)
		}
	}

	t.Run("numbers_and_numeric_strings", buffersRequest(
		Planner{ConnectionBufferHours: `{"SCL": 0.5, "PUQ": "1.5", "MIA": 2}`},
		map[string]time.Duration{
			"SCL": 30 * time.Minute,
			"PUQ": 90 * time.Minute,
			"MIA": 2 * time.Hour,
		},
		false,
	))

	t.Run("non_numeric_value_rejected", buffersRequest(
		Planner{ConnectionBufferHours: `{"SCL": "soon"}`},
		nil,
		true,
	))

	t.Run("malformed_json_rejected", buffersRequest(
		Planner{ConnectionBufferHours: `{`},
		nil,
		true,
	))

	t.Run("empty_table", buffersRequest(
		Planner{}, map[string]time.Duration{}, false,
	))
}

func TestPlanner_Durations(t *testing.T) {
	planner := Planner{
		DefaultConnectionBufferHours: 2,
		ExtraTravelTimeHours:         2.5,
	}

	assert.Equal(t, 2*time.Hour, planner.DefaultBuffer())
	assert.Equal(t, 2*time.Hour+30*time.Minute, planner.ExtraTravelTime())
}

func TestMustInitConfig_Defaults(t *testing.T) {
	cfg := MustInitConfig("testdata/absent.env")

	assert.Equal(t, 5000, cfg.HTTP.Port)
	assert.Equal(t, 2.5, cfg.Planner.ExtraTravelTimeHours)
	assert.Equal(t, 2.0, cfg.Planner.DefaultConnectionBufferHours)
	assert.Len(t, cfg.Planner.RegionDestinations, 6)

	buffers, err := cfg.Planner.Buffers()
	assert.NoError(t, err)
	assert.Equal(t, 90*time.Minute, buffers["PUQ"])
	assert.Equal(t, 30*time.Minute, buffers["SCL"])
}
