//go:build unit

package itinerary

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestSequences(t *testing.T) {
	sequencesRequest := func(regions [][]string, want [][]string) func(t *testing.T) {
		return func(t *testing.T) {
			got := Sequences(regions)

			diff := cmp.Diff(want, got)
			if diff != "" {
				t.Fatalf("Sequences() mismatch (-want +got):\n%s", diff)
			}
		}
	}

	t.Run("single_region_single_destination", sequencesRequest(
		[][]string{{"SCL"}},
		[][]string{{"SCL"}},
	))

	t.Run("two_regions", sequencesRequest(
		[][]string{{"SCL"}, {"MIA", "PTY"}},
		[][]string{{"SCL", "MIA"}, {"SCL", "PTY"}},
	))

	t.Run("lexicographic_order", sequencesRequest(
		[][]string{{"A", "B"}, {"X", "Y"}},
		[][]string{{"A", "X"}, {"A", "Y"}, {"B", "X"}, {"B", "Y"}},
	))

	t.Run("no_regions", sequencesRequest(nil, nil))

	t.Run("empty_region_yields_nothing", sequencesRequest(
		[][]string{{"SCL"}, {}},
		nil,
	))
}

func TestSequences_SizeIsProductOfRegionSizes(t *testing.T) {
	regions := [][]string{
		{"SCL"},
		{"MIA", "PTY", "LAX", "SFO", "SAN", "TIJ"},
		{"MAD", "LIS", "BCN", "ORY", "CMN"},
		{"CMN", "CAI"},
		{"DOH", "DXB", "KUL"},
		{"PER"},
	}

	got := Sequences(regions)

	want := 1
	for _, region := range regions {
		want *= len(region)
	}

	assert.Len(t, got, want)

	// every sequence picks one destination per region, in region order
	for _, sequence := range got {
		assert.Len(t, sequence, len(regions))
		for i, destination := range sequence {
			assert.Contains(t, regions[i], destination)
		}
	}
}
