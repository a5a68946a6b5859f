package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceMeters(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		lat1     float64
		lon1     float64
		lat2     float64
		lon2     float64
		expected float64
	}{
		{
			name: "same point",
			lat1: 37.7749, lon1: -122.4194, lat2: 37.7749, lon2: -122.4194,
			expected: 0,
		},
		{
			name: "one degree of latitude",
			lat1: 0, lon1: 0, lat2: 1, lon2: 0,
			expected: 111194.93,
		},
		{
			name: "san francisco to los angeles",
			lat1: 37.7749, lon1: -122.4194, lat2: 34.0522, lon2: -118.2437,
			expected: 559120,
		},
		{
			name: "nearby court",
			lat1: 37.7749, lon1: -122.4194, lat2: 37.77491, lon2: -122.41941,
			expected: 1.4174,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := DistanceMeters(tt.lat1, tt.lon1, tt.lat2, tt.lon2)
			if tt.expected == 0 {
				assert.Zero(t, got)
				return
			}
			assert.InEpsilon(t, tt.expected, got, 0.001)
		})
	}
}

func TestDistanceMeters_Symmetric(t *testing.T) {
	t.Parallel()

	points := [][2]float64{
		{37.7749, -122.4194},
		{25.0330, 121.5654},
		{-33.8688, 151.2093},
		{51.5074, -0.1278},
		{0, 0},
	}

	for _, a := range points {
		assert.Zero(t, DistanceMeters(a[0], a[1], a[0], a[1]))
		for _, b := range points {
			ab := DistanceMeters(a[0], a[1], b[0], b[1])
			ba := DistanceMeters(b[0], b[1], a[0], a[1])
			assert.InDelta(t, ab, ba, 1e-6)
		}
	}
}

func TestDistanceMeters_NaN(t *testing.T) {
	t.Parallel()

	assert.True(t, math.IsNaN(DistanceMeters(math.NaN(), 0, 1, 1)))
	assert.True(t, math.IsNaN(DistanceMiles(0, 0, 1, math.NaN())))
}

func TestDistanceMiles(t *testing.T) {
	t.Parallel()

	meters := DistanceMeters(37.7749, -122.4194, 34.0522, -118.2437)
	assert.InDelta(t, meters/1609.344, DistanceMiles(37.7749, -122.4194, 34.0522, -118.2437), 1e-9)
}
