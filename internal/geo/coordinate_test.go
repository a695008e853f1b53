package geo

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		lat, lon float64
	}{
		{name: "origin", lat: 0, lon: 0},
		{name: "north pole", lat: 90, lon: 0},
		{name: "south pole", lat: -90, lon: 0},
		{name: "antimeridian east", lat: 0, lon: 180},
		{name: "antimeridian west", lat: 0, lon: -180},
		{name: "all corners", lat: -90, lon: 180},
		{name: "new york", lat: 40.7128, lon: -74.0060},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Validate(tt.lat, tt.lon)
			require.NoError(t, err)
			assert.Equal(t, Coordinate{Lat: tt.lat, Lon: tt.lon}, c)
		})
	}
}

func TestValidateOutOfRange(t *testing.T) {
	tests := []struct {
		name     string
		lat, lon float64
		field    string
	}{
		{name: "latitude above", lat: 90.0000001, lon: 0, field: "latitude"},
		{name: "latitude below", lat: -91, lon: 0, field: "latitude"},
		{name: "longitude above", lat: 0, lon: 180.5, field: "longitude"},
		{name: "longitude below", lat: 0, lon: -181, field: "longitude"},
		{name: "latitude checked first", lat: 100, lon: 200, field: "latitude"},
		{name: "latitude NaN", lat: math.NaN(), lon: 0, field: "latitude"},
		{name: "longitude infinite", lat: 0, lon: math.Inf(-1), field: "longitude"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Validate(tt.lat, tt.lon)
			require.Error(t, err)

			var vErr *ValidationError
			require.True(t, errors.As(err, &vErr))
			assert.Equal(t, tt.field, vErr.Field)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestCoordinateString(t *testing.T) {
	c, err := Validate(40.7128, -74.006)
	require.NoError(t, err)
	assert.Equal(t, "(40.7128, -74.006)", c.String())
	assert.Equal(t, "(0.0, 0.0)", Coordinate{}.String())
	assert.Equal(t, "(-90.0, 180.0)", Coordinate{Lat: -90, Lon: 180}.String())
	assert.Equal(t, "(12.5, -0.25)", Coordinate{Lat: 12.5, Lon: -0.25}.String())
	assert.Equal(t, []float64{-74.006, 40.7128}, c.LonLat())
}
