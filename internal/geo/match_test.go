package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchAllEmptyTargets(t *testing.T) {
	_, err := MatchAll([]Coordinate{{Lat: 1, Lon: 1}}, nil)
	require.ErrorIs(t, err, ErrEmptyTargetSet)

	_, err = MatchAll(nil, []Coordinate{})
	require.ErrorIs(t, err, ErrEmptyTargetSet)
}

func TestMatchAllEmptySources(t *testing.T) {
	results, err := MatchAll(nil, []Coordinate{{Lat: 0, Lon: 1}})
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestMatchAllPicksNearest(t *testing.T) {
	sources := []Coordinate{{Lat: 0, Lon: 0}}
	targets := []Coordinate{{Lat: 0, Lon: 2}, {Lat: 1, Lon: 0}}

	results, err := MatchAll(sources, targets)
	require.NoError(t, err)
	require.Len(t, results, 1)

	assert.Equal(t, Coordinate{Lat: 0, Lon: 0}, results[0].Source)
	assert.Equal(t, Coordinate{Lat: 1, Lon: 0}, results[0].Target)
	assert.Equal(t, 1, results[0].TargetIndex)
	assert.InDelta(t, 111.2, results[0].DistanceKm, 0.1)
}

func TestMatchAllNewYorkLondon(t *testing.T) {
	results, err := MatchAll(
		[]Coordinate{{Lat: 40.7128, Lon: -74.0060}},
		[]Coordinate{{Lat: 51.5074, Lon: -0.1278}},
	)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.InDelta(t, 5570, results[0].DistanceKm, 10)
}

func TestMatchAllPreservesSourceOrder(t *testing.T) {
	sources := []Coordinate{
		{Lat: 51.5, Lon: -0.1},  // london
		{Lat: 40.7, Lon: -74.0}, // new york
		{Lat: 48.9, Lon: 2.4},   // paris
		{Lat: 40.7, Lon: -74.0}, // duplicate
	}
	targets := []Coordinate{
		{Lat: 38.9, Lon: -77.0}, // washington
		{Lat: 50.8, Lon: 4.4},   // brussels
		{Lat: 52.2, Lon: 0.1},   // cambridge
	}

	results, err := MatchAll(sources, targets)
	require.NoError(t, err)
	require.Len(t, results, len(sources))

	wantIdx := []int{2, 0, 1, 0}
	for i, r := range results {
		assert.Equal(t, sources[i], r.Source, "source %d", i)
		assert.Equal(t, wantIdx[i], r.TargetIndex, "source %d", i)
		assert.Equal(t, targets[wantIdx[i]], r.Target, "source %d", i)
	}
}

func TestNearestTieKeepsFirst(t *testing.T) {
	p := Coordinate{Lat: 10, Lon: 20}
	targets := []Coordinate{
		{Lat: 30, Lon: 40},
		{Lat: 11, Lon: 21},
		{Lat: 11, Lon: 21},
		{Lat: 11, Lon: 21},
	}

	idx, dist, err := Nearest(p, targets)
	require.NoError(t, err)
	assert.Equal(t, 1, idx)
	assert.Equal(t, Distance(p, targets[1]), dist)
}

func TestNearestEmpty(t *testing.T) {
	idx, _, err := Nearest(Coordinate{}, nil)
	require.ErrorIs(t, err, ErrEmptyTargetSet)
	assert.Equal(t, -1, idx)
}

func TestMatchAllAntipodalTarget(t *testing.T) {
	results, err := MatchAll(
		[]Coordinate{{Lat: 0, Lon: 0}},
		[]Coordinate{{Lat: 0, Lon: 180}},
	)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.InDelta(t, 20015.1, results[0].DistanceKm, 0.1)
}
