package report

import (
	"math"

	"github.com/woozymasta/geomatch/internal/geo"
)

// Summary aggregates match distances.
type Summary struct {
	Count  int
	MinKm  float64
	MaxKm  float64
	MeanKm float64
}

// Summarize returns distance statistics, zero valued for no results.
func Summarize(results []geo.MatchResult) Summary {
	if len(results) == 0 {
		return Summary{}
	}

	s := Summary{Count: len(results), MinKm: math.Inf(1), MaxKm: math.Inf(-1)}
	var total float64
	for _, r := range results {
		s.MinKm = math.Min(s.MinKm, r.DistanceKm)
		s.MaxKm = math.Max(s.MaxKm, r.DistanceKm)
		total += r.DistanceKm
	}
	s.MeanKm = total / float64(len(results))

	return s
}
