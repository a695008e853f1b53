package geo

import (
	"errors"
	"math"
)

// ErrEmptyTargetSet is returned when matching against no candidate targets.
var ErrEmptyTargetSet = errors.New("target set is empty")

// MatchResult pairs one source coordinate with its nearest target.
type MatchResult struct {
	Source      Coordinate `json:"source" yaml:"source"`
	Target      Coordinate `json:"target" yaml:"target"`
	TargetIndex int        `json:"target_index" yaml:"target_index"`
	DistanceKm  float64    `json:"distance_km" yaml:"distance_km"`
}

// Nearest scans targets linearly and returns the index of the closest one
// to p together with its distance in kilometers.
// When several targets are at exactly the same distance the first one wins.
func Nearest(p Coordinate, targets []Coordinate) (int, float64, error) {
	if len(targets) == 0 {
		return -1, 0, ErrEmptyTargetSet
	}

	best := -1
	minDist := math.Inf(1)

	for i, t := range targets {
		// strict comparison keeps the earliest of equidistant targets
		if d := Distance(p, t); d < minDist {
			minDist = d
			best = i
		}
	}

	return best, minDist, nil
}

// MatchAll finds, for every source in order, the nearest target.
// It fails with ErrEmptyTargetSet when targets is empty, even if sources is
// empty too; an empty source set otherwise yields an empty result.
func MatchAll(sources, targets []Coordinate) ([]MatchResult, error) {
	if len(targets) == 0 {
		return nil, ErrEmptyTargetSet
	}

	results := make([]MatchResult, 0, len(sources))
	for _, src := range sources {
		idx, dist, err := Nearest(src, targets)
		if err != nil {
			return nil, err
		}

		results = append(results, MatchResult{
			Source:      src,
			Target:      targets[idx],
			TargetIndex: idx,
			DistanceKm:  dist,
		})
	}

	return results, nil
}
