package workload

import (
	"fmt"
	"math/rand"

	"github.com/seeksim/seeksim/sim"
)

// GenerateTracks creates a synthetic track sequence from a SyntheticSpec.
// Deterministic given the same spec: values are uniform in [0, MaxTrack]
// drawn from a generator seeded with Seed.
func GenerateTracks(spec *SyntheticSpec) ([]int, error) {
	if spec.Count <= 0 {
		return nil, fmt.Errorf("synthetic count must be positive, got %d", spec.Count)
	}
	if spec.MaxTrack < 0 {
		return nil, fmt.Errorf("synthetic max_track must be non-negative, got %d", spec.MaxTrack)
	}

	rng := rand.New(rand.NewSource(spec.Seed))
	tracks := make([]int, spec.Count)
	for i := range tracks {
		tracks[i] = rng.Intn(spec.MaxTrack + 1)
	}
	return tracks, nil
}

// ResolveTracks returns the scenario's track sequence: a copy of the
// literal list, or freshly generated synthetic tracks.
func (sc *Scenario) ResolveTracks() ([]int, error) {
	if sc.Synthetic != nil {
		if len(sc.Tracks) > 0 {
			return nil, fmt.Errorf("scenario %q: exactly one of tracks or synthetic required", sc.Name)
		}
		return GenerateTracks(sc.Synthetic)
	}
	if len(sc.Tracks) == 0 {
		return nil, fmt.Errorf("scenario %q: exactly one of tracks or synthetic required", sc.Name)
	}
	out := make([]int, len(sc.Tracks))
	copy(out, sc.Tracks)
	return out, nil
}

// BuildRequestSet resolves the scenario's tracks and wraps them in a
// validated RequestSet. maxRequests follows NewRequestSet semantics
// (non-positive applies the engine default).
func (sc *Scenario) BuildRequestSet(maxRequests int) (*sim.RequestSet, error) {
	tracks, err := sc.ResolveTracks()
	if err != nil {
		return nil, err
	}
	rs, err := sim.NewRequestSet(sc.Head, tracks, maxRequests)
	if err != nil {
		return nil, fmt.Errorf("scenario %q: %w", sc.Name, err)
	}
	return rs, nil
}
