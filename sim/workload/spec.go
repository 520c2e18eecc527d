package workload

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ScenarioSpec is the top-level scenario file for batch runs.
// Loaded from YAML via LoadScenarioSpec(path).
type ScenarioSpec struct {
	Version     string     `yaml:"version"`
	MaxRequests int        `yaml:"max_requests,omitempty"` // 0 = engine default
	Scenarios   []Scenario `yaml:"scenarios"`
}

// Scenario defines a single request set to schedule: a starting head
// position plus either a literal track list or a synthetic generator.
type Scenario struct {
	Name      string         `yaml:"name"`
	Head      int            `yaml:"head"`
	Tracks    []int          `yaml:"tracks,omitempty"`
	Synthetic *SyntheticSpec `yaml:"synthetic,omitempty"`
}

// SyntheticSpec parameterizes seeded uniform track generation.
type SyntheticSpec struct {
	Count    int   `yaml:"count"`
	MaxTrack int   `yaml:"max_track"`
	Seed     int64 `yaml:"seed"`
}

// validVersions maps accepted scenario file versions.
var validVersions = map[string]bool{"": true, "1": true}

// LoadScenarioSpec reads and parses a YAML scenario file.
// Uses strict parsing: unrecognized keys (typos) are rejected.
func LoadScenarioSpec(path string) (*ScenarioSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario spec: %w", err)
	}
	var spec ScenarioSpec
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&spec); err != nil {
		return nil, fmt.Errorf("parsing scenario spec: %w", err)
	}
	return &spec, nil
}

// Validate checks that all fields in the spec are valid.
func (s *ScenarioSpec) Validate() error {
	if !validVersions[s.Version] {
		return fmt.Errorf("unsupported version %q; valid: 1", s.Version)
	}
	if s.MaxRequests < 0 {
		return fmt.Errorf("max_requests must be non-negative, got %d", s.MaxRequests)
	}
	if len(s.Scenarios) == 0 {
		return fmt.Errorf("at least one scenario required")
	}
	for i := range s.Scenarios {
		if err := validateScenario(&s.Scenarios[i], i); err != nil {
			return err
		}
	}
	return nil
}

func validateScenario(sc *Scenario, idx int) error {
	prefix := fmt.Sprintf("scenario[%d]", idx)
	if sc.Name == "" {
		return fmt.Errorf("%s: name required", prefix)
	}
	if sc.Head < 0 {
		return fmt.Errorf("%s: head must be non-negative, got %d", prefix, sc.Head)
	}
	hasTracks := len(sc.Tracks) > 0
	hasSynthetic := sc.Synthetic != nil
	if hasTracks == hasSynthetic {
		return fmt.Errorf("%s: exactly one of tracks or synthetic required", prefix)
	}
	for j, track := range sc.Tracks {
		if track < 0 {
			return fmt.Errorf("%s: tracks[%d] must be non-negative, got %d", prefix, j, track)
		}
	}
	if hasSynthetic {
		if sc.Synthetic.Count <= 0 {
			return fmt.Errorf("%s: synthetic count must be positive, got %d", prefix, sc.Synthetic.Count)
		}
		if sc.Synthetic.MaxTrack < 0 {
			return fmt.Errorf("%s: synthetic max_track must be non-negative, got %d", prefix, sc.Synthetic.MaxTrack)
		}
	}
	return nil
}

// Template returns a starter spec with one literal and one synthetic
// scenario, suitable for marshalling to stdout.
func Template() *ScenarioSpec {
	return &ScenarioSpec{
		Version:     "1",
		MaxRequests: 100,
		Scenarios: []Scenario{
			{
				Name:   "textbook",
				Head:   53,
				Tracks: []int{98, 183, 37, 122, 14, 124, 65, 67},
			},
			{
				Name:      "uniform-32",
				Head:      250,
				Synthetic: &SyntheticSpec{Count: 32, MaxTrack: 499, Seed: 42},
			},
		},
	}
}
