// internal/defs/loader.go
package defs

import (
	"errors"
	"fmt"
	"log"
	"os"
	"sort"

	"github.com/pelletier/go-toml/v2"
)

// ErrInvalidScenario is wrapped by every validation failure.
var ErrInvalidScenario = errors.New("invalid scenario")

// LoadScenario reads and validates a TOML scenario file.
func LoadScenario(path string) (*Scenario, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	sc, err := ParseScenario(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	log.Printf("Loaded scenario %q: %d rovers, %d waypoints, %d programs",
		sc.Name, len(sc.Rovers), len(sc.Waypoints), len(sc.Programs))
	return sc, nil
}

// ParseScenario decodes and validates a TOML scenario. Program steps are
// sorted by time.
func ParseScenario(data []byte) (*Scenario, error) {
	var sc Scenario
	if err := toml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal scenario: %w", err)
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	for i := range sc.Programs {
		steps := sc.Programs[i].Steps
		sort.SliceStable(steps, func(a, b int) bool { return steps[a].At < steps[b].At })
	}
	return &sc, nil
}

// Validate checks names and references.
func (sc *Scenario) Validate() error {
	rovers := make(map[string]bool, len(sc.Rovers))
	for _, r := range sc.Rovers {
		if r.Name == "" {
			return fmt.Errorf("%w: rover without a name", ErrInvalidScenario)
		}
		if rovers[r.Name] {
			return fmt.Errorf("%w: duplicate rover %q", ErrInvalidScenario, r.Name)
		}
		rovers[r.Name] = true
	}

	waypoints := make(map[string]bool, len(sc.Waypoints))
	for _, wp := range sc.Waypoints {
		if wp.Name == "" {
			return fmt.Errorf("%w: waypoint without a name", ErrInvalidScenario)
		}
		if waypoints[wp.Name] {
			return fmt.Errorf("%w: duplicate waypoint %q", ErrInvalidScenario, wp.Name)
		}
		waypoints[wp.Name] = true
	}

	parts := make(map[uint32]bool, len(sc.Programs))
	for i, p := range sc.Programs {
		if !rovers[p.Rover] {
			return fmt.Errorf("%w: program %d: %v", ErrInvalidScenario, i, unknownRef("rover", p.Rover, rovers))
		}
		if p.PartID == 0 {
			return fmt.Errorf("%w: program %d: part_id must be non-zero", ErrInvalidScenario, i)
		}
		if parts[p.PartID] {
			return fmt.Errorf("%w: program %d: duplicate part_id %d", ErrInvalidScenario, i, p.PartID)
		}
		parts[p.PartID] = true

		for j, st := range p.Steps {
			if err := st.validate(rovers, waypoints); err != nil {
				return fmt.Errorf("%w: program %d step %d: %v", ErrInvalidScenario, i, j, err)
			}
		}
	}
	return nil
}

func (st StepDefinition) validate(rovers, waypoints map[string]bool) error {
	switch st.Op {
	case StepUnlock, StepThrottle, StepEnd:
		return nil
	case StepLock:
	default:
		return fmt.Errorf("unknown op %q", st.Op)
	}

	set := 0
	if st.Heading != nil {
		set++
	}
	if st.Waypoint != "" {
		set++
		if !waypoints[st.Waypoint] {
			return unknownRef("waypoint", st.Waypoint, waypoints)
		}
	}
	if st.Vessel != "" {
		set++
		if !rovers[st.Vessel] {
			return unknownRef("vessel", st.Vessel, rovers)
		}
	}
	if st.Value != nil {
		set++
	}
	if set != 1 {
		return errors.New("lock needs exactly one of heading, waypoint, vessel or value")
	}
	return nil
}
