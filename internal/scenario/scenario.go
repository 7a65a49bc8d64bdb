// Package scenario replays scripted property updates against entities that
// carry a desktop notification behaviour.
//
// A scenario is a YAML document listing entities, their initial properties
// and the steps applied to them:
//
//	entities:
//	  - name: build
//	    type: desktop_notification
//	    properties: {show: false, summary: "Build", timeout: 3000}
//	    steps:
//	      - set: {body: "compiling"}
//	      - wait: 200ms
//	      - set: {show: true}
//	    detach: true
package scenario

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation failure returned from Parse.
var ErrInvalid = errors.New("invalid scenario")

// Scenario is a parsed scenario file.
type Scenario struct {
	Entities []Entity `yaml:"entities"`
}

// Entity describes one entity to create and the updates to replay on it.
type Entity struct {
	Name       string         `yaml:"name"`
	Type       string         `yaml:"type"`
	Properties map[string]any `yaml:"properties"`
	Steps      []Step         `yaml:"steps"`
	// Detach deletes the entity once its steps have run.
	Detach bool `yaml:"detach"`
}

// Step is either a batch of property updates or a pause.
type Step struct {
	Set  map[string]any `yaml:"set,omitempty"`
	Wait *time.Duration `yaml:"wait,omitempty"`
}

// Load reads and validates the scenario at path.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse decodes and validates a scenario document.
func Parse(data []byte) (*Scenario, error) {
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing scenario: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks that entity names are unique, every entity has a type,
// every step does exactly one thing and updates only declared properties.
func (s *Scenario) Validate() error {
	if len(s.Entities) == 0 {
		return fmt.Errorf("%w: no entities", ErrInvalid)
	}

	seen := make(map[string]struct{}, len(s.Entities))
	for i, e := range s.Entities {
		if e.Name == "" {
			return fmt.Errorf("%w: entity %d: missing name", ErrInvalid, i)
		}
		if _, dup := seen[e.Name]; dup {
			return fmt.Errorf("%w: entity %q: duplicate name", ErrInvalid, e.Name)
		}
		seen[e.Name] = struct{}{}

		if e.Type == "" {
			return fmt.Errorf("%w: entity %q: missing type", ErrInvalid, e.Name)
		}
		for j, step := range e.Steps {
			if err := step.validate(e.Properties); err != nil {
				return fmt.Errorf("%w: entity %q: step %d: %v", ErrInvalid, e.Name, j, err)
			}
		}
	}
	return nil
}

func (st Step) validate(declared map[string]any) error {
	switch {
	case st.Set != nil && st.Wait != nil:
		return errors.New("step has both set and wait")
	case st.Set == nil && st.Wait == nil:
		return errors.New("step has neither set nor wait")
	case st.Wait != nil && *st.Wait < 0:
		return fmt.Errorf("negative wait %s", *st.Wait)
	}
	for _, name := range sortedKeys(st.Set) {
		if _, ok := declared[name]; !ok {
			return fmt.Errorf("set of undeclared property %q", name)
		}
	}
	return nil
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
