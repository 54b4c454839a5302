package harness

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario defines a scripted run of the engine.
type Scenario struct {
	// Name uniquely identifies this scenario and names its golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario exercises.
	Description string `yaml:"description"`

	// Start is the date key the clock begins at. Defaults to 2026-09-01.
	Start string `yaml:"start,omitempty"`

	// MaxRituals caps the board. Zero means the engine default.
	MaxRituals int `yaml:"max_rituals,omitempty"`

	// Rituals seeds the board before any step runs.
	Rituals []string `yaml:"rituals,omitempty"`

	// Steps is the sequence of actions to execute.
	Steps []Step `yaml:"steps"`
}

// Step is a single scenario action. Exactly one action field must be set.
type Step struct {
	// Add creates a ritual with the given name.
	Add string `yaml:"add,omitempty"`

	// Rename renames a ritual, carrying its history.
	Rename *RenameStep `yaml:"rename,omitempty"`

	// Remove deletes a ritual and its history.
	Remove string `yaml:"remove,omitempty"`

	// Done toggles completion of a ritual for a day.
	Done string `yaml:"done,omitempty"`

	// On overrides the day a Done step applies to (YYYY-MM-DD).
	// Empty means the clock's current day.
	On string `yaml:"on,omitempty"`

	// Idea appends an idea to the backlog.
	Idea string `yaml:"idea,omitempty"`

	// Advance moves the clock forward this many days.
	Advance int `yaml:"advance,omitempty"`

	// ExpectError names the error code this step must fail with.
	ExpectError string `yaml:"expect_error,omitempty"`
}

// RenameStep names the source and target of a rename.
type RenameStep struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

// LoadScenario reads and parses a scenario YAML file.
// Unknown fields are rejected so typos fail loudly.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if s.Description == "" {
		return fmt.Errorf("description is required")
	}
	if len(s.Steps) == 0 {
		return fmt.Errorf("steps list is required and must be non-empty")
	}
	if s.MaxRituals < 0 {
		return fmt.Errorf("max_rituals must be non-negative")
	}

	for i, step := range s.Steps {
		actions := 0
		if step.Add != "" {
			actions++
		}
		if step.Rename != nil {
			actions++
			if step.Rename.From == "" || step.Rename.To == "" {
				return fmt.Errorf("steps[%d]: rename requires from and to", i)
			}
		}
		if step.Remove != "" {
			actions++
		}
		if step.Done != "" {
			actions++
		}
		if step.Idea != "" {
			actions++
		}
		if step.Advance != 0 {
			actions++
			if step.Advance < 0 {
				return fmt.Errorf("steps[%d]: advance must be positive", i)
			}
		}
		if actions != 1 {
			return fmt.Errorf("steps[%d]: exactly one action is required, got %d", i, actions)
		}
		if step.On != "" && step.Done == "" {
			return fmt.Errorf("steps[%d]: on is only valid with done", i)
		}
	}

	return nil
}
