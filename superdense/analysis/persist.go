package analysis

import (
	"encoding/json"
	"fmt"
	"os"
)

// SaveJSON writes the recorded scenarios to path as indented JSON, suitable
// for later reporting without re-running the simulations.
func (a *Analyzer) SaveJSON(path string) error {
	raw, err := json.MarshalIndent(a.scenarios, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding results: %w", err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("writing results: %w", err)
	}
	return nil
}

// LoadJSON reads scenarios previously written by SaveJSON.
func LoadJSON(path string) (*Analyzer, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading results: %w", err)
	}
	var scenarios []ScenarioResults
	if err := json.Unmarshal(raw, &scenarios); err != nil {
		return nil, fmt.Errorf("parsing results %s: %w", path, err)
	}
	return &Analyzer{scenarios: scenarios}, nil
}
