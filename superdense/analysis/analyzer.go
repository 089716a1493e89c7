// Package analysis aggregates superdense coding results across scenarios and
// renders comparison charts, a fidelity heatmap and a text report.
package analysis

import (
	"fmt"

	"gonum.org/v1/gonum/stat"

	"github.com/deadserpent/superdense/superdense"
)

// ScenarioResults pairs a scenario name with its per-input results.
type ScenarioResults struct {
	Name    string                       `json:"name"`
	Results map[string]superdense.Result `json:"results"`
}

// An Analyzer collects named scenario results in insertion order for
// comparison.
type Analyzer struct {
	scenarios []ScenarioResults
}

// New returns an empty analyzer.
func New() *Analyzer {
	return &Analyzer{}
}

// AddScenario records a scenario's results. Adding a name twice replaces the
// earlier entry in place, keeping its position.
func (a *Analyzer) AddScenario(name string, results map[string]superdense.Result) {
	for i, sr := range a.scenarios {
		if sr.Name == name {
			a.scenarios[i].Results = results
			return
		}
	}
	a.scenarios = append(a.scenarios, ScenarioResults{Name: name, Results: results})
}

// Scenarios returns the recorded scenarios in insertion order.
func (a *Analyzer) Scenarios() []ScenarioResults {
	return a.scenarios
}

// SuccessRates returns a scenario's observed success percentages ordered by
// canonical input (00, 01, 10, 11); inputs without results read as zero.
func (a *Analyzer) SuccessRates(name string) ([]float64, error) {
	for _, sr := range a.scenarios {
		if sr.Name != name {
			continue
		}
		rates := make([]float64, 0, 4)
		for _, bits := range superdense.Inputs() {
			rates = append(rates, sr.Results[bits].SuccessRate)
		}
		return rates, nil
	}
	return nil, fmt.Errorf("unknown scenario %q", name)
}

// AverageSuccess returns the mean success percentage across a scenario's
// inputs.
func (a *Analyzer) AverageSuccess(name string) (float64, error) {
	rates, err := a.SuccessRates(name)
	if err != nil {
		return 0, err
	}
	return stat.Mean(rates, nil), nil
}

// FidelityMatrix returns one row per scenario (insertion order) and one
// column per canonical input, holding exact fidelities where recorded and
// falling back to the observed rate otherwise.
func (a *Analyzer) FidelityMatrix() [][]float64 {
	m := make([][]float64, 0, len(a.scenarios))
	for _, sr := range a.scenarios {
		row := make([]float64, 0, 4)
		for _, bits := range superdense.Inputs() {
			res := sr.Results[bits]
			f := res.Fidelity
			if f == 0 && res.SuccessRate > 0 {
				f = res.SuccessRate / 100
			}
			row = append(row, f)
		}
		m = append(m, row)
	}
	return m
}

// Grade maps an average success percentage to a letter grade.
func Grade(avg float64) string {
	switch {
	case avg >= 98:
		return "A+ (Excellent)"
	case avg >= 90:
		return "A (Very Good)"
	case avg >= 80:
		return "B (Good)"
	case avg >= 70:
		return "C (Fair)"
	default:
		return "D (Poor)"
	}
}
