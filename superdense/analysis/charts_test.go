package analysis

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/deadserpent/superdense/superdense"
)

func requirePNG(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("chart not written: %v", err)
	}
	if info.Size() == 0 {
		t.Fatalf("chart %s is empty", path)
	}
}

func TestScenarioChart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ideal.png")
	sr := ScenarioResults{Name: "Ideal", Results: fakeResults(100, 1)}
	if err := ScenarioChart(sr, path); err != nil {
		t.Fatalf("ScenarioChart: %v", err)
	}
	requirePNG(t, path)
}

func TestCompareSuccessRates(t *testing.T) {
	a := New()
	a.AddScenario("Ideal", fakeResults(100, 1))
	a.AddScenario("Noisy (medium)", fakeResults(91, 0.91))
	a.AddScenario("Imperfect Gates (5.0 deg)", fakeResults(60, 0.6))

	path := filepath.Join(t.TempDir(), "comparison.png")
	if err := a.CompareSuccessRates(path); err != nil {
		t.Fatalf("CompareSuccessRates: %v", err)
	}
	requirePNG(t, path)
}

func TestCompareSuccessRatesEmpty(t *testing.T) {
	if err := New().CompareSuccessRates(filepath.Join(t.TempDir(), "x.png")); err == nil {
		t.Error("CompareSuccessRates succeeded with no scenarios")
	}
}

func TestFidelityHeatmap(t *testing.T) {
	a := New()
	a.AddScenario("Ideal", fakeResults(100, 1))
	a.AddScenario("Noisy (high)", fakeResults(55, 0.55))

	path := filepath.Join(t.TempDir(), "heatmap.png")
	if err := a.FidelityHeatmap(path); err != nil {
		t.Fatalf("FidelityHeatmap: %v", err)
	}
	requirePNG(t, path)
}

func TestSweepChart(t *testing.T) {
	points := []superdense.SweepPoint{
		{Degrees: 0, Result: superdense.Result{SuccessRate: 100}},
		{Degrees: 5, Result: superdense.Result{SuccessRate: 60}},
		{Degrees: 15, Result: superdense.Result{SuccessRate: 58}},
	}
	path := filepath.Join(t.TempDir(), "sweep.png")
	if err := SweepChart("11", points, path); err != nil {
		t.Fatalf("SweepChart: %v", err)
	}
	requirePNG(t, path)
}

func TestSweepChartEmpty(t *testing.T) {
	if err := SweepChart("11", nil, filepath.Join(t.TempDir(), "x.png")); err == nil {
		t.Error("SweepChart succeeded with no points")
	}
}
