package analysis

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/deadserpent/superdense/superdense"
)

// ScenarioChart renders one scenario's per-input success rates as a bar chart
// and saves it to path as a PNG.
func ScenarioChart(sr ScenarioResults, path string) error {
	p := plot.New()
	p.Title.Text = sr.Name
	p.X.Label.Text = "Input Message"
	p.Y.Label.Text = "Success Rate (%)"
	p.Y.Max = 105

	vals := make(plotter.Values, 0, 4)
	for _, bits := range superdense.Inputs() {
		vals = append(vals, sr.Results[bits].SuccessRate)
	}
	bars, err := plotter.NewBarChart(vals, vg.Points(40))
	if err != nil {
		return fmt.Errorf("building bars for %s: %w", sr.Name, err)
	}
	bars.LineStyle.Width = vg.Length(0)
	bars.Color = plotutil.Color(0)
	p.Add(bars)
	p.NominalX(superdense.Inputs()...)

	if err := p.Save(8*vg.Inch, 5*vg.Inch, path); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	return nil
}

// CompareSuccessRates renders every recorded scenario's success rates side by
// side in one grouped bar chart.
func (a *Analyzer) CompareSuccessRates(path string) error {
	if len(a.scenarios) == 0 {
		return fmt.Errorf("no scenarios recorded")
	}
	p := plot.New()
	p.Title.Text = "Superdense Coding: Success Rate by Scenario"
	p.X.Label.Text = "Input Message"
	p.Y.Label.Text = "Success Rate (%)"
	p.Y.Max = 105
	p.Legend.Top = true

	width := vg.Points(60 / float64(len(a.scenarios)))
	for i, sr := range a.scenarios {
		rates, err := a.SuccessRates(sr.Name)
		if err != nil {
			return err
		}
		bars, err := plotter.NewBarChart(plotter.Values(rates), width)
		if err != nil {
			return fmt.Errorf("building bars for %s: %w", sr.Name, err)
		}
		bars.LineStyle.Width = vg.Length(0)
		bars.Color = plotutil.Color(i)
		bars.Offset = width * vg.Length(i-len(a.scenarios)/2)
		p.Add(bars)
		p.Legend.Add(sr.Name, bars)
	}
	p.NominalX(superdense.Inputs()...)

	if err := p.Save(10*vg.Inch, 6*vg.Inch, path); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	return nil
}

// fidelityGrid adapts the analyzer's fidelity matrix to the heatmap's grid
// interface. Columns are inputs, rows are scenarios.
type fidelityGrid struct {
	m [][]float64
}

func (g fidelityGrid) Dims() (c, r int) {
	if len(g.m) == 0 {
		return 0, 0
	}
	return len(g.m[0]), len(g.m)
}

func (g fidelityGrid) Z(c, r int) float64 { return g.m[r][c] }
func (g fidelityGrid) X(c int) float64    { return float64(c) }
func (g fidelityGrid) Y(r int) float64    { return float64(r) }

// FidelityHeatmap renders the scenario-by-input fidelity matrix as a heatmap.
func (a *Analyzer) FidelityHeatmap(path string) error {
	m := a.FidelityMatrix()
	if len(m) == 0 {
		return fmt.Errorf("no scenarios recorded")
	}
	p := plot.New()
	p.Title.Text = "Decoding Fidelity by Scenario and Input"
	p.X.Label.Text = "Input Message"
	p.Y.Label.Text = "Scenario"

	hm := plotter.NewHeatMap(fidelityGrid{m: m}, palette.Heat(12, 1))
	hm.Min = 0
	hm.Max = 1
	p.Add(hm)

	p.NominalX(superdense.Inputs()...)
	names := make([]string, 0, len(a.scenarios))
	for _, sr := range a.scenarios {
		names = append(names, sr.Name)
	}
	p.NominalY(names...)

	if err := p.Save(8*vg.Inch, 5*vg.Inch, path); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	return nil
}

// SweepChart renders a gate-error sweep for one message: observed success and
// error rates against the miscalibration angle.
func SweepChart(bits string, points []superdense.SweepPoint, path string) error {
	if len(points) == 0 {
		return fmt.Errorf("no sweep points")
	}
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Gate Miscalibration Sweep (input %s)", bits)
	p.X.Label.Text = "Rotation Error (degrees)"
	p.Y.Label.Text = "Rate (%)"
	p.Y.Min = 0
	p.Y.Max = 105
	p.Legend.Top = true

	success := make(plotter.XYs, len(points))
	failure := make(plotter.XYs, len(points))
	for i, pt := range points {
		success[i].X = pt.Degrees
		success[i].Y = pt.Result.SuccessRate
		failure[i].X = pt.Degrees
		failure[i].Y = pt.Result.ErrorRate()
	}
	if err := plotutil.AddLinePoints(p, "Success", success, "Error", failure); err != nil {
		return fmt.Errorf("building sweep lines: %w", err)
	}

	if err := p.Save(8*vg.Inch, 5*vg.Inch, path); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	return nil
}
