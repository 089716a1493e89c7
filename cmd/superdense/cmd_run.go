package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/deadserpent/superdense/superdense"
	"github.com/deadserpent/superdense/superdense/analysis"
)

// sweepDegrees are the miscalibration angles the full run charts.
var sweepDegrees = []float64{0, 1, 2, 5, 10, 15}

// scenarioChart pairs a scenario with its chart's output filename.
type scenarioChart struct {
	s     superdense.Scenario
	chart string
}

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run every scenario and produce the full comparison",
		Long: `Run the ideal scenario, all three noise levels and the miscalibrated-gate
scenario, then write the per-scenario charts, the gate-error sweep, the
comparison charts, the results JSON and the analysis report.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := gatherOptions(cmd)
			if err != nil {
				return err
			}
			deg, _ := cmd.Flags().GetFloat64("degrees")

			runs := []scenarioChart{
				{superdense.Ideal(), "superdense_coding_results.png"},
			}
			for _, level := range superdense.NoiseLevelNames() {
				s, err := superdense.Noisy(level, opts.cfg)
				if err != nil {
					return err
				}
				runs = append(runs, scenarioChart{s, fmt.Sprintf("superdense_noisy_%s.png", level)})
			}
			runs = append(runs, scenarioChart{
				superdense.ImperfectGates(superdense.Radians(deg)),
				fmt.Sprintf("superdense_imperfect_%gdeg.png", deg),
			})

			a := analysis.New()
			for _, r := range runs {
				results, err := runScenario(opts, r.s)
				if err != nil {
					return fmt.Errorf("running %s: %w", r.s.Name(), err)
				}
				a.AddScenario(r.s.Name(), results)
				if opts.jsonOut {
					continue
				}
				sr := analysis.ScenarioResults{Name: r.s.Name(), Results: results}
				path := chartPath(opts, r.chart)
				if err := analysis.ScenarioChart(sr, path); err != nil {
					return err
				}
				slog.Info("chart written", "path", path)
			}

			resultsPath := filepath.Join(opts.out, "results.json")
			if err := a.SaveJSON(resultsPath); err != nil {
				return err
			}
			slog.Info("results saved", "path", resultsPath)
			if opts.jsonOut {
				return nil
			}

			for _, chart := range []struct {
				name   string
				render func(string) error
			}{
				{"comparison_success_rates.png", a.CompareSuccessRates},
				{"comparison_fidelity_heatmap.png", a.FidelityHeatmap},
			} {
				path := chartPath(opts, chart.name)
				if err := chart.render(path); err != nil {
					return err
				}
				slog.Info("chart written", "path", path)
			}

			const sweepBits = "11"
			points, err := superdense.SweepGateErrors(sweepBits, sweepDegrees, opts.shots, opts.rng)
			if err != nil {
				return err
			}
			sweepPath := chartPath(opts, fmt.Sprintf("gate_error_comparison_%s.png", sweepBits))
			if err := analysis.SweepChart(sweepBits, points, sweepPath); err != nil {
				return err
			}
			slog.Info("chart written", "path", sweepPath)

			fmt.Println()
			return a.WriteReport(os.Stdout)
		},
	}
	cmd.Flags().Float64("degrees", 5, "Gate rotation error for the miscalibrated scenario")
	return cmd
}
