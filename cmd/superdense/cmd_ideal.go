package main

import (
	"github.com/spf13/cobra"

	"github.com/deadserpent/superdense/superdense"
	"github.com/deadserpent/superdense/superdense/analysis"
)

func newIdealCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ideal",
		Short: "Run the protocol without noise",
		Long: `Run all four two-bit messages through the noiseless protocol. Every
message should decode with 100% fidelity; anything less indicates a broken
circuit or bit-ordering bug.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := gatherOptions(cmd)
			if err != nil {
				return err
			}
			results, err := runScenario(opts, superdense.Ideal())
			if err != nil {
				return err
			}
			if opts.jsonOut {
				return nil
			}
			sr := analysis.ScenarioResults{Name: superdense.Ideal().Name(), Results: results}
			return analysis.ScenarioChart(sr, chartPath(opts, "superdense_coding_results.png"))
		},
	}
}
