package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/deadserpent/superdense/superdense"
	"github.com/deadserpent/superdense/superdense/analysis"
)

func newNoisyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "noisy",
		Short: "Run the protocol under realistic hardware noise",
		Long: `Run the protocol under depolarizing and thermal relaxation noise at one
of the built-in levels, or all of them. The medium level is the reference
configuration and should decode 90-92% of messages correctly.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("shots") {
				if err := cmd.Flags().Set("shots", "2048"); err != nil {
					return err
				}
			}
			opts, err := gatherOptions(cmd)
			if err != nil {
				return err
			}
			level, _ := cmd.Flags().GetString("level")

			levels := []string{level}
			if level == "all" {
				levels = superdense.NoiseLevelNames()
			}
			for _, lv := range levels {
				s, err := superdense.Noisy(lv, opts.cfg)
				if err != nil {
					return err
				}
				results, err := runScenario(opts, s)
				if err != nil {
					return err
				}
				if opts.jsonOut {
					continue
				}
				sr := analysis.ScenarioResults{Name: s.Name(), Results: results}
				name := fmt.Sprintf("superdense_noisy_%s.png", lv)
				if err := analysis.ScenarioChart(sr, chartPath(opts, name)); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().String("level", "all", "Noise level: low, medium, high or all")
	return cmd
}
