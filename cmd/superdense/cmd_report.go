package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/deadserpent/superdense/superdense/analysis"
)

func newReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print the analysis report from saved results",
		Long: `Regenerate the comparison report from a results.json written by a
previous run, without re-running the simulations.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("results")
			if path == "" {
				out, _ := cmd.Flags().GetString("out")
				path = filepath.Join(out, "results.json")
			}
			a, err := analysis.LoadJSON(path)
			if err != nil {
				return err
			}
			return a.WriteReport(os.Stdout)
		},
	}
	cmd.Flags().String("results", "", "Results file to report on (default <out>/results.json)")
	return cmd
}
