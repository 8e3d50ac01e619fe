package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rowanhk/linebalance/config"
	"github.com/rowanhk/linebalance/core/analysis"
	"github.com/rowanhk/linebalance/infra/csvio"
	"github.com/rowanhk/linebalance/infra/logger"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Report per-course enrollment distributions without planning moves",
	RunE:  runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logg := logger.New("analyze")

	roster, err := csvio.LoadAllocations(cfg.Input.Path, csvio.Options{
		CodeColumn:      cfg.Input.CodeColumn,
		LinePrefix:      cfg.Input.LinePrefix,
		CoursePrefixLen: cfg.Input.CoursePrefixLen,
	})
	if err != nil {
		return fmt.Errorf("load allocations: %w", err)
	}
	logg.Infof("loaded %d students from %s", roster.Len(), cfg.Input.Path)

	dists := analysis.Snapshot(roster, cfg.Planner.IgnoreZeros)
	ranking := analysis.Rank(dists, cfg.Planner.MinLines, cfg.Planner.TopOnly)

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "COURSE\tLINES\tRANGE\tMAX\tMIN\tMEAN\tSTDDEV")
	for _, d := range ranking.Ranked {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%d\t%.1f\t%.2f\n",
			d.Course, d.AppearsIn, d.Range, d.Max, d.Min, d.Mean, d.StdDev)
	}
	return tw.Flush()
}
