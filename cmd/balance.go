package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rowanhk/linebalance/config"
	"github.com/rowanhk/linebalance/core/planner"
	"github.com/rowanhk/linebalance/infra/csvio"
	"github.com/rowanhk/linebalance/infra/logger"
	"github.com/rowanhk/linebalance/pkg/export"
	"github.com/rowanhk/linebalance/pkg/report"
)

var balanceCmd = &cobra.Command{
	Use:   "balance",
	Short: "Plan student moves that even out course enrollment across lines",
	RunE:  runBalance,
}

func init() {
	rootCmd.AddCommand(balanceCmd)
}

func runBalance(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logg := logger.New("balance")

	roster, err := csvio.LoadAllocations(cfg.Input.Path, csvio.Options{
		CodeColumn:      cfg.Input.CodeColumn,
		LinePrefix:      cfg.Input.LinePrefix,
		CoursePrefixLen: cfg.Input.CoursePrefixLen,
	})
	if err != nil {
		return fmt.Errorf("load allocations: %w", err)
	}
	logg.Infof("loaded %d students from %s", roster.Len(), cfg.Input.Path)

	p, err := planner.New(cfg.Planner, logg)
	if err != nil {
		return err
	}
	plan, err := p.Plan(roster)
	if err != nil {
		return fmt.Errorf("plan moves: %w", err)
	}

	paths, err := export.WritePlan(cfg.Output.Dir, plan, export.Format(cfg.Output.Format))
	if err != nil {
		return fmt.Errorf("write outputs: %w", err)
	}
	for name, path := range paths {
		logg.Infof("wrote %s to %s", name, path)
	}

	return report.Render(os.Stdout, plan, cfg.Report.UnbalancedThreshold)
}
