package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vfg2006/production-report-api/pkg/utils"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Imprime o relatório em JSON",
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	env, err := openEnvironment(ctx)
	if err != nil {
		return err
	}
	defer env.Close()

	req, err := parseRequest(opts, env.cfg.App.Location)
	if err != nil {
		return err
	}

	report, err := env.reporter.GetReport(ctx, opts.OwnerID, req.view, req.filters)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), utils.PrettyJson(report))
	return err
}
