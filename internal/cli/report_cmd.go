package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/provost/internal/cli/formatter"
	"github.com/alexanderramin/provost/internal/report"
	"github.com/spf13/cobra"
)

func newReportCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Assessment aggregation reports",
	}

	cmd.AddCommand(
		newReportStagesCmd(app),
		newReportModulesCmd(app),
		newReportUnassessedCmd(app),
	)

	return cmd
}

func newReportStagesCmd(app *App) *cobra.Command {
	var version string

	cmd := &cobra.Command{
		Use:   "stages <doc>",
		Short: "Assessment category totals per stage of a version",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := openDocument(context.Background(), app, args[0])
			if err != nil {
				return err
			}
			v, err := resolveVersion(p, version)
			if err != nil {
				return err
			}
			stages := report.StageAssessmentTotals(p, v.ID)
			fmt.Printf("%s\n\n", formatter.Bold(v.Label))
			fmt.Print(formatter.FormatStageTotals(stages))
			return nil
		},
	}

	cmd.Flags().StringVar(&version, "version", "", "Version label or ID")

	return cmd
}

func newReportModulesCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "modules <doc>",
		Short: "Assessment mix per module",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := openDocument(context.Background(), app, args[0])
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatModuleSummary(report.ModuleAssessmentSummary(p)))
			return nil
		},
	}
}

func newReportUnassessedCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "unassessed <doc>",
		Short: "Outcomes no assessment covers",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := openDocument(context.Background(), app, args[0])
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatUnassessed(report.UnassessedMIMLOs(p)))
			return nil
		},
	}
}
