package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/alexanderramin/provost/internal/cli/formatter"
	"github.com/alexanderramin/provost/internal/export"
	"github.com/alexanderramin/provost/internal/trace"
	"github.com/spf13/cobra"
)

func newTraceCmd(app *App) *cobra.Command {
	var csvPath, flowPath string

	cmd := &cobra.Command{
		Use:   "trace <doc>",
		Short: "Show the standards-to-assessment alignment trace",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := openDocument(context.Background(), app, args[0])
			if err != nil {
				return err
			}
			rows := trace.Build(p, app.Standards)

			if csvPath != "" {
				f, err := os.Create(csvPath)
				if err != nil {
					return fmt.Errorf("creating %s: %w", csvPath, err)
				}
				defer f.Close()
				if err := export.WriteTraceCSV(f, rows); err != nil {
					return err
				}
				fmt.Printf("Wrote %d trace rows to %s\n", len(rows), csvPath)
				return nil
			}

			if flowPath != "" {
				flow := trace.BuildFlow(rows)
				f, err := os.Create(flowPath)
				if err != nil {
					return fmt.Errorf("creating %s: %w", flowPath, err)
				}
				defer f.Close()
				enc := json.NewEncoder(f)
				enc.SetIndent("", "  ")
				if err := enc.Encode(flow); err != nil {
					return fmt.Errorf("encoding flow: %w", err)
				}
				fmt.Print(formatter.FormatFlowSummary(flow))
				return nil
			}

			fmt.Print(formatter.FormatTraceTable(rows))
			return nil
		},
	}

	cmd.Flags().StringVar(&csvPath, "csv", "", "Write the trace as CSV to this file")
	cmd.Flags().StringVar(&flowPath, "flow", "", "Write the Sankey flow as JSON to this file")

	return cmd
}
