package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/provost/internal/cli/formatter"
	"github.com/alexanderramin/provost/internal/trace"
	"github.com/alexanderramin/provost/internal/validate"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newReviewCmd(app *App) *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "review <doc>",
		Short: "Browse issues and the alignment trace",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := openDocument(context.Background(), app, args[0])
			if err != nil {
				return err
			}
			flags := validate.Validate(p)
			rows := trace.Build(p, app.Standards)

			interactive := app.IsInteractive != nil && app.IsInteractive()
			if plain || !interactive {
				fmt.Print(formatter.FormatFlags(flags))
				fmt.Println()
				fmt.Print(formatter.FormatTraceTable(rows))
				return nil
			}

			prog := tea.NewProgram(newReviewModel(p, flags, rows), tea.WithAltScreen())
			_, err = prog.Run()
			return err
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "Print without the interactive viewer")

	return cmd
}
