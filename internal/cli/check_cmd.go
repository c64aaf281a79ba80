package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/provost/internal/cli/formatter"
	"github.com/alexanderramin/provost/internal/validate"
	"github.com/spf13/cobra"
)

func newCheckCmd(app *App) *cobra.Command {
	var warningsOnly bool

	cmd := &cobra.Command{
		Use:   "check <doc>",
		Short: "Run full consistency validation on a document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := openDocument(context.Background(), app, args[0])
			if err != nil {
				return err
			}
			flags := validate.Validate(p)
			if warningsOnly {
				flags = validate.Warnings(flags)
			}
			fmt.Print(formatter.FormatFlags(flags))
			if len(validate.Errors(flags)) > 0 {
				return fmt.Errorf("document has validation errors")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&warningsOnly, "warnings-only", false, "Show warnings and hide errors")

	return cmd
}
