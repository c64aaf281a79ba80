package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/provost/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newImportCmd(app *App) *cobra.Command {
	var adopt bool

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Validate an external JSON document, optionally adopting it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			p, problems, err := app.Documents.Import(ctx, args[0])
			if err != nil {
				return err
			}

			if len(problems) > 0 {
				fmt.Print(formatter.Header("Import Problems"))
				fmt.Println()
				for _, pe := range problems {
					fmt.Printf("  %s  %v\n", formatter.StyleRed.Render("●"), pe)
				}
				if adopt {
					return fmt.Errorf("refusing to adopt a document with %d problem(s)", len(problems))
				}
				return nil
			}

			fmt.Printf("Document %q is structurally sound.\n", p.Title)
			if !adopt {
				fmt.Println(formatter.Dim("Re-run with --adopt to store it."))
				return nil
			}

			if err := app.Documents.Adopt(ctx, p); err != nil {
				return err
			}
			fmt.Printf("Adopted document %s [%s]\n", p.Title, formatter.ShortID(p.ID))
			return nil
		},
	}

	cmd.Flags().BoolVar(&adopt, "adopt", false, "Store the document after a clean validation")

	return cmd
}
