package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/provost/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newDocCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "doc",
		Short: "Manage programme documents",
	}

	cmd.AddCommand(
		newDocNewCmd(app),
		newDocListCmd(app),
		newDocShowCmd(app),
		newDocRemoveCmd(app),
		newDocHistoryCmd(app),
	)

	return cmd
}

func newDocNewCmd(app *App) *cobra.Command {
	var title string

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Create a new programme document",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.Documents.New(context.Background(), title)
			if err != nil {
				return err
			}
			fmt.Printf("Created document %s [%s]\n", p.Title, formatter.ShortID(p.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Programme title")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

func newDocListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored documents",
		RunE: func(cmd *cobra.Command, args []string) error {
			infos, err := app.Documents.List(context.Background())
			if err != nil {
				return err
			}
			if len(infos) == 0 {
				fmt.Println("No documents found.")
				return nil
			}
			fmt.Print(formatter.FormatDocumentList(infos))
			return nil
		},
	}
}

func newDocShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <doc>",
		Short: "Show a document summary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := openDocument(context.Background(), app, args[0])
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatProgrammeSummary(p))
			return nil
		},
	}
}

func newDocRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <doc>",
		Short: "Delete a document and its autosaves",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveDocumentID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Documents.Delete(ctx, id); err != nil {
				return err
			}
			fmt.Printf("Deleted document %s\n", formatter.ShortID(id))
			return nil
		},
	}
}

func newDocHistoryCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history <doc>",
		Short: "Show autosave history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveDocumentID(ctx, app, args[0])
			if err != nil {
				return err
			}
			snaps, err := app.Documents.History(ctx, id, limit)
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatHistory(snaps))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum snapshots to show")

	return cmd
}
