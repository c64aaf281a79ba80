package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/provost/internal/cli/formatter"
	"github.com/alexanderramin/provost/internal/domain"
	"github.com/spf13/cobra"
)

func newOutcomeCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plo",
		Short: "Manage programme learning outcomes",
	}

	cmd.AddCommand(
		newPLOAddCmd(app),
		newPLOListCmd(app),
		newPLORemoveCmd(app),
		newPLOMapCmd(app),
		newPLOUnmapCmd(app),
		newPLOStandardCmd(app),
	)

	return cmd
}

func newPLOAddCmd(app *App) *cobra.Command {
	var doc, text string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a programme learning outcome",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			p, err := openDocument(ctx, app, doc)
			if err != nil {
				return err
			}
			plo, flags := app.Programme.AddPLO(p, text)
			fmt.Printf("Added PLO%d [%s]\n", len(p.PLOs), formatter.ShortID(plo.ID))
			return flushAndReport(ctx, app, flags)
		},
	}

	cmd.Flags().StringVar(&doc, "doc", "", "Document ID")
	cmd.Flags().StringVar(&text, "text", "", "Outcome text")
	_ = cmd.MarkFlagRequired("doc")
	_ = cmd.MarkFlagRequired("text")

	return cmd
}

func newPLOListCmd(app *App) *cobra.Command {
	var doc string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List learning outcomes and their delivery",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := openDocument(context.Background(), app, doc)
			if err != nil {
				return err
			}
			if len(p.PLOs) == 0 {
				fmt.Println("No learning outcomes yet.")
				return nil
			}
			rows := make([][]string, 0, len(p.PLOs))
			for i := range p.PLOs {
				plo := &p.PLOs[i]
				delivered := fmt.Sprintf("%d module(s)", len(p.PLOModuleMap[plo.ID]))
				if len(p.PLOModuleMap[plo.ID]) == 0 {
					delivered = formatter.StyleYellow.Render("unmapped")
				}
				rows = append(rows, []string{
					fmt.Sprintf("PLO%d", i+1),
					plo.Text,
					delivered,
					fmt.Sprintf("%d mapping(s)", len(plo.Mappings)),
				})
			}
			fmt.Print(formatter.RenderTable([]string{"#", "TEXT", "DELIVERY", "STANDARDS"}, rows))
			return nil
		},
	}

	cmd.Flags().StringVar(&doc, "doc", "", "Document ID")
	_ = cmd.MarkFlagRequired("doc")

	return cmd
}

func newPLORemoveCmd(app *App) *cobra.Command {
	var doc string

	cmd := &cobra.Command{
		Use:   "rm <plo>",
		Short: "Remove a learning outcome and its module mapping",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			p, err := openDocument(ctx, app, doc)
			if err != nil {
				return err
			}
			plo, err := resolvePLO(p, args[0])
			if err != nil {
				return err
			}
			flags, err := app.Programme.RemovePLO(p, plo.ID)
			if err != nil {
				return err
			}
			fmt.Println("Removed learning outcome.")
			return flushAndReport(ctx, app, flags)
		},
	}

	cmd.Flags().StringVar(&doc, "doc", "", "Document ID")
	_ = cmd.MarkFlagRequired("doc")

	return cmd
}

func newPLOMapCmd(app *App) *cobra.Command {
	var doc, module string

	cmd := &cobra.Command{
		Use:   "map <plo>",
		Short: "Mark a module as delivering a learning outcome",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			p, err := openDocument(ctx, app, doc)
			if err != nil {
				return err
			}
			plo, err := resolvePLO(p, args[0])
			if err != nil {
				return err
			}
			m, err := resolveModule(p, module)
			if err != nil {
				return err
			}
			flags, err := app.Programme.MapPLO(p, plo.ID, m.ID)
			if err != nil {
				return err
			}
			fmt.Printf("Mapped %s to %s\n", args[0], m.DisplayLabel())
			return flushAndReport(ctx, app, flags)
		},
	}

	cmd.Flags().StringVar(&doc, "doc", "", "Document ID")
	cmd.Flags().StringVar(&module, "module", "", "Module code or ID")
	_ = cmd.MarkFlagRequired("doc")
	_ = cmd.MarkFlagRequired("module")

	return cmd
}

func newPLOUnmapCmd(app *App) *cobra.Command {
	var doc, module string

	cmd := &cobra.Command{
		Use:   "unmap <plo>",
		Short: "Remove a module from a learning outcome's delivery",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			p, err := openDocument(ctx, app, doc)
			if err != nil {
				return err
			}
			plo, err := resolvePLO(p, args[0])
			if err != nil {
				return err
			}
			m, err := resolveModule(p, module)
			if err != nil {
				return err
			}
			flags := app.Programme.UnmapPLO(p, plo.ID, m.ID)
			fmt.Printf("Unmapped %s from %s\n", args[0], m.DisplayLabel())
			return flushAndReport(ctx, app, flags)
		},
	}

	cmd.Flags().StringVar(&doc, "doc", "", "Document ID")
	cmd.Flags().StringVar(&module, "module", "", "Module code or ID")
	_ = cmd.MarkFlagRequired("doc")
	_ = cmd.MarkFlagRequired("module")

	return cmd
}

func newPLOStandardCmd(app *App) *cobra.Command {
	var doc, ref, criterion, thread string

	cmd := &cobra.Command{
		Use:   "map-standard <plo>",
		Short: "Map a learning outcome to an award standard thread",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			p, err := openDocument(ctx, app, doc)
			if err != nil {
				return err
			}
			plo, err := resolvePLO(p, args[0])
			if err != nil {
				return err
			}
			if app.Standards != nil && app.Standards.Get(ref) == nil {
				return fmt.Errorf("unknown standard %q", ref)
			}
			sm := domain.StandardMapping{StandardRef: ref, Criterion: criterion, Thread: thread}
			flags, err := app.Programme.AddStandardMapping(p, plo.ID, sm)
			if err != nil {
				return err
			}
			fmt.Printf("Mapped %s to %s / %s (%s)\n", args[0], criterion, thread, ref)
			return flushAndReport(ctx, app, flags)
		},
	}

	cmd.Flags().StringVar(&doc, "doc", "", "Document ID")
	cmd.Flags().StringVar(&ref, "standard", "", "Standard ref, e.g. computing-2014")
	cmd.Flags().StringVar(&criterion, "criterion", "", "Criterion, e.g. Knowledge")
	cmd.Flags().StringVar(&thread, "thread", "", "Thread, e.g. Breadth")
	_ = cmd.MarkFlagRequired("doc")
	_ = cmd.MarkFlagRequired("standard")
	_ = cmd.MarkFlagRequired("criterion")
	_ = cmd.MarkFlagRequired("thread")

	return cmd
}
