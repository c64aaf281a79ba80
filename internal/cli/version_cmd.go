package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/provost/internal/cli/formatter"
	"github.com/alexanderramin/provost/internal/domain"
	"github.com/spf13/cobra"
)

func newVersionCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Manage delivery versions and stages",
	}

	cmd.AddCommand(
		newVersionAddCmd(app),
		newVersionListCmd(app),
		newVersionRemoveCmd(app),
		newVersionSetCmd(app),
		newStageAddCmd(app),
		newStageRemoveCmd(app),
		newStageAssignCmd(app),
		newStageUnassignCmd(app),
	)

	return cmd
}

func newVersionAddCmd(app *App) *cobra.Command {
	var doc, label string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a delivery version",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			p, err := openDocument(ctx, app, doc)
			if err != nil {
				return err
			}
			v, flags := app.Programme.AddVersion(p, label)
			fmt.Printf("Added version %s [%s]\n", v.Label, formatter.ShortID(v.ID))
			return flushAndReport(ctx, app, flags)
		},
	}

	cmd.Flags().StringVar(&doc, "doc", "", "Document ID")
	cmd.Flags().StringVar(&label, "label", "", "Version label, e.g. Full-time")
	_ = cmd.MarkFlagRequired("doc")
	_ = cmd.MarkFlagRequired("label")

	return cmd
}

func newVersionListCmd(app *App) *cobra.Command {
	var doc string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List delivery versions",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := openDocument(context.Background(), app, doc)
			if err != nil {
				return err
			}
			if len(p.Versions) == 0 {
				fmt.Println("No versions yet.")
				return nil
			}
			rows := make([][]string, 0, len(p.Versions))
			for i := range p.Versions {
				v := &p.Versions[i]
				rows = append(rows, []string{
					formatter.ShortID(v.ID),
					v.Label,
					string(v.Modality),
					fmt.Sprintf("%d/%d/%d", v.Pattern.SyncPct, v.Pattern.AsyncPct, v.Pattern.CampusPct),
					fmt.Sprintf("%d stage(s)", len(v.Stages)),
				})
			}
			fmt.Print(formatter.RenderTable(
				[]string{"ID", "LABEL", "MODALITY", "SYNC/ASYNC/CAMPUS", "STAGES"}, rows))
			return nil
		},
	}

	cmd.Flags().StringVar(&doc, "doc", "", "Document ID")
	_ = cmd.MarkFlagRequired("doc")

	return cmd
}

func newVersionRemoveCmd(app *App) *cobra.Command {
	var doc string

	cmd := &cobra.Command{
		Use:   "rm <version>",
		Short: "Remove a delivery version and its stages",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			p, err := openDocument(ctx, app, doc)
			if err != nil {
				return err
			}
			v, err := resolveVersion(p, args[0])
			if err != nil {
				return err
			}
			flags, err := app.Programme.RemoveVersion(p, v.ID)
			if err != nil {
				return err
			}
			fmt.Println("Removed version.")
			return flushAndReport(ctx, app, flags)
		},
	}

	cmd.Flags().StringVar(&doc, "doc", "", "Document ID")
	_ = cmd.MarkFlagRequired("doc")

	return cmd
}

func newVersionSetCmd(app *App) *cobra.Command {
	var doc, modality string
	var syncPct, asyncPct, campusPct int

	cmd := &cobra.Command{
		Use:   "set <version>",
		Short: "Set a version's modality and delivery pattern",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			p, err := openDocument(ctx, app, doc)
			if err != nil {
				return err
			}
			v, err := resolveVersion(p, args[0])
			if err != nil {
				return err
			}
			if modality != "" && !domain.ValidModalities[modality] {
				return fmt.Errorf("unknown modality %q", modality)
			}
			flags, err := app.Programme.UpdateVersion(p, v.ID, func(v *domain.Version) {
				if modality != "" {
					v.Modality = domain.Modality(modality)
				}
				if cmd.Flags().Changed("sync") || cmd.Flags().Changed("async") || cmd.Flags().Changed("campus") {
					v.Pattern = domain.DeliveryPattern{SyncPct: syncPct, AsyncPct: asyncPct, CampusPct: campusPct}
				}
			})
			if err != nil {
				return err
			}
			fmt.Printf("Updated version %s\n", v.Label)
			return flushAndReport(ctx, app, flags)
		},
	}

	cmd.Flags().StringVar(&doc, "doc", "", "Document ID")
	cmd.Flags().StringVar(&modality, "modality", "", "on_site, blended or online")
	cmd.Flags().IntVar(&syncPct, "sync", 0, "Synchronous online percentage")
	cmd.Flags().IntVar(&asyncPct, "async", 0, "Asynchronous online percentage")
	cmd.Flags().IntVar(&campusPct, "campus", 0, "On-campus percentage")
	_ = cmd.MarkFlagRequired("doc")

	return cmd
}

func newStageAddCmd(app *App) *cobra.Command {
	var doc, version, name string
	var target int

	cmd := &cobra.Command{
		Use:   "stage-add",
		Short: "Add a stage to a version",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			p, err := openDocument(ctx, app, doc)
			if err != nil {
				return err
			}
			v, err := resolveVersion(p, version)
			if err != nil {
				return err
			}
			st, flags, err := app.Programme.AddStage(p, v.ID, name, target)
			if err != nil {
				return err
			}
			fmt.Printf("Added stage %s (#%d) to %s\n", st.Name, st.Sequence, v.Label)
			return flushAndReport(ctx, app, flags)
		},
	}

	cmd.Flags().StringVar(&doc, "doc", "", "Document ID")
	cmd.Flags().StringVar(&version, "version", "", "Version label or ID")
	cmd.Flags().StringVar(&name, "name", "", "Stage name, e.g. Year 1")
	cmd.Flags().IntVar(&target, "target", 0, "Credit target for the stage")
	_ = cmd.MarkFlagRequired("doc")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newStageRemoveCmd(app *App) *cobra.Command {
	var doc, version string

	cmd := &cobra.Command{
		Use:   "stage-rm <stage-id>",
		Short: "Remove a stage",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			p, err := openDocument(ctx, app, doc)
			if err != nil {
				return err
			}
			v, err := resolveVersion(p, version)
			if err != nil {
				return err
			}
			flags, err := app.Programme.RemoveStage(p, v.ID, args[0])
			if err != nil {
				return err
			}
			fmt.Println("Removed stage.")
			return flushAndReport(ctx, app, flags)
		},
	}

	cmd.Flags().StringVar(&doc, "doc", "", "Document ID")
	cmd.Flags().StringVar(&version, "version", "", "Version label or ID")
	_ = cmd.MarkFlagRequired("doc")

	return cmd
}

func newStageAssignCmd(app *App) *cobra.Command {
	var doc, version, stage, semester string

	cmd := &cobra.Command{
		Use:   "assign <module>",
		Short: "Assign a module to a stage",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			p, err := openDocument(ctx, app, doc)
			if err != nil {
				return err
			}
			v, err := resolveVersion(p, version)
			if err != nil {
				return err
			}
			m, err := resolveModule(p, args[0])
			if err != nil {
				return err
			}
			flags, err := app.Programme.AssignModule(p, v.ID, stage, m.ID, semester)
			if err != nil {
				return err
			}
			fmt.Printf("Assigned %s\n", m.DisplayLabel())
			return flushAndReport(ctx, app, flags)
		},
	}

	cmd.Flags().StringVar(&doc, "doc", "", "Document ID")
	cmd.Flags().StringVar(&version, "version", "", "Version label or ID")
	cmd.Flags().StringVar(&stage, "stage", "", "Stage ID")
	cmd.Flags().StringVar(&semester, "semester", "", "Semester tag, e.g. S1")
	_ = cmd.MarkFlagRequired("doc")
	_ = cmd.MarkFlagRequired("stage")

	return cmd
}

func newStageUnassignCmd(app *App) *cobra.Command {
	var doc, version, stage string

	cmd := &cobra.Command{
		Use:   "unassign <module>",
		Short: "Remove a module from a stage",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			p, err := openDocument(ctx, app, doc)
			if err != nil {
				return err
			}
			v, err := resolveVersion(p, version)
			if err != nil {
				return err
			}
			m, err := resolveModule(p, args[0])
			if err != nil {
				return err
			}
			flags, err := app.Programme.UnassignModule(p, v.ID, stage, m.ID)
			if err != nil {
				return err
			}
			fmt.Printf("Unassigned %s\n", m.DisplayLabel())
			return flushAndReport(ctx, app, flags)
		},
	}

	cmd.Flags().StringVar(&doc, "doc", "", "Document ID")
	cmd.Flags().StringVar(&version, "version", "", "Version label or ID")
	cmd.Flags().StringVar(&stage, "stage", "", "Stage ID")
	_ = cmd.MarkFlagRequired("doc")
	_ = cmd.MarkFlagRequired("stage")

	return cmd
}
