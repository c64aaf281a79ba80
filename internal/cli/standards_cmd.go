package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/provost/internal/cli/formatter"
	"github.com/alexanderramin/provost/internal/domain"
	"github.com/spf13/cobra"
)

func newStandardsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "standards",
		Short: "Browse award standards and set programme identity",
	}

	cmd.AddCommand(
		newStandardsListCmd(app),
		newStandardsChecklistCmd(app),
		newIdentitySetCmd(app),
		newStandardsSelectCmd(app),
	)

	return cmd
}

func newStandardsListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List known award standards",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Standards == nil {
				fmt.Println("No standards catalog loaded.")
				return nil
			}
			rows := [][]string{}
			for _, ref := range app.Standards.Refs() {
				std := app.Standards.Get(ref)
				levels := make([]string, 0, len(std.Levels))
				for _, l := range std.Levels {
					levels = append(levels, fmt.Sprintf("%d", l))
				}
				rows = append(rows, []string{ref, std.Name, strings.Join(levels, ", ")})
			}
			fmt.Print(formatter.RenderTable([]string{"REF", "NAME", "LEVELS"}, rows))
			return nil
		},
	}
}

func newStandardsChecklistCmd(app *App) *cobra.Command {
	var level int

	cmd := &cobra.Command{
		Use:   "checklist <ref>",
		Short: "Show the criterion/thread checklist for a standard at a level",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Standards == nil {
				return fmt.Errorf("no standards catalog loaded")
			}
			ref := args[0]
			if app.Standards.Get(ref) == nil {
				return fmt.Errorf("unknown standard %q", ref)
			}
			if !app.Standards.SupportsLevel(ref, level) {
				return fmt.Errorf("standard %q has no NFQ level %d", ref, level)
			}
			pairs := app.Standards.Checklist(ref, level)
			rows := make([][]string, 0, len(pairs))
			for _, pair := range pairs {
				rows = append(rows, []string{
					pair.Criterion,
					pair.Thread,
					truncateCell(app.Standards.Descriptor(ref, level, pair.Criterion, pair.Thread), 70),
				})
			}
			fmt.Print(formatter.RenderTable([]string{"CRITERION", "THREAD", "DESCRIPTOR"}, rows))
			return nil
		},
	}

	cmd.Flags().IntVar(&level, "level", 8, "NFQ level")

	return cmd
}

func newIdentitySetCmd(app *App) *cobra.Command {
	var doc, title, school, award string
	var level, credits int

	cmd := &cobra.Command{
		Use:   "identity",
		Short: "Set a document's identity fields",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			p, err := openDocument(ctx, app, doc)
			if err != nil {
				return err
			}
			if title == "" {
				title = p.Title
			}
			if school == "" {
				school = p.School
			}
			awardType := p.AwardType
			if award != "" {
				awardType = domain.AwardType(award)
			}
			if !cmd.Flags().Changed("level") {
				level = p.NFQLevel
			}
			if !cmd.Flags().Changed("credits") {
				credits = p.TotalCredits
			}
			flags := app.Programme.SetIdentity(p, title, school, awardType, level, credits)
			fmt.Printf("Updated identity of %s\n", p.Title)
			return flushAndReport(ctx, app, flags)
		},
	}

	cmd.Flags().StringVar(&doc, "doc", "", "Document ID")
	cmd.Flags().StringVar(&title, "title", "", "Programme title")
	cmd.Flags().StringVar(&school, "school", "", "School name")
	cmd.Flags().StringVar(&award, "award", "", "major, minor, special_purpose or supplemental")
	cmd.Flags().IntVar(&level, "level", 0, "NFQ level (6-9)")
	cmd.Flags().IntVar(&credits, "credits", 0, "Total ECTS credits")
	_ = cmd.MarkFlagRequired("doc")

	return cmd
}

func newStandardsSelectCmd(app *App) *cobra.Command {
	var doc string

	cmd := &cobra.Command{
		Use:   "select <ref>...",
		Short: "Set the award standards a document maps against",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			p, err := openDocument(ctx, app, doc)
			if err != nil {
				return err
			}
			if app.Standards != nil {
				for _, ref := range args {
					if app.Standards.Get(ref) == nil {
						return fmt.Errorf("unknown standard %q", ref)
					}
				}
			}
			flags := app.Programme.SetStandards(p, args)
			fmt.Printf("Document now maps against: %s\n", strings.Join(args, ", "))
			return flushAndReport(ctx, app, flags)
		},
	}

	cmd.Flags().StringVar(&doc, "doc", "", "Document ID")
	_ = cmd.MarkFlagRequired("doc")

	return cmd
}

func truncateCell(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}
