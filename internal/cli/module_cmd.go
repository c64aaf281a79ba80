package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/provost/internal/cli/formatter"
	"github.com/alexanderramin/provost/internal/domain"
	"github.com/alexanderramin/provost/internal/validate"
	"github.com/spf13/cobra"
)

func newModuleCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "module",
		Short: "Manage modules and their contents",
	}

	cmd.AddCommand(
		newModuleAddCmd(app),
		newModuleListCmd(app),
		newModuleRemoveCmd(app),
		newMIMLOAddCmd(app),
		newMIMLORemoveCmd(app),
		newAssessAddCmd(app),
		newAssessRemoveCmd(app),
		newReadingAddCmd(app),
		newReadingFillCmd(app),
		newEffortSetCmd(app),
	)

	return cmd
}

// flushAndReport persists pending edits and prints the validation
// outcome of the mutation.
func flushAndReport(ctx context.Context, app *App, flags []validate.Flag) error {
	if err := app.Documents.Flush(ctx); err != nil {
		return fmt.Errorf("saving document: %w", err)
	}
	if errs := validate.Errors(flags); len(errs) > 0 {
		fmt.Print(formatter.FormatFlags(errs))
	}
	return nil
}

func newModuleAddCmd(app *App) *cobra.Command {
	var doc, code, title string
	var credits int
	var elective bool

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a module to a document",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			p, err := openDocument(ctx, app, doc)
			if err != nil {
				return err
			}
			m, flags := app.Programme.AddModule(p, code, title, credits, elective)
			fmt.Printf("Added module %s\n", m.DisplayLabel())
			return flushAndReport(ctx, app, flags)
		},
	}

	cmd.Flags().StringVar(&doc, "doc", "", "Document ID")
	cmd.Flags().StringVar(&code, "code", "", "Module code, e.g. COMP101")
	cmd.Flags().StringVar(&title, "title", "", "Module title")
	cmd.Flags().IntVar(&credits, "credits", 0, "ECTS credits")
	cmd.Flags().BoolVar(&elective, "elective", false, "Mark as elective")
	_ = cmd.MarkFlagRequired("doc")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

func newModuleListCmd(app *App) *cobra.Command {
	var doc string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List a document's modules",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := openDocument(context.Background(), app, doc)
			if err != nil {
				return err
			}
			if len(p.Modules) == 0 {
				fmt.Println("No modules yet.")
				return nil
			}
			rows := make([][]string, 0, len(p.Modules))
			for i := range p.Modules {
				m := &p.Modules[i]
				kind := ""
				if m.Elective {
					kind = formatter.Dim("elective")
				}
				rows = append(rows, []string{
					formatter.ShortID(m.ID),
					m.Code,
					m.Title,
					fmt.Sprintf("%d", m.Credits),
					fmt.Sprintf("%d", len(m.MIMLOs)),
					fmt.Sprintf("%d", len(m.Assessments)),
					kind,
				})
			}
			fmt.Print(formatter.RenderTable(
				[]string{"ID", "CODE", "TITLE", "CREDITS", "MIMLOS", "ASSESSMENTS", ""}, rows))
			return nil
		},
	}

	cmd.Flags().StringVar(&doc, "doc", "", "Document ID")
	_ = cmd.MarkFlagRequired("doc")

	return cmd
}

func newModuleRemoveCmd(app *App) *cobra.Command {
	var doc string

	cmd := &cobra.Command{
		Use:   "rm <module>",
		Short: "Remove a module and every reference to it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			p, err := openDocument(ctx, app, doc)
			if err != nil {
				return err
			}
			m, err := resolveModule(p, args[0])
			if err != nil {
				return err
			}
			label := m.DisplayLabel()
			flags, err := app.Programme.RemoveModule(p, m.ID)
			if err != nil {
				return err
			}
			fmt.Printf("Removed module %s\n", label)
			return flushAndReport(ctx, app, flags)
		},
	}

	cmd.Flags().StringVar(&doc, "doc", "", "Document ID")
	_ = cmd.MarkFlagRequired("doc")

	return cmd
}

func newMIMLOAddCmd(app *App) *cobra.Command {
	var doc, module, text string

	cmd := &cobra.Command{
		Use:   "outcome-add",
		Short: "Add a learning outcome to a module",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			p, err := openDocument(ctx, app, doc)
			if err != nil {
				return err
			}
			m, err := resolveModule(p, module)
			if err != nil {
				return err
			}
			lo, flags, err := app.Programme.AddMIMLO(p, m.ID, text)
			if err != nil {
				return err
			}
			fmt.Printf("Added outcome %s to %s\n", formatter.ShortID(lo.ID), m.DisplayLabel())
			return flushAndReport(ctx, app, flags)
		},
	}

	cmd.Flags().StringVar(&doc, "doc", "", "Document ID")
	cmd.Flags().StringVar(&module, "module", "", "Module code or ID")
	cmd.Flags().StringVar(&text, "text", "", "Outcome text")
	_ = cmd.MarkFlagRequired("doc")
	_ = cmd.MarkFlagRequired("module")
	_ = cmd.MarkFlagRequired("text")

	return cmd
}

func newMIMLORemoveCmd(app *App) *cobra.Command {
	var doc, module string

	cmd := &cobra.Command{
		Use:   "outcome-rm <outcome-id>",
		Short: "Remove a module learning outcome",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			p, err := openDocument(ctx, app, doc)
			if err != nil {
				return err
			}
			m, err := resolveModule(p, module)
			if err != nil {
				return err
			}
			flags, err := app.Programme.RemoveMIMLO(p, m.ID, args[0])
			if err != nil {
				return err
			}
			fmt.Println("Removed outcome; assessment coverage updated.")
			return flushAndReport(ctx, app, flags)
		},
	}

	cmd.Flags().StringVar(&doc, "doc", "", "Document ID")
	cmd.Flags().StringVar(&module, "module", "", "Module code or ID")
	_ = cmd.MarkFlagRequired("doc")
	_ = cmd.MarkFlagRequired("module")

	return cmd
}

func newAssessAddCmd(app *App) *cobra.Command {
	var doc, module, title, typ, covers string
	var weighting int

	cmd := &cobra.Command{
		Use:   "assess-add",
		Short: "Add an assessment to a module",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			p, err := openDocument(ctx, app, doc)
			if err != nil {
				return err
			}
			m, err := resolveModule(p, module)
			if err != nil {
				return err
			}
			var coverIDs []string
			if covers != "" {
				coverIDs = strings.Split(covers, ",")
			}
			a, flags, err := app.Programme.AddAssessment(p, m.ID, title, typ, weighting, coverIDs)
			if err != nil {
				return err
			}
			fmt.Printf("Added %s (%d%%) to %s\n", a.Title, a.Weighting, m.DisplayLabel())
			return flushAndReport(ctx, app, flags)
		},
	}

	cmd.Flags().StringVar(&doc, "doc", "", "Document ID")
	cmd.Flags().StringVar(&module, "module", "", "Module code or ID")
	cmd.Flags().StringVar(&title, "title", "", "Assessment title")
	cmd.Flags().StringVar(&typ, "type", "", "Assessment type, e.g. written exam")
	cmd.Flags().IntVar(&weighting, "weighting", 0, "Weighting percentage")
	cmd.Flags().StringVar(&covers, "covers", "", "Comma-separated MIMLO IDs")
	_ = cmd.MarkFlagRequired("doc")
	_ = cmd.MarkFlagRequired("module")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("type")

	return cmd
}

func newAssessRemoveCmd(app *App) *cobra.Command {
	var doc, module string

	cmd := &cobra.Command{
		Use:   "assess-rm <assessment-id>",
		Short: "Remove an assessment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			p, err := openDocument(ctx, app, doc)
			if err != nil {
				return err
			}
			m, err := resolveModule(p, module)
			if err != nil {
				return err
			}
			flags, err := app.Programme.RemoveAssessment(p, m.ID, args[0])
			if err != nil {
				return err
			}
			fmt.Println("Removed assessment.")
			return flushAndReport(ctx, app, flags)
		},
	}

	cmd.Flags().StringVar(&doc, "doc", "", "Document ID")
	cmd.Flags().StringVar(&module, "module", "", "Module code or ID")
	_ = cmd.MarkFlagRequired("doc")
	_ = cmd.MarkFlagRequired("module")

	return cmd
}

func newReadingAddCmd(app *App) *cobra.Command {
	var doc, module, author, title, isbn, kind string

	cmd := &cobra.Command{
		Use:   "reading-add",
		Short: "Add a reading list item",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			p, err := openDocument(ctx, app, doc)
			if err != nil {
				return err
			}
			m, err := resolveModule(p, module)
			if err != nil {
				return err
			}
			item := domain.ReadingItem{
				Author: author,
				Title:  title,
				ISBN:   isbn,
				Kind:   domain.ReadingKind(kind),
			}
			r, flags, err := app.Programme.AddReading(p, m.ID, item)
			if err != nil {
				return err
			}
			fmt.Printf("Added reading item %s\n", formatter.ShortID(r.ID))
			return flushAndReport(ctx, app, flags)
		},
	}

	cmd.Flags().StringVar(&doc, "doc", "", "Document ID")
	cmd.Flags().StringVar(&module, "module", "", "Module code or ID")
	cmd.Flags().StringVar(&author, "author", "", "Author")
	cmd.Flags().StringVar(&title, "title", "", "Title")
	cmd.Flags().StringVar(&isbn, "isbn", "", "ISBN for metadata lookup")
	cmd.Flags().StringVar(&kind, "kind", "secondary", "core or secondary")
	_ = cmd.MarkFlagRequired("doc")
	_ = cmd.MarkFlagRequired("module")

	return cmd
}

func newReadingFillCmd(app *App) *cobra.Command {
	var doc, module string

	cmd := &cobra.Command{
		Use:   "reading-fill <item-id>",
		Short: "Fill a reading item from its ISBN",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			p, err := openDocument(ctx, app, doc)
			if err != nil {
				return err
			}
			m, err := resolveModule(p, module)
			if err != nil {
				return err
			}
			if app.Lookup == nil {
				return fmt.Errorf("ISBN lookup is disabled (set PROVOST_LOOKUP_ENABLED=1)")
			}
			if err := app.Lookup.FillReading(ctx, p, m.ID, args[0]); err != nil {
				return err
			}
			if err := app.Documents.Flush(ctx); err != nil {
				return fmt.Errorf("saving document: %w", err)
			}
			fmt.Println("Reading item filled from ISBN lookup.")
			return nil
		},
	}

	cmd.Flags().StringVar(&doc, "doc", "", "Document ID")
	cmd.Flags().StringVar(&module, "module", "", "Module code or ID")
	_ = cmd.MarkFlagRequired("doc")
	_ = cmd.MarkFlagRequired("module")

	return cmd
}

func newEffortSetCmd(app *App) *cobra.Command {
	var doc, module, version, modality string
	var lecture, tutorial, practical, syncOnline, asyncOnline, independent, workplace int

	cmd := &cobra.Command{
		Use:   "effort-set",
		Short: "Set effort hours for a module in one version and modality",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			p, err := openDocument(ctx, app, doc)
			if err != nil {
				return err
			}
			m, err := resolveModule(p, module)
			if err != nil {
				return err
			}
			v, err := resolveVersion(p, version)
			if err != nil {
				return err
			}
			if !domain.ValidModalities[modality] {
				return fmt.Errorf("unknown modality %q", modality)
			}
			mod := domain.Modality(modality)
			hours := domain.EffortHours{
				Lecture:     lecture,
				Tutorial:    tutorial,
				Practical:   practical,
				SyncOnline:  syncOnline,
				AsyncOnline: asyncOnline,
				Independent: independent,
				WorkPlace:   workplace,
			}
			flags, err := app.Programme.SetEffort(p, m.ID, v.ID, mod, hours)
			if err != nil {
				return err
			}
			fmt.Printf("Effort for %s in %s/%s: %d hours total\n",
				m.DisplayLabel(), v.Label, modality, hours.Total())
			return flushAndReport(ctx, app, flags)
		},
	}

	cmd.Flags().StringVar(&doc, "doc", "", "Document ID")
	cmd.Flags().StringVar(&module, "module", "", "Module code or ID")
	cmd.Flags().StringVar(&version, "version", "", "Version label or ID")
	cmd.Flags().StringVar(&modality, "modality", "on_site", "on_site, blended or online")
	cmd.Flags().IntVar(&lecture, "lecture", 0, "Lecture hours")
	cmd.Flags().IntVar(&tutorial, "tutorial", 0, "Tutorial hours")
	cmd.Flags().IntVar(&practical, "practical", 0, "Practical hours")
	cmd.Flags().IntVar(&syncOnline, "sync-online", 0, "Synchronous online hours")
	cmd.Flags().IntVar(&asyncOnline, "async-online", 0, "Asynchronous online hours")
	cmd.Flags().IntVar(&independent, "independent", 0, "Independent study hours")
	cmd.Flags().IntVar(&workplace, "workplace", 0, "Work placement hours")
	_ = cmd.MarkFlagRequired("doc")
	_ = cmd.MarkFlagRequired("module")

	return cmd
}
