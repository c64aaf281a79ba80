package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/provost/internal/cli/formatter"
	"github.com/alexanderramin/provost/internal/domain"
	"github.com/alexanderramin/provost/internal/validate"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

func newWizardCmd(app *App) *cobra.Command {
	var doc, mode string

	cmd := &cobra.Command{
		Use:   "wizard",
		Short: "Walk through the authoring steps interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return fmt.Errorf("wizard requires an interactive terminal")
			}

			ctx := context.Background()
			p, err := wizardDocument(ctx, app, doc)
			if err != nil {
				return err
			}

			editorMode := domain.EditorMode(mode)
			if editorMode != domain.ModeOwner && editorMode != domain.ModeModuleEditor {
				return fmt.Errorf("unknown mode %q", mode)
			}

			w := &wizard{app: app, p: p}
			for _, step := range domain.VisibleSteps(editorMode, domain.AllSteps) {
				fmt.Println()
				fmt.Println(formatter.Header(domain.StepTitle(step)))
				if err := w.runStep(ctx, step); err != nil {
					if err == huh.ErrUserAborted {
						break
					}
					return err
				}
			}

			if err := app.Documents.Flush(ctx); err != nil {
				return fmt.Errorf("saving document: %w", err)
			}
			fmt.Println()
			fmt.Print(formatter.FormatFlags(validate.Validate(p)))
			return nil
		},
	}

	cmd.Flags().StringVar(&doc, "doc", "", "Existing document ID (a new one is created when omitted)")
	cmd.Flags().StringVar(&mode, "mode", string(domain.ModeOwner), "owner or module_editor")

	return cmd
}

// wizardDocument opens the given document or creates a fresh one after
// prompting for a title.
func wizardDocument(ctx context.Context, app *App, doc string) (*domain.Programme, error) {
	if doc != "" {
		return openDocument(ctx, app, doc)
	}
	var title string
	if err := textForm("Programme Title", "BSc (Hons) in Computing", true, &title).Run(); err != nil {
		return nil, err
	}
	return app.Documents.New(ctx, title)
}

type wizard struct {
	app *App
	p   *domain.Programme
}

func (w *wizard) runStep(ctx context.Context, step domain.Step) error {
	switch step {
	case domain.StepIdentity:
		return w.identityStep()
	case domain.StepStandards:
		return w.standardsStep()
	case domain.StepOutcomes:
		return w.outcomesStep()
	case domain.StepModules:
		return w.modulesStep()
	case domain.StepVersions:
		return w.versionsStep()
	case domain.StepStages:
		return w.stagesStep()
	case domain.StepAssessment:
		return w.assessmentStep()
	case domain.StepEffort:
		return w.effortStep()
	case domain.StepReading:
		return w.readingStep(ctx)
	case domain.StepReview:
		w.reviewStep()
		return nil
	default:
		return nil
	}
}

func (w *wizard) identityStep() error {
	title := w.p.Title
	school := w.p.School
	award := string(w.p.AwardType)
	level := fmt.Sprintf("%d", w.p.NFQLevel)
	credits := fmt.Sprintf("%d", w.p.TotalCredits)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Programme Title").Value(&title).Validate(validateRequired("Title")),
			huh.NewInput().Title("School").Value(&school),
			huh.NewInput().Title("NFQ Level (6-9)").Value(&level).Validate(validateOptionalInt),
			huh.NewInput().Title("Total Credits").Value(&credits).Validate(validateOptionalInt),
		),
	).WithTheme(provostHuhTheme()).WithShowHelp(false)
	if err := form.Run(); err != nil {
		return err
	}
	if err := selectAwardForm(&award).Run(); err != nil {
		return err
	}

	w.report(w.app.Programme.SetIdentity(w.p, title, school, domain.AwardType(award),
		parseIntOr(level, w.p.NFQLevel), parseIntOr(credits, w.p.TotalCredits)))
	return nil
}

func (w *wizard) standardsStep() error {
	if w.app.Standards == nil {
		return nil
	}
	refs := w.app.Standards.Refs()
	options := make([]huh.Option[string], 0, len(refs))
	for _, ref := range refs {
		options = append(options, huh.NewOption(w.app.Standards.Get(ref).Name, ref))
	}

	selected := append([]string{}, w.p.StandardRefs...)
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Which award standards does this programme map against?").
				Options(options...).
				Value(&selected),
		),
	).WithTheme(provostHuhTheme()).WithShowHelp(false)
	if err := form.Run(); err != nil {
		return err
	}
	w.report(w.app.Programme.SetStandards(w.p, selected))
	return nil
}

func (w *wizard) outcomesStep() error {
	for {
		var text string
		if err := textForm("Programme Learning Outcome (blank to finish)", "", false, &text).Run(); err != nil {
			return err
		}
		if text == "" {
			return nil
		}
		_, flags := w.app.Programme.AddPLO(w.p, text)
		w.report(flags)
	}
}

func (w *wizard) modulesStep() error {
	for {
		more := len(w.p.Modules) == 0
		if !more {
			if err := confirmForm("Add another module?", &more).Run(); err != nil {
				return err
			}
			if !more {
				return nil
			}
		}
		var code, title, credits string
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().Title("Module Code").Placeholder("COMP101").Value(&code),
				huh.NewInput().Title("Module Title").Value(&title).Validate(validateRequired("Title")),
				huh.NewInput().Title("Credits").Placeholder("10").Value(&credits).Validate(validateOptionalInt),
			),
		).WithTheme(provostHuhTheme()).WithShowHelp(false)
		if err := form.Run(); err != nil {
			return err
		}
		m, flags := w.app.Programme.AddModule(w.p, code, title, parseIntOr(credits, 0), false)
		w.report(flags)

		for {
			var loText string
			if err := textForm(fmt.Sprintf("Outcome for %s (blank to finish)", m.DisplayLabel()), "", false, &loText).Run(); err != nil {
				return err
			}
			if loText == "" {
				break
			}
			if _, flags, err := w.app.Programme.AddMIMLO(w.p, m.ID, loText); err == nil {
				w.report(flags)
			}
		}
	}
}

func (w *wizard) versionsStep() error {
	for {
		more := len(w.p.Versions) == 0
		if !more {
			if err := confirmForm("Add another delivery version?", &more).Run(); err != nil {
				return err
			}
			if !more {
				return nil
			}
		}
		var label, modality string
		if err := textForm("Version Label", "Full-time", true, &label).Run(); err != nil {
			return err
		}
		if err := selectModalityForm(&modality).Run(); err != nil {
			return err
		}
		v, flags := w.app.Programme.AddVersion(w.p, label)
		w.report(flags)
		flags, err := w.app.Programme.UpdateVersion(w.p, v.ID, func(v *domain.Version) {
			v.Modality = domain.Modality(modality)
		})
		if err != nil {
			return err
		}
		w.report(flags)
	}
}

func (w *wizard) stagesStep() error {
	for vi := range w.p.Versions {
		v := &w.p.Versions[vi]
		for {
			more := len(v.Stages) == 0
			if !more {
				if err := confirmForm(fmt.Sprintf("Add another stage to %s?", v.Label), &more).Run(); err != nil {
					return err
				}
				if !more {
					break
				}
			}
			var name, target string
			if err := textForm(fmt.Sprintf("Stage name for %s", v.Label), "Year 1", true, &name).Run(); err != nil {
				return err
			}
			if err := textForm("Credit target (blank for none)", "60", false, &target).Run(); err != nil {
				return err
			}
			st, flags, err := w.app.Programme.AddStage(w.p, v.ID, name, parseIntOr(target, 0))
			if err != nil {
				return err
			}
			w.report(flags)

			for {
				var moduleID string
				form := selectModuleForm(w.p, fmt.Sprintf("Assign a module to %s", st.Name), &moduleID)
				if form == nil {
					break
				}
				var assign bool
				if err := confirmForm("Assign a module to this stage?", &assign).Run(); err != nil {
					return err
				}
				if !assign {
					break
				}
				if err := form.Run(); err != nil {
					return err
				}
				if flags, err := w.app.Programme.AssignModule(w.p, v.ID, st.ID, moduleID, ""); err != nil {
					fmt.Println(formatter.StyleYellow.Render(err.Error()))
				} else {
					w.report(flags)
				}
			}
		}
	}
	return nil
}

func (w *wizard) assessmentStep() error {
	for mi := range w.p.Modules {
		m := &w.p.Modules[mi]
		for {
			more := len(m.Assessments) == 0
			if !more {
				if err := confirmForm(fmt.Sprintf("Add another assessment to %s?", m.DisplayLabel()), &more).Run(); err != nil {
					return err
				}
				if !more {
					break
				}
			}
			var title, typ, weighting string
			form := huh.NewForm(
				huh.NewGroup(
					huh.NewInput().Title("Assessment Title").Value(&title).Validate(validateRequired("Title")),
					huh.NewInput().Title("Type").Placeholder("written exam").Value(&typ),
					huh.NewInput().Title("Weighting %").Placeholder("40").Value(&weighting).Validate(validatePercentage),
				),
			).WithTheme(provostHuhTheme()).WithShowHelp(false)
			if err := form.Run(); err != nil {
				return err
			}
			var covers []string
			if msForm := multiSelectMIMLOForm(m, &covers); msForm != nil {
				if err := msForm.Run(); err != nil {
					return err
				}
			}
			if _, flags, err := w.app.Programme.AddAssessment(w.p, m.ID, title, typ, parseIntOr(weighting, 0), covers); err != nil {
				fmt.Println(formatter.StyleYellow.Render(err.Error()))
			} else {
				w.report(flags)
			}
		}
	}
	return nil
}

func (w *wizard) effortStep() error {
	for mi := range w.p.Modules {
		m := &w.p.Modules[mi]
		for vi := range w.p.Versions {
			v := &w.p.Versions[vi]
			var set bool
			if err := confirmForm(fmt.Sprintf("Set effort hours for %s in %s?", m.DisplayLabel(), v.Label), &set).Run(); err != nil {
				return err
			}
			if !set {
				continue
			}
			var lecture, independent string
			form := huh.NewForm(
				huh.NewGroup(
					huh.NewInput().Title("Contact hours").Placeholder("24").Value(&lecture).Validate(validateOptionalInt),
					huh.NewInput().Title("Independent study hours").Placeholder("76").Value(&independent).Validate(validateOptionalInt),
				),
			).WithTheme(provostHuhTheme()).WithShowHelp(false)
			if err := form.Run(); err != nil {
				return err
			}
			hours := domain.EffortHours{
				Lecture:     parseIntOr(lecture, 0),
				Independent: parseIntOr(independent, 0),
			}
			if flags, err := w.app.Programme.SetEffort(w.p, m.ID, v.ID, v.Modality, hours); err == nil {
				w.report(flags)
			}
		}
	}
	return nil
}

func (w *wizard) readingStep(ctx context.Context) error {
	for mi := range w.p.Modules {
		m := &w.p.Modules[mi]
		for {
			var add bool
			if err := confirmForm(fmt.Sprintf("Add a reading item to %s?", m.DisplayLabel()), &add).Run(); err != nil {
				return err
			}
			if !add {
				break
			}
			var isbn, title, author string
			form := huh.NewForm(
				huh.NewGroup(
					huh.NewInput().Title("ISBN (blank to enter manually)").Value(&isbn),
					huh.NewInput().Title("Title").Value(&title),
					huh.NewInput().Title("Author").Value(&author),
				),
			).WithTheme(provostHuhTheme()).WithShowHelp(false)
			if err := form.Run(); err != nil {
				return err
			}
			item, flags, err := w.app.Programme.AddReading(w.p, m.ID, domain.ReadingItem{
				ISBN: isbn, Title: title, Author: author,
			})
			if err != nil {
				continue
			}
			w.report(flags)
			if isbn != "" && w.app.Lookup != nil {
				if err := w.app.Lookup.FillReading(ctx, w.p, m.ID, item.ID); err != nil {
					fmt.Println(formatter.Dim("lookup failed: " + err.Error()))
				}
			}
		}
	}
	return nil
}

func (w *wizard) reviewStep() {
	fmt.Print(formatter.FormatProgrammeSummary(w.p))
	fmt.Println()
	fmt.Print(formatter.FormatFlags(validate.Validate(w.p)))
}

// report surfaces new validation errors immediately after a mutation
// so the author sees problems while still on the relevant step.
func (w *wizard) report(flags []validate.Flag) {
	errs := validate.Errors(flags)
	for _, f := range errs {
		fmt.Printf("  %s  %s\n", formatter.SeverityIndicator(f.Severity), f.Message)
	}
}
