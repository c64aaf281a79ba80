package cli

import (
	"fmt"
	"strconv"

	"github.com/alexanderramin/provost/internal/domain"
	"github.com/charmbracelet/huh"
)

// validateRequired rejects empty input.
func validateRequired(field string) func(string) error {
	return func(s string) error {
		if s == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

// validateOptionalInt accepts empty or a non-negative integer.
func validateOptionalInt(s string) error {
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return fmt.Errorf("enter a non-negative number")
	}
	return nil
}

// validatePercentage accepts empty or an integer between 0 and 100.
func validatePercentage(s string) error {
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 || v > 100 {
		return fmt.Errorf("enter a percentage between 0 and 100")
	}
	return nil
}

// parseIntOr parses s as an integer, returning fallback on empty or
// invalid input. Forms validate first, so this is a safe conversion.
func parseIntOr(s string, fallback int) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return v
}

// textForm builds a themed single-field input form.
func textForm(title, placeholder string, required bool, value *string) *huh.Form {
	input := huh.NewInput().
		Title(title).
		Placeholder(placeholder).
		Value(value)
	if required {
		input = input.Validate(validateRequired(title))
	}
	return huh.NewForm(
		huh.NewGroup(input),
	).WithTheme(provostHuhTheme()).WithShowHelp(false)
}

// confirmForm builds a themed yes/no confirmation form.
func confirmForm(title string, value *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Yes").
				Negative("No").
				Value(value),
		),
	).WithTheme(provostHuhTheme()).WithShowHelp(false)
}

// selectModuleForm builds a select over the document's modules.
func selectModuleForm(p *domain.Programme, title string, value *string) *huh.Form {
	if len(p.Modules) == 0 {
		return nil
	}
	options := make([]huh.Option[string], 0, len(p.Modules))
	for i := range p.Modules {
		m := &p.Modules[i]
		options = append(options, huh.NewOption(m.DisplayLabel(), m.ID))
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title(title).
				Options(options...).
				Value(value),
		),
	).WithTheme(provostHuhTheme()).WithShowHelp(false)
}

// selectModalityForm builds a select over the supported modalities.
func selectModalityForm(value *string) *huh.Form {
	*value = string(domain.ModalityOnSite)
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Delivery Modality").
				Options(
					huh.NewOption("On-site", string(domain.ModalityOnSite)),
					huh.NewOption("Blended", string(domain.ModalityBlended)),
					huh.NewOption("Online", string(domain.ModalityOnline)),
				).
				Value(value),
		),
	).WithTheme(provostHuhTheme()).WithShowHelp(false)
}

// selectAwardForm builds a select over the award types.
func selectAwardForm(value *string) *huh.Form {
	*value = string(domain.AwardMajor)
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Award Type").
				Options(
					huh.NewOption("Major", string(domain.AwardMajor)),
					huh.NewOption("Minor", string(domain.AwardMinor)),
					huh.NewOption("Special purpose", string(domain.AwardSpecial)),
					huh.NewOption("Supplemental", string(domain.AwardSupp)),
				).
				Value(value),
		),
	).WithTheme(provostHuhTheme()).WithShowHelp(false)
}

// multiSelectMIMLOForm builds a multi-select over a module's outcomes
// for assessment coverage.
func multiSelectMIMLOForm(m *domain.Module, values *[]string) *huh.Form {
	if len(m.MIMLOs) == 0 {
		return nil
	}
	options := make([]huh.Option[string], 0, len(m.MIMLOs))
	for _, lo := range m.MIMLOs {
		options = append(options, huh.NewOption(lo.Text, lo.ID))
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Which outcomes does this assessment cover?").
				Options(options...).
				Value(values),
		),
	).WithTheme(provostHuhTheme()).WithShowHelp(false)
}
