package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/provost/internal/trace"
	"github.com/alexanderramin/provost/internal/validate"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// SeverityIndicator returns a colored marker such as "● ERROR".
func SeverityIndicator(s validate.Severity) string {
	switch s {
	case validate.SeverityError:
		return StyleRed.Render("● ERROR")
	case validate.SeverityWarn:
		return StyleYellow.Render("● WARN")
	default:
		return StyleDim.Render("● INFO")
	}
}

// StatusColor returns the style for a traceability status.
func StatusColor(s trace.Status) lipgloss.Style {
	switch s {
	case trace.StatusCovered:
		return StyleGreen
	case trace.StatusAssessmentGap:
		return StyleYellow
	case trace.StatusOutcomeGap:
		return StyleRed
	case trace.StatusStandardGap:
		return StylePurple
	default:
		return StyleDim
	}
}

// StatusIndicator returns a colored status label such as "● COVERED".
func StatusIndicator(s trace.Status) string {
	label := strings.ToUpper(strings.ReplaceAll(string(s), "_", " "))
	return StatusColor(s).Render("● " + label)
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
