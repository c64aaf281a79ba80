package cli

import (
	"github.com/alexanderramin/provost/internal/service"
	"github.com/alexanderramin/provost/internal/standards"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Documents service.DocumentService
	Programme service.ProgrammeService
	Lookup    service.LookupService

	Standards *standards.Catalog

	// IsInteractive reports whether stdin is attached to a terminal;
	// the review command only launches the TUI when it is.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "provost" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "provost",
		Short: "Academic programme authoring and alignment checker",
	}

	root.AddCommand(
		newDocCmd(app),
		newModuleCmd(app),
		newOutcomeCmd(app),
		newVersionCmd(app),
		newStandardsCmd(app),
		newCheckCmd(app),
		newTraceCmd(app),
		newReportCmd(app),
		newExportCmd(app),
		newImportCmd(app),
		newWizardCmd(app),
		newReviewCmd(app),
	)

	return root
}
