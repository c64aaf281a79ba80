package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/provost/internal/domain"
	"github.com/alexanderramin/provost/internal/validate"
)

// FormatFlags renders validation output grouped by wizard step, errors
// and warnings colored by severity.
func FormatFlags(flags []validate.Flag) string {
	if len(flags) == 0 {
		return StyleGreen.Render("✓ No issues found") + "\n"
	}

	steps, byStep := validate.GroupByStep(flags)

	var b strings.Builder
	for i, step := range steps {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(Header(domain.StepTitle(step)))
		b.WriteString("\n")
		for _, f := range byStep[step] {
			b.WriteString(fmt.Sprintf("  %s  %s\n", SeverityIndicator(f.Severity), f.Message))
		}
	}

	errs := len(validate.Errors(flags))
	warns := len(validate.Warnings(flags))
	b.WriteString("\n")
	b.WriteString(Dim(fmt.Sprintf("%d error(s), %d warning(s)", errs, warns)))
	b.WriteString("\n")
	return b.String()
}
