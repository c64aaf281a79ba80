package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/provost/internal/report"
)

// FormatStageTotals renders per-stage assessment category totals.
func FormatStageTotals(stages []report.StageReport) string {
	if len(stages) == 0 {
		return Dim("No stages in this version.") + "\n"
	}

	var b strings.Builder
	for i, st := range stages {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(Header(st.StageName))
		b.WriteString("\n")
		b.WriteString(formatTypeTotals(st.Totals))
	}
	return b.String()
}

// FormatModuleSummary renders each module's assessment mix.
func FormatModuleSummary(mods []report.ModuleReport) string {
	if len(mods) == 0 {
		return Dim("No modules yet.") + "\n"
	}

	var b strings.Builder
	for i, m := range mods {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(Header(m.ModuleLabel))
		b.WriteString("\n")
		b.WriteString(formatTypeTotals(m.Totals))
	}
	return b.String()
}

// FormatUnassessed lists outcomes no assessment covers, per module.
func FormatUnassessed(cov []report.CoverageReport) string {
	if len(cov) == 0 {
		return StyleGreen.Render("✓ Every learning outcome is assessed") + "\n"
	}

	var b strings.Builder
	for i, c := range cov {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(Header(c.ModuleLabel))
		b.WriteString("\n")
		for _, lo := range c.Unassessed {
			b.WriteString(fmt.Sprintf("  %s  %s\n", StyleYellow.Render("●"), lo.Text))
		}
	}
	return b.String()
}

func formatTypeTotals(totals []report.TypeTotal) string {
	if len(totals) == 0 {
		return Dim("  no assessments") + "\n"
	}
	rows := make([][]string, 0, len(totals))
	for _, t := range totals {
		rows = append(rows, []string{
			string(t.Category),
			fmt.Sprintf("%d", t.Count),
			fmt.Sprintf("%d%%", t.Weighting),
		})
	}
	return RenderTable([]string{"CATEGORY", "COUNT", "WEIGHTING"}, rows)
}
