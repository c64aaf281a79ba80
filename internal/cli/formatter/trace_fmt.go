package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/provost/internal/trace"
)

// FormatTraceTable renders the alignment rows as a table, one row per
// standard→PLO→module→MIMLO→assessment chain.
func FormatTraceTable(rows []trace.Row) string {
	if len(rows) == 0 {
		return Dim("No outcomes to trace yet.") + "\n"
	}

	headers := []string{"STATUS", "STANDARD", "PLO", "MODULE", "MIMLO", "ASSESSMENT"}
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, []string{
			StatusIndicator(r.Status),
			r.StandardLabel(),
			truncate(r.PLOText, 40),
			r.ModuleLabel,
			truncate(r.MIMLOText, 40),
			r.AssessmentTitle,
		})
	}
	return RenderTable(headers, out)
}

// FormatFlowSummary renders node and edge counts per tier for the
// Sankey-style alignment flow.
func FormatFlowSummary(f trace.Flow) string {
	perTier := map[trace.Tier]int{}
	for _, n := range f.Nodes {
		perTier[n.Tier]++
	}

	var b strings.Builder
	b.WriteString(Header("Alignment Flow"))
	b.WriteString("\n")
	for _, tier := range []trace.Tier{trace.TierStandard, trace.TierPLO, trace.TierModule, trace.TierMIMLO, trace.TierAssessment} {
		b.WriteString(fmt.Sprintf("  %-12s %d node(s)\n", string(tier), perTier[tier]))
	}
	b.WriteString(Dim(fmt.Sprintf("%d edge(s) in total", len(f.Edges))))
	b.WriteString("\n")
	return b.String()
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}
