package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/provost/internal/domain"
	"github.com/alexanderramin/provost/internal/store"
)

// FormatDocumentList renders the stored documents newest first.
func FormatDocumentList(infos []store.DocumentInfo) string {
	rows := make([][]string, 0, len(infos))
	for _, info := range infos {
		title := info.Title
		if title == "" {
			title = Dim("(untitled)")
		}
		rows = append(rows, []string{
			ShortID(info.ID),
			title,
			info.UpdatedAt.Format("2006-01-02 15:04"),
		})
	}
	return RenderTable([]string{"ID", "TITLE", "UPDATED"}, rows)
}

// FormatHistory renders the autosave snapshots of one document.
func FormatHistory(snaps []store.Autosave) string {
	if len(snaps) == 0 {
		return Dim("No autosaves recorded.") + "\n"
	}
	rows := make([][]string, 0, len(snaps))
	for _, s := range snaps {
		rows = append(rows, []string{
			s.SavedAt.Format("2006-01-02 15:04:05"),
			fmt.Sprintf("%d bytes", len(s.Body)),
		})
	}
	return RenderTable([]string{"SAVED AT", "SIZE"}, rows)
}

// FormatProgrammeSummary renders the identity card for one document.
func FormatProgrammeSummary(p *domain.Programme) string {
	var b strings.Builder
	b.WriteString(Header(p.Title))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s %s\n", Bold("Award:"), string(p.AwardType)))
	b.WriteString(fmt.Sprintf("  %s NFQ level %d\n", Bold("Level:"), p.NFQLevel))
	b.WriteString(fmt.Sprintf("  %s %s\n", Bold("School:"), p.School))
	b.WriteString(fmt.Sprintf("  %s %d (modules sum to %d)\n", Bold("Credits:"), p.TotalCredits, p.ModuleCreditSum()))
	b.WriteString(fmt.Sprintf("  %s %s\n", Bold("Standards:"), strings.Join(p.StandardRefs, ", ")))
	b.WriteString(fmt.Sprintf("  %s %d module(s), %d outcome(s), %d version(s)\n",
		Bold("Content:"), len(p.Modules), len(p.PLOs), len(p.Versions)))
	return b.String()
}

// ShortID abbreviates a generated ID for display. Imported documents may
// carry IDs shorter than the abbreviation width; those are shown as-is.
func ShortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
