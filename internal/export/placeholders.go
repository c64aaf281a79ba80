// Package export renders the authored document into its external
// formats: verbatim JSON, CSV flattening of the traceability table,
// and placeholder merge into a Word-compatible template.
package export

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/provost/internal/domain"
)

// Placeholders builds the fixed substitution set merged into document
// templates. The template layer itself has no logic; every value is a
// pre-rendered string.
func Placeholders(p *domain.Programme) map[string]string {
	values := map[string]string{
		"PROGRAMME_TITLE": p.Title,
		"AWARD_TYPE":      string(p.AwardType),
		"NFQ_LEVEL":       fmt.Sprintf("%d", p.NFQLevel),
		"SCHOOL":          p.School,
		"TOTAL_CREDITS":   fmt.Sprintf("%d", p.TotalCredits),
		"STANDARDS":       strings.Join(p.StandardRefs, ", "),
		"OUTCOME_LIST":    outcomeList(p),
		"MODULE_TABLE":    moduleTable(p),
		"STANDARDS_MAP":   standardsMap(p),
	}
	return values
}

func outcomeList(p *domain.Programme) string {
	var b strings.Builder
	for i := range p.PLOs {
		fmt.Fprintf(&b, "PLO%d: %s\n", i+1, p.PLOs[i].Text)
	}
	return strings.TrimRight(b.String(), "\n")
}

func moduleTable(p *domain.Programme) string {
	var b strings.Builder
	for i := range p.Modules {
		m := &p.Modules[i]
		elective := ""
		if m.Elective {
			elective = " (elective)"
		}
		fmt.Fprintf(&b, "%s\t%d credits%s\n", m.DisplayLabel(), m.Credits, elective)
	}
	return strings.TrimRight(b.String(), "\n")
}

// standardsMap snapshots each PLO's standard mappings in
// "PLOn: criterion/thread (ref)" lines.
func standardsMap(p *domain.Programme) string {
	var b strings.Builder
	for i := range p.PLOs {
		plo := &p.PLOs[i]
		if len(plo.Mappings) == 0 {
			fmt.Fprintf(&b, "PLO%d: not mapped\n", i+1)
			continue
		}
		var parts []string
		for _, sm := range plo.Mappings {
			parts = append(parts, fmt.Sprintf("%s/%s (%s)", sm.Criterion, sm.Thread, sm.StandardRef))
		}
		fmt.Fprintf(&b, "PLO%d: %s\n", i+1, strings.Join(parts, "; "))
	}
	return strings.TrimRight(b.String(), "\n")
}

// Substitute replaces every ${KEY} token in text with its value.
// Unknown tokens are left in place so they are visible in the output.
func Substitute(text string, values map[string]string) string {
	for key, val := range values {
		text = strings.ReplaceAll(text, "${"+key+"}", val)
	}
	return text
}
