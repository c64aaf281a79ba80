package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/alexanderramin/provost/internal/trace"
)

// traceHeaders is the column order of the flattened traceability table.
var traceHeaders = []string{
	"Status", "Standard", "Criterion/Thread", "Programme Outcome",
	"Module", "Module Outcome", "Assessment",
}

// WriteTraceCSV flattens trace rows to CSV. Quoting of commas, quotes
// and newlines follows RFC 4180 via encoding/csv.
func WriteTraceCSV(w io.Writer, rows []trace.Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(traceHeaders); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	for _, r := range rows {
		record := []string{
			string(r.Status),
			r.StandardRef,
			r.StandardLabel(),
			r.PLOText,
			r.ModuleLabel,
			r.MIMLOText,
			r.AssessmentTitle,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteCSV writes an arbitrary header+rows table, used by the report
// commands.
func WriteCSV(w io.Writer, headers []string, rows [][]string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(headers); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	for _, r := range rows {
		if err := cw.Write(r); err != nil {
			return fmt.Errorf("writing csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
