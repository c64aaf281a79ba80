package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/alexanderramin/provost/internal/domain"
)

// WriteJSON serializes the document verbatim, indented for diffing.
func WriteJSON(w io.Writer, p *domain.Programme) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(p); err != nil {
		return fmt.Errorf("encoding document: %w", err)
	}
	return nil
}
