package domain

// ReadingItem is one entry in a module's reading list. ISBN lookup can
// fill Author/Title/Publisher/Year; hand edits always win over a stale
// lookup response.
type ReadingItem struct {
	ID        string      `json:"id"`
	Author    string      `json:"author"`
	Title     string      `json:"title"`
	Publisher string      `json:"publisher"`
	Year      string      `json:"year"`
	ISBN      string      `json:"isbn"`
	Kind      ReadingKind `json:"kind"`
	Notes     string      `json:"notes,omitempty"`
}

// Citation renders the item in "Author (Year) Title. Publisher" form,
// skipping absent parts.
func (r ReadingItem) Citation() string {
	out := r.Author
	if r.Year != "" {
		if out != "" {
			out += " "
		}
		out += "(" + r.Year + ")"
	}
	if r.Title != "" {
		if out != "" {
			out += " "
		}
		out += r.Title + "."
	}
	if r.Publisher != "" {
		if out != "" {
			out += " "
		}
		out += r.Publisher
	}
	return out
}
