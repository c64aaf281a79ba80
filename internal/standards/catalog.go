// Package standards loads the award-standard reference data: per
// standard and NFQ level, the criterion/thread checklist that
// programme outcomes are mapped against. The data is read-only; a
// bundled dataset ships with the binary and an external JSON file can
// replace it.
package standards

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

//go:embed data/standards.json
var bundled embed.FS

// Pair is one criterion/thread cell of a standard's checklist.
type Pair struct {
	Criterion string
	Thread    string
}

// Thread is a named strand within a criterion, with its per-level
// descriptor text.
type Thread struct {
	Name        string            `json:"name"`
	Descriptors map[string]string `json:"descriptors"` // level -> text
}

// Criterion groups the threads of one standard criterion.
type Criterion struct {
	Name    string   `json:"name"`
	Threads []Thread `json:"threads"`
}

// Standard is one award standard: its display name, the NFQ levels it
// defines, and its criterion/thread structure.
type Standard struct {
	Ref      string      `json:"ref"`
	Name     string      `json:"name"`
	Levels   []int       `json:"levels"`
	Criteria []Criterion `json:"criteria"`
}

// Catalog is the full reference dataset keyed by standard ref.
type Catalog struct {
	byRef map[string]*Standard
}

type catalogFile struct {
	Standards []Standard `json:"standards"`
}

// Load reads a catalog from the given path, or the bundled dataset
// when path is empty.
func Load(path string) (*Catalog, error) {
	var data []byte
	var err error
	if path == "" {
		data, err = bundled.ReadFile("data/standards.json")
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("reading standards data: %w", err)
	}
	return Parse(data)
}

// Parse decodes catalog JSON.
func Parse(data []byte) (*Catalog, error) {
	var f catalogFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing standards data: %w", err)
	}
	c := &Catalog{byRef: make(map[string]*Standard, len(f.Standards))}
	for i := range f.Standards {
		s := &f.Standards[i]
		if s.Ref == "" {
			return nil, fmt.Errorf("standard %d has no ref", i)
		}
		c.byRef[s.Ref] = s
	}
	return c, nil
}

// Refs lists the known standard refs, sorted.
func (c *Catalog) Refs() []string {
	if c == nil {
		return nil
	}
	refs := make([]string, 0, len(c.byRef))
	for r := range c.byRef {
		refs = append(refs, r)
	}
	sort.Strings(refs)
	return refs
}

// Get returns the standard with the given ref, or nil.
func (c *Catalog) Get(ref string) *Standard {
	if c == nil {
		return nil
	}
	return c.byRef[ref]
}

// SupportsLevel reports whether the standard defines the given NFQ level.
func (c *Catalog) SupportsLevel(ref string, level int) bool {
	s := c.Get(ref)
	if s == nil {
		return false
	}
	for _, l := range s.Levels {
		if l == level {
			return true
		}
	}
	return false
}

// Checklist returns the ordered (criterion, thread) pairs a programme
// at the given level must cover for the standard. Unknown refs or
// unsupported levels yield an empty list.
func (c *Catalog) Checklist(ref string, level int) []Pair {
	s := c.Get(ref)
	if s == nil || !c.SupportsLevel(ref, level) {
		return nil
	}
	var pairs []Pair
	for _, crit := range s.Criteria {
		for _, th := range crit.Threads {
			pairs = append(pairs, Pair{Criterion: crit.Name, Thread: th.Name})
		}
	}
	return pairs
}

// Descriptor returns the descriptor text for one criterion/thread cell
// at the given level, or "".
func (c *Catalog) Descriptor(ref string, level int, criterion, thread string) string {
	s := c.Get(ref)
	if s == nil {
		return ""
	}
	for _, crit := range s.Criteria {
		if crit.Name != criterion {
			continue
		}
		for _, th := range crit.Threads {
			if th.Name == thread {
				return th.Descriptors[fmt.Sprintf("%d", level)]
			}
		}
	}
	return ""
}
