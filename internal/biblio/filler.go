package biblio

import (
	"context"
	"sync"
)

// Filler guards lookup results against overwriting hand edits: every
// manual edit of a reading item bumps its generation, and a lookup
// only applies if the generation it started under is still current.
type Filler struct {
	client Client

	mu   sync.Mutex
	gens map[string]uint64
}

// NewFiller wraps the client with stale-response protection.
func NewFiller(client Client) *Filler {
	return &Filler{client: client, gens: make(map[string]uint64)}
}

// Invalidate marks the item as hand-edited; any in-flight lookup for
// it will be discarded.
func (f *Filler) Invalidate(itemID string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.gens[itemID]++
}

// Fill looks up the ISBN and, if the item has not been hand-edited in
// the meantime, invokes apply with the metadata. apply runs under the
// filler's lock so the generation check and the write are atomic.
func (f *Filler) Fill(ctx context.Context, itemID, isbn string, apply func(Metadata)) error {
	f.mu.Lock()
	gen := f.gens[itemID]
	f.mu.Unlock()

	md, err := f.client.Lookup(ctx, isbn)
	if err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.gens[itemID] != gen {
		return ErrStale
	}
	apply(*md)
	return nil
}
