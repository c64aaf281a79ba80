package store

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/alexanderramin/provost/internal/domain"
)

// Saver coalesces rapid successive edits into one write: each Touch
// restarts a trailing timer, and the snapshot taken at Touch time is
// written when the timer fires. Flush writes immediately. LastSavedAt
// is inspectable for the status line and for tests.
type Saver struct {
	store Store
	delay time.Duration

	mu        sync.Mutex
	timer     *time.Timer
	pending   *domain.Programme
	lastSaved time.Time
	lastErr   error
}

// NewSaver wraps the store with a debounce of the given delay.
func NewSaver(s Store, delay time.Duration) *Saver {
	return &Saver{store: s, delay: delay}
}

// Touch schedules a save of the document, cancelling any pending one.
// The document is snapshotted immediately so later in-place edits do
// not leak into an already-scheduled write.
func (s *Saver) Touch(p *domain.Programme) {
	snapshot := clone(p)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = snapshot
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.delay, s.fire)
}

func (s *Saver) fire() {
	s.mu.Lock()
	p := s.pending
	s.pending = nil
	s.mu.Unlock()
	if p == nil {
		return
	}
	err := s.store.Save(context.Background(), p)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastErr = err
	if err == nil {
		s.lastSaved = time.Now().UTC()
	}
}

// Flush writes any pending snapshot immediately and reports the result.
func (s *Saver) Flush(ctx context.Context) error {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	p := s.pending
	s.pending = nil
	s.mu.Unlock()

	if p == nil {
		return nil
	}
	err := s.store.Save(ctx, p)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastErr = err
	if err == nil {
		s.lastSaved = time.Now().UTC()
	}
	return err
}

// LastSavedAt returns when the most recent write landed (zero before
// the first), and any error from the most recent write attempt.
func (s *Saver) LastSavedAt() (time.Time, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSaved, s.lastErr
}

// Dirty reports whether an edit is waiting to be written.
func (s *Saver) Dirty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending != nil
}

// clone deep-copies a document through its JSON form. Documents are
// small, so the round trip is cheap.
func clone(p *domain.Programme) *domain.Programme {
	data, err := json.Marshal(p)
	if err != nil {
		// A live domain struct always marshals; fall back to the
		// shared pointer rather than dropping the save.
		return p
	}
	var cp domain.Programme
	if err := json.Unmarshal(data, &cp); err != nil {
		return p
	}
	return &cp
}
