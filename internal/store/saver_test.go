package store

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/provost/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaver_DebouncesRapidEdits(t *testing.T) {
	s := newTestStore(t)
	saver := NewSaver(s, 30*time.Millisecond)

	p := sampleProgramme("prog-1", "BSc Computing")
	for i := 0; i < 10; i++ {
		p.TotalCredits = 60 + i
		saver.Touch(p)
	}
	assert.True(t, saver.Dirty())

	require.Eventually(t, func() bool {
		last, _ := saver.LastSavedAt()
		return !last.IsZero()
	}, 2*time.Second, 5*time.Millisecond)

	// Rapid edits coalesce into a single write carrying the last state.
	hist, err := s.History(context.Background(), "prog-1", 0)
	require.NoError(t, err)
	require.Len(t, hist, 1)

	got, err := s.Load(context.Background(), "prog-1")
	require.NoError(t, err)
	assert.Equal(t, 69, got.TotalCredits)
	assert.False(t, saver.Dirty())
}

func TestSaver_TouchSnapshotsImmediately(t *testing.T) {
	s := newTestStore(t)
	saver := NewSaver(s, 10*time.Millisecond)

	p := sampleProgramme("prog-1", "BSc Computing")
	saver.Touch(p)
	p.Title = "Renamed after touch"

	require.NoError(t, saver.Flush(context.Background()))

	got, err := s.Load(context.Background(), "prog-1")
	require.NoError(t, err)
	assert.Equal(t, "BSc Computing", got.Title, "edits after Touch stay out of the scheduled write")
}

func TestSaver_FlushWithoutPending(t *testing.T) {
	s := newTestStore(t)
	saver := NewSaver(s, time.Hour)

	require.NoError(t, saver.Flush(context.Background()))
	last, err := saver.LastSavedAt()
	assert.True(t, last.IsZero())
	assert.NoError(t, err)
}

func TestSaver_FlushCancelsTimer(t *testing.T) {
	s := newTestStore(t)
	saver := NewSaver(s, 20*time.Millisecond)

	saver.Touch(sampleProgramme("prog-1", "BSc Computing"))
	require.NoError(t, saver.Flush(context.Background()))

	// Let any stray timer fire; the history must not grow.
	time.Sleep(60 * time.Millisecond)
	hist, err := s.History(context.Background(), "prog-1", 0)
	require.NoError(t, err)
	assert.Len(t, hist, 1)
}

func TestSaver_LastSavedAtAdvances(t *testing.T) {
	s := newTestStore(t)
	saver := NewSaver(s, time.Hour)

	before, _ := saver.LastSavedAt()
	require.True(t, before.IsZero())

	saver.Touch(sampleProgramme("prog-1", "BSc Computing"))
	require.NoError(t, saver.Flush(context.Background()))

	after, err := saver.LastSavedAt()
	assert.NoError(t, err)
	assert.False(t, after.IsZero())
}

func TestClone_IsIndependent(t *testing.T) {
	p := sampleProgramme("prog-1", "BSc Computing")
	cp := clone(p)
	require.NotSame(t, p, cp)

	cp.Modules[0].Credits = 5
	assert.Equal(t, 60, p.Modules[0].Credits)
	assert.Equal(t, *p, func() domain.Programme { q := clone(p); return *q }())
}
