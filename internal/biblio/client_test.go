package biblio

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const isbnGo = "9780134190440"

func newTestServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func testClient(endpoint string) Client {
	cfg := DefaultConfig()
	cfg.Endpoint = endpoint
	cfg.TimeoutMs = 500
	return NewClient(cfg, nil)
}

func openLibraryResponse() string {
	return `{"ISBN:` + isbnGo + `": {
		"title": "The Go Programming Language",
		"authors": [{"name": "Alan A. A. Donovan"}, {"name": "Brian W. Kernighan"}],
		"publishers": [{"name": "Addison-Wesley"}],
		"publish_date": "Oct 26, 2015"
	}}`
}

func TestLookup_ParsesMetadata(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.RawQuery, "ISBN")
		w.Write([]byte(openLibraryResponse()))
	})

	md, err := testClient(srv.URL).Lookup(context.Background(), "978-0-13-419044-0")
	require.NoError(t, err)
	assert.Equal(t, "The Go Programming Language", md.Title)
	assert.Equal(t, "Alan A. A. Donovan, Brian W. Kernighan", md.Author)
	assert.Equal(t, "Addison-Wesley", md.Publisher)
	assert.Equal(t, "2015", md.Year)
}

func TestLookup_NotFound(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	})

	_, err := testClient(srv.URL).Lookup(context.Background(), isbnGo)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLookup_ServerError(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := testClient(srv.URL).Lookup(context.Background(), isbnGo)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestLookup_Timeout(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
		w.Write([]byte(`{}`))
	})

	cfg := DefaultConfig()
	cfg.Endpoint = srv.URL
	cfg.TimeoutMs = 50

	_, err := NewClient(cfg, nil).Lookup(context.Background(), isbnGo)
	assert.ErrorIs(t, err, ErrTimeout)
}

func TestLookup_EmptyISBN(t *testing.T) {
	_, err := testClient("http://unused").Lookup(context.Background(), "  ")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLookup_ObserverSeesOutcome(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(openLibraryResponse()))
	})

	var buf bytes.Buffer
	cfg := DefaultConfig()
	cfg.Endpoint = srv.URL
	client := NewClient(cfg, NewLogObserver(&buf))

	_, err := client.Lookup(context.Background(), isbnGo)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "isbn_lookup")
	assert.Contains(t, buf.String(), "status=ok")
}

func TestYearOf(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Oct 26, 2015", "2015"},
		{"1999", "1999"},
		{"", ""},
		{"no year here", ""},
		{"Reprinted 2003, first published 1987", "2003"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, yearOf(tc.in), "input %q", tc.in)
	}
}

// fakeClient returns canned metadata after an optional delay.
type fakeClient struct {
	md    Metadata
	err   error
	delay time.Duration
	begun chan struct{}
	done  chan struct{}
}

func (f *fakeClient) Lookup(ctx context.Context, isbn string) (*Metadata, error) {
	if f.begun != nil {
		close(f.begun)
	}
	if f.done != nil {
		<-f.done
	} else if f.delay > 0 {
		time.Sleep(f.delay)
	}
	if f.err != nil {
		return nil, f.err
	}
	md := f.md
	return &md, nil
}

func TestFiller_AppliesFreshResult(t *testing.T) {
	f := NewFiller(&fakeClient{md: Metadata{Title: "SICP", Year: "1985"}})

	var got Metadata
	err := f.Fill(context.Background(), "rd-1", "0262010771", func(md Metadata) { got = md })
	require.NoError(t, err)
	assert.Equal(t, "SICP", got.Title)
}

func TestFiller_DiscardsStaleResult(t *testing.T) {
	fc := &fakeClient{
		md:    Metadata{Title: "Stale Title"},
		begun: make(chan struct{}),
		done:  make(chan struct{}),
	}
	f := NewFiller(fc)

	applied := false
	errCh := make(chan error, 1)
	go func() {
		errCh <- f.Fill(context.Background(), "rd-1", "0262010771", func(Metadata) { applied = true })
	}()

	<-fc.begun
	f.Invalidate("rd-1") // the hand edit lands while the lookup is in flight
	close(fc.done)

	assert.ErrorIs(t, <-errCh, ErrStale)
	assert.False(t, applied, "stale responses must not overwrite hand edits")
}

func TestFiller_PropagatesLookupFailure(t *testing.T) {
	f := NewFiller(&fakeClient{err: ErrUnavailable})
	err := f.Fill(context.Background(), "rd-1", "x", func(Metadata) {
		t.Fatal("apply must not run on failure")
	})
	assert.ErrorIs(t, err, ErrUnavailable)
}
