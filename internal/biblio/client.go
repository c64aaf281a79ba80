// Package biblio fills reading-list entries from an ISBN lookup
// against the Open Library API. Lookups are best-effort: a failure
// leaves the fields unfilled and the caller re-enables the retry
// control.
package biblio

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Metadata is the subset of bibliographic data the reading list uses.
type Metadata struct {
	Title     string
	Author    string
	Publisher string
	Year      string
}

// Client resolves an ISBN to book metadata.
type Client interface {
	Lookup(ctx context.Context, isbn string) (*Metadata, error)
}

type openLibraryClient struct {
	cfg      Config
	http     *http.Client
	observer Observer
}

// NewClient creates a Client backed by the Open Library books API.
func NewClient(cfg Config, observer Observer) Client {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &openLibraryClient{
		cfg: cfg,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
		observer: observer,
	}
}

// olBook mirrors the jscmd=data response shape for one bibkey.
type olBook struct {
	Title   string `json:"title"`
	Authors []struct {
		Name string `json:"name"`
	} `json:"authors"`
	Publishers []struct {
		Name string `json:"name"`
	} `json:"publishers"`
	PublishDate string `json:"publish_date"`
}

func (c *openLibraryClient) Lookup(ctx context.Context, isbn string) (*Metadata, error) {
	start := time.Now()
	md, err := c.lookup(ctx, isbn)
	event := LookupEvent{
		ISBN:      isbn,
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   err == nil,
	}
	if err != nil {
		event.ErrorCode = errorCode(err)
	}
	c.observer.OnLookupComplete(event)
	return md, err
}

func (c *openLibraryClient) lookup(ctx context.Context, isbn string) (*Metadata, error) {
	isbn = strings.ReplaceAll(strings.TrimSpace(isbn), "-", "")
	if isbn == "" {
		return nil, fmt.Errorf("%w: empty ISBN", ErrNotFound)
	}

	timeout := time.Duration(c.cfg.TimeoutMs) * time.Millisecond
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	bibkey := "ISBN:" + isbn
	u := fmt.Sprintf("%s/api/books?bibkeys=%s&format=json&jscmd=data",
		strings.TrimRight(c.cfg.Endpoint, "/"), url.QueryEscape(bibkey))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("building lookup request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, ErrTimeout
		}
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	var payload map[string]olBook
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	book, ok := payload[bibkey]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, isbn)
	}

	md := &Metadata{
		Title: book.Title,
		Year:  yearOf(book.PublishDate),
	}
	var authors []string
	for _, a := range book.Authors {
		authors = append(authors, a.Name)
	}
	md.Author = strings.Join(authors, ", ")
	if len(book.Publishers) > 0 {
		md.Publisher = book.Publishers[0].Name
	}
	return md, nil
}

// yearOf extracts a four-digit year from a free-form publish date.
func yearOf(date string) string {
	for i := 0; i+4 <= len(date); i++ {
		if isYear(date[i : i+4]) {
			return date[i : i+4]
		}
	}
	return ""
}

func isYear(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s >= "1000" && s <= "2999"
}

func errorCode(err error) string {
	switch {
	case errors.Is(err, ErrTimeout):
		return "timeout"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrUnavailable):
		return "unavailable"
	default:
		return "internal"
	}
}
