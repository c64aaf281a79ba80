package biblio

import "errors"

var (
	// ErrUnavailable indicates the lookup service is unreachable.
	ErrUnavailable = errors.New("bibliographic service unavailable")

	// ErrTimeout indicates the lookup exceeded the configured timeout.
	ErrTimeout = errors.New("bibliographic lookup timed out")

	// ErrNotFound indicates the service has no record for the ISBN.
	ErrNotFound = errors.New("no record for ISBN")

	// ErrStale indicates the field was hand-edited while the lookup
	// was in flight, so the response was discarded.
	ErrStale = errors.New("lookup superseded by a manual edit")
)
