package responder

import "github.com/oklog/ulid/v2"

// newTraceID returns a lexically sortable id; ulid.Make is safe for
// concurrent use and monotonic within a millisecond.
func newTraceID() string {
	return ulid.Make().String()
}
