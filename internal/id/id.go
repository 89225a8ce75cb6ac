// Package id generates the identifiers attached to ledger notifications.
package id

import (
	"fmt"

	"github.com/oklog/ulid/v2"
)

// NewEventID returns a unique, lexicographically sortable event ID.
func NewEventID() string {
	return ulid.Make().String()
}

// ParseEventID validates an event ID and returns its embedded timestamp in
// Unix milliseconds.
func ParseEventID(s string) (uint64, error) {
	u, err := ulid.Parse(s)
	if err != nil {
		return 0, fmt.Errorf("invalid event ID %q: %w", s, err)
	}
	return u.Time(), nil
}
