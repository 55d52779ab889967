package core

import "time"

// Timestamp is the canonical time representation for domain objects.
type Timestamp = time.Time

// Now returns the current UTC timestamp.
func Now() Timestamp {
	return time.Now().UTC()
}
