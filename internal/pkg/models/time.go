package models

import (
	"time"
)

// Now returns the current time in UTC. Use cases take it as their default clock.
func Now() time.Time {
	return time.Now().UTC()
}
