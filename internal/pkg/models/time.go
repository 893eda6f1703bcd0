package models

import (
	"fmt"
	"time"
)

// Now returns the current time in UTC, truncated to second precision.
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}

// ValidateClock checks that s is a wall-clock time in HH:MM form.
func ValidateClock(s string) error {
	if _, err := time.Parse("15:04", s); err != nil {
		return fmt.Errorf("invalid time of day %q: want HH:MM", s)
	}
	return nil
}
