package dataset

import (
	"errors"
	"fmt"
)

// DataNotFoundError is returned when a lookup that the dashboard relies on
// (latest EU value, latest top performer, year bounds) has no matching rows.
type DataNotFoundError struct {
	What    string // what was looked up, e.g. "EU average"
	Country string // optional
	Year    int    // optional, zero when not applicable
	Reason  string // optional
}

func (e *DataNotFoundError) Error() string {
	msg := "data not found: " + e.What
	if e.Country != "" {
		msg += fmt.Sprintf(" (country=%q", e.Country)
		if e.Year != 0 {
			msg += fmt.Sprintf(", year=%d", e.Year)
		}
		msg += ")"
	} else if e.Year != 0 {
		msg += fmt.Sprintf(" (year=%d)", e.Year)
	}
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

// IsDataNotFound reports whether err is, or wraps, a DataNotFoundError.
func IsDataNotFound(err error) bool {
	var target *DataNotFoundError
	return errors.As(err, &target)
}
