package event

import (
	"fmt"
	"time"

	"github.com/daybook/daybook/internal/utils"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// Event is a single calendar entry. Events are immutable once created; they
// only come into existence through a successful validation pass.
type Event struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Time        string `json:"time"`
	Date        string `json:"date"`
}

// Candidate is user-submitted event data that has not been validated yet.
type Candidate struct {
	Name        string
	Description string
	Time        string
	Date        string
}

// Instant returns the event's date and time combined into a single point on
// the local wall clock.
func (e Event) Instant() (time.Time, error) {
	return CombineInstant(e.Date, e.Time)
}

// CombineInstant combines a "2006-01-02" date and a "15:04" time into one
// local instant. All comparisons in this package are done on instants, never
// on the raw strings, so formatting differences cannot cause mismatches.
func CombineInstant(date string, timeOfDay string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout+" "+TimeLayout, date+" "+timeOfDay, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("could not combine %q and %q into an instant: %w", date, timeOfDay, err)
	}
	return t, nil
}

// IsDateSelectable reports whether a calendar day can be opened for event
// creation: any day not strictly before today. Both sides are truncated to
// start of day so the time-of-day of "now" cannot disqualify today itself.
func IsDateSelectable(date string, today time.Time) (bool, error) {
	d, err := time.ParseInLocation(DateLayout, date, today.Location())
	if err != nil {
		return false, fmt.Errorf("invalid date %q: %w", date, err)
	}
	return !d.Before(utils.StartOfDay(today)), nil
}
