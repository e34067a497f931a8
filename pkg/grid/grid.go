package grid

import (
	"fmt"
	"time"

	"github.com/daybook/daybook/internal/utils"
	"github.com/daybook/daybook/pkg/event"
)

// Day is one cell of the calendar grid: the rendering widget only needs the
// date, whether it may be opened, and the events to mark it with.
type Day struct {
	Date       string        `json:"date"`
	Selectable bool          `json:"selectable"`
	Events     []event.Event `json:"events"`
}

type Month struct {
	Year  int   `json:"year"`
	Month int   `json:"month"`
	Days  []Day `json:"days"`
}

// BuildMonth produces one Day per calendar day of the given month. eventsOn
// supplies the per-date markers; today drives the selection gate.
func BuildMonth(year int, month time.Month, today time.Time, eventsOn func(date string) []event.Event) (Month, error) {
	if month < time.January || month > time.December {
		return Month{}, fmt.Errorf("invalid month: %d", month)
	}

	first := time.Date(year, month, 1, 0, 0, 0, 0, today.Location())
	startOfToday := utils.StartOfDay(today)

	days := make([]Day, 0, 31)
	for d := first; d.Month() == month; d = d.AddDate(0, 0, 1) {
		date := d.Format(event.DateLayout)
		days = append(days, Day{
			Date:       date,
			Selectable: !d.Before(startOfToday),
			Events:     eventsOn(date),
		})
	}

	return Month{Year: year, Month: int(month), Days: days}, nil
}
