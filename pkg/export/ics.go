package export

import (
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"

	"github.com/daybook/daybook/pkg/event"
)

// Events in the store are points in time; exported VEVENTs get a fixed
// duration so calendar clients render a visible block.
const exportedEventDuration = time.Hour

// ICS serializes the event list as an iCalendar document. Events whose stored
// date or time no longer parse are skipped rather than aborting the export.
func ICS(events []event.Event, now time.Time) (string, error) {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)

	for _, e := range events {
		instant, err := e.Instant()
		if err != nil {
			continue
		}
		ve := cal.AddEvent(fmt.Sprintf("%s@daybook", e.ID))
		ve.SetDtStampTime(now)
		ve.SetStartAt(instant)
		ve.SetEndAt(instant.Add(exportedEventDuration))
		ve.SetSummary(e.Name)
		if e.Description != "" {
			ve.SetDescription(e.Description)
		}
	}

	return cal.Serialize(), nil
}
