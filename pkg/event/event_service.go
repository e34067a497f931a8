package event

import (
	"context"
	"errors"

	"github.com/daybook/daybook/internal/event_bus"
	"github.com/daybook/daybook/internal/utils"
	log "github.com/sirupsen/logrus"
)

// EventService is the single state container for the calendar: date
// selection, candidate submission, and per-day queries all go through it.
type EventService interface {
	Select(date string) (bool, error)
	Submit(ctx context.Context, candidate Candidate) (Event, error)
	EventsOn(date string) []Event
	All() []Event
}

type EventServiceImpl struct {
	store *EventStore
	clock utils.Clock
	bus   *event_bus.EventBus
}

func NewEventService(store *EventStore, bus *event_bus.EventBus) *EventServiceImpl {
	return &EventServiceImpl{store: store, clock: &utils.SystemClock{}, bus: bus}
}

// Select reports whether the given date may be opened for event creation.
// The gate is re-evaluated against today's date on every call.
func (s *EventServiceImpl) Select(date string) (bool, error) {
	return IsDateSelectable(date, s.clock.Now())
}

// Submit validates the candidate against the current store and wall clock.
// On acceptance the event is appended and persisted. If only the durable
// write failed, the accepted event is returned together with
// ErrPersistenceFailure so callers can surface a warning.
func (s *EventServiceImpl) Submit(ctx context.Context, candidate Candidate) (Event, error) {
	accepted, err := Validate(candidate, s.store.All(), s.clock.Now())
	if err != nil {
		log.Debugf("event candidate rejected: %v", err)
		return Event{}, err
	}

	if err := s.store.Append(ctx, accepted); err != nil {
		if errors.Is(err, ErrPersistenceFailure) {
			log.Warnf("event %s accepted but not persisted: %v", accepted.ID, err)
			s.publish(event_bus.NewEvent(event_bus.TypeStorageFailed, event_bus.StorageFailed{
				Op:     "save",
				Reason: err.Error(),
			}))
			return accepted, err
		}
		return Event{}, err
	}

	s.publish(event_bus.NewEvent(event_bus.TypeEventCreated, event_bus.EventCreated{
		ID:   accepted.ID,
		Name: accepted.Name,
		Date: accepted.Date,
		Time: accepted.Time,
	}))

	return accepted, nil
}

func (s *EventServiceImpl) EventsOn(date string) []Event {
	return s.store.EventsOn(date)
}

func (s *EventServiceImpl) All() []Event {
	return s.store.All()
}

func (s *EventServiceImpl) publish(e event_bus.Event) {
	if s.bus != nil {
		s.bus.Publish(e)
	}
}
