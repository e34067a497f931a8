package event

import (
	"context"
	"errors"
	"fmt"
	"sync"

	log "github.com/sirupsen/logrus"
)

// ErrPersistenceFailure signals that an appended event could not be written to
// durable storage. The in-memory append stands regardless: for the rest of the
// session the store is the source of truth.
var ErrPersistenceFailure = errors.New("event was not persisted")

// EventStore owns the canonical, insertion-ordered list of events and mirrors
// it to the durable slot on every append.
type EventStore struct {
	mu     sync.RWMutex
	repo   EventRepository
	events []Event
}

func NewEventStore(repo EventRepository) *EventStore {
	return &EventStore{repo: repo, events: []Event{}}
}

// Load reads the durable slot once. Corrupt storage is logged and yields an
// empty store; it never fails the caller.
func (s *EventStore) Load(ctx context.Context) error {
	events, err := s.repo.Load(ctx)
	if err != nil {
		if errors.Is(err, ErrCorruptStorage) {
			log.Warnf("stored events are corrupt, starting with an empty store: %v", err)
			events = []Event{}
		} else {
			return err
		}
	}

	s.mu.Lock()
	s.events = events
	s.mu.Unlock()
	return nil
}

// Append adds the event to the in-memory sequence and then rewrites the full
// durable document. A failed write is reported as ErrPersistenceFailure but
// does not roll back the append.
func (s *EventStore) Append(ctx context.Context, e Event) error {
	s.mu.Lock()
	s.events = append(s.events, e)
	snapshot := make([]Event, len(s.events))
	copy(snapshot, s.events)
	s.mu.Unlock()

	if err := s.repo.Save(ctx, snapshot); err != nil {
		return fmt.Errorf("%w: %v", ErrPersistenceFailure, err)
	}
	return nil
}

// EventsOn returns all events on the given "2006-01-02" date, in insertion
// order.
func (s *EventStore) EventsOn(date string) []Event {
	s.mu.RLock()
	defer s.mu.RUnlock()

	events := make([]Event, 0)
	for _, e := range s.events {
		if e.Date == date {
			events = append(events, e)
		}
	}
	return events
}

// All returns a copy of the full sequence in insertion order.
func (s *EventStore) All() []Event {
	s.mu.RLock()
	defer s.mu.RUnlock()

	events := make([]Event, len(s.events))
	copy(events, s.events)
	return events
}

func (s *EventStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.events)
}
