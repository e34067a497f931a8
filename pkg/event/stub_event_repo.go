package event

import (
	"context"
	"fmt"
)

type StubEventRepository struct {
	Events []Event

	// FailLoad / FailSave make the next calls return an error, for testing
	// corrupt-storage and persistence-failure paths.
	FailLoad bool
	FailSave bool
}

func (s *StubEventRepository) Load(ctx context.Context) ([]Event, error) {
	if s.FailLoad {
		return nil, fmt.Errorf("%w: stub", ErrCorruptStorage)
	}
	events := make([]Event, len(s.Events))
	copy(events, s.Events)
	return events, nil
}

func (s *StubEventRepository) Save(ctx context.Context, events []Event) error {
	if s.FailSave {
		return fmt.Errorf("stub save failure")
	}
	s.Events = make([]Event, len(events))
	copy(s.Events, events)
	return nil
}
