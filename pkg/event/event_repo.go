package event

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/daybook/daybook/internal/storage"
	log "github.com/sirupsen/logrus"
)

// ErrCorruptStorage signals that the durable slot held data that could not be
// parsed. Callers treat it as an empty store; it is never fatal.
var ErrCorruptStorage = errors.New("stored events are not parsable")

type EventRepository interface {
	Load(ctx context.Context) ([]Event, error)
	Save(ctx context.Context, events []Event) error
}

// SlotEventRepository keeps the full event list as one JSON document in the
// durable storage slot.
type SlotEventRepository struct {
	slot *storage.Slot
}

func NewSlotEventRepo(slot *storage.Slot) *SlotEventRepository {
	return &SlotEventRepository{slot: slot}
}

func (r *SlotEventRepository) Load(ctx context.Context) ([]Event, error) {
	data, err := r.slot.Read()
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Debugf("no stored events at %s, starting empty", r.slot.Path())
			return []Event{}, nil
		}
		err := fmt.Errorf("could not read stored events: %w", err)
		log.Error(err)
		return nil, err
	}

	var events []Event
	if err := json.Unmarshal(data, &events); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptStorage, err)
	}
	return events, nil
}

func (r *SlotEventRepository) Save(ctx context.Context, events []Event) error {
	data, err := json.MarshalIndent(events, "", "  ")
	if err != nil {
		err := fmt.Errorf("could not serialize events: %w", err)
		log.Error(err)
		return err
	}
	if err := r.slot.Write(data); err != nil {
		err := fmt.Errorf("could not persist events: %w", err)
		log.Error(err)
		return err
	}
	return nil
}
