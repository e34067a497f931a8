package app

import (
	"github.com/daybook/daybook/internal/config"
	"github.com/daybook/daybook/internal/event_bus"
	"github.com/daybook/daybook/internal/storage"
	"github.com/daybook/daybook/pkg/event"
	"github.com/daybook/daybook/pkg/export"
	"github.com/daybook/daybook/pkg/grid"
	log "github.com/sirupsen/logrus"
)

// Dependencies holds all services and handlers for the application.
type Dependencies struct {
	Bus *event_bus.EventBus

	EventRepo    event.EventRepository
	EventStore   *event.EventStore
	EventService event.EventService
	EventHandler *event.EventHandler

	GridHandler   *grid.Handler
	ExportHandler *export.Handler
}

// BuildDependencies initializes and wires all application services and handlers.
func BuildDependencies(slot *storage.Slot, cfg config.Application) (*Dependencies, error) {
	deps := &Dependencies{}

	deps.Bus = event_bus.NewEventBus()
	subscribeLogging(deps.Bus)

	deps.EventRepo = event.NewSlotEventRepo(slot)
	deps.EventStore = event.NewEventStore(deps.EventRepo)
	deps.EventService = event.NewEventService(deps.EventStore, deps.Bus)
	deps.EventHandler = event.NewEventHandler(deps.EventService)

	deps.GridHandler = grid.NewHandler(deps.EventService)
	deps.ExportHandler = export.NewHandler(deps.EventService)

	return deps, nil
}

func subscribeLogging(bus *event_bus.EventBus) {
	bus.Subscribe(event_bus.TypeEventCreated, func(e event_bus.Event) {
		if created, ok := e.Data.(event_bus.EventCreated); ok {
			log.Infof("Event created: %s at %s %s", created.Name, created.Date, created.Time)
		}
	})
	bus.Subscribe(event_bus.TypeStorageFailed, func(e event_bus.Event) {
		if failed, ok := e.Data.(event_bus.StorageFailed); ok {
			log.Warnf("Storage %s failed: %s", failed.Op, failed.Reason)
		}
	})
}
