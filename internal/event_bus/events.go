package event_bus

const (
	TypeEventCreated  EventType = "event.created"
	TypeStorageFailed EventType = "storage.failed"
)

type EventCreated struct {
	ID   string
	Name string
	Date string
	Time string
}

type StorageFailed struct {
	// Op is the operation that failed, e.g. "save".
	Op     string
	Reason string
}
