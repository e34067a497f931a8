package event

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/daybook/daybook/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSlotRepo(t *testing.T) (*SlotEventRepository, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "events.json")
	return NewSlotEventRepo(storage.NewSlot(path)), path
}

func TestEventStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo, path := newSlotRepo(t)

	e1 := Event{ID: "1", Name: "Standup", Time: "09:00", Date: "2024-06-20"}
	e2 := Event{ID: "2", Name: "Planning", Description: "Sprint 12", Time: "14:30", Date: "2024-06-21"}

	store := NewEventStore(repo)
	require.NoError(t, store.Load(ctx))
	require.NoError(t, store.Append(ctx, e1))
	require.NoError(t, store.Append(ctx, e2))

	// A fresh session over the same slot sees the same set.
	fresh := NewEventStore(NewSlotEventRepo(storage.NewSlot(path)))
	require.NoError(t, fresh.Load(ctx))
	assert.ElementsMatch(t, []Event{e1, e2}, fresh.All())
}

func TestEventStore_MissingStorageIsEmpty(t *testing.T) {
	repo, _ := newSlotRepo(t)

	store := NewEventStore(repo)
	require.NoError(t, store.Load(context.Background()))
	assert.Empty(t, store.All())
}

func TestEventStore_CorruptStorageIsEmpty(t *testing.T) {
	repo, path := newSlotRepo(t)
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	store := NewEventStore(repo)
	require.NoError(t, store.Load(context.Background()))
	assert.Empty(t, store.All())
}

func TestEventStore_EventsOn(t *testing.T) {
	ctx := context.Background()
	store := NewEventStore(&StubEventRepository{})

	first := Event{ID: "1", Name: "Standup", Time: "09:00", Date: "2024-06-20"}
	second := Event{ID: "2", Name: "Lunch", Time: "12:00", Date: "2024-06-20"}
	other := Event{ID: "3", Name: "Review", Time: "09:00", Date: "2024-06-21"}

	require.NoError(t, store.Append(ctx, first))
	require.NoError(t, store.Append(ctx, other))
	require.NoError(t, store.Append(ctx, second))

	assert.Equal(t, []Event{first, second}, store.EventsOn("2024-06-20"))
	assert.Equal(t, []Event{other}, store.EventsOn("2024-06-21"))
	assert.Empty(t, store.EventsOn("2024-06-22"))
}

func TestEventStore_AppendSurvivesPersistenceFailure(t *testing.T) {
	ctx := context.Background()
	repo := &StubEventRepository{FailSave: true}
	store := NewEventStore(repo)

	e := Event{ID: "1", Name: "Standup", Time: "09:00", Date: "2024-06-20"}
	err := store.Append(ctx, e)
	assert.ErrorIs(t, err, ErrPersistenceFailure)

	// In-memory state is authoritative for the rest of the session.
	assert.Equal(t, []Event{e}, store.All())
	assert.Equal(t, 1, store.Len())
}

func TestSlotEventRepository_SaveEmptyList(t *testing.T) {
	ctx := context.Background()
	repo, _ := newSlotRepo(t)

	require.NoError(t, repo.Save(ctx, []Event{}))
	events, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, events)
}
