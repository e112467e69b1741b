package write

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"HotelOS/entity"
)

type fakeStore struct {
	saved   map[string][]entity.Document
	deleted []string
	failIDs map[string]bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		saved:   make(map[string][]entity.Document),
		failIDs: make(map[string]bool),
	}
}

func (f *fakeStore) SaveDocument(_ context.Context, collection string, doc entity.Document) error {
	if f.failIDs[doc.ID()] {
		return fmt.Errorf("store unavailable")
	}
	f.saved[collection] = append(f.saved[collection], doc)
	return nil
}

func (f *fakeStore) DeleteDocument(_ context.Context, collection, id string) error {
	f.deleted = append(f.deleted, collection+"/"+id)
	return nil
}

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestWriteStampsOwnershipOnUserScoped(t *testing.T) {
	store := newFakeStore()
	c := NewCoordinator(store, discard())

	doc := entity.Document{"id": "task-1", "text": "Restock minibar"}
	err := c.Write(context.Background(), entity.TasksCollection, "u42", doc)
	require.NoError(t, err)

	saved := store.saved[entity.TasksCollection]
	require.Len(t, saved, 1)
	assert.Equal(t, "u42", saved[0].Owner())
	// the caller's document stays unstamped
	assert.Empty(t, doc.Owner())
}

func TestWriteSharedCollectionNotStamped(t *testing.T) {
	store := newFakeStore()
	c := NewCoordinator(store, discard())

	err := c.Write(context.Background(), entity.RoomsCollection, "u42", entity.Document{"id": "r1"})
	require.NoError(t, err)

	saved := store.saved[entity.RoomsCollection]
	require.Len(t, saved, 1)
	assert.Empty(t, saved[0].Owner())
}

func TestWriteUserScopedWithoutActorFails(t *testing.T) {
	store := newFakeStore()
	c := NewCoordinator(store, discard())

	err := c.Write(context.Background(), entity.AgendaCollection, "", entity.Document{"id": "ev-1"})
	require.Error(t, err)
	assert.Empty(t, store.saved)
}

func TestWriteEntityValidates(t *testing.T) {
	store := newFakeStore()
	c := NewCoordinator(store, discard())

	err := c.WriteEntity(context.Background(), entity.RoomsCollection, "u1", entity.Room{Number: "101"})
	require.Error(t, err)
	assert.Empty(t, store.saved)

	err = c.WriteEntity(context.Background(), entity.RoomsCollection, "u1", entity.Room{ID: "r1", Number: "101"})
	require.NoError(t, err)
	require.Len(t, store.saved[entity.RoomsCollection], 1)
	assert.Equal(t, "r1", store.saved[entity.RoomsCollection][0].ID())
}

func TestWriteAllPartialFailure(t *testing.T) {
	store := newFakeStore()
	store.failIDs["task-2"] = true
	c := NewCoordinator(store, discard())

	docs := []entity.Document{
		{"id": "task-1", "text": "one"},
		{"id": "task-2", "text": "two"},
		{"id": "task-3", "text": "three"},
	}
	errs := c.WriteAll(context.Background(), entity.TasksCollection, "u1", docs)

	require.Len(t, errs, 3)
	assert.NoError(t, errs[0])
	assert.Error(t, errs[1])
	assert.NoError(t, errs[2])
	assert.Len(t, store.saved[entity.TasksCollection], 2)
}

func TestRemove(t *testing.T) {
	store := newFakeStore()
	c := NewCoordinator(store, discard())

	require.NoError(t, c.Remove(context.Background(), entity.SpaCollection, "spa-1"))
	assert.Equal(t, []string{"spa/spa-1"}, store.deleted)
}
