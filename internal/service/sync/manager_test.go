package sync

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"HotelOS/entity"
	"HotelOS/internal/cache"
)

// fakeRemote serves canned collection contents and lets tests fire change
// ticks by hand.
type fakeRemote struct {
	mu    sync.Mutex
	docs  map[string][]entity.Document
	ticks map[string]chan struct{}
}

func newFakeRemote() *fakeRemote {
	return &fakeRemote{
		docs:  make(map[string][]entity.Document),
		ticks: make(map[string]chan struct{}),
	}
}

func (f *fakeRemote) set(collection string, docs ...entity.Document) {
	f.mu.Lock()
	f.docs[collection] = docs
	f.mu.Unlock()
}

func (f *fakeRemote) tick(collection string) {
	f.mu.Lock()
	ch := f.ticks[collection]
	f.mu.Unlock()
	if ch != nil {
		ch <- struct{}{}
	}
}

func (f *fakeRemote) FetchCollection(_ context.Context, collection string) ([]entity.Document, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.docs[collection], nil
}

func (f *fakeRemote) FetchUserCollection(_ context.Context, collection, ownerID string) ([]entity.Document, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []entity.Document
	for _, doc := range f.docs[collection] {
		if doc.Owner() == ownerID {
			out = append(out, doc)
		}
	}
	return out, nil
}

func (f *fakeRemote) WatchCollection(ctx context.Context, collection string) (<-chan struct{}, error) {
	ch := make(chan struct{}, 1)
	f.mu.Lock()
	f.ticks[collection] = ch
	f.mu.Unlock()
	go func() {
		<-ctx.Done()
		f.mu.Lock()
		if f.ticks[collection] == ch {
			delete(f.ticks, collection)
		}
		f.mu.Unlock()
	}()
	return ch, nil
}

func newManagerFixture(t *testing.T) (*fakeRemote, *Syncer, *Manager) {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	store, err := cache.NewStore(t.TempDir(), log)
	require.NoError(t, err)

	syncer := NewSyncer(store, log)
	go syncer.Run()
	t.Cleanup(syncer.Close)

	remote := newFakeRemote()
	manager := NewManager(remote, syncer, log)
	t.Cleanup(manager.Stop)
	return remote, syncer, manager
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not reached")
}

func TestStartDeliversInitialSnapshots(t *testing.T) {
	remote, syncer, manager := newManagerFixture(t)
	remote.set(entity.RoomsCollection, entity.Document{"id": "r1", "number": "101"})
	remote.set(entity.TasksCollection,
		entity.Document{"id": "task-1", "text": "mine", "ownerId": "u1"},
		entity.Document{"id": "task-2", "text": "theirs", "ownerId": "u2"},
	)

	manager.Start("u1")

	waitFor(t, func() bool { return len(syncer.View().Rooms) == 1 })
	waitFor(t, func() bool { return len(syncer.View().Todos) == 1 })
	assert.Equal(t, "task-1", syncer.View().Todos[0].ID)
	assert.Equal(t, "u1", manager.UserID())
}

func TestChangeTickRedelivers(t *testing.T) {
	remote, syncer, manager := newManagerFixture(t)
	remote.set(entity.SpaCollection, entity.Document{"id": "spa-1", "status": entity.SpaPending})

	manager.Start("u1")
	waitFor(t, func() bool { return len(syncer.View().SpaRequests) == 1 })

	remote.set(entity.SpaCollection,
		entity.Document{"id": "spa-1", "status": entity.SpaConfirmed},
		entity.Document{"id": "spa-2", "status": entity.SpaPending},
	)
	remote.tick(entity.SpaCollection)

	waitFor(t, func() bool { return len(syncer.View().SpaRequests) == 2 })
	assert.Equal(t, entity.SpaConfirmed, syncer.View().SpaRequests[0].Status)
}

func TestIdentitySwitchReplacesUserScopedState(t *testing.T) {
	remote, syncer, manager := newManagerFixture(t)
	remote.set(entity.TasksCollection,
		entity.Document{"id": "task-u", "text": "mine", "ownerId": "u"},
		entity.Document{"id": "task-v", "text": "other", "ownerId": "v"},
	)

	manager.Start("u")
	waitFor(t, func() bool {
		todos := syncer.View().Todos
		return len(todos) == 1 && todos[0].ID == "task-u"
	})

	manager.Start("v")
	waitFor(t, func() bool {
		todos := syncer.View().Todos
		return len(todos) == 1 && todos[0].ID == "task-v"
	})
}

func TestStopIsSynchronous(t *testing.T) {
	remote, syncer, manager := newManagerFixture(t)
	remote.set(entity.RoomsCollection, entity.Document{"id": "r1", "number": "101"})

	manager.Start("u1")
	waitFor(t, func() bool { return len(syncer.View().Rooms) == 1 })

	manager.Stop()

	// after Stop returns, a change tick must not reach the view
	remote.set(entity.RoomsCollection, entity.Document{"id": "r9", "number": "909"})
	remote.tick(entity.RoomsCollection)
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, "r1", syncer.View().Rooms[0].ID)
}

func TestStandaloneSubscriptionUnsubscribeBlocks(t *testing.T) {
	remote, _, manager := newManagerFixture(t)
	remote.set(entity.ContactsCollection, entity.Document{"id": "ct-1", "name": "Spa provider"})

	var mu sync.Mutex
	var deliveries int
	unsubscribe := manager.SubscribeShared(entity.ContactsCollection, func(docs []entity.Document) {
		mu.Lock()
		deliveries++
		mu.Unlock()
	})

	waitFor(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return deliveries == 1
	})

	unsubscribe()

	remote.tick(entity.ContactsCollection)
	time.Sleep(50 * time.Millisecond)
	mu.Lock()
	assert.Equal(t, 1, deliveries)
	mu.Unlock()
}
