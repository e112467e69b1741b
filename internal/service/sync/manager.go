package sync

import (
	"context"
	"log/slog"
	"sync"

	"HotelOS/entity"
	"HotelOS/internal/lib/sl"
)

// RemoteStore is the slice of the repository the subscription manager
// needs: full-contents fetches and a change notification feed.
type RemoteStore interface {
	FetchCollection(ctx context.Context, collection string) ([]entity.Document, error)
	FetchUserCollection(ctx context.Context, collection, ownerID string) ([]entity.Document, error)
	WatchCollection(ctx context.Context, collection string) (<-chan struct{}, error)
}

// SnapshotFunc receives the full current contents of one collection.
// Every delivery is authoritative and complete.
type SnapshotFunc func(docs []entity.Document)

// Manager keeps exactly one live subscription per (collection, scope) for
// the lifetime of an authenticated session. Deliveries within one
// subscription are strictly ordered; subscriptions of different
// collections are independent.
type Manager struct {
	store  RemoteStore
	syncer *Syncer
	log    *slog.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
	uid    string
}

func NewManager(store RemoteStore, syncer *Syncer, log *slog.Logger) *Manager {
	return &Manager{
		store:  store,
		syncer: syncer,
		log:    log.With(sl.Module("subscriptions")),
	}
}

// Start opens the session's subscriptions: every shared collection plus
// the user-scoped ones for the given identity. Any previous session is
// torn down first, synchronously, so a stale subscription can never
// deliver into the new session's view model.
func (m *Manager) Start(userID string) {
	m.Stop()

	m.mu.Lock()
	defer m.mu.Unlock()

	ctx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel
	m.uid = userID

	for _, collection := range entity.SharedCollections() {
		m.open(ctx, collection, "")
	}
	if userID != "" {
		for _, collection := range entity.UserCollections() {
			m.open(ctx, collection, userID)
		}
	}
	m.log.Info("session subscriptions opened", slog.String("uid", userID))
}

// Stop tears the current session down and only returns once every
// subscription goroutine has finished its last delivery.
func (m *Manager) Stop() {
	m.mu.Lock()
	cancel := m.cancel
	m.cancel = nil
	m.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	m.wg.Wait()
}

// UserID returns the identity of the current session.
func (m *Manager) UserID() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.uid
}

// SubscribeShared opens a standalone subscription on a shared collection
// and returns its unsubscribe function, which blocks until the final
// delivery has completed.
func (m *Manager) SubscribeShared(collection string, onSnapshot SnapshotFunc) func() {
	return m.subscribe(collection, "", onSnapshot)
}

// SubscribeUser opens a standalone subscription on a user-scoped
// collection for one owner identity.
func (m *Manager) SubscribeUser(collection, userID string, onSnapshot SnapshotFunc) func() {
	return m.subscribe(collection, userID, onSnapshot)
}

func (m *Manager) subscribe(collection, ownerID string, onSnapshot SnapshotFunc) func() {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		m.pump(ctx, collection, ownerID, onSnapshot)
	}()
	return func() {
		cancel()
		<-done
	}
}

// open wires a session subscription straight into the reconciler.
func (m *Manager) open(ctx context.Context, collection, ownerID string) {
	m.wg.Add(1)
	go func() {
		defer m.wg.Done()
		m.pump(ctx, collection, ownerID, func(docs []entity.Document) {
			m.syncer.ApplySnapshot(collection, docs)
		})
	}()
}

// pump delivers the initial snapshot, then one snapshot per change tick.
// Fetch and delivery run sequentially in this one goroutine, which is the
// per-collection ordering guarantee.
func (m *Manager) pump(ctx context.Context, collection, ownerID string, onSnapshot SnapshotFunc) {
	deliver := func() {
		var (
			docs []entity.Document
			err  error
		)
		if ownerID != "" {
			docs, err = m.store.FetchUserCollection(ctx, collection, ownerID)
		} else {
			docs, err = m.store.FetchCollection(ctx, collection)
		}
		if err != nil {
			if ctx.Err() == nil {
				m.log.Warn("snapshot fetch failed", slog.String("collection", collection), sl.Err(err))
			}
			return
		}
		if ctx.Err() != nil {
			return
		}
		onSnapshot(docs)
	}

	deliver()

	changes, err := m.store.WatchCollection(ctx, collection)
	if err != nil {
		if ctx.Err() == nil {
			m.log.Error("watch failed, collection is frozen at its initial snapshot",
				slog.String("collection", collection), sl.Err(err))
		}
		return
	}
	for {
		select {
		case <-ctx.Done():
			return
		case _, ok := <-changes:
			if !ok {
				return
			}
			deliver()
		}
	}
}
