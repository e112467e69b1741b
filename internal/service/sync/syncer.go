package sync

import (
	"log/slog"
	"sync"

	"HotelOS/entity"
	"HotelOS/internal/cache"
	"HotelOS/internal/lib/sl"
)

// Broadcaster is notified after the view model changes, in practice the
// websocket hub pushing updates to connected dashboards.
type Broadcaster interface {
	BroadcastUpdate(kinds ...string)
}

// Notifier pushes out-of-band alerts, in practice the telegram admin chat.
type Notifier interface {
	SendMessage(msg string)
}

// Update kinds sent to the broadcaster.
const (
	KindRooms       = "rooms"
	KindLaundry     = "laundry"
	KindMaintenance = "maintenance"
	KindInventory   = "inventory"
	KindReception   = "reception"
	KindGroups      = "groups"
	KindSpa         = "spa"
	KindTasks       = "tasks"
	KindAgenda      = "agenda"
	KindContacts    = "contacts"
	KindMessaging   = "messaging"
	KindCatalog     = "catalog"
)

type event struct {
	collection string
	docs       []entity.Document
	apply      func(*ViewModel)
	done       chan struct{}
}

// Syncer owns the view model. Snapshot deliveries and local mutations are
// posted to one event queue and processed strictly in arrival order by a
// single goroutine, which is what makes per-collection snapshot ordering
// observable ordering: nothing can interleave inside one event.
type Syncer struct {
	events chan event
	mu     sync.RWMutex
	view   ViewModel

	cache       *cache.Store
	broadcaster Broadcaster
	notifier    Notifier
	log         *slog.Logger
}

func NewSyncer(store *cache.Store, log *slog.Logger) *Syncer {
	s := &Syncer{
		events: make(chan event, 64),
		cache:  store,
		log:    log.With(sl.Module("syncer")),
	}
	s.view = loadInitial(store)
	return s
}

func (s *Syncer) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

func (s *Syncer) SetNotifier(n Notifier) {
	s.notifier = n
}

// Run starts the event loop. Should be called in a goroutine before any
// subscription opens.
func (s *Syncer) Run() {
	for ev := range s.events {
		if ev.apply != nil {
			s.mu.Lock()
			ev.apply(&s.view)
			s.mu.Unlock()
		} else {
			s.reconcile(ev.collection, ev.docs)
		}
		close(ev.done)
	}
}

// Close stops the event loop. Pending events are processed first.
func (s *Syncer) Close() {
	close(s.events)
}

// ApplySnapshot delivers the full contents of one collection and returns
// once the view model reflects it.
func (s *Syncer) ApplySnapshot(collection string, docs []entity.Document) {
	done := make(chan struct{})
	s.events <- event{collection: collection, docs: docs, done: done}
	<-done
}

// Apply runs a local mutation on the view model and returns once it has
// been processed. Mutations must replace slices rather than edit them.
func (s *Syncer) Apply(fn func(*ViewModel)) {
	done := make(chan struct{})
	s.events <- event{apply: fn, done: done}
	<-done
}

// View returns a copy of the current view model. The slices inside are
// shared but never mutated after publication.
func (s *Syncer) View() ViewModel {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.view
}

func (s *Syncer) replace(fn func(*ViewModel)) {
	s.mu.Lock()
	fn(&s.view)
	s.mu.Unlock()
}

func (s *Syncer) notify(kinds ...string) {
	if s.broadcaster != nil {
		s.broadcaster.BroadcastUpdate(kinds...)
	}
}

// alertUrgentLogs raises the alert channel for urgent handover notes that
// were not in the previous snapshot.
func (s *Syncer) alertUrgentLogs(prev, next []entity.LogEntry) {
	if s.notifier == nil {
		return
	}
	known := make(map[string]struct{}, len(prev))
	for _, l := range prev {
		known[l.ID] = struct{}{}
	}
	for _, l := range next {
		if l.Priority != entity.LogUrgent || l.Status == entity.LogArchived {
			continue
		}
		if _, ok := known[l.ID]; ok {
			continue
		}
		s.notifier.SendMessage("URGENT " + l.Author + ": " + l.Message)
	}
}

func (s *Syncer) logDropped(collection string, dropped int) {
	if dropped > 0 {
		s.log.Warn("dropped unclassifiable documents",
			slog.String("collection", collection),
			slog.Int("count", dropped),
		)
	}
}
