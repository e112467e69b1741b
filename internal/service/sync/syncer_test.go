package sync

import (
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"HotelOS/entity"
	"HotelOS/internal/cache"
)

type recordingBroadcaster struct {
	mu    sync.Mutex
	kinds []string
}

func (b *recordingBroadcaster) BroadcastUpdate(kinds ...string) {
	b.mu.Lock()
	b.kinds = append(b.kinds, kinds...)
	b.mu.Unlock()
}

func (b *recordingBroadcaster) seen() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.kinds...)
}

func newTestSyncer(t *testing.T) (*Syncer, *recordingBroadcaster) {
	t.Helper()
	store, err := cache.NewStore(t.TempDir(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	s := NewSyncer(store, slog.New(slog.NewTextHandler(io.Discard, nil)))
	b := &recordingBroadcaster{}
	s.SetBroadcaster(b)
	go s.Run()
	t.Cleanup(s.Close)
	return s, b
}

func TestEmptyCacheSeedsDefaults(t *testing.T) {
	s, _ := newTestSyncer(t)

	v := s.View()
	assert.Len(t, v.Rooms, 12)
	assert.Len(t, v.Channels, 3)
	assert.Empty(t, v.Tickets)
	assert.Equal(t, DefaultRatioCategories(), v.RatioCategories)
}

func TestSnapshotReplacesWholesale(t *testing.T) {
	s, b := newTestSyncer(t)

	s.ApplySnapshot(entity.RoomsCollection, []entity.Document{
		{"id": "r1", "number": "101", "statusHK": entity.RoomHKInProgress},
	})

	v := s.View()
	require.Len(t, v.Rooms, 1)
	assert.Equal(t, entity.RoomHKInProgress, v.Rooms[0].StatusHK)
	assert.Contains(t, b.seen(), KindRooms)

	// the next snapshot is again authoritative, not a merge
	s.ApplySnapshot(entity.RoomsCollection, []entity.Document{
		{"id": "r2", "number": "102"},
	})
	v = s.View()
	require.Len(t, v.Rooms, 1)
	assert.Equal(t, "r2", v.Rooms[0].ID)
}

func TestSnapshotReplayIsIdempotent(t *testing.T) {
	s, _ := newTestSyncer(t)

	docs := []entity.Document{
		{"id": "t1", "description": "Leaking tap"},
		{"id": "c1", "providerName": "Otis"},
	}
	s.ApplySnapshot(entity.MaintenanceCollection, docs)
	first := s.View()

	s.ApplySnapshot(entity.MaintenanceCollection, docs)
	second := s.View()

	assert.Equal(t, first.Tickets, second.Tickets)
	assert.Equal(t, first.Contracts, second.Contracts)
}

func TestEmptyClientBucketKeepsCachedClients(t *testing.T) {
	s, _ := newTestSyncer(t)

	s.ApplySnapshot(entity.GroupsCollection, []entity.Document{
		{"id": "cli-1", "name": "Repeat Client", "type_doc": entity.TypeDocClient},
		{"id": "grp-1", "name": "Acme Seminar"},
	})
	require.Len(t, s.View().Clients, 1)

	// a snapshot with no client documents keeps the previous client list
	s.ApplySnapshot(entity.GroupsCollection, []entity.Document{
		{"id": "grp-2", "name": "Other Seminar"},
	})

	v := s.View()
	assert.Len(t, v.Clients, 1)
	require.Len(t, v.Groups, 1)
	assert.Equal(t, "grp-2", v.Groups[0].ID)
}

type recordingNotifier struct {
	mu   sync.Mutex
	msgs []string
}

func (n *recordingNotifier) SendMessage(msg string) {
	n.mu.Lock()
	n.msgs = append(n.msgs, msg)
	n.mu.Unlock()
}

func (n *recordingNotifier) seen() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.msgs...)
}

func TestNewUrgentLogEntryRaisesAlert(t *testing.T) {
	s, _ := newTestSyncer(t)
	n := &recordingNotifier{}
	s.SetNotifier(n)

	s.ApplySnapshot(entity.ReceptionCollection, []entity.Document{
		{"id": "log-1", "author": "Nadia", "message": "VIP in 204 asked for a doctor", "priority": entity.LogUrgent, "status": entity.LogActive},
		{"id": "log-2", "author": "Marc", "message": "Towels restocked", "priority": entity.LogInfo},
	})

	msgs := n.seen()
	require.Len(t, msgs, 1)
	assert.Contains(t, msgs[0], "Nadia")
	assert.Contains(t, msgs[0], "doctor")

	// replaying the same snapshot does not alert again
	s.ApplySnapshot(entity.ReceptionCollection, []entity.Document{
		{"id": "log-1", "author": "Nadia", "message": "VIP in 204 asked for a doctor", "priority": entity.LogUrgent, "status": entity.LogActive},
	})
	assert.Len(t, n.seen(), 1)

	// archived urgent entries stay quiet
	s.ApplySnapshot(entity.ReceptionCollection, []entity.Document{
		{"id": "log-3", "author": "Nadia", "message": "Old incident", "priority": entity.LogUrgent, "status": entity.LogArchived},
	})
	assert.Len(t, n.seen(), 1)
}

func TestUnknownCollectionIgnored(t *testing.T) {
	s, _ := newTestSyncer(t)
	before := s.View()

	s.ApplySnapshot("bogus", []entity.Document{{"id": "x"}})

	assert.Equal(t, before, s.View())
}

func TestAppendChatMessageReordersChannels(t *testing.T) {
	s, b := newTestSyncer(t)

	ok := s.AppendChatMessage("ch-housekeeping", entity.ChatMessage{
		ID: "m1", Text: "Étage 2 terminé", Timestamp: "2024-05-17T10:00:00Z",
	})
	require.True(t, ok)

	v := s.View()
	assert.Equal(t, "ch-housekeeping", v.Channels[0].ID)
	assert.Equal(t, "Étage 2 terminé", v.Channels[0].LastMessage)
	assert.Contains(t, b.seen(), KindMessaging)

	ok = s.AppendChatMessage("ch-reception", entity.ChatMessage{
		ID: "m2", Text: "VIP 204 arrivé", Timestamp: "2024-05-17T11:00:00Z",
	})
	require.True(t, ok)
	assert.Equal(t, "ch-reception", s.View().Channels[0].ID)

	assert.False(t, s.AppendChatMessage("ch-missing", entity.ChatMessage{ID: "m3"}))
}

func TestChatMessagesAppendOnlyInArrivalOrder(t *testing.T) {
	s, _ := newTestSyncer(t)

	stamps := []string{
		"2024-05-17T10:00:00Z",
		"2024-05-17T10:01:00Z",
		"2024-05-17T10:02:00Z",
		"2024-05-17T10:03:00Z",
	}
	for _, ts := range stamps {
		require.True(t, s.AppendChatMessage("ch-general", entity.ChatMessage{
			ID:        "m" + ts,
			Text:      "msg",
			Timestamp: ts,
		}))
	}

	var general entity.ChatChannel
	for _, ch := range s.View().Channels {
		if ch.ID == "ch-general" {
			general = ch
		}
	}
	require.Len(t, general.Messages, 4)
	for i, msg := range general.Messages {
		assert.Equal(t, stamps[i], msg.Timestamp)
	}
	assert.Equal(t, stamps[3], general.LastUpdate)
}

func TestMarkChannelRead(t *testing.T) {
	s, _ := newTestSyncer(t)

	s.Apply(func(vm *ViewModel) {
		channels := append([]entity.ChatChannel(nil), vm.Channels...)
		channels[0].UnreadCount = 5
		vm.Channels = channels
	})
	unreadID := s.View().Channels[0].ID

	assert.True(t, s.MarkChannelRead(unreadID))

	assert.Zero(t, s.View().Channels[0].UnreadCount)
}

func TestMarkChannelReadMissIsSilent(t *testing.T) {
	s, b := newTestSyncer(t)
	before := s.View().Channels

	assert.False(t, s.MarkChannelRead("ch-nowhere"))

	assert.Equal(t, before, s.View().Channels)
	assert.NotContains(t, b.seen(), KindMessaging)
}

func TestLocalMutationsPersistAcrossRestart(t *testing.T) {
	dir := t.TempDir()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	store, err := cache.NewStore(dir, log)
	require.NoError(t, err)

	s := NewSyncer(store, log)
	go s.Run()
	require.True(t, s.AppendChatMessage("ch-general", entity.ChatMessage{
		ID: "m1", Text: "persisted", Timestamp: "2024-05-17T10:00:00Z",
	}))
	s.SetRatioCategories([]string{"Vins"})
	s.Close()

	store2, err := cache.NewStore(dir, log)
	require.NoError(t, err)
	s2 := NewSyncer(store2, log)

	v := s2.View()
	assert.Equal(t, []string{"Vins"}, v.RatioCategories)
	require.NotEmpty(t, v.Channels)
	assert.Equal(t, "persisted", v.Channels[0].LastMessage)
}
