package core

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"HotelOS/entity"
	"HotelOS/internal/cache"
	"HotelOS/internal/service/access"
	statesync "HotelOS/internal/service/sync"
)

type fakeCoordinator struct {
	written map[string][]entity.Document
	removed []string
}

func (f *fakeCoordinator) Write(_ context.Context, collection, actorUID string, doc entity.Document) error {
	if entity.IsUserScoped(collection) {
		doc = doc.Stamp(actorUID)
	}
	f.written[collection] = append(f.written[collection], doc)
	return nil
}

func (f *fakeCoordinator) Remove(_ context.Context, collection, id string) error {
	f.removed = append(f.removed, collection+"/"+id)
	return nil
}

func (f *fakeCoordinator) WriteAll(ctx context.Context, collection, actorUID string, docs []entity.Document) []error {
	errs := make([]error, len(docs))
	for i, doc := range docs {
		errs[i] = f.Write(ctx, collection, actorUID, doc)
	}
	return errs
}

func newTestCore(t *testing.T) (*Core, *fakeCoordinator) {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	store, err := cache.NewStore(t.TempDir(), log)
	require.NoError(t, err)

	syncer := statesync.NewSyncer(store, log)
	go syncer.Run()
	t.Cleanup(syncer.Close)

	coordinator := &fakeCoordinator{written: make(map[string][]entity.Document)}

	c := New(log)
	c.SetSyncer(syncer)
	c.SetCoordinator(coordinator)
	return c, coordinator
}

func staff(perms entity.UserPermissions) *entity.UserProfile {
	return &entity.UserProfile{
		UID:         "u1",
		DisplayName: "Claire",
		Role:        entity.StaffRole,
		Permissions: perms,
	}
}

func TestDashboardViewFiltersByCapability(t *testing.T) {
	c, _ := newTestCore(t)
	user := staff(entity.UserPermissions{CanViewHousekeeping: true})

	v, err := c.DashboardView(user)
	require.NoError(t, err)

	assert.Contains(t, v, "rooms")
	assert.Contains(t, v, "todos")
	assert.NotContains(t, v, "tickets")
	assert.NotContains(t, v, "channels")
	assert.NotContains(t, v, "clients")
}

func TestDashboardViewManagementSeesClients(t *testing.T) {
	c, _ := newTestCore(t)
	manager := &entity.UserProfile{UID: "m1", Role: entity.ManagerRole, Permissions: entity.AllPermissions()}

	v, err := c.DashboardView(manager)
	require.NoError(t, err)
	assert.Contains(t, v, "clients")
	assert.Contains(t, v, "channels")
}

func TestSaveDocumentDeniedWithoutCapability(t *testing.T) {
	c, coordinator := newTestCore(t)
	user := staff(entity.UserPermissions{CanViewSpa: true})

	err := c.SaveDocument(context.Background(), user, entity.MaintenanceCollection, entity.Document{"id": "t1"})

	var denied *access.DeniedError
	require.ErrorAs(t, err, &denied)
	assert.Equal(t, "Accès Maintenance restreint.", denied.Reason)
	assert.Empty(t, coordinator.written)
}

func TestSaveDocumentDispatchesWhenAllowed(t *testing.T) {
	c, coordinator := newTestCore(t)
	user := staff(entity.UserPermissions{CanViewSpa: true})

	err := c.SaveDocument(context.Background(), user, entity.SpaCollection, entity.Document{"id": "spa-1"})
	require.NoError(t, err)
	require.Len(t, coordinator.written[entity.SpaCollection], 1)
}

func TestSendChatMessageRequiresMessaging(t *testing.T) {
	c, _ := newTestCore(t)

	_, err := c.SendChatMessage(staff(entity.UserPermissions{}), "ch-general", "hello", nil)
	var denied *access.DeniedError
	require.ErrorAs(t, err, &denied)

	msg, err := c.SendChatMessage(staff(entity.UserPermissions{CanViewMessaging: true}), "ch-general", "hello", nil)
	require.NoError(t, err)
	assert.Equal(t, "u1", msg.SenderID)
	assert.Equal(t, "Claire", msg.SenderName)
	assert.NotEmpty(t, msg.Timestamp)

	channels, err := c.Channels(staff(entity.UserPermissions{CanViewMessaging: true}))
	require.NoError(t, err)
	assert.Equal(t, "ch-general", channels[0].ID)
	assert.Equal(t, "hello", channels[0].LastMessage)
}

type fakeAuthService struct {
	users map[string]*entity.UserProfile
}

func (f *fakeAuthService) AuthenticateByToken(_ context.Context, _ string) (*entity.UserProfile, error) {
	return nil, errors.New("token not found")
}

func (f *fakeAuthService) GetUser(_ context.Context, uid string) (*entity.UserProfile, error) {
	user, ok := f.users[uid]
	if !ok {
		return nil, errors.New("user not found")
	}
	return user, nil
}

func (f *fakeAuthService) GetAllUsers(_ context.Context) ([]entity.UserProfile, error) {
	return nil, nil
}

func TestHandleReadChannelRequiresMessaging(t *testing.T) {
	c, _ := newTestCore(t)
	c.SetAuthService(&fakeAuthService{users: map[string]*entity.UserProfile{
		"u1": staff(entity.UserPermissions{}),
	}})

	c.syncer.Apply(func(vm *statesync.ViewModel) {
		channels := append([]entity.ChatChannel(nil), vm.Channels...)
		channels[0].UnreadCount = 2
		vm.Channels = channels
	})
	channelID := c.syncer.View().Channels[0].ID

	err := c.HandleReadChannel("u1", channelID)
	var denied *access.DeniedError
	require.ErrorAs(t, err, &denied)
	assert.Equal(t, 2, c.syncer.View().Channels[0].UnreadCount)

	// an unresolvable uid never touches the channel either
	assert.Error(t, c.HandleReadChannel("ghost", channelID))
	assert.Equal(t, 2, c.syncer.View().Channels[0].UnreadCount)

	c.SetAuthService(&fakeAuthService{users: map[string]*entity.UserProfile{
		"u1": staff(entity.UserPermissions{CanViewMessaging: true}),
	}})
	require.NoError(t, c.HandleReadChannel("u1", channelID))
	assert.Zero(t, c.syncer.View().Channels[0].UnreadCount)
}

func TestMarkChannelReadUnknownChannel(t *testing.T) {
	c, _ := newTestCore(t)
	user := staff(entity.UserPermissions{CanViewMessaging: true})

	err := c.MarkChannelRead(user, "ch-nowhere")
	assert.EqualError(t, err, "channel not found")
}

func TestStatsRoleGated(t *testing.T) {
	c, _ := newTestCore(t)

	_, err := c.Stats(staff(entity.AllPermissions()))
	var denied *access.DeniedError
	require.ErrorAs(t, err, &denied)
	assert.Equal(t, "Accès restreint aux Managers et Administrateurs.", denied.Reason)

	overview, err := c.Stats(&entity.UserProfile{UID: "a1", Role: entity.AdminRole})
	require.NoError(t, err)
	assert.Equal(t, 12, overview.RoomsTotal)
}

func TestUpdateBusinessConfigRequiresSettings(t *testing.T) {
	c, _ := newTestCore(t)

	err := c.UpdateBusinessConfig(staff(entity.UserPermissions{}), entity.BusinessConfig{})
	assert.Error(t, err)

	admin := staff(entity.UserPermissions{CanManageSettings: true})
	assert.NoError(t, c.UpdateBusinessConfig(admin, entity.BusinessConfig{CompanyName: "Le Rivage"}))
}
