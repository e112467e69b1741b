package core

import (
	"context"
	"log/slog"

	"HotelOS/entity"
	"HotelOS/internal/lib/sl"
	statesync "HotelOS/internal/service/sync"
)

type AuthService interface {
	AuthenticateByToken(ctx context.Context, token string) (*entity.UserProfile, error)
	GetUser(ctx context.Context, uid string) (*entity.UserProfile, error)
	GetAllUsers(ctx context.Context) ([]entity.UserProfile, error)
}

type WriteCoordinator interface {
	Write(ctx context.Context, collection, actorUID string, doc entity.Document) error
	Remove(ctx context.Context, collection, id string) error
	WriteAll(ctx context.Context, collection, actorUID string, docs []entity.Document) []error
}

type Assistant interface {
	ComposeResponse(user *entity.UserProfile, userMsg string) (string, error)
	ClearConversation(uid string)
}

type Broadcaster interface {
	BroadcastUpdate(kinds ...string)
	BroadcastChannelRead(uid, channelID string)
}

// Core wires the state machinery to the transport layer. Handlers talk to
// Core only; Core decides which service serves the call and gates it.
type Core struct {
	authService AuthService
	syncer      *statesync.Syncer
	manager     *statesync.Manager
	coordinator WriteCoordinator
	assistant   Assistant
	broadcaster Broadcaster
	log         *slog.Logger
}

func New(log *slog.Logger) *Core {
	return &Core{
		log: log.With(sl.Module("core")),
	}
}

func (c *Core) SetAuthService(auth AuthService) {
	c.authService = auth
}

func (c *Core) SetSyncer(syncer *statesync.Syncer) {
	c.syncer = syncer
}

func (c *Core) SetManager(manager *statesync.Manager) {
	c.manager = manager
}

func (c *Core) SetCoordinator(coordinator WriteCoordinator) {
	c.coordinator = coordinator
}

func (c *Core) SetAssistant(assistant Assistant) {
	c.assistant = assistant
}

func (c *Core) SetBroadcaster(broadcaster Broadcaster) {
	c.broadcaster = broadcaster
}

// Init opens the shared subscriptions. User subscriptions follow the
// first authenticated session.
func (c *Core) Init() {
	if c.manager != nil {
		c.manager.Start("")
	}
}
