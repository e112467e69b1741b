package core

import (
	"context"
	"fmt"
	"log/slog"

	"HotelOS/entity"
)

// AuthenticateByToken resolves a session token for the authenticate
// middleware and the websocket upgrade.
func (c *Core) AuthenticateByToken(ctx context.Context, token string) (*entity.UserProfile, error) {
	if c.authService == nil {
		return nil, fmt.Errorf("auth service not available")
	}
	return c.authService.AuthenticateByToken(ctx, token)
}

// StartSession switches the subscription set to the given identity. A
// repeat call for the same user is a no-op; a different user tears the
// previous session down first.
func (c *Core) StartSession(user *entity.UserProfile) {
	if c.manager == nil || user == nil {
		return
	}
	if c.manager.UserID() == user.UID {
		return
	}
	c.log.Info("switching session", slog.String("uid", user.UID))
	c.manager.Start(user.UID)
}

// EndSession tears down the user-scoped subscriptions and keeps the
// shared ones running.
func (c *Core) EndSession() {
	if c.manager == nil {
		return
	}
	c.manager.Start("")
}

func (c *Core) GetAllUsers(ctx context.Context) ([]entity.UserProfile, error) {
	if c.authService == nil {
		return nil, fmt.Errorf("auth service not available")
	}
	return c.authService.GetAllUsers(ctx)
}
