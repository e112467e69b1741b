package cont

import (
	"context"

	"HotelOS/entity"
)

type contextKey string

const userKey contextKey = "user"

// PutUser attaches the authenticated user profile to the request context.
func PutUser(ctx context.Context, user *entity.UserProfile) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// GetUser returns the authenticated user, or nil when the context carries none.
func GetUser(ctx context.Context) *entity.UserProfile {
	user, _ := ctx.Value(userKey).(*entity.UserProfile)
	return user
}
