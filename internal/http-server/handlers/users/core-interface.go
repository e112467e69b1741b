package users

import (
	"context"

	"HotelOS/entity"
)

type Core interface {
	GetAllUsers(ctx context.Context) ([]entity.UserProfile, error)
}
