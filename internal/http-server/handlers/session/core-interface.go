package session

import "HotelOS/entity"

type Core interface {
	StartSession(user *entity.UserProfile)
	EndSession()
}
