package assistant

import "HotelOS/entity"

type Core interface {
	ComposeResponse(user *entity.UserProfile, userMsg string) (string, error)
	ClearConversation(user *entity.UserProfile) error
}
