package messaging

import "HotelOS/entity"

type Core interface {
	Channels(user *entity.UserProfile) ([]entity.ChatChannel, error)
	SendChatMessage(user *entity.UserProfile, channelID, text string, attachments []entity.Attachment) (*entity.ChatMessage, error)
	MarkChannelRead(user *entity.UserProfile, channelID string) error
}
