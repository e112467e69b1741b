package core

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"HotelOS/entity"
	"HotelOS/internal/service/access"
)

// SendChatMessage appends a message to a channel. Channels live in the
// local cache only; the websocket feed fans the change out.
func (c *Core) SendChatMessage(user *entity.UserProfile, channelID, text string, attachments []entity.Attachment) (*entity.ChatMessage, error) {
	if c.syncer == nil {
		return nil, fmt.Errorf("state sync not available")
	}
	if err := access.Check(user, access.CapMessaging); err != nil {
		return nil, err
	}
	if text == "" && len(attachments) == 0 {
		return nil, fmt.Errorf("empty message")
	}

	msg := entity.ChatMessage{
		ID:          "msg-" + uuid.NewString(),
		SenderID:    user.UID,
		SenderName:  user.DisplayName,
		Text:        text,
		Attachments: attachments,
		Timestamp:   time.Now().UTC().Format(time.RFC3339Nano),
	}
	if !c.syncer.AppendChatMessage(channelID, msg) {
		return nil, fmt.Errorf("channel not found")
	}
	return &msg, nil
}

// MarkChannelRead resets the unread counter for the user and notifies
// other connected dashboards.
func (c *Core) MarkChannelRead(user *entity.UserProfile, channelID string) error {
	if c.syncer == nil {
		return fmt.Errorf("state sync not available")
	}
	if err := access.Check(user, access.CapMessaging); err != nil {
		return err
	}
	if !c.syncer.MarkChannelRead(channelID) {
		return fmt.Errorf("channel not found")
	}
	if c.broadcaster != nil {
		c.broadcaster.BroadcastChannelRead(user.UID, channelID)
	}
	return nil
}

// HandleReadChannel adapts the websocket client event to MarkChannelRead.
// The feed only carries a uid, so the profile is resolved first and the
// same capability gate applies as on the HTTP path.
func (c *Core) HandleReadChannel(uid, channelID string) error {
	if c.authService == nil {
		return fmt.Errorf("auth service not available")
	}
	user, err := c.authService.GetUser(context.Background(), uid)
	if err != nil {
		return err
	}
	return c.MarkChannelRead(user, channelID)
}

// Channels returns the channel list for the messaging view.
func (c *Core) Channels(user *entity.UserProfile) ([]entity.ChatChannel, error) {
	if c.syncer == nil {
		return nil, fmt.Errorf("state sync not available")
	}
	if err := access.Check(user, access.CapMessaging); err != nil {
		return nil, err
	}
	v := c.syncer.View()
	return v.Channels, nil
}
