package core

import (
	"fmt"

	"HotelOS/entity"
)

// ComposeResponse forwards a staff question to the concierge assistant.
func (c *Core) ComposeResponse(user *entity.UserProfile, userMsg string) (string, error) {
	if c.assistant == nil {
		return "", fmt.Errorf("assistant not available")
	}
	return c.assistant.ComposeResponse(user, userMsg)
}

// ClearConversation resets the user's assistant thread.
func (c *Core) ClearConversation(user *entity.UserProfile) error {
	if c.assistant == nil {
		return fmt.Errorf("assistant not available")
	}
	c.assistant.ClearConversation(user.UID)
	return nil
}
