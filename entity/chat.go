package entity

import (
	"sort"
	"time"
)

const (
	ChannelGroup  = "group"
	ChannelDirect = "direct"
)

type Reaction struct {
	Emoji string   `json:"emoji" bson:"emoji"`
	Count int      `json:"count" bson:"count"`
	Users []string `json:"users" bson:"users"`
}

type ChatMessage struct {
	ID          string       `json:"id" bson:"id"`
	SenderID    string       `json:"senderId" bson:"senderId"`
	SenderName  string       `json:"senderName" bson:"senderName"`
	Text        string       `json:"text" bson:"text"`
	Timestamp   string       `json:"timestamp" bson:"timestamp"`
	IsSystem    bool         `json:"isSystem,omitempty" bson:"isSystem,omitempty"`
	Attachments []Attachment `json:"attachments,omitempty" bson:"attachments,omitempty"`
	Reactions   []Reaction   `json:"reactions,omitempty" bson:"reactions,omitempty"`
}

// Preview is the channel list summary line for a message.
func (m ChatMessage) Preview() string {
	if m.Text != "" {
		return m.Text
	}
	if len(m.Attachments) > 0 {
		return "Pièce jointe"
	}
	return ""
}

type ChatChannel struct {
	ID           string        `json:"id" bson:"id"`
	Type         string        `json:"type" bson:"type"`
	Name         string        `json:"name" bson:"name"`
	Participants []string      `json:"participants" bson:"participants"`
	Messages     []ChatMessage `json:"messages" bson:"messages"`
	UnreadCount  int           `json:"unreadCount" bson:"unreadCount"`
	LastUpdate   string        `json:"lastUpdate" bson:"lastUpdate"`
	IsOnline     bool          `json:"isOnline,omitempty" bson:"isOnline,omitempty"`
	LastMessage  string        `json:"lastMessage,omitempty" bson:"lastMessage,omitempty"`
}

// Append adds a message to the channel and re-derives the summary fields.
// Messages are append-only per channel.
func (c *ChatChannel) Append(msg ChatMessage) {
	c.Messages = append(c.Messages, msg)
	c.LastMessage = msg.Preview()
	c.LastUpdate = msg.Timestamp
}

// SortChannels orders a channel list by lastUpdate, most recent first.
// The sort is stable so channels with equal timestamps keep their order.
func SortChannels(channels []ChatChannel) {
	sort.SliceStable(channels, func(i, j int) bool {
		return channelTime(channels[i]).After(channelTime(channels[j]))
	})
}

func channelTime(c ChatChannel) time.Time {
	t, err := time.Parse(time.RFC3339Nano, c.LastUpdate)
	if err != nil {
		return time.Time{}
	}
	return t
}
