package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMessagePreview(t *testing.T) {
	assert.Equal(t, "Bonjour", ChatMessage{Text: "Bonjour"}.Preview())
	assert.Equal(t, "Pièce jointe", ChatMessage{Attachments: []Attachment{{ID: "a1"}}}.Preview())
	assert.Empty(t, ChatMessage{}.Preview())
}

func TestAppendDerivesSummaryFields(t *testing.T) {
	ch := ChatChannel{ID: "ch-1"}
	ch.Append(ChatMessage{ID: "m1", Text: "first", Timestamp: "2024-05-17T10:00:00Z"})
	ch.Append(ChatMessage{ID: "m2", Text: "second", Timestamp: "2024-05-17T11:00:00Z"})

	assert.Len(t, ch.Messages, 2)
	assert.Equal(t, "second", ch.LastMessage)
	assert.Equal(t, "2024-05-17T11:00:00Z", ch.LastUpdate)
}

func TestSortChannelsDescendingAndStable(t *testing.T) {
	channels := []ChatChannel{
		{ID: "a", LastUpdate: "2024-05-17T09:00:00Z"},
		{ID: "b", LastUpdate: "2024-05-17T11:00:00Z"},
		{ID: "c", LastUpdate: "2024-05-17T09:00:00Z"},
		{ID: "d", LastUpdate: "not-a-time"},
	}

	SortChannels(channels)

	assert.Equal(t, "b", channels[0].ID)
	// equal timestamps keep their relative order
	assert.Equal(t, "a", channels[1].ID)
	assert.Equal(t, "c", channels[2].ID)
	// unparseable sorts last
	assert.Equal(t, "d", channels[3].ID)
}
