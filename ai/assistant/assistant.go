package assistant

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/sashabaranov/go-openai"

	"HotelOS/entity"
	"HotelOS/internal/config"
	"HotelOS/internal/lib/sl"
	statesync "HotelOS/internal/service/sync"
)

const (
	maxHistory     = 12
	requestTimeout = 45 * time.Second
)

// StateProvider hands the assistant a consistent copy of the current
// operational state.
type StateProvider interface {
	View() statesync.ViewModel
}

// Concierge answers staff questions grounded on the live dashboard state.
// Conversations are kept per user and trimmed, never persisted.
type Concierge struct {
	client *openai.Client
	model  string
	state  StateProvider

	mu      sync.Mutex
	history map[string][]openai.ChatCompletionMessage

	log *slog.Logger
}

func NewConcierge(conf *config.Config, logger *slog.Logger) *Concierge {
	return &Concierge{
		client:  openai.NewClient(conf.OpenAI.ApiKey),
		model:   conf.OpenAI.Model,
		history: make(map[string][]openai.ChatCompletionMessage),
		log:     logger.With(sl.Module("concierge")),
	}
}

func (c *Concierge) SetStateProvider(state StateProvider) {
	c.state = state
}

// ComposeResponse sends the user message with a fresh operational briefing
// and the trimmed conversation history.
func (c *Concierge) ComposeResponse(user *entity.UserProfile, userMsg string) (string, error) {
	if user == nil {
		return "", fmt.Errorf("no user")
	}

	system := openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: c.systemPrompt(user),
	}

	c.mu.Lock()
	past := c.history[user.UID]
	c.mu.Unlock()

	messages := make([]openai.ChatCompletionMessage, 0, len(past)+2)
	messages = append(messages, system)
	messages = append(messages, past...)
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: userMsg,
	})

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    c.model,
		Messages: messages,
	})
	if err != nil {
		return "", fmt.Errorf("error creating chat completion: %v", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices returned")
	}

	answer := resp.Choices[0].Message.Content

	c.mu.Lock()
	past = append(past,
		openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser, Content: userMsg},
		openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: answer},
	)
	if len(past) > maxHistory {
		past = past[len(past)-maxHistory:]
	}
	c.history[user.UID] = past
	c.mu.Unlock()

	c.log.With(
		slog.String("uid", user.UID),
	).Debug("compose response")

	return answer, nil
}

// ClearConversation drops the user's history so the next question starts
// a fresh thread.
func (c *Concierge) ClearConversation(uid string) {
	c.mu.Lock()
	delete(c.history, uid)
	c.mu.Unlock()
}

func (c *Concierge) systemPrompt(user *entity.UserProfile) string {
	prompt := fmt.Sprintf(
		"You are the operations concierge of a hotel dashboard. "+
			"You answer briefly and factually, in the language of the question. "+
			"You are talking to %s (%s).",
		user.DisplayName, user.Role,
	)
	if c.state == nil {
		return prompt
	}
	return prompt + "\n\nCurrent state:\n" + briefing(c.state.View())
}

// briefing condenses the view into a few lines of operational context.
func briefing(v statesync.ViewModel) string {
	toClean := 0
	for _, r := range v.Rooms {
		if r.StatusHK == entity.RoomHKNotStarted {
			toClean++
		}
	}
	openTickets := 0
	for _, t := range v.Tickets {
		if t.Status != entity.TicketResolved {
			openTickets++
		}
	}
	pendingSpa := 0
	for _, s := range v.SpaRequests {
		if s.Status == entity.SpaPending {
			pendingSpa++
		}
	}
	return fmt.Sprintf(
		"- %d rooms, %d waiting for cleaning\n"+
			"- %d open maintenance tickets, %d active contracts\n"+
			"- %d pending spa requests\n"+
			"- %d reception log entries, %d wake-up calls, %d taxi bookings, %d lost items\n"+
			"- %d groups, %d leads, %d clients\n"+
			"- %d calendar events, %d personal tasks",
		len(v.Rooms), toClean,
		openTickets, len(v.Contracts),
		pendingSpa,
		len(v.Logs), len(v.Wakeups), len(v.Taxis), len(v.LostItems),
		len(v.Groups), len(v.Leads), len(v.Clients),
		len(v.Events), len(v.Todos),
	)
}
