package ws

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

type recordingHandler struct {
	calls [][2]string
}

func (h *recordingHandler) HandleReadChannel(uid, channelID string) error {
	h.calls = append(h.calls, [2]string{uid, channelID})
	return nil
}

func TestHandleClientMessageDispatchesReadChannel(t *testing.T) {
	hub := NewHub(slog.New(slog.NewTextHandler(io.Discard, nil)))
	handler := &recordingHandler{}
	hub.SetHandler(handler)

	hub.HandleClientMessage("u1", []byte(`{"type":"read_channel","data":{"channel_id":"ch-general"}}`))

	assert.Equal(t, [][2]string{{"u1", "ch-general"}}, handler.calls)
}

func TestHandleClientMessageIgnoresMalformedAndUnknown(t *testing.T) {
	hub := NewHub(slog.New(slog.NewTextHandler(io.Discard, nil)))
	handler := &recordingHandler{}
	hub.SetHandler(handler)

	hub.HandleClientMessage("u1", []byte(`not json`))
	hub.HandleClientMessage("u1", []byte(`{"type":"dance"}`))
	hub.HandleClientMessage("u1", []byte(`{"type":"read_channel","data":{"channel_id":""}}`))

	assert.Empty(t, handler.calls)
}
