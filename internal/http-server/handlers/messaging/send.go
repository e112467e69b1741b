package messaging

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"HotelOS/entity"
	handlererrors "HotelOS/internal/http-server/handlers/errors"
	"HotelOS/internal/lib/api/cont"
	"HotelOS/internal/lib/api/response"
	"HotelOS/internal/lib/sl"
)

func Send(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mod := sl.Module("http.handlers.messaging")

		logger := log.With(
			mod,
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		if handler == nil {
			logger.Error("messaging not available")
			render.JSON(w, r, response.Error("Messaging not available"))
			return
		}

		var req struct {
			ChannelID   string              `json:"channelId"`
			Text        string              `json:"text"`
			Attachments []entity.Attachment `json:"attachments,omitempty"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Error("failed to decode request body", sl.Err(err))
			render.JSON(w, r, response.Error("Invalid request body"))
			return
		}
		if req.ChannelID == "" {
			render.JSON(w, r, response.Error("Channel id required"))
			return
		}

		user := cont.GetUser(r.Context())
		msg, err := handler.SendChatMessage(user, req.ChannelID, req.Text, req.Attachments)
		if err != nil {
			logger.Error("send message", sl.Err(err))
			handlererrors.Render(w, r, err)
			return
		}
		logger.Debug("send message", slog.String("channel", req.ChannelID))

		render.JSON(w, r, response.Ok(msg))
	}
}
