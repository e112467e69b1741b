package messaging

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	handlererrors "HotelOS/internal/http-server/handlers/errors"
	"HotelOS/internal/lib/api/cont"
	"HotelOS/internal/lib/api/response"
	"HotelOS/internal/lib/sl"
)

func Read(log *slog.Logger, handler Core) http.HandlerFunc {
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
			ChannelID string `json:"channelId"`
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
		if err := handler.MarkChannelRead(user, req.ChannelID); err != nil {
			logger.Error("mark channel read", sl.Err(err))
			handlererrors.Render(w, r, err)
			return
		}
		logger.Debug("mark channel read", slog.String("channel", req.ChannelID))

		render.JSON(w, r, response.OK())
	}
}
