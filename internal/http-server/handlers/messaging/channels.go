package messaging

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	handlererrors "HotelOS/internal/http-server/handlers/errors"
	"HotelOS/internal/lib/api/cont"
	"HotelOS/internal/lib/api/response"
	"HotelOS/internal/lib/sl"
)

func Channels(log *slog.Logger, handler Core) http.HandlerFunc {
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

		user := cont.GetUser(r.Context())
		channels, err := handler.Channels(user)
		if err != nil {
			logger.Error("get channels", sl.Err(err))
			handlererrors.Render(w, r, err)
			return
		}
		logger.Debug("get channels", slog.Int("count", len(channels)))

		render.JSON(w, r, response.Ok(channels))
	}
}
