package session

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"HotelOS/internal/lib/api/response"
	"HotelOS/internal/lib/sl"
)

func End(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mod := sl.Module("http.handlers.session")

		logger := log.With(
			mod,
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		if handler == nil {
			logger.Error("session not available")
			render.JSON(w, r, response.Error("Session not available"))
			return
		}

		handler.EndSession()
		logger.Info("session ended")

		render.JSON(w, r, response.OK())
	}
}
