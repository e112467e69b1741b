package assistant

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"HotelOS/internal/lib/api/cont"
	"HotelOS/internal/lib/api/response"
	"HotelOS/internal/lib/sl"
)

func Reset(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mod := sl.Module("http.handlers.assistant")

		logger := log.With(
			mod,
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		if handler == nil {
			logger.Error("assistant not available")
			render.JSON(w, r, response.Error("Assistant not available"))
			return
		}

		user := cont.GetUser(r.Context())
		if err := handler.ClearConversation(user); err != nil {
			logger.Error("clear conversation", sl.Err(err))
			render.JSON(w, r, response.Error("Reset failed"))
			return
		}
		logger.Debug("conversation cleared")

		render.JSON(w, r, response.OK())
	}
}
