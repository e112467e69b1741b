package stats

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

func Overview(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mod := sl.Module("http.handlers.stats")

		logger := log.With(
			mod,
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		if handler == nil {
			logger.Error("stats not available")
			render.JSON(w, r, response.Error("Stats not available"))
			return
		}

		user := cont.GetUser(r.Context())
		overview, err := handler.Stats(user)
		if err != nil {
			logger.Error("stats overview", sl.Err(err))
			handlererrors.Render(w, r, err)
			return
		}
		logger.Debug("stats overview")

		render.JSON(w, r, response.Ok(overview))
	}
}
