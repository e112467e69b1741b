package view

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

func GetView(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mod := sl.Module("http.handlers.view")

		logger := log.With(
			mod,
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		if handler == nil {
			logger.Error("view not available")
			render.JSON(w, r, response.Error("View not available"))
			return
		}

		user := cont.GetUser(r.Context())
		v, err := handler.DashboardView(user)
		if err != nil {
			logger.Error("get view", sl.Err(err))
			handlererrors.Render(w, r, err)
			return
		}
		logger.Debug("get view")

		render.JSON(w, r, response.Ok(v))
	}
}
