package settings

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

func UpdateRecipes(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mod := sl.Module("http.handlers.settings")

		logger := log.With(
			mod,
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		if handler == nil {
			logger.Error("settings not available")
			render.JSON(w, r, response.Error("Settings not available"))
			return
		}

		var recipes []entity.Recipe
		if err := json.NewDecoder(r.Body).Decode(&recipes); err != nil {
			logger.Error("failed to decode request body", sl.Err(err))
			render.JSON(w, r, response.Error("Invalid request body"))
			return
		}

		user := cont.GetUser(r.Context())
		if err := handler.UpdateRecipes(user, recipes); err != nil {
			logger.Error("update recipes", sl.Err(err))
			handlererrors.Render(w, r, err)
			return
		}
		logger.Debug("recipes updated", slog.Int("count", len(recipes)))

		render.JSON(w, r, response.OK())
	}
}
