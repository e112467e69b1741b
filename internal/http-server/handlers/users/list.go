package users

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"HotelOS/internal/lib/api/cont"
	"HotelOS/internal/lib/api/response"
	"HotelOS/internal/lib/sl"
)

// List returns the staff directory. Restricted to management, same rule
// as the client database.
func List(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mod := sl.Module("http.handlers.users")

		logger := log.With(
			mod,
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		if handler == nil {
			logger.Error("users not available")
			render.JSON(w, r, response.Error("Users not available"))
			return
		}

		user := cont.GetUser(r.Context())
		if user == nil || !user.IsManagement() {
			render.Status(r, http.StatusForbidden)
			render.JSON(w, r, response.Error("Accès restreint aux Managers et Administrateurs."))
			return
		}

		list, err := handler.GetAllUsers(r.Context())
		if err != nil {
			logger.Error("get all users", sl.Err(err))
			render.JSON(w, r, response.Error("Failed to load users"))
			return
		}
		logger.Debug("get all users", slog.Int("count", len(list)))

		render.JSON(w, r, response.Ok(list))
	}
}
