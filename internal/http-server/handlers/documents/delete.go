package documents

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	handlererrors "HotelOS/internal/http-server/handlers/errors"
	"HotelOS/internal/lib/api/cont"
	"HotelOS/internal/lib/api/response"
	"HotelOS/internal/lib/sl"
)

func Delete(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mod := sl.Module("http.handlers.documents")

		collection := chi.URLParam(r, "collection")
		id := chi.URLParam(r, "id")
		logger := log.With(
			mod,
			slog.String("collection", collection),
			slog.String("id", id),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		if handler == nil {
			logger.Error("persistence not available")
			render.JSON(w, r, response.Error("Persistence not available"))
			return
		}
		if !knownCollection(collection) {
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("Unknown collection"))
			return
		}
		if id == "" {
			render.JSON(w, r, response.Error("Document id required"))
			return
		}

		user := cont.GetUser(r.Context())
		if err := handler.DeleteDocument(r.Context(), user, collection, id); err != nil {
			logger.Error("delete document", sl.Err(err))
			handlererrors.Render(w, r, err)
			return
		}
		logger.Debug("delete document")

		render.JSON(w, r, response.OK())
	}
}
