package documents

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"HotelOS/entity"
	handlererrors "HotelOS/internal/http-server/handlers/errors"
	"HotelOS/internal/lib/api/cont"
	"HotelOS/internal/lib/api/response"
	"HotelOS/internal/lib/sl"
)

func Save(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mod := sl.Module("http.handlers.documents")

		collection := chi.URLParam(r, "collection")
		logger := log.With(
			mod,
			slog.String("collection", collection),
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

		var doc entity.Document
		if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
			logger.Error("failed to decode request body", sl.Err(err))
			render.JSON(w, r, response.Error("Invalid request body"))
			return
		}
		if doc.ID() == "" {
			render.JSON(w, r, response.Error("Document id required"))
			return
		}

		user := cont.GetUser(r.Context())
		if err := handler.SaveDocument(r.Context(), user, collection, doc); err != nil {
			logger.Error("save document", sl.Err(err))
			handlererrors.Render(w, r, err)
			return
		}
		logger.Debug("save document", slog.String("id", doc.ID()))

		render.JSON(w, r, response.OK())
	}
}
