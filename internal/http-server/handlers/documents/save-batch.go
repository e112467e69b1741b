package documents

import (
	"encoding/json"
	"fmt"
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

func SaveBatch(log *slog.Logger, handler Core) http.HandlerFunc {
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

		var docs []entity.Document
		if err := json.NewDecoder(r.Body).Decode(&docs); err != nil {
			logger.Error("failed to decode request body", sl.Err(err))
			render.JSON(w, r, response.Error("Invalid request body"))
			return
		}
		if len(docs) == 0 {
			render.JSON(w, r, response.Error("No documents provided"))
			return
		}

		user := cont.GetUser(r.Context())
		errs := handler.SaveDocuments(r.Context(), user, collection, docs)

		// A short error slice means the batch was rejected before any
		// document was dispatched; nothing was written.
		if len(errs) != len(docs) {
			err := fmt.Errorf("batch rejected")
			for _, e := range errs {
				if e != nil {
					err = e
					break
				}
			}
			logger.Error("save batch rejected", sl.Err(err))
			handlererrors.Render(w, r, err)
			return
		}

		failed := 0
		var first error
		for _, err := range errs {
			if err != nil {
				failed++
				if first == nil {
					first = err
				}
			}
		}
		if failed == len(docs) && first != nil {
			logger.Error("save batch", sl.Err(first))
			handlererrors.Render(w, r, first)
			return
		}
		logger.Debug("save batch",
			slog.Int("saved", len(docs)-failed),
			slog.Int("failed", failed),
		)

		render.JSON(w, r, response.Ok(map[string]int{
			"saved":  len(docs) - failed,
			"failed": failed,
		}))
	}
}
