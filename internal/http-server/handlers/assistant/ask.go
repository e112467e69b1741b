package assistant

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"HotelOS/internal/lib/api/cont"
	"HotelOS/internal/lib/api/response"
	"HotelOS/internal/lib/sl"
)

func Ask(log *slog.Logger, handler Core) http.HandlerFunc {
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

		var req struct {
			Message string `json:"message"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Error("failed to decode request body", sl.Err(err))
			render.JSON(w, r, response.Error("Invalid request body"))
			return
		}
		if req.Message == "" {
			logger.Error("no message provided")
			render.JSON(w, r, response.Error("No message provided"))
			return
		}

		user := cont.GetUser(r.Context())
		answer, err := handler.ComposeResponse(user, req.Message)
		if err != nil {
			logger.Error("compose response", sl.Err(err))
			render.JSON(w, r, response.Error(fmt.Sprintf("Compose failed: %v", err)))
			return
		}
		logger.Debug("compose response")

		render.JSON(w, r, response.Ok(map[string]string{"answer": answer}))
	}
}
