package errors

import (
	stderrors "errors"
	"net/http"

	"github.com/go-chi/render"

	"HotelOS/internal/lib/api/response"
	"HotelOS/internal/service/access"
)

// Render maps a service error to a response. Access denials become 403
// carrying the capability-specific reason the dashboard shows verbatim.
func Render(w http.ResponseWriter, r *http.Request, err error) {
	var denied *access.DeniedError
	if stderrors.As(err, &denied) {
		render.Status(r, http.StatusForbidden)
		render.JSON(w, r, response.Error(denied.Reason))
		return
	}
	render.JSON(w, r, response.Error(err.Error()))
}
