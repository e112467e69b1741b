package authenticate

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"HotelOS/entity"
	"HotelOS/internal/lib/api/cont"
)

type staticAuth struct {
	user *entity.UserProfile
}

func (a *staticAuth) AuthenticateByToken(_ context.Context, _ string) (*entity.UserProfile, error) {
	if a.user == nil {
		return nil, errors.New("token not found")
	}
	return a.user, nil
}

func serve(t *testing.T, auth Authenticate, header string) (*httptest.ResponseRecorder, *entity.UserProfile) {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	var seen *entity.UserProfile
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = cont.GetUser(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/view", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	New(log, auth)(next).ServeHTTP(rec, req)
	return rec, seen
}

func TestMissingAuthorizationHeader(t *testing.T) {
	rec, _ := serve(t, &staticAuth{}, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestBareBearerHeaderRejected(t *testing.T) {
	// "Bearer" with no token must answer 401, not panic on the split
	rec, _ := serve(t, &staticAuth{}, "Bearer")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Token not found")
}

func TestValidTokenPassesUserThrough(t *testing.T) {
	user := &entity.UserProfile{UID: "u1", Role: entity.StaffRole}
	rec, seen := serve(t, &staticAuth{user: user}, "Bearer tok-123")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "u1", rec.Header().Get("X-User"))
	if assert.NotNil(t, seen) {
		assert.Equal(t, "u1", seen.UID)
	}
}
