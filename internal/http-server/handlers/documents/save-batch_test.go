package documents

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"HotelOS/entity"
	"HotelOS/internal/lib/api/cont"
	"HotelOS/internal/service/access"
)

type fakeCore struct {
	saved  []entity.Document
	denied *access.DeniedError
}

func (f *fakeCore) SaveDocument(_ context.Context, _ *entity.UserProfile, _ string, doc entity.Document) error {
	if f.denied != nil {
		return f.denied
	}
	f.saved = append(f.saved, doc)
	return nil
}

func (f *fakeCore) SaveDocuments(_ context.Context, _ *entity.UserProfile, _ string, docs []entity.Document) []error {
	if f.denied != nil {
		return []error{f.denied}
	}
	f.saved = append(f.saved, docs...)
	return make([]error, len(docs))
}

func (f *fakeCore) DeleteDocument(_ context.Context, _ *entity.UserProfile, _, _ string) error {
	return nil
}

func postBatch(t *testing.T, core Core, collection, body string) *httptest.ResponseRecorder {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	router := chi.NewRouter()
	router.Post("/collections/{collection}/batch", SaveBatch(log, core))

	req := httptest.NewRequest(http.MethodPost, "/collections/"+collection+"/batch", strings.NewReader(body))
	req = req.WithContext(cont.PutUser(req.Context(), &entity.UserProfile{UID: "u1", Role: entity.StaffRole}))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestSaveBatchDeniedRendersForbidden(t *testing.T) {
	core := &fakeCore{denied: &access.DeniedError{
		Capability: access.CapHousekeeping,
		Reason:     "Accès Ménage restreint.",
	}}

	rec := postBatch(t, core, entity.RoomsCollection,
		`[{"id":"r1"},{"id":"r2"},{"id":"r3"}]`)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "Accès Ménage restreint.")
	assert.NotContains(t, rec.Body.String(), "saved")
	assert.Empty(t, core.saved)
}

func TestSaveBatchReportsCounts(t *testing.T) {
	core := &fakeCore{}

	rec := postBatch(t, core, entity.RoomsCollection,
		`[{"id":"r1"},{"id":"r2"},{"id":"r3"}]`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"saved":3`)
	assert.Len(t, core.saved, 3)
}
