package cabin

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

func TestHandlers_GetRejectsInvalidID(t *testing.T) {
	h := Handlers{Repo: NewRepository(nil)}
	r := chi.NewRouter()
	r.Get("/v1/cabins/{id}", h.Get)

	for _, id := range []string{"abc", "0", "-3"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/cabins/"+id, nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code, "id %q", id)
		assert.JSONEq(t, `{"error":{"code":"VALIDATION_FAILED","message":"invalid id"}}`, rec.Body.String())
	}
}
