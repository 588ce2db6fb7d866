package settings

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

type stubReader struct {
	s   *Settings
	err error
}

func (r stubReader) Get(ctx context.Context) (*Settings, error) {
	return r.s, r.err
}

func TestHandlers_GetWritesJSON(t *testing.T) {
	h := Handlers{Repo: stubReader{s: &Settings{
		MinBookingLength:    3,
		MaxBookingLength:    90,
		MaxGuestsPerBooking: 8,
		BreakfastPrice:      decimal.NewFromInt(15),
	}}}

	rec := httptest.NewRecorder()
	h.Get(rec, httptest.NewRequest(http.MethodGet, "/v1/settings", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"minBookingLength":3,"maxBookingLength":90,"maxGuestsPerBooking":8,"breakfastPrice":"15"}`, rec.Body.String())
}

func TestHandlers_GetFailure(t *testing.T) {
	h := Handlers{Repo: stubReader{err: errors.New("db down")}}

	rec := httptest.NewRecorder()
	h.Get(rec, httptest.NewRequest(http.MethodGet, "/v1/settings", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":{"code":"INTERNAL","message":"internal error"}}`, rec.Body.String())
}
