package httpapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cabinadmin/internal/prefs"
	"cabinadmin/pkg/config"
)

func testRouter(env string) http.Handler {
	return NewRouter(Dependencies{
		Cfg: config.Config{
			AppEnv:                  env,
			DashboardAllowedOrigins: []string{"http://localhost:5173"},
		},
		Prefs: prefs.NewMemoryKV(),
	})
}

func TestRouter_Healthz(t *testing.T) {
	rec := httptest.NewRecorder()
	testRouter("dev").ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestRouter_PreflightFromDashboard(t *testing.T) {
	req := httptest.NewRequest(http.MethodOptions, "/v1/bookings", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", "POST")

	rec := httptest.NewRecorder()
	testRouter("dev").ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouter_PrefsRoundTrip(t *testing.T) {
	router := testRouter("dev")

	put := httptest.NewRecorder()
	router.ServeHTTP(put, httptest.NewRequest(http.MethodPut, "/v1/prefs/isDarkMode", strings.NewReader(`true`)))
	require.Equal(t, http.StatusOK, put.Code)

	get := httptest.NewRecorder()
	router.ServeHTTP(get, httptest.NewRequest(http.MethodGet, "/v1/prefs/isDarkMode", nil))
	require.Equal(t, http.StatusOK, get.Code)

	var resp prefs.Response
	require.NoError(t, json.Unmarshal(get.Body.Bytes(), &resp))
	assert.Equal(t, prefs.SourceStored, resp.Source)
	assert.JSONEq(t, `true`, string(resp.Value))
}

func TestRouter_SeedStatusInDev(t *testing.T) {
	rec := httptest.NewRecorder()
	testRouter("dev").ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/dev/seed/status", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"busy":false,"message":""}`, rec.Body.String())
}

func TestRouter_SeedRoutesHiddenInProd(t *testing.T) {
	router := testRouter("prod")
	for _, tc := range []struct{ method, path string }{
		{http.MethodPost, "/v1/dev/seed"},
		{http.MethodPost, "/v1/dev/seed/bookings"},
		{http.MethodGet, "/v1/dev/seed/status"},
	} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(tc.method, tc.path, nil))
		assert.Equal(t, http.StatusNotFound, rec.Code, "%s %s", tc.method, tc.path)
	}
}

func TestRouter_CabinDetailMounted(t *testing.T) {
	rec := httptest.NewRecorder()
	testRouter("dev").ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/cabins/not-a-number", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
