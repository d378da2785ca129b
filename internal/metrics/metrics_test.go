package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

// Observations before Init are dropped, not panics.
func TestObserveBeforeInit(t *testing.T) {
	ObservePage("worlds", "ok")
	ObserveHTTPRequest(http.MethodGet, "/v1/towns", http.StatusOK, time.Millisecond)
}

func TestInitIsIdempotent(t *testing.T) {
	Init()
	Init()
	ObservePage("worlds", "ok")
	ObserveHTTPRequest(http.MethodGet, "/v1/towns", http.StatusOK, time.Millisecond)
}

func TestMiddlewareRecordsMatchedRoute(t *testing.T) {
	Init()

	r := chi.NewRouter()
	r.Use(Middleware)
	r.Get("/v1/worlds/{name}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/worlds/Antica", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandlerServesMetrics(t *testing.T) {
	Init()
	ObservePage("worlds", "ok")

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "tibia_pages_total")
}
