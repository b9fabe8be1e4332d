package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

func newMethodCheckRouter() *chi.Mux {
	router := chi.NewRouter()
	router.Get("/api/ping", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	router.MethodNotAllowed(CheckHTTPMethod(router))
	return router
}

// TestCheckHTTPMethod_UnsupportedMethod verifies that an unsupported method on
// a known route yields 404, not the default 405, hiding the route's existence.
func TestCheckHTTPMethod_UnsupportedMethod(t *testing.T) {
	router := newMethodCheckRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/ping", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCheckHTTPMethod_SupportedMethod(t *testing.T) {
	router := newMethodCheckRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
