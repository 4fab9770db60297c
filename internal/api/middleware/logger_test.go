package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hmorita/Trade-Journal-Backend/internal/api/middleware"
)

// TestLogger tests that the logging wrapper passes the response through
// unchanged.
func TestLogger(t *testing.T) {
	handler := middleware.Logger(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		w.Write([]byte("body"))
	}))

	req := httptest.NewRequest("GET", "/api/test", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusTeapot {
		t.Errorf("Expected wrapped status to pass through, got %d", rec.Code)
	}
	if rec.Body.String() != "body" {
		t.Errorf("Expected body to pass through, got %q", rec.Body.String())
	}
}
