package server

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

type panicRoutes struct{}

func (panicRoutes) RegisterRoutes(s *echo.Echo) {
	s.GET("/boom", func(echo.Context) error { panic("boom") })
}

func TestHealthz(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer
	srv := New(slog.New(slog.NewTextHandler(&logs, nil)), "confhub-test")

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: got=%d want=%d", rec.Code, http.StatusOK)
	}
	if !strings.Contains(rec.Body.String(), `"status":"ok"`) {
		t.Fatalf("unexpected body: %q", rec.Body.String())
	}
	if rec.Header().Get(echo.HeaderXRequestID) == "" {
		t.Fatal("expected request id header")
	}
	if strings.Contains(logs.String(), "/healthz") {
		t.Fatalf("health checks should not be access-logged, got %q", logs.String())
	}
}

func TestRecoverTurnsPanicInto500(t *testing.T) {
	t.Parallel()

	srv := New(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)), "confhub-test")
	srv.RegisterRouter(panicRoutes{})

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("unexpected status: got=%d want=%d", rec.Code, http.StatusInternalServerError)
	}
}
