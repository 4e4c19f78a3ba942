package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func newTestEcho(t *testing.T) (*echo.Echo, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zap.InfoLevel)
	e := echo.New()
	e.Use(RequestLogger(zap.New(core)))
	e.GET("/ok", func(c echo.Context) error {
		return c.String(http.StatusOK, GetRequestID(c))
	})
	e.GET("/fail", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusTeapot, "nope")
	})
	return e, logs
}

func TestRequestLogger_AssignsID(t *testing.T) {
	e, logs := newTestEcho(t)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ok", nil))

	id := rec.Header().Get(echo.HeaderXRequestID)
	if id == "" || rec.Body.String() != id {
		t.Fatalf("expected generated id in header and context, got %q / %q", id, rec.Body.String())
	}
	if logs.Len() != 1 || logs.All()[0].ContextMap()["request_id"] != id {
		t.Fatalf("expected one access log line with the id")
	}
}

func TestRequestLogger_PropagatesID(t *testing.T) {
	e, _ := newTestEcho(t)

	req := httptest.NewRequest(http.MethodGet, "/ok", nil)
	req.Header.Set(echo.HeaderXRequestID, "abc-123")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Header().Get(echo.HeaderXRequestID) != "abc-123" {
		t.Fatalf("client id should be echoed back")
	}
}

func TestRequestLogger_LogsFinalStatus(t *testing.T) {
	e, logs := newTestEcho(t)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/fail", nil))

	if rec.Code != http.StatusTeapot {
		t.Fatalf("unexpected status %d", rec.Code)
	}
	entry := logs.All()[0]
	if entry.Level != zap.WarnLevel || entry.ContextMap()["status"] != int64(http.StatusTeapot) {
		t.Fatalf("expected a warn line with the final status, got %v %v", entry.Level, entry.ContextMap())
	}
}
