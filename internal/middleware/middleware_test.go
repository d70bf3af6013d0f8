package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	apperrors "luxeledger/internal/errors"
	"luxeledger/internal/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func errorBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	var body struct {
		Error map[string]string `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to parse body %q: %v", rec.Body.String(), err)
	}
	return body.Error
}

func TestErrorHandler(t *testing.T) {
	t.Run("app error keeps code and status", func(t *testing.T) {
		r := gin.New()
		r.Use(ErrorHandler())
		r.GET("/", func(c *gin.Context) {
			_ = c.Error(apperrors.ErrTransactionNotFound)
		})

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		if body := errorBody(t, rec); body["code"] != "TRANSACTION_NOT_FOUND" {
			t.Errorf("unexpected body %v", body)
		}
	})

	t.Run("unexpected error is hidden", func(t *testing.T) {
		r := gin.New()
		r.Use(ErrorHandler())
		r.GET("/", func(c *gin.Context) {
			_ = c.Error(fmt.Errorf("pq: relation does not exist"))
		})

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", rec.Code)
		}
		body := errorBody(t, rec)
		if body["code"] != "INTERNAL_ERROR" || body["message"] != apperrors.ErrInternalServer.Message {
			t.Errorf("unexpected body %v", body)
		}
	})

	t.Run("does not overwrite a written response", func(t *testing.T) {
		r := gin.New()
		r.Use(ErrorHandler())
		r.GET("/", func(c *gin.Context) {
			c.JSON(http.StatusAccepted, gin.H{"ok": true})
			_ = c.Error(fmt.Errorf("late failure"))
		})

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		if rec.Code != http.StatusAccepted {
			t.Errorf("expected 202, got %d", rec.Code)
		}
	})
}

func TestRequestLogging(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	restore := logger.Replace(zap.New(core).Sugar())
	defer restore()

	r := gin.New()
	r.Use(RequestLogging())
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/missing", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ok", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	r.ServeHTTP(rec, req)

	if rec.Header().Get("X-Request-ID") != "abc-123" {
		t.Errorf("expected incoming request id to be echoed, got %q", rec.Header().Get("X-Request-ID"))
	}

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("expected generated request id")
	}

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("expected 2 log entries, got %d", len(entries))
	}
	if entries[0].Level != zap.InfoLevel || entries[0].ContextMap()["request_id"] != "abc-123" {
		t.Errorf("unexpected first entry %+v", entries[0])
	}
	if entries[1].Level != zap.WarnLevel {
		t.Errorf("expected 404 to log at warn, got %s", entries[1].Level)
	}
}

func TestCORS(t *testing.T) {
	r := gin.New()
	r.Use(CORS())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/", nil))

	if rec.Code != http.StatusNoContent {
		t.Errorf("expected 204 for preflight, got %d", rec.Code)
	}
	if rec.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Error("expected allow origin header")
	}
}
