package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "finpredictor/internal/errors"
	"finpredictor/internal/store"
	"finpredictor/internal/uuid"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newRouter(h gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(RequestLogging(), ErrorHandler())
	r.GET("/", h)
	return r
}

func TestRequestLogging_AssignsRequestID(t *testing.T) {
	var seen string
	r := newRouter(func(c *gin.Context) {
		seen = RequestID(c)
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	got := w.Header().Get(RequestIDHeader)
	if !uuid.IsValid(got) {
		t.Fatalf("expected a UUID request id, got %q", got)
	}
	if seen != got {
		t.Errorf("handler saw %q, response carries %q", seen, got)
	}
}

func TestRequestLogging_ReusesIncomingID(t *testing.T) {
	r := newRouter(func(c *gin.Context) { c.Status(http.StatusNoContent) })
	incoming := uuid.New()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, incoming)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if got := w.Header().Get(RequestIDHeader); got != incoming {
		t.Errorf("expected incoming id %q, got %q", incoming, got)
	}
}

func TestRequestLogging_ReplacesInvalidID(t *testing.T) {
	r := newRouter(func(c *gin.Context) { c.Status(http.StatusNoContent) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "not-a-uuid\r\n")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if got := w.Header().Get(RequestIDHeader); got == "not-a-uuid\r\n" || !uuid.IsValid(got) {
		t.Errorf("expected a fresh id, got %q", got)
	}
}

func TestErrorHandler(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"app error", apperrors.ErrGoalNotFound, http.StatusNotFound, "GOAL_NOT_FOUND"},
		{"wrapped app error", apperrors.Wrap(apperrors.ErrInternalServer, errors.New("db down")), http.StatusInternalServerError, "INTERNAL_ERROR"},
		{"custom message", apperrors.WithMessage(apperrors.ErrInvalidInput, "bad date"), http.StatusBadRequest, "INVALID_INPUT"},
		{"plain error", errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
		{"store miss", fmt.Errorf("loading goal: %w", store.ErrNotFound), http.StatusNotFound, "NOT_FOUND"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRouter(func(c *gin.Context) { _ = c.Error(tt.err) })

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

			if w.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d", tt.wantStatus, w.Code)
			}
			var body struct {
				Error struct {
					Code    string `json:"code"`
					Message string `json:"message"`
				} `json:"error"`
			}
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("failed to parse body: %v", err)
			}
			if body.Error.Code != tt.wantCode {
				t.Errorf("expected code %q, got %q", tt.wantCode, body.Error.Code)
			}
			if tt.name == "plain error" && body.Error.Message == "boom" {
				t.Error("unexpected errors must not leak their message")
			}
		})
	}
}
