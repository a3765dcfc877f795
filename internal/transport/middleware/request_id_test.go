package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/trivault/trivault-backend/pkg/ctxutil"
)

func TestRequestID_Generated(t *testing.T) {
	var ctxID string
	handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctxID = ctxutil.RequestIDFromCtx(r.Context())
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if ctxID == "" {
		t.Fatal("expected generated request id in context")
	}
	if _, err := uuid.Parse(ctxID); err != nil {
		t.Errorf("generated id is not a UUID: %q", ctxID)
	}
	if got := rec.Header().Get("X-Request-Id"); got != ctxID {
		t.Errorf("response header = %q, want %q", got, ctxID)
	}
}

func TestRequestID_Propagated(t *testing.T) {
	var ctxID string
	handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctxID = ctxutil.RequestIDFromCtx(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-Id", "client-id-42")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if ctxID != "client-id-42" {
		t.Errorf("context id = %q, want propagated client id", ctxID)
	}
	if got := rec.Header().Get("X-Request-Id"); got != "client-id-42" {
		t.Errorf("response header = %q, want propagated client id", got)
	}
}
