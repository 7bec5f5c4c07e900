package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"autokomis/backoffice/internal/common"
)

type fakeSessionChecker struct {
	valid map[string]bool
}

func (f *fakeSessionChecker) GetSession(ctx context.Context, sessionID string) (*common.AdminSession, error) {
	if f.valid[sessionID] {
		return &common.AdminSession{SessionID: sessionID, ExpiresAt: time.Now().Add(time.Hour)}, nil
	}
	return nil, errors.New("session not found")
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestAdminAuthMiddleware_MissingCookie(t *testing.T) {
	handler := AdminAuthMiddleware(&fakeSessionChecker{})(okHandler())

	req := httptest.NewRequest("GET", "/api/v1/admin/leads", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Errorf("Expected status 401, got %d", rr.Code)
	}
}

func TestAdminAuthMiddleware_InvalidSession(t *testing.T) {
	handler := AdminAuthMiddleware(&fakeSessionChecker{})(okHandler())

	req := httptest.NewRequest("GET", "/api/v1/admin/leads", nil)
	req.AddCookie(&http.Cookie{Name: AdminSessionCookie, Value: "stale"})
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Errorf("Expected status 401, got %d", rr.Code)
	}
}

func TestAdminAuthMiddleware_ValidSession(t *testing.T) {
	checker := &fakeSessionChecker{valid: map[string]bool{"session-1": true}}
	handler := AdminAuthMiddleware(checker)(okHandler())

	req := httptest.NewRequest("GET", "/api/v1/admin/leads", nil)
	req.AddCookie(&http.Cookie{Name: AdminSessionCookie, Value: "session-1"})
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rr.Code)
	}
}
