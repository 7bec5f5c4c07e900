package middleware

import (
	"context"
	"net/http"

	"autokomis/backoffice/internal/common"
)

// AdminSessionCookie is the cookie carrying the back-office session id.
const AdminSessionCookie = "admin_session"

// SessionChecker is the slice of the session service the auth middleware
// needs, kept small so handlers can be tested with a fake.
type SessionChecker interface {
	GetSession(ctx context.Context, sessionID string) (*common.AdminSession, error)
}

// AdminAuthMiddleware gates the back-office routes behind the admin session
// cookie. There is exactly one admin; a valid session grants everything.
func AdminAuthMiddleware(sessions SessionChecker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(AdminSessionCookie)
			if err != nil || cookie.Value == "" {
				http.Error(w, "Unauthorized. Missing session", http.StatusUnauthorized)
				return
			}

			if _, err := sessions.GetSession(r.Context(), cookie.Value); err != nil {
				http.Error(w, "Unauthorized. Invalid session", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
