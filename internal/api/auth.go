package api

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"
	"os"

	"autokomis/backoffice/internal/logging"
	"autokomis/backoffice/internal/middleware"
	"autokomis/backoffice/internal/models/dtos"
)

type loginResponse struct {
	LoggedIn bool `json:"loggedIn"`
}

// LoginHandler handles POST /api/v1/auth/login
//
// Single-admin password login. On success a session id lands in an HttpOnly
// cookie; the browser never sees the password again.
func LoginHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dtos.LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		expected := os.Getenv("ADMIN_PASSWORD")
		if expected == "" || subtle.ConstantTimeCompare([]byte(req.Password), []byte(expected)) != 1 {
			logging.Warn("admin login rejected", "remote_addr", r.RemoteAddr)
			respondWithError(w, http.StatusUnauthorized, "invalid password")
			return
		}

		sessionID, err := deps.Services.Session.CreateSession(r.Context())
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "failed to create session")
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     middleware.AdminSessionCookie,
			Value:    sessionID,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})

		respondWithSuccess(w, http.StatusOK, &loginResponse{LoggedIn: true})
	}
}

// LogoutHandler handles POST /api/v1/admin/auth/logout
func LogoutHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if cookie, err := r.Cookie(middleware.AdminSessionCookie); err == nil {
			_ = deps.Services.Session.DeleteSession(r.Context(), cookie.Value)
		}

		http.SetCookie(w, &http.Cookie{
			Name:     middleware.AdminSessionCookie,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
		})

		respondWithSuccess(w, http.StatusOK, &loginResponse{LoggedIn: false})
	}
}
