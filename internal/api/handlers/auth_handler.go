package handlers

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/aslanbek/weatherdesk/internal/auth"
	"github.com/aslanbek/weatherdesk/internal/services"
)

// AuthHandler handles login, logout and signup.
type AuthHandler struct {
	sessions *auth.Sessions
	strategy auth.LoginStrategy
	users    services.UserServiceProvider
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(sessions *auth.Sessions, strategy auth.LoginStrategy, users services.UserServiceProvider) *AuthHandler {
	return &AuthHandler{sessions: sessions, strategy: strategy, users: users}
}

// ShowLogin returns the login view data, passing through an optional
// ?message= hint (e.g. "Please log in to view weather history").
func (h *AuthHandler) ShowLogin(w http.ResponseWriter, r *http.Request) {
	var username any
	if p, ok := auth.PrincipalFrom(r.Context()); ok {
		username = p.Username
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message": r.URL.Query().Get("message"),
		"error":   nil,
		"user":    username,
	})
}

// Login authenticates a credential pair via the configured strategy, stores
// the principal in a fresh session and redirects by role.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	form := bodyValues(r)
	username := form.Get("username")
	password := form.Get("password")

	principal, err := h.strategy.Login(username, password)
	if err != nil {
		log.Warn().Err(err).Str("username", username).Msg("Failed authentication attempt")
		writeJSON(w, http.StatusUnauthorized, map[string]any{
			"error": "Invalid username or password",
		})
		return
	}

	if err := h.sessions.Issue(w, principal); err != nil {
		log.Error().Err(err).Str("username", username).Msg("Failed to issue session")
		http.Error(w, "Failed to create session", http.StatusInternalServerError)
		return
	}

	if principal.IsAdmin {
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Logout destroys the session and redirects to the login view.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.sessions.Clear(w, r)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// ShowSignup returns the signup view data.
func (h *AuthHandler) ShowSignup(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"message": r.URL.Query().Get("message"),
		"error":   nil,
	})
}

// Signup registers a new non-admin account and redirects to login.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	form := bodyValues(r)
	username := form.Get("username")
	password := form.Get("password")

	if _, err := h.users.CreateUser(username, password, false); err != nil {
		log.Error().Err(err).Str("username", username).Msg("Failed to register user")
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"error": "Error registering new user, please try again.",
		})
		return
	}
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
