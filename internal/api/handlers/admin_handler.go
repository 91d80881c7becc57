package handlers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/aslanbek/weatherdesk/internal/auth"
	"github.com/aslanbek/weatherdesk/internal/services"
)

// AdminHandler handles the admin console: user CRUD behind the admin gate.
// Every route here runs after RequireSession and RequireAdmin, including the
// edit-by-id view.
type AdminHandler struct {
	service services.UserServiceProvider
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(service services.UserServiceProvider) *AdminHandler {
	return &AdminHandler{service: service}
}

// List returns all users that have not been soft-deleted.
func (h *AdminHandler) List(w http.ResponseWriter, r *http.Request) {
	p, _ := auth.PrincipalFrom(r.Context())

	users, err := h.service.ListActiveUsers()
	if err != nil {
		log.Error().Err(err).Msg("Failed to list users")
		http.Error(w, "Error loading admin page", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"users":   users,
		"user":    p.Username,
		"isAdmin": p.IsAdmin,
	})
}

// ShowAddUser returns the add-user view data.
func (h *AdminHandler) ShowAddUser(w http.ResponseWriter, r *http.Request) {
	p, _ := auth.PrincipalFrom(r.Context())
	writeJSON(w, http.StatusOK, map[string]any{
		"user":    p.Username,
		"isAdmin": p.IsAdmin,
	})
}

// AddUser creates a user from the admin console. The isAdmin checkbox posts
// "on" when checked.
func (h *AdminHandler) AddUser(w http.ResponseWriter, r *http.Request) {
	form := bodyValues(r)
	username := form.Get("username")
	password := form.Get("password")
	// "on" from the console checkbox, "true" from API clients.
	isAdmin := form.Get("isAdmin") == "on" || form.Get("isAdmin") == "true"

	if _, err := h.service.CreateUser(username, password, isAdmin); err != nil {
		log.Error().Err(err).Str("username", username).Msg("Failed to add new user")
		http.Error(w, "Failed to add new user", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

// Delete soft-deletes the user named by the userId form field.
func (h *AdminHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := bodyValues(r).Get("userId")

	if err := h.service.SoftDeleteUser(userID); err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("Failed to mark user as deleted")
		http.Error(w, "Error deleting user", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

// ShowEdit returns one user for the edit view.
func (h *AdminHandler) ShowEdit(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	user, err := h.service.GetUserByID(id)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			http.Error(w, "User not found", http.StatusNotFound)
			return
		}
		log.Error().Err(err).Str("user_id", id).Msg("Failed to fetch user")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	p, _ := auth.PrincipalFrom(r.Context())
	writeJSON(w, http.StatusOK, map[string]any{
		"user":    user,
		"isAdmin": p.IsAdmin,
	})
}

// Edit overwrites a user's username and role; the password changes only when
// a non-empty one is posted. The isAdmin field posts "true"/"false".
func (h *AdminHandler) Edit(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "userId")
	form := bodyValues(r)
	username := form.Get("username")
	password := form.Get("password")
	isAdmin := form.Get("isAdmin") == "true"

	if _, err := h.service.UpdateUser(id, username, password, isAdmin); err != nil {
		if strings.Contains(err.Error(), "not found") {
			http.Error(w, "User not found", http.StatusNotFound)
			return
		}
		log.Error().Err(err).Str("user_id", id).Msg("Failed to update user")
		http.Error(w, "Server error", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}
