package handlers

import (
	"net/http"
	"net/url"

	"github.com/rs/zerolog/log"

	"github.com/aslanbek/weatherdesk/internal/auth"
	"github.com/aslanbek/weatherdesk/internal/models"
	"github.com/aslanbek/weatherdesk/internal/services"
)

// WeatherHandler handles the home view and weather lookups.
type WeatherHandler struct {
	service services.WeatherServiceProvider
}

// NewWeatherHandler creates a new WeatherHandler.
func NewWeatherHandler(service services.WeatherServiceProvider) *WeatherHandler {
	return &WeatherHandler{service: service}
}

// Home returns the home view data. Open to anonymous callers; the principal
// fields are null for them.
func (h *WeatherHandler) Home(w http.ResponseWriter, r *http.Request) {
	var username any
	isAdmin := false
	if p, ok := auth.PrincipalFrom(r.Context()); ok {
		username = p.Username
		isAdmin = p.IsAdmin
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"weather": nil,
		"error":   nil,
		"user":    username,
		"isAdmin": isAdmin,
	})
}

// Lookup performs a weather lookup for the session user and persists the
// result. Any upstream or storage failure renders the same generic message.
func (h *WeatherHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	p, ok := auth.PrincipalFrom(r.Context())
	if !ok {
		msg := url.QueryEscape("Please log in or sign up to view weather history")
		http.Redirect(w, r, "/login?message="+msg, http.StatusSeeOther)
		return
	}

	city := bodyValues(r).Get("city")
	if city == "" {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "City is required"})
		return
	}

	record, err := h.service.Lookup(r.Context(), city, p.UserID)
	if err != nil {
		renderLookupError(w, err, "Failed to fetch data. Please try again.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"weather": record,
		"error":   nil,
		"user":    p.Username,
		"isAdmin": p.IsAdmin,
	})
}

// History returns the session user's weather lookups, most recent first.
func (h *WeatherHandler) History(w http.ResponseWriter, r *http.Request) {
	p, _ := auth.PrincipalFrom(r.Context())

	records, err := h.service.HistoryForUser(p.UserID)
	if err != nil {
		log.Error().Err(err).Str("user_id", p.UserID).Msg("Failed to fetch weather history")
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"weatherData": []any{},
			"error":       "Error fetching weather history",
		})
		return
	}
	if records == nil {
		records = []models.WeatherRecord{}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"weatherData": records,
		"error":       nil,
		"user":        p.Username,
		"isAdmin":     p.IsAdmin,
	})
}
