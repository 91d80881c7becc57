package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/aslanbek/weatherdesk/internal/auth"
	"github.com/aslanbek/weatherdesk/internal/services"
)

// AirQualityHandler handles PM2.5 lookups.
type AirQualityHandler struct {
	service services.AirQualityServiceProvider
}

// NewAirQualityHandler creates a new AirQualityHandler.
func NewAirQualityHandler(service services.AirQualityServiceProvider) *AirQualityHandler {
	return &AirQualityHandler{service: service}
}

// Lookup fetches the latest PM2.5 reading for the city in the path and
// persists it for the session user.
func (h *AirQualityHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	p, _ := auth.PrincipalFrom(r.Context())
	city := chi.URLParam(r, "city")

	record, err := h.service.Lookup(r.Context(), city, p.UserID)
	if err != nil {
		renderLookupError(w, err, "Failed to fetch data. Please try again.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"airQuality": record,
		"error":      nil,
		"user":       p.Username,
		"isAdmin":    p.IsAdmin,
	})
}
