package handlers

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/aslanbek/weatherdesk/internal/auth"
	"github.com/aslanbek/weatherdesk/internal/models"
	"github.com/aslanbek/weatherdesk/internal/services"
)

// Defaults when the caller supplies no currency pair.
const (
	defaultFromCurrency = "KZT"
	defaultToCurrency   = "USD"
)

// ExchangeRateHandler handles conversion lookups and their history.
type ExchangeRateHandler struct {
	service services.ExchangeRateServiceProvider
}

// NewExchangeRateHandler creates a new ExchangeRateHandler.
func NewExchangeRateHandler(service services.ExchangeRateServiceProvider) *ExchangeRateHandler {
	return &ExchangeRateHandler{service: service}
}

// Lookup converts between two currencies. Anonymous callers get the rate;
// only lookups with an active session are persisted.
func (h *ExchangeRateHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	from := r.URL.Query().Get("from")
	if from == "" {
		from = defaultFromCurrency
	}
	to := r.URL.Query().Get("to")
	if to == "" {
		to = defaultToCurrency
	}

	var userID string
	var username any
	if p, ok := auth.PrincipalFrom(r.Context()); ok {
		userID = p.UserID
		username = p.Username
	}

	record, err := h.service.Lookup(r.Context(), from, to, userID)
	if err != nil {
		renderLookupError(w, err, "Error, please try again")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"rate":         record.Rate,
		"fromCurrency": record.FromCurrency,
		"toCurrency":   record.ToCurrency,
		"user":         username,
	})
}

// History returns the session user's conversion lookups, newest first.
func (h *ExchangeRateHandler) History(w http.ResponseWriter, r *http.Request) {
	p, _ := auth.PrincipalFrom(r.Context())

	records, err := h.service.HistoryForUser(p.UserID)
	if err != nil {
		log.Error().Err(err).Str("user_id", p.UserID).Msg("Failed to fetch exchange rate history")
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"history": []any{},
			"error":   "Error retrieving your exchange rate history.",
		})
		return
	}
	if records == nil {
		records = []models.ExchangeRateRecord{}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"history": records,
		"error":   nil,
		"user":    p.Username,
		"isAdmin": p.IsAdmin,
	})
}
