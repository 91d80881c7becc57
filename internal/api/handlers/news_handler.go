package handlers

import (
	"context"
	"net/http"

	"github.com/aslanbek/weatherdesk/internal/auth"
	"github.com/aslanbek/weatherdesk/internal/upstream"
)

// NewsSource fetches top headlines from the upstream provider.
type NewsSource interface {
	TopHeadlines(ctx context.Context, country string) ([]upstream.Headline, error)
}

// NewsHandler serves headline passthrough. Headlines are open to anonymous
// callers and never persisted.
type NewsHandler struct {
	source NewsSource
}

// NewNewsHandler creates a new NewsHandler.
func NewNewsHandler(source NewsSource) *NewsHandler {
	return &NewsHandler{source: source}
}

// Headlines fetches top headlines for ?country= (default "us").
func (h *NewsHandler) Headlines(w http.ResponseWriter, r *http.Request) {
	country := r.URL.Query().Get("country")
	if country == "" {
		country = "us"
	}

	headlines, err := h.source.TopHeadlines(r.Context(), country)
	if err != nil {
		renderLookupError(w, err, "Failed to fetch news. Please try again.")
		return
	}

	var username any
	if p, ok := auth.PrincipalFrom(r.Context()); ok {
		username = p.Username
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"articles": headlines,
		"error":    nil,
		"user":     username,
	})
}
