package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/aslanbek/weatherdesk/internal/upstream"
)

// writeJSON writes v as the JSON response body with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// bodyValues reads a urlencoded form or a flat JSON object into url.Values,
// so handlers accept both browser forms and API clients. Call once per
// request; the body is consumed.
func bodyValues(r *http.Request) url.Values {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		vals := url.Values{}
		var m map[string]any
		if err := json.NewDecoder(r.Body).Decode(&m); err == nil {
			for k, v := range m {
				switch t := v.(type) {
				case string:
					vals.Set(k, t)
				case bool:
					vals.Set(k, strconv.FormatBool(t))
				case float64:
					vals.Set(k, strconv.FormatFloat(t, 'f', -1, 64))
				}
			}
		}
		return vals
	}
	_ = r.ParseForm()
	return r.PostForm
}

// renderLookupError collapses every lookup failure into one generic message
// for the caller. The distinction between failure kinds survives only in the
// server log.
func renderLookupError(w http.ResponseWriter, err error, message string) {
	var upErr *upstream.Error
	if errors.As(err, &upErr) {
		log.Warn().Err(err).Str("kind", upErr.Kind.String()).Str("op", upErr.Op).
			Msg("Upstream lookup failed")
		writeJSON(w, http.StatusBadGateway, map[string]any{"error": message})
		return
	}
	log.Error().Err(err).Msg("Failed to persist lookup")
	writeJSON(w, http.StatusInternalServerError, map[string]any{"error": message})
}
