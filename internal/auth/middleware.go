package auth

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/aslanbek/weatherdesk/internal/session"
)

// CookieName is the session cookie set at login and cleared at logout.
const CookieName = "wd_session"

type contextKey string

const principalKey = contextKey("sessionPrincipal")

// Sessions binds the session store to cookie transport. It issues, resolves
// and clears the session cookie, and attaches the resolved principal to the
// request context.
type Sessions struct {
	store  *session.Store
	secret []byte
	ttl    time.Duration
}

// NewSessions creates the cookie-backed session layer.
func NewSessions(store *session.Store, secret string, ttl time.Duration) *Sessions {
	return &Sessions{store: store, secret: []byte(secret), ttl: ttl}
}

// Issue creates a session for the principal and sets the signed cookie.
func (s *Sessions) Issue(w http.ResponseWriter, p session.Principal) error {
	id := s.store.Create(p)
	token, err := SignSessionID(id, s.secret, s.ttl)
	if err != nil {
		s.store.Destroy(id)
		return err
	}

	isProd := os.Getenv("APP_ENV") == "production"
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Expires:  time.Now().Add(s.ttl),
		HttpOnly: true,
		Secure:   isProd,
		SameSite: http.SameSiteStrictMode,
		Path:     "/",
	})
	return nil
}

// Clear destroys the request's session, if any, and expires the cookie.
func (s *Sessions) Clear(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(CookieName); err == nil {
		if id, err := ParseSessionID(cookie.Value, s.secret); err == nil {
			s.store.Destroy(id)
		}
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		MaxAge:   -1,
		HttpOnly: true,
		Path:     "/",
	})
}

// Resolve returns the principal for the request's cookie, if the cookie is
// valid and the session is still live.
func (s *Sessions) Resolve(r *http.Request) (session.Principal, bool) {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return session.Principal{}, false
	}
	id, err := ParseSessionID(cookie.Value, s.secret)
	if err != nil {
		log.Debug().Err(err).Msg("Rejected session cookie")
		return session.Principal{}, false
	}
	return s.store.Get(id)
}

// WithPrincipal attaches the resolved principal to the request context when a
// valid session exists. It never rejects; gates below decide access.
func (s *Sessions) WithPrincipal(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if p, ok := s.Resolve(r); ok {
			r = r.WithContext(context.WithValue(r.Context(), principalKey, p))
		}
		next.ServeHTTP(w, r)
	})
}

// PrincipalFrom extracts the session principal from a request context.
func PrincipalFrom(ctx context.Context) (session.Principal, bool) {
	p, ok := ctx.Value(principalKey).(session.Principal)
	return p, ok
}

// RequireSession redirects to the login view when no session is present.
func RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := PrincipalFrom(r.Context()); !ok {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAdmin responds with a fixed "Access Denied" when the session's
// principal is not an admin. It must run after RequireSession.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p, ok := PrincipalFrom(r.Context())
		if !ok || !p.IsAdmin {
			http.Error(w, "Access Denied", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}
