package httpmiddleware

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// SessionConfig configures how visitors are identified.
type SessionConfig struct {
	// Cookie name holding the session ID.
	Cookie string
	// Header accepted as an alternative to the cookie.
	Header string
	// MaxAge of the cookie.
	MaxAge time.Duration
	// Secure marks the cookie HTTPS-only.
	Secure bool
}

// Default session transport names.
const (
	DefaultSessionCookie = "sid"
	DefaultSessionHeader = "X-Session-ID"
)

type sessionIDKey struct{}

// SessionIDFromContext returns the session ID set by Session, or "".
func SessionIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(sessionIDKey{}).(string)
	return id
}

// WithSessionID returns ctx carrying session id.
func WithSessionID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, sessionIDKey{}, id)
}

// Session resolves the visitor session from the header or cookie. A missing
// or malformed ID is replaced by a new UUID, which is set as a cookie. The ID
// is always echoed in the session header.
func Session(cfg SessionConfig) Middleware {
	if cfg.Cookie == "" {
		cfg.Cookie = DefaultSessionCookie
	}
	if cfg.Header == "" {
		cfg.Header = DefaultSessionHeader
	}
	if cfg.MaxAge <= 0 {
		cfg.MaxAge = 30 * 24 * time.Hour
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, fromCookie := sessionID(r, cfg)
			if id == "" {
				id = uuid.NewString()
			}
			if !fromCookie {
				http.SetCookie(w, &http.Cookie{
					Name:     cfg.Cookie,
					Value:    id,
					Path:     "/",
					MaxAge:   int(cfg.MaxAge.Seconds()),
					HttpOnly: true,
					Secure:   cfg.Secure,
					SameSite: http.SameSiteLaxMode,
				})
			}
			w.Header().Set(cfg.Header, id)
			next.ServeHTTP(w, r.WithContext(WithSessionID(r.Context(), id)))
		})
	}
}

// sessionID returns the normalized session ID presented by r and whether it
// came from the cookie.
func sessionID(r *http.Request, cfg SessionConfig) (string, bool) {
	if v := r.Header.Get(cfg.Header); v != "" {
		if id, err := uuid.Parse(v); err == nil {
			return id.String(), false
		}
	}
	if c, err := r.Cookie(cfg.Cookie); err == nil {
		if id, err := uuid.Parse(c.Value); err == nil {
			return id.String(), true
		}
	}
	return "", false
}
