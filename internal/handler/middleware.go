package handler

import (
	"context"
	"net/http"

	"github.com/plainlearn/plainlearn/internal/domain"
	"github.com/plainlearn/plainlearn/internal/service"
)

type contextKey string

const sessionContextKey contextKey = "session"

const sessionCookieName = "session_token"

// SessionFromContext extracts the session from the request context.
// ok is false when the request carries no valid session.
func SessionFromContext(ctx context.Context) (domain.Session, bool) {
	sess, ok := ctx.Value(sessionContextKey).(domain.Session)
	return sess, ok
}

// RequireSession guards routes that need an authenticated session. It
// reads the session cookie, validates the token, and injects the
// session into the request context. Requests without a valid session
// are redirected to the login page, never answered with a bare 401.
func RequireSession(sessions *service.SessionService, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, err := sessionFromRequest(r, sessions)
		if err != nil {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		ctx := context.WithValue(r.Context(), sessionContextKey, sess)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// OptionalSession injects a session into context when a valid token is
// present but lets unauthenticated requests through untouched.
func OptionalSession(sessions *service.SessionService, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if sess, err := sessionFromRequest(r, sessions); err == nil {
			ctx := context.WithValue(r.Context(), sessionContextKey, sess)
			r = r.WithContext(ctx)
		}
		next.ServeHTTP(w, r)
	})
}

// SecurityHeaders sets baseline security headers on every response.
func SecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		next.ServeHTTP(w, r)
	})
}

func sessionFromRequest(r *http.Request, sessions *service.SessionService) (domain.Session, error) {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil {
		return domain.Session{}, domain.ErrSessionAbsent
	}
	return sessions.Parse(cookie.Value)
}
