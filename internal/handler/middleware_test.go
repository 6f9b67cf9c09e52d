package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/plainlearn/plainlearn/internal/domain"
	"github.com/plainlearn/plainlearn/internal/handler"
	"github.com/plainlearn/plainlearn/internal/service"
)

func TestRequireSession_NoCookie(t *testing.T) {
	sessions := service.NewSessionService(testSecret, time.Hour)

	guarded := handler.RequireSession(sessions, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run without a session")
	}))

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	w := httptest.NewRecorder()
	guarded.ServeHTTP(w, req)

	if w.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/login" {
		t.Fatalf("expected redirect to /login, got %s", loc)
	}
}

func TestRequireSession_InvalidToken(t *testing.T) {
	sessions := service.NewSessionService(testSecret, time.Hour)

	guarded := handler.RequireSession(sessions, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run with an invalid session")
	}))

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: "session_token", Value: "garbage"})
	w := httptest.NewRecorder()
	guarded.ServeHTTP(w, req)

	if w.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", w.Code)
	}
}

func TestRequireSession_ValidToken(t *testing.T) {
	sessions := service.NewSessionService(testSecret, time.Hour)
	token, err := sessions.Issue(&domain.User{ID: 5, Name: "Ana", Level: domain.LevelDegree})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	var got domain.Session
	guarded := handler.RequireSession(sessions, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, ok := handler.SessionFromContext(r.Context())
		if !ok {
			t.Fatal("expected session in context")
		}
		got = sess
	}))

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: "session_token", Value: token})
	w := httptest.NewRecorder()
	guarded.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if got.UserID != 5 || got.Name != "Ana" || got.Level != domain.LevelDegree {
		t.Fatalf("unexpected session: %+v", got)
	}
}

func TestOptionalSession_PassesWithoutCookie(t *testing.T) {
	sessions := service.NewSessionService(testSecret, time.Hour)

	var ran bool
	wrapped := handler.OptionalSession(sessions, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ran = true
		if _, ok := handler.SessionFromContext(r.Context()); ok {
			t.Fatal("expected no session in context")
		}
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	wrapped.ServeHTTP(w, req)

	if !ran {
		t.Fatal("expected wrapped handler to run")
	}
}

func TestSecurityHeaders(t *testing.T) {
	wrapped := handler.SecurityHeaders(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	wrapped.ServeHTTP(w, req)

	if got := w.Header().Get("X-Content-Type-Options"); got != "nosniff" {
		t.Fatalf("expected nosniff, got %q", got)
	}
	if got := w.Header().Get("X-Frame-Options"); got != "DENY" {
		t.Fatalf("expected DENY, got %q", got)
	}
}
