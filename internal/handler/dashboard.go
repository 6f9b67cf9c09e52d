package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/plainlearn/plainlearn/internal/domain"
	"github.com/plainlearn/plainlearn/internal/service"
	"github.com/plainlearn/plainlearn/internal/view"
)

// DashboardHandler handles the dashboard page and level updates.
type DashboardHandler struct {
	auth         *service.AuthService
	sessions     *service.SessionService
	cookieSecure bool
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(auth *service.AuthService, sessions *service.SessionService, cookieSecure bool) *DashboardHandler {
	return &DashboardHandler{auth: auth, sessions: sessions, cookieSecure: cookieSecure}
}

// HandleDashboard renders the dashboard with the session's name and
// academic level.
// GET /dashboard
func (h *DashboardHandler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	sess, ok := SessionFromContext(r.Context())
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	view.DashboardPage(sess.Name, sess.Level, popFlash(w, r)).Render(r.Context(), w)
}

// HandleUpdateLevel persists a new academic level and re-mints the
// session cookie so the change shows up without a re-login.
// POST /update_level
func (h *DashboardHandler) HandleUpdateLevel(w http.ResponseWriter, r *http.Request) {
	sess, ok := SessionFromContext(r.Context())
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	if err := r.ParseForm(); err != nil {
		setFlash(w, "Invalid form submission.")
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}

	level, err := h.auth.UpdateLevel(r.Context(), sess.UserID, r.PostFormValue("academic_level"))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			setFlash(w, "Choose a valid academic level.")
		} else {
			slog.Error("update academic level", "error", err, "user_id", sess.UserID)
			setFlash(w, "An unexpected error occurred. Please try again.")
		}
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}

	token, err := h.sessions.Refresh(sess, level)
	if err != nil {
		slog.Error("refresh session token", "error", err, "user_id", sess.UserID)
		setFlash(w, "An unexpected error occurred. Please try again.")
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(h.sessions.TTL().Seconds()),
	})

	setFlash(w, "Academic level updated successfully!")
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}
