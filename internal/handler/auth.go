package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/plainlearn/plainlearn/internal/domain"
	"github.com/plainlearn/plainlearn/internal/service"
	"github.com/plainlearn/plainlearn/internal/view"
)

// AuthHandler handles registration, login, and logout.
type AuthHandler struct {
	auth         *service.AuthService
	sessions     *service.SessionService
	cookieSecure bool
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(auth *service.AuthService, sessions *service.SessionService, cookieSecure bool) *AuthHandler {
	return &AuthHandler{auth: auth, sessions: sessions, cookieSecure: cookieSecure}
}

// HandleRegisterPage renders the registration form.
// GET /register
func (h *AuthHandler) HandleRegisterPage(w http.ResponseWriter, r *http.Request) {
	view.RegisterPage(popFlash(w, r)).Render(r.Context(), w)
}

// HandleRegister processes the registration form. Validation failures
// re-render the form with a notice; success redirects to login.
// POST /register
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		view.RegisterPage("Invalid form submission.").Render(r.Context(), w)
		return
	}

	_, err := h.auth.Register(r.Context(),
		r.PostFormValue("name"),
		r.PostFormValue("email"),
		r.PostFormValue("password"),
		r.PostFormValue("academic_level"),
	)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicateEmail):
			view.RegisterPage("Email already registered.").Render(r.Context(), w)
		case errors.Is(err, domain.ErrInvalidInput):
			view.RegisterPage("All fields are required.").Render(r.Context(), w)
		default:
			slog.Error("register user", "error", err)
			view.RegisterPage("An unexpected error occurred. Please try again.").Render(r.Context(), w)
		}
		return
	}

	setFlash(w, "Registration successful! Please log in.")
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// HandleLoginPage renders the login form.
// GET /login
func (h *AuthHandler) HandleLoginPage(w http.ResponseWriter, r *http.Request) {
	view.LoginPage(popFlash(w, r)).Render(r.Context(), w)
}

// HandleLogin verifies credentials and starts a session. The failure
// notice is identical for unknown email and wrong password.
// POST /login
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		view.LoginPage("Invalid form submission.").Render(r.Context(), w)
		return
	}

	user, err := h.auth.Login(r.Context(), r.PostFormValue("email"), r.PostFormValue("password"))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			view.LoginPage("Invalid email or password.").Render(r.Context(), w)
			return
		}
		slog.Error("login user", "error", err)
		view.LoginPage("An unexpected error occurred. Please try again.").Render(r.Context(), w)
		return
	}

	token, err := h.sessions.Issue(user)
	if err != nil {
		slog.Error("issue session token", "error", err)
		view.LoginPage("An unexpected error occurred. Please try again.").Render(r.Context(), w)
		return
	}

	h.setSessionCookie(w, token)
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

// HandleLogout clears the session cookie and returns to the landing
// page.
// GET /logout
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *AuthHandler) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(h.sessions.TTL().Seconds()),
	})
}
