package handler

import (
	"net/http"

	"github.com/plainlearn/plainlearn/internal/service"
)

// RegisterRoutes sets up all HTTP routes on the given mux.
func RegisterRoutes(mux *http.ServeMux, auth *service.AuthService, sessions *service.SessionService, explain *service.ExplainService, cookieSecure bool) {
	authHandler := NewAuthHandler(auth, sessions, cookieSecure)
	dashboardHandler := NewDashboardHandler(auth, sessions, cookieSecure)
	explainHandler := NewExplainHandler(explain)

	mux.HandleFunc("GET /healthz", HandleHealthz)

	// Public pages.
	mux.Handle("GET /", OptionalSession(sessions, http.HandlerFunc(HandleHome)))
	mux.HandleFunc("GET /register", authHandler.HandleRegisterPage)
	mux.HandleFunc("POST /register", authHandler.HandleRegister)
	mux.HandleFunc("GET /login", authHandler.HandleLoginPage)
	mux.HandleFunc("POST /login", authHandler.HandleLogin)
	mux.HandleFunc("GET /logout", authHandler.HandleLogout)

	// Session-guarded pages.
	mux.Handle("GET /dashboard", RequireSession(sessions, http.HandlerFunc(dashboardHandler.HandleDashboard)))
	mux.Handle("POST /update_level", RequireSession(sessions, http.HandlerFunc(dashboardHandler.HandleUpdateLevel)))
	mux.Handle("POST /explain", RequireSession(sessions, http.HandlerFunc(explainHandler.HandleExplain)))
	mux.Handle("POST /explain/preview", RequireSession(sessions, http.HandlerFunc(explainHandler.HandleExplainPreview)))
}
