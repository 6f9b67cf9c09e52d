package handler

import (
	"net/http"

	"github.com/plainlearn/plainlearn/internal/view"
)

// HandleHome renders the landing page, or sends an already
// authenticated visitor straight to their dashboard.
// GET /
func HandleHome(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	if _, ok := SessionFromContext(r.Context()); ok {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}

	view.HomePage(popFlash(w, r)).Render(r.Context(), w)
}
