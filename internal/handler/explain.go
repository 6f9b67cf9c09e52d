package handler

import (
	"net/http"
	"strings"

	"github.com/plainlearn/plainlearn/internal/service"
	"github.com/plainlearn/plainlearn/internal/view"
	datastar "github.com/starfederation/datastar-go/datastar"
)

// ExplainHandler handles explanation requests.
type ExplainHandler struct {
	explain *service.ExplainService
}

// NewExplainHandler creates a new ExplainHandler.
func NewExplainHandler(explain *service.ExplainService) *ExplainHandler {
	return &ExplainHandler{explain: explain}
}

// HandleExplain renders the explanation page for a topic at the
// session's academic level. An empty or whitespace topic never reaches
// the generator; it bounces back to the dashboard with a notice.
// POST /explain
func (h *ExplainHandler) HandleExplain(w http.ResponseWriter, r *http.Request) {
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

	topic := strings.TrimSpace(r.PostFormValue("topic"))
	if topic == "" {
		setFlash(w, "Please enter a topic.")
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}

	explanation := h.explain.Generate(topic, sess.Level)
	view.ExplanationPage(sess.Name, explanation).Render(r.Context(), w)
}

// HandleExplainPreview patches the explanation into the dashboard in
// place via SSE instead of navigating to the explanation page. Same
// validation as HandleExplain.
// POST /explain/preview
func (h *ExplainHandler) HandleExplainPreview(w http.ResponseWriter, r *http.Request) {
	sess, ok := SessionFromContext(r.Context())
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	sse := datastar.NewSSE(w, r)

	topic := strings.TrimSpace(r.PostFormValue("topic"))
	if topic == "" {
		sse.PatchElementTempl(
			view.PreviewNotice("Please enter a topic."),
			datastar.WithSelectorID("explanation-preview"),
			datastar.WithModeInner(),
		)
		return
	}

	explanation := h.explain.Generate(topic, sess.Level)
	sse.PatchElementTempl(
		view.ExplanationFragment(explanation),
		datastar.WithSelectorID("explanation-preview"),
		datastar.WithModeInner(),
	)
}
