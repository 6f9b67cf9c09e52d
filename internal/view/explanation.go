package view

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
	"github.com/plainlearn/plainlearn/internal/domain"
)

// ExplanationPage renders a full explanation result page.
func ExplanationPage(name string, e domain.Explanation) templ.Component {
	return page("Explanation: "+e.Topic, func(w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<h1>%s</h1>
<p>Explained for <strong>%s</strong> level.</p>
`, templ.EscapeString(e.Topic), templ.EscapeString(string(e.Level))); err != nil {
			return err
		}
		if err := writeExplanation(w, e); err != nil {
			return err
		}
		_, err := fmt.Fprint(w, `<p><a href="/dashboard">Back to dashboard</a></p>
`)
		return err
	})
}

// ExplanationFragment is the explanation body alone, patched into the
// dashboard preview area over SSE.
func ExplanationFragment(e domain.Explanation) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<h3>%s</h3>`+"\n", templ.EscapeString(e.Topic)); err != nil {
			return err
		}
		return writeExplanation(w, e)
	})
}

// PreviewNotice is a short inline notice for the preview area.
func PreviewNotice(message string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<p class="notice" role="status">%s</p>`, templ.EscapeString(message))
		return err
	})
}

func writeExplanation(w io.Writer, e domain.Explanation) error {
	if _, err := fmt.Fprintf(w, `<pre class="explanation-body">%s</pre>
<p><em>%s</em></p>
<ul>
`, templ.EscapeString(e.Body), templ.EscapeString(e.Summary)); err != nil {
		return err
	}
	for _, example := range e.Examples {
		if _, err := fmt.Fprintf(w, `<li>%s</li>`+"\n", templ.EscapeString(example)); err != nil {
			return err
		}
	}
	_, err := fmt.Fprint(w, `</ul>
`)
	return err
}
