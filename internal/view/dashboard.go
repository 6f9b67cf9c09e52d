package view

import (
	"fmt"
	"io"

	"github.com/a-h/templ"
	"github.com/plainlearn/plainlearn/internal/domain"
)

// DashboardPage renders the signed-in dashboard: greeting, current
// level, the explain form, and the level update form.
func DashboardPage(name string, level domain.AcademicLevel, notice string) templ.Component {
	return page("Dashboard", func(w io.Writer) error {
		if err := writeNotice(w, notice); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, `<h1>Welcome, %s</h1>
<p>Your academic level: <strong>%s</strong></p>
<section>
<h2>Explain a topic</h2>
<form id="explain-form" method="post" action="/explain">
<label>Topic <input type="text" name="topic" placeholder="e.g. gravity"></label>
<button type="submit">Explain</button>
<button type="button" data-on-click="@post('/explain/preview', {contentType: 'form'})">Preview here</button>
</form>
<div id="explanation-preview"></div>
</section>
<section>
<h2>Change your level</h2>
<form method="post" action="/update_level">
`, templ.EscapeString(name), templ.EscapeString(string(level))); err != nil {
			return err
		}
		if err := writeLevelSelect(w, level); err != nil {
			return err
		}
		_, err := fmt.Fprint(w, `
<button type="submit">Update level</button>
</form>
</section>
<p><a href="/logout">Log out</a></p>
`)
		return err
	})
}
