package view

import (
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// HomePage is the landing page shown to visitors without a session.
func HomePage(notice string) templ.Component {
	return page("Welcome", func(w io.Writer) error {
		if err := writeNotice(w, notice); err != nil {
			return err
		}
		_, err := fmt.Fprint(w, `<h1>plainlearn</h1>
<p>Plain-language explanations of any topic, tuned to your academic level.</p>
<nav>
<a href="/register">Create an account</a>
<a href="/login">Log in</a>
</nav>
`)
		return err
	})
}
