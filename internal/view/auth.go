package view

import (
	"fmt"
	"io"

	"github.com/a-h/templ"
	"github.com/plainlearn/plainlearn/internal/domain"
)

// RegisterPage renders the registration form, with an optional notice
// from a previous failed attempt.
func RegisterPage(notice string) templ.Component {
	return page("Register", func(w io.Writer) error {
		if err := writeNotice(w, notice); err != nil {
			return err
		}
		if _, err := fmt.Fprint(w, `<h1>Create an account</h1>
<form method="post" action="/register">
<label>Name <input type="text" name="name" required></label>
<label>Email <input type="email" name="email" required></label>
<label>Password <input type="password" name="password" required></label>
<label>Academic level `); err != nil {
			return err
		}
		if err := writeLevelSelect(w, ""); err != nil {
			return err
		}
		_, err := fmt.Fprint(w, `</label>
<button type="submit">Register</button>
</form>
<p>Already registered? <a href="/login">Log in</a></p>
`)
		return err
	})
}

// LoginPage renders the login form, with an optional notice.
func LoginPage(notice string) templ.Component {
	return page("Log in", func(w io.Writer) error {
		if err := writeNotice(w, notice); err != nil {
			return err
		}
		_, err := fmt.Fprint(w, `<h1>Log in</h1>
<form method="post" action="/login">
<label>Email <input type="email" name="email" required></label>
<label>Password <input type="password" name="password" required></label>
<button type="submit">Log in</button>
</form>
<p>New here? <a href="/register">Create an account</a></p>
`)
		return err
	})
}

// writeLevelSelect renders the academic level dropdown with the given
// level pre-selected (empty selects none).
func writeLevelSelect(w io.Writer, selected domain.AcademicLevel) error {
	if _, err := fmt.Fprint(w, `<select name="academic_level" required>`); err != nil {
		return err
	}
	for _, level := range domain.Levels() {
		attr := ""
		if level == selected {
			attr = " selected"
		}
		if _, err := fmt.Fprintf(w, `<option value="%s"%s>%s</option>`, level, attr, level); err != nil {
			return err
		}
	}
	_, err := fmt.Fprint(w, `</select>`)
	return err
}
