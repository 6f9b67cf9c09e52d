// Package view holds the templ components for every page and fragment.
// Components are defined directly in Go against the templ runtime; the
// markup is small enough that generated templates would be overkill.
package view

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

const pageHead = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>%s · plainlearn</title>
<script type="module" src="https://cdn.jsdelivr.net/gh/starfederation/datastar@v1.0.0/bundles/datastar.js"></script>
<style>
main { max-width: 42rem; margin: 2rem auto; font-family: system-ui, sans-serif; }
.notice { background: #fff8e1; border: 1px solid #e0c060; padding: 0.5rem 1rem; }
.explanation-body { white-space: pre-wrap; font-family: inherit; }
form { margin: 1rem 0; }
</style>
</head>
<body>
<main>
`

const pageFoot = `</main>
</body>
</html>
`

// page wraps body markup in the shared HTML shell.
func page(title string, body func(w io.Writer) error) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, pageHead, templ.EscapeString(title)); err != nil {
			return err
		}
		if err := body(w); err != nil {
			return err
		}
		_, err := io.WriteString(w, pageFoot)
		return err
	})
}

// writeNotice renders the one-shot flash notice when present.
func writeNotice(w io.Writer, notice string) error {
	if notice == "" {
		return nil
	}
	_, err := fmt.Fprintf(w, `<p class="notice" role="status">%s</p>`+"\n", templ.EscapeString(notice))
	return err
}
