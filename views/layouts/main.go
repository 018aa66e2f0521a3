package layouts

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

const appName = "Shelf"

// Main wraps body in the application document. The page title is suffixed with the app name.
func Main(title string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		fullTitle := appName
		if title != "" {
			fullTitle = title + " | " + appName
		}
		_, err := fmt.Fprintf(w, `<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`+
			`<meta name="viewport" content="width=device-width, initial-scale=1">`+
			`<title>%s</title><link rel="stylesheet" href="/static/app.css"></head>`+
			`<body><nav class="navbar"><a class="navbar__brand" href="/">%s</a>`+
			`<a href="/login">Sign in</a><a href="/register">Sign up</a></nav><main>`,
			templ.EscapeString(fullTitle), templ.EscapeString(appName))
		if err != nil {
			return err
		}
		if err = body.Render(ctx, w); err != nil {
			return err
		}
		_, err = io.WriteString(w, `</main></body></html>`)
		return err
	})
}
