package home

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"shelf/views/layouts"
)

func Index() templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<section class="home"><h1>Home</h1>`+
			`<p><a class="button" href="/login">Sign in</a> or <a href="/register">create an account</a>.</p></section>`)
		return err
	})
	return layouts.Main("Home", body)
}
