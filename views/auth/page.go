package auth

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"shelf/components"
	"shelf/internal/authview"
	"shelf/views/layouts"
)

func Page(data PageData) templ.Component {
	return layouts.Main(data.Title, Form(data))
}

// Form renders the credential form on its own so htmx requests can swap it in place.
func Form(data PageData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w,
			`<section class="auth" id="auth" data-mode="%s"><h1>%s</h1><p><a href="%s" hx-boost="true">%s</a></p>`+
				`<form method="post" action="%s" hx-post="%s" hx-target="#auth" hx-swap="outerHTML">`,
			templ.EscapeString(data.Mode.String()), templ.EscapeString(data.Title),
			templ.EscapeString(data.AlternatePath()), templ.EscapeString(data.AlternateLabel()),
			templ.EscapeString(data.Action), templ.EscapeString(data.Action))
		if err != nil {
			return err
		}

		if err = components.CsrfInput().Render(ctx, w); err != nil {
			return err
		}

		passwordAutocomplete := "new-password"
		if data.Mode == authview.SignIn {
			passwordAutocomplete = "current-password"
		}

		fields := []components.InputProps{
			{
				Name:         authview.FieldUsername,
				Label:        "Username",
				Type:         "text",
				Value:        data.Username,
				Error:        data.Errors[authview.FieldUsername],
				Autocomplete: "username",
			},
			{
				Name:         authview.FieldPassword,
				Label:        "Password",
				Type:         "password",
				Error:        data.Errors[authview.FieldPassword],
				Autocomplete: passwordAutocomplete,
			},
		}
		for _, f := range fields {
			if err = components.Input(f).Render(ctx, w); err != nil {
				return err
			}
		}

		_, err = fmt.Fprintf(w, `<button type="submit">%s</button></form></section>`, templ.EscapeString(data.Title))
		return err
	})
}
