package components

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"shelf/internal/constants"
)

func GetCsrfToken(ctx context.Context) string {
	if csrfToken, ok := ctx.Value(constants.CsrfTokenContextKey).(string); ok {
		return csrfToken
	}
	return ""
}

// CsrfInput renders the hidden form field checked by the CSRF middleware.
func CsrfInput() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<input type="hidden" name="%s" value="%s">`,
			templ.EscapeString(constants.CsrfInputName), templ.EscapeString(GetCsrfToken(ctx)))
		return err
	})
}

type InputProps struct {
	Name         string
	Label        string
	Type         string
	Value        string
	Error        string
	Autocomplete string
}

// Input renders a labelled input with an optional inline error.
func Input(p InputProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		class := "field"
		if p.Error != "" {
			class += " field--invalid"
		}
		_, err := fmt.Fprintf(w,
			`<div class="%s"><label for="%s">%s</label><input id="%s" name="%s" type="%s" value="%s" autocomplete="%s" required>`,
			templ.EscapeString(class),
			templ.EscapeString(p.Name), templ.EscapeString(p.Label),
			templ.EscapeString(p.Name), templ.EscapeString(p.Name), templ.EscapeString(p.Type),
			templ.EscapeString(p.Value), templ.EscapeString(p.Autocomplete))
		if err != nil {
			return err
		}
		if p.Error != "" {
			if _, err = fmt.Fprintf(w, `<p class="field__error" data-field="%s">%s</p>`,
				templ.EscapeString(p.Name), templ.EscapeString(p.Error)); err != nil {
				return err
			}
		}
		_, err = io.WriteString(w, `</div>`)
		return err
	})
}
