package errors

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"shelf/views/layouts"
)

func GenericError(code int, message string) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<section class="error"><h1>%d</h1><p>%s</p><a href="/">Back to home</a></section>`,
			code, templ.EscapeString(message))
		return err
	})
	return layouts.Main(message, body)
}

func Error404() templ.Component {
	return GenericError(404, "Not Found")
}

func Error500() templ.Component {
	return GenericError(500, "Internal Server Error")
}
