package authview

import (
	"strings"

	"shelf/internal/form"
)

const (
	FieldUsername = "username"
	FieldPassword = "password"
)

type Credentials struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

// ValidationError names the fields that failed validation at submit time,
// with the message for each.
type ValidationError struct {
	Fields   []string
	Messages map[string]string
}

func newValidationError(errs []form.FieldError) *ValidationError {
	verr := &ValidationError{
		Fields:   make([]string, 0, len(errs)),
		Messages: make(map[string]string, len(errs)),
	}
	for _, e := range errs {
		verr.Fields = append(verr.Fields, e.Field)
		verr.Messages[e.Field] = e.Message()
	}
	return verr
}

func (e *ValidationError) Error() string {
	return "authview: invalid field(s): " + strings.Join(e.Fields, ", ")
}

// Has reports whether the named field failed validation.
func (e *ValidationError) Has(field string) bool {
	for _, f := range e.Fields {
		if f == field {
			return true
		}
	}
	return false
}

// NewCredentialsForm returns the form group backing a View: username and password, both required.
func NewCredentialsForm() *form.Group {
	return form.NewGroup(
		form.Field{Name: FieldUsername, Tag: "required"},
		form.Field{Name: FieldPassword, Tag: "required"},
	)
}
