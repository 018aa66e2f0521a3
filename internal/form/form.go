package form

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var (
	ErrRequired     = errors.New("is required")
	ErrUnknownField = errors.New("unknown field")
)

// Field declares a named input and the validator tag applied to it, e.g. "required".
// An empty tag accepts any value.
type Field struct {
	Name string
	Tag  string
}

// FieldError reports the first validator tag a field failed.
type FieldError struct {
	Field string
	Tag   string
}

func (e FieldError) Error() string {
	return e.Field + " " + e.Message()
}

// Message is the user-facing text for the failed tag.
func (e FieldError) Message() string {
	if e.Tag == "required" {
		return ErrRequired.Error()
	}
	return "is invalid (" + e.Tag + ")"
}

func (e FieldError) Is(target error) bool {
	return target == ErrRequired && e.Tag == "required"
}

// Group holds the values of a fixed set of declared fields. Errors are
// reported in declaration order.
type Group struct {
	validate *validator.Validate
	fields   []Field
	values   map[string]string
}

func NewGroup(fields ...Field) *Group {
	g := &Group{
		validate: validator.New(),
		fields:   fields,
		values:   make(map[string]string, len(fields)),
	}
	g.Reset()
	return g
}

func (g *Group) Set(name, value string) error {
	if _, ok := g.values[name]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	g.values[name] = value
	return nil
}

func (g *Group) Value(name string) string {
	return g.values[name]
}

// Errors validates every field and returns one error per invalid field.
func (g *Group) Errors() []FieldError {
	var errs []FieldError
	for _, f := range g.fields {
		if f.Tag == "" {
			continue
		}
		err := g.validate.Var(g.values[f.Name], f.Tag)
		if err == nil {
			continue
		}
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			errs = append(errs, FieldError{Field: f.Name, Tag: verrs[0].Tag()})
			continue
		}
		errs = append(errs, FieldError{Field: f.Name, Tag: f.Tag})
	}
	return errs
}

// Reset sets every declared field back to the empty string.
func (g *Group) Reset() {
	for _, f := range g.fields {
		g.values[f.Name] = ""
	}
}
