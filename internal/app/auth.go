package app

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	fiberlog "github.com/gofiber/fiber/v2/log"

	"shelf/internal/authview"
	"shelf/internal/constants"
	"shelf/internal/router"
	"shelf/internal/view"
	authviews "shelf/views/auth"
)

// AuthHandlers serves the sign in and sign up pages. Every request gets its own
// authview.View, initialised from the request path and closed on return.
type AuthHandlers struct{}

func (a *AuthHandlers) Show(c *fiber.Ctx) error {
	v, err := openView(c)
	if err != nil {
		return err
	}
	defer v.Close()

	return a.render(c, fiber.StatusOK, v, nil)
}

func (a *AuthHandlers) Submit(c *fiber.Ctx) error {
	var creds authview.Credentials
	if err := c.BodyParser(&creds); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	v, err := openView(c)
	if err != nil {
		return err
	}
	defer v.Close()

	if err = v.SetField(authview.FieldUsername, strings.TrimSpace(creds.Username)); err != nil {
		return err
	}
	if err = v.SetField(authview.FieldPassword, creds.Password); err != nil {
		return err
	}

	submitted, err := v.Submit()
	var verr *authview.ValidationError
	if errors.As(err, &verr) {
		fiberlog.Debug("auth form invalid: ", verr.Fields)
		return a.render(c, fiber.StatusUnprocessableEntity, v, fieldErrors(verr))
	}
	if err != nil {
		return err
	}

	fiberlog.Infof("%s submitted for user %q", v.Mode(), submitted.Username)

	return redirect(c, constants.HomePath)
}

func (a *AuthHandlers) render(c *fiber.Ctx, status int, v *authview.View, errs map[string]string) error {
	data := authviews.PageData{
		Mode:     v.Mode(),
		Title:    v.Title(),
		Action:   c.Path(),
		Username: v.Value(authview.FieldUsername),
		Errors:   errs,
	}
	return view.RenderPageOrFragment(c, status, authviews.Page(data), authviews.Form(data))
}

func openView(c *fiber.Ctx) (*authview.View, error) {
	v := authview.New(authview.NewCredentialsForm())
	if err := v.Initialize(router.Segments(c.Path()), router.Static()); err != nil {
		_ = v.Close()
		return nil, err
	}
	return v, nil
}

func fieldErrors(verr *authview.ValidationError) map[string]string {
	errs := make(map[string]string, len(verr.Fields))
	for _, f := range verr.Fields {
		errs[f] = verr.Messages[f]
	}
	return errs
}
