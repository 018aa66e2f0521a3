package app

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	fiberlog "github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/favicon"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"shelf/internal/config"
	"shelf/internal/constants"
	"shelf/internal/view"
	errorviews "shelf/views/errors"
	homeviews "shelf/views/home"
)

func New(config *config.Config) *fiber.App {
	fiberlog.Debugf("Starting app with config: %+v", *config)

	app := fiber.New(fiber.Config{
		AppName:      "Shelf 0.1.0",
		ErrorHandler: errorHandler,
	})

	app.Use(logger.New(logger.Config{
		DisableColors: config.DisableLogColors,
	}))
	app.Use(recover.New(recover.Config{
		EnableStackTrace: config.EnableStackTrace,
	}))
	app.Use(compress.New())
	app.Use(helmet.New())
	app.Use(favicon.New())
	app.Use("/static", filesystem.New(filesystem.Config{
		Root: http.FS(config.StaticFS),
	}))
	app.Use(SetHtmxRequest)

	// Combine two CSRF extractors: use form field as default
	// so forms work without JS, with header as fallback.
	csrfFromForm := csrf.CsrfFromForm(constants.CsrfInputName)
	csrfFromHeader := csrf.CsrfFromHeader(constants.CsrfHeaderName)

	app.Use(csrf.New(csrf.Config{
		CookieSecure:   config.CookieSecure,
		CookieHTTPOnly: true,
		CookieSameSite: "Lax",
		Extractor: func(c *fiber.Ctx) (string, error) {
			token, err := csrfFromForm(c)
			if err == nil {
				return token, nil
			}

			if errors.Is(err, csrf.ErrMissingForm) {
				return csrfFromHeader(c)
			}

			return "", err
		},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			fiberlog.Error("CSRF error: ", err.Error())
			return view.RenderComponent(c, fiber.StatusForbidden,
				errorviews.GenericError(fiber.StatusForbidden, "Forbidden"))
		},
		ContextKey: constants.CsrfTokenContextKey,
		CookieName: constants.CsrfCookieName,
	}))

	auth := AuthHandlers{}

	app.Get(constants.HomePath, func(c *fiber.Ctx) error {
		return view.RenderComponent(c, fiber.StatusOK, homeviews.Index())
	})

	app.Get(constants.LoginPath, auth.Show)
	app.Post(constants.LoginPath, auth.Submit)
	app.Get(constants.RegisterPath, auth.Show)
	app.Post(constants.RegisterPath, auth.Submit)

	return app
}
