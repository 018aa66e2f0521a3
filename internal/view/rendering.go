package view

import (
	"github.com/a-h/templ"
	"github.com/gofiber/fiber/v2"
)

const htmlContentType = "text/html; charset=utf-8"

func RenderComponent(c *fiber.Ctx, status int, component templ.Component) error {
	c.Status(status).Set(fiber.HeaderContentType, htmlContentType)
	return component.Render(c.Context(), c)
}

// RenderPageOrFragment renders fragment for htmx requests and page otherwise.
// The response varies on HX-Request so caches keep the two apart.
func RenderPageOrFragment(c *fiber.Ctx, status int, page, fragment templ.Component) error {
	c.Vary("HX-Request")
	if c.Get("HX-Request") == "true" {
		return RenderComponent(c, status, fragment)
	}
	return RenderComponent(c, status, page)
}
