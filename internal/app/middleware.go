package app

import (
	"github.com/gofiber/fiber/v2"

	"shelf/internal/constants"
)

// SetHtmxRequest records whether the request was issued by htmx, so handlers
// can answer with a fragment instead of a full page.
func SetHtmxRequest(c *fiber.Ctx) error {
	c.Locals(constants.HtmxRequestKey, c.Get("HX-Request") == "true")
	return c.Next()
}

func isHtmxRequest(c *fiber.Ctx) bool {
	htmx, _ := c.Locals(constants.HtmxRequestKey).(bool)
	return htmx
}

// redirect navigates the client to location. htmx clients get HX-Location and
// no body, so the response is not swapped into the page.
func redirect(c *fiber.Ctx, location string) error {
	if isHtmxRequest(c) {
		c.Set("HX-Location", location)
		return c.SendStatus(fiber.StatusNoContent)
	}
	return c.Redirect(location, fiber.StatusFound)
}
