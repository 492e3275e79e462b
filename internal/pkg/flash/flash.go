package flash

import (
	"github.com/gofiber/fiber/v2"
	cookieflash "github.com/sujit-baniya/flash"
)

// Flash message key in Locals
const FlashKey = "flash"

// Set sets a flash message for the response rendered in this request
func Set(c *fiber.Ctx, message fiber.Map) {
	c.Locals(FlashKey, message)
}

// Error sets an in-request error message
func Error(c *fiber.Ctx, message string) {
	Set(c, fiber.Map{"type": "error", "message": message})
}

// Get returns the in-request message if one was set, otherwise the message
// carried over a redirect in the flash cookie.
func Get(c *fiber.Ctx) fiber.Map {
	if msg, ok := c.Locals(FlashKey).(fiber.Map); ok && msg != nil {
		return msg
	}
	msg := cookieflash.Get(c)
	if len(msg) == 0 {
		return nil
	}
	return msg
}

// Success stores a success message in the flash cookie for the next page
func Success(c *fiber.Ctx, message string) {
	cookieflash.WithSuccess(c, fiber.Map{"type": "success", "message": message})
}

// RedirectWithError stores message in the flash cookie and redirects
func RedirectWithError(c *fiber.Ctx, location, message string) error {
	return cookieflash.WithError(c, fiber.Map{"type": "error", "message": message}).Redirect(location)
}

// RedirectWithSuccess stores message in the flash cookie and redirects
func RedirectWithSuccess(c *fiber.Ctx, location, message string) error {
	return cookieflash.WithSuccess(c, fiber.Map{"type": "success", "message": message}).Redirect(location)
}
