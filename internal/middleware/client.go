package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

const maxClientIDLength = 64

// EnsureClientID requires every request to identify its client, via the
// X-Client-ID header or the clientId query parameter. The ID ends up in
// Locals("clientID").
func EnsureClientID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Locals("clientID") != nil {
			return c.Next()
		}

		clientID := strings.TrimSpace(c.Get("X-Client-ID"))
		if clientID == "" {
			clientID = strings.TrimSpace(c.Query("clientId"))
		}

		switch {
		case clientID == "":
			log.Debugf("rejecting %s %s without client ID", c.Method(), c.Path())
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Client ID is required. Please ensure client is properly initialized.",
			})
		case len(clientID) > maxClientIDLength:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "client ID is too long",
			})
		}

		c.Locals("clientID", clientID)
		return c.Next()
	}
}
