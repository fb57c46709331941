package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// WebSocketUpgrade lets only upgrade requests for a known game through.
// The game and client IDs are copied to Locals("wsGameID") and
// Locals("wsClientID"), since route params are gone once the connection
// is upgraded.
func WebSocketUpgrade(gameExists func(gameID string) bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(c) {
			return fiber.ErrUpgradeRequired
		}

		clientID, ok := c.Locals("clientID").(string)
		if !ok || clientID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "client ID is required",
			})
		}

		gameID := c.Params("gameId")
		if gameID == "" || !gameExists(gameID) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "game not found",
			})
		}

		c.Locals("wsGameID", gameID)
		c.Locals("wsClientID", clientID)
		return c.Next()
	}
}
